package runner

import (
	"slices"
	"sync"
)

// MockResponse is the scripted result of a matched invocation.
//
// A zero ExitCode with a nil Err is a success returning Stdout. A non-zero
// ExitCode is reported as an *ExitError. Err, when set, is returned as is.
type MockResponse struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// CommandMatcher decides whether a rule applies to an invocation.
type CommandMatcher func(dir, name string, args []string) bool

type mockRule struct {
	match    CommandMatcher
	response MockResponse
}

// MockCall records one invocation seen by a MockRunner.
type MockCall struct {
	Dir  string
	Name string
	Args []string
}

// MockRunner returns pre-recorded responses. Rules are matched in
// registration order; unmatched invocations succeed with empty output.
type MockRunner struct {
	mu    sync.Mutex
	rules []mockRule
	calls []MockCall
}

func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

func (m *MockRunner) AddRule(match CommandMatcher, response MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = append(m.rules, mockRule{match: match, response: response})
}

// AddExactMatch matches name and the complete argument list.
func (m *MockRunner) AddExactMatch(name string, args []string, response MockResponse) {
	want := slices.Clone(args)
	m.AddRule(func(_ string, n string, a []string) bool {
		return n == name && slices.Equal(a, want)
	}, response)
}

// AddPrefixMatch matches name and the leading arguments.
func (m *MockRunner) AddPrefixMatch(name string, prefix []string, response MockResponse) {
	want := slices.Clone(prefix)
	m.AddRule(func(_ string, n string, a []string) bool {
		return n == name && len(a) >= len(want) && slices.Equal(a[:len(want)], want)
	}, response)
}

// Calls returns a copy of every recorded invocation.
func (m *MockRunner) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}

func (m *MockRunner) Run(dir string, name string, args ...string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Dir: dir, Name: name, Args: slices.Clone(args)})
	var resp *MockResponse
	for i := range m.rules {
		if m.rules[i].match(dir, name, args) {
			resp = &m.rules[i].response
			break
		}
	}
	m.mu.Unlock()

	if resp == nil {
		return "", nil
	}
	if resp.Err != nil {
		return "", resp.Err
	}
	if resp.ExitCode != 0 {
		return "", &ExitError{Name: name, Code: resp.ExitCode, Stdout: resp.Stdout, Stderr: resp.Stderr}
	}
	return resp.Stdout, nil
}
