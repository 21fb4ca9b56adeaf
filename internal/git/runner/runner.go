// Package runner executes external programs and captures their standard output.
//
// It is the only place in gitwrap that spawns processes. Everything above it
// talks to the Runner interface so tests can script git's responses.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotFound is returned when the requested executable cannot be located.
var ErrNotFound = errors.New("executable not found")

// Runner synchronously runs a program with arguments and returns its stdout.
//
// A missing executable yields an error wrapping ErrNotFound. A non-zero exit
// yields an *ExitError. Implementations never pass arguments through a shell.
type Runner interface {
	Run(dir string, name string, args ...string) (string, error)
}

// ExitError reports a program that ran but exited with a non-zero status.
type ExitError struct {
	Name    string
	Code    int
	Stdout  string
	Stderr  string
	ProcErr error
}

func (e *ExitError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr != "" {
		return fmt.Sprintf("%s exited with status %d: %s", e.Name, e.Code, stderr)
	}
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

func (e *ExitError) Unwrap() error { return e.ProcErr }

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (ExecRunner) Run(dir string, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", &ExitError{
			Name:    name,
			Code:    exitErr.ExitCode(),
			Stdout:  stdout.String(),
			Stderr:  stderr.String(),
			ProcErr: err,
		}
	}
	return "", fmt.Errorf("run %s: %w", name, err)
}
