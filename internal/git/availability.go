package git

import (
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"sync/atomic"
)

// HostConfig answers whether the host is set up for version control.
// Implementations are consulted on every read and should be cheap.
type HostConfig interface {
	VersioningEnabled() bool
	PreferredFormat() bool
}

// ToolLocator finds an executable on PATH once and remembers the answer for
// its whole lifetime.
type ToolLocator struct {
	name     string
	lookPath func(string) (string, error)

	once sync.Once
	path string
	err  error
}

func NewToolLocator(name string) *ToolLocator {
	return &ToolLocator{name: name, lookPath: exec.LookPath}
}

func (l *ToolLocator) Path() (string, error) {
	if l == nil {
		return "", fmt.Errorf("%w: no locator", ErrToolNotFound)
	}
	l.once.Do(func() {
		path, err := l.lookPath(l.name)
		if err != nil {
			l.err = fmt.Errorf("%w: %s: %v", ErrToolNotFound, l.name, err)
			return
		}
		l.path = path
	})
	return l.path, l.err
}

// Availability tracks whether the git wrapper can be trusted. It is meant to
// be created once per process and shared by every Service.
//
// The working flag is a one-way latch: the first failed read marks the
// wrapper broken until the process restarts, even if later calls would
// succeed.
type Availability struct {
	locator *ToolLocator
	host    HostConfig

	broken   atomic.Bool
	mu       sync.Mutex
	firstErr error
}

// AvailabilitySnapshot is a point-in-time copy of every flag.
type AvailabilitySnapshot struct {
	ToolPath          string `json:"tool_path,omitempty" yaml:"tool_path,omitempty"`
	ToolPresent       bool   `json:"tool_present" yaml:"tool_present"`
	VersioningEnabled bool   `json:"versioning_enabled" yaml:"versioning_enabled"`
	PreferredFormat   bool   `json:"preferred_format" yaml:"preferred_format"`
	Working           bool   `json:"working" yaml:"working"`
	Usable            bool   `json:"usable" yaml:"usable"`
	Failure           string `json:"failure,omitempty" yaml:"failure,omitempty"`
}

func NewAvailability(locator *ToolLocator, host HostConfig) *Availability {
	return &Availability{locator: locator, host: host}
}

func (a *Availability) IsToolPresent() bool {
	_, err := a.locator.Path()
	return err == nil
}

func (a *Availability) IsVersioningEnabled() bool {
	return a.host != nil && a.host.VersioningEnabled()
}

func (a *Availability) IsVersioningPreferredFormat() bool {
	return a.host != nil && a.host.PreferredFormat()
}

func (a *Availability) IsWorking() bool {
	return !a.broken.Load()
}

func (a *Availability) IsUsable() bool {
	return a.IsToolPresent() && a.IsVersioningEnabled() && a.IsWorking()
}

// MarkFailed latches the working flag to false. Only the first cause is kept.
func (a *Availability) MarkFailed(err error) {
	if err == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.broken.CompareAndSwap(false, true) {
		return
	}
	a.firstErr = err
	slog.Warn("git wrapper marked as not working", slog.Any("error", err))
}

// FailureCause returns the error that tripped the latch, if any.
func (a *Availability) FailureCause() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.firstErr
}

func (a *Availability) Snapshot() AvailabilitySnapshot {
	path, err := a.locator.Path()
	snap := AvailabilitySnapshot{
		ToolPath:          path,
		ToolPresent:       err == nil,
		VersioningEnabled: a.IsVersioningEnabled(),
		PreferredFormat:   a.IsVersioningPreferredFormat(),
		Working:           a.IsWorking(),
	}
	snap.Usable = snap.ToolPresent && snap.VersioningEnabled && snap.Working
	if cause := a.FailureCause(); cause != nil {
		snap.Failure = cause.Error()
	}
	return snap
}
