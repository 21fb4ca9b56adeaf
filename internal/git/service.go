package git

import (
	"fmt"

	gitbackend "github.com/thiagokokada/gitwrap/internal/git/backend"
	"github.com/thiagokokada/gitwrap/internal/git/runner"
)

// Service is the entry point for repository queries and index mutations.
// Read failures trip the shared Availability latch.
type Service struct {
	backend gitbackend.Backend
	avail   *Availability
}

// Open prepares a Service for the repository containing repoPath.
func Open(repoPath string, avail *Availability) (*Service, error) {
	root, err := ResolveRoot(repoPath)
	if err != nil {
		return nil, fmt.Errorf("resolve repository root: %w", err)
	}
	backend, err := gitbackend.NewCLI(root, runner.NewExecRunner())
	if err != nil {
		return nil, err
	}
	return NewWithBackend(backend, avail), nil
}

// NewWithBackend wires a Service to an explicit backend. A nil avail gets a
// private Availability that only this Service observes.
func NewWithBackend(backend gitbackend.Backend, avail *Availability) *Service {
	if avail == nil {
		avail = NewAvailability(NewToolLocator("git"), nil)
	}
	return &Service{backend: backend, avail: avail}
}

func (s *Service) RepoPath() string {
	if s.backend == nil {
		return ""
	}
	return s.backend.RepoPath()
}

func (s *Service) Availability() *Availability {
	return s.avail
}

func (s *Service) ready() error {
	if s.backend == nil || s.backend.RepoPath() == "" {
		return fmt.Errorf("repository root not set")
	}
	return nil
}

// observe trips the latch when a read query failed.
func (s *Service) observe(err error) error {
	if err != nil {
		s.avail.MarkFailed(err)
	}
	return err
}
