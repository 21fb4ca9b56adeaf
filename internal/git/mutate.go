package git

import (
	"fmt"
	"log/slog"

	gitbackend "github.com/thiagokokada/gitwrap/internal/git/backend"
)

// StagePath adds path to the index.
func (s *Service) StagePath(path string) error {
	return s.mutate("stage", path, gitbackend.Backend.Add)
}

// UnstagePath resets the index entry for path to HEAD.
func (s *Service) UnstagePath(path string) error {
	return s.mutate("unstage", path, gitbackend.Backend.Reset)
}

// RemovePath deletes path from the index and the work tree.
func (s *Service) RemovePath(path string) error {
	return s.mutate("remove", path, gitbackend.Backend.Remove)
}

// StageChange stages a status entry. Work tree deletions go through rm.
func (s *Service) StageChange(c Change) error {
	if c.WorkingStatus == Deleted {
		return s.RemovePath(c.Path)
	}
	return s.StagePath(c.Path)
}

// UnstageChange moves a staged status entry back to the work tree.
func (s *Service) UnstageChange(c Change) error {
	return s.UnstagePath(c.Path)
}

func (s *Service) mutate(op, path string, fn func(gitbackend.Backend, string) error) error {
	if err := s.ready(); err != nil {
		return err
	}
	slog.Debug("mutate index", slog.String("op", op), slog.String("path", path))
	if err := fn(s.backend, path); err != nil {
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
	return nil
}
