package git

import (
	"errors"
	"log/slog"
)

// Status lists every modified, staged or untracked path in the work tree.
//
// A git invocation failure is logged and reported as an empty list with no
// error; only unparseable output is returned as an error. Neither trips the
// Availability latch.
func (s *Service) Status() ([]Change, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	changes, err := s.backend.Status()
	if err == nil {
		return changes, nil
	}
	if errors.Is(err, ErrParse) {
		slog.Warn("git status output not understood", slog.String("repo", s.backend.RepoPath()), slog.Any("error", err))
		return nil, err
	}
	slog.Warn("git status failed", slog.String("repo", s.backend.RepoPath()), slog.Any("error", err))
	return []Change{}, nil
}

// WorkingSet keeps the changes that have something to stage.
func WorkingSet(changes []Change) []Change {
	return filterChanges(changes, func(c Change) bool {
		return c.WorkingStatus != Unmodified
	})
}

// IndexSet keeps the changes that have something staged.
func IndexSet(changes []Change) []Change {
	return filterChanges(changes, func(c Change) bool {
		return c.IndexStatus != Unmodified && c.IndexStatus != Untracked
	})
}

func filterChanges(changes []Change, keep func(Change) bool) []Change {
	out := make([]Change, 0, len(changes))
	for _, c := range changes {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
