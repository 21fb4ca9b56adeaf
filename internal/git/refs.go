package git

import (
	"fmt"
	"log/slog"
)

// ListRefs returns every ref in the repository ordered by short name.
func (s *Service) ListRefs() ([]Ref, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	refs, err := s.backend.ListRefs()
	if err != nil {
		return nil, s.observe(fmt.Errorf("list refs: %w", err))
	}
	slog.Debug("ListRefs", slog.Int("count", len(refs)))
	return refs, nil
}

// CurrentBranch returns the short name of the checked out branch, or an
// empty string when HEAD is detached.
func (s *Service) CurrentBranch() (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	full, ok, err := s.backend.SymbolicHead()
	if err != nil {
		return "", s.observe(fmt.Errorf("resolve HEAD: %w", err))
	}
	if !ok {
		return "", nil
	}
	short, err := s.backend.ShortRefName(full)
	if err != nil {
		return "", s.observe(fmt.Errorf("shorten %s: %w", full, err))
	}
	return short, nil
}
