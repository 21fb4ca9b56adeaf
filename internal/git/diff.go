package git

import "fmt"

// Diff returns the unstaged diff for path. With wordLevel the output uses
// git's word-diff porcelain format.
func (s *Service) Diff(path string, wordLevel bool) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	out, err := s.backend.Diff(path, wordLevel)
	if err != nil {
		return "", s.observe(fmt.Errorf("diff %s: %w", path, err))
	}
	return out, nil
}
