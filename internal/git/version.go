package git

import (
	"fmt"

	gitbackend "github.com/thiagokokada/gitwrap/internal/git/backend"
)

// Version returns the installed git version, for example "2.44.0".
func (s *Service) Version() (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	v, err := s.backend.Version()
	if err != nil {
		return "", s.observe(fmt.Errorf("git version: %w", err))
	}
	return v, nil
}

// CheckVersion fails when the installed git is too old.
func (s *Service) CheckVersion() error {
	v, err := s.Version()
	if err != nil {
		return err
	}
	return ValidateVersion(v)
}

// ValidateVersion fails when version is unparseable or too old.
func ValidateVersion(version string) error {
	return gitbackend.ValidateVersion(version)
}
