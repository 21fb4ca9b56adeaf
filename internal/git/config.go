package git

import (
	"fmt"
	"strings"
)

// ConfigGet reads a single git config value. ok is false when the key is
// unset.
func (s *Service) ConfigGet(key string) (value string, ok bool, err error) {
	if err := s.ready(); err != nil {
		return "", false, err
	}
	value, ok, err = s.backend.ConfigGet(key)
	if err != nil {
		return "", false, s.observe(fmt.Errorf("config %s: %w", key, err))
	}
	return value, ok, nil
}

// SignOffLine builds a Signed-off-by trailer from user.name and user.email.
func (s *Service) SignOffLine() (string, error) {
	name, ok, err := s.ConfigGet("user.name")
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("user.name is not configured")
	}
	email, ok, err := s.ConfigGet("user.email")
	if err != nil {
		return "", err
	}
	if !ok || strings.TrimSpace(email) == "" {
		return "", fmt.Errorf("user.email is not configured")
	}
	return fmt.Sprintf("Signed-off-by: %s <%s>", strings.TrimSpace(name), strings.TrimSpace(email)), nil
}

// AppendSignOff adds line to msg as a trailer unless it is already present.
func AppendSignOff(msg, line string) string {
	trimmed := strings.TrimRight(msg, "\n")
	for _, l := range strings.Split(trimmed, "\n") {
		if strings.TrimSpace(l) == line {
			return msg
		}
	}
	if trimmed == "" {
		return line + "\n"
	}
	lines := strings.Split(trimmed, "\n")
	last := lines[len(lines)-1]
	sep := "\n\n"
	if strings.HasPrefix(last, "Signed-off-by:") {
		sep = "\n"
	}
	return trimmed + sep + line + "\n"
}
