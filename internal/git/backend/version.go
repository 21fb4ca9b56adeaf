package backend

import (
	"fmt"
	"strconv"
	"strings"
)

// Minimum git version gitwrap is tested against.
var minGitVersion = gitVersion{major: 2, minor: 0, patch: 0}

type gitVersion struct {
	major int
	minor int
	patch int
}

func (v gitVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

func (v gitVersion) less(other gitVersion) bool {
	if v.major != other.major {
		return v.major < other.major
	}
	if v.minor != other.minor {
		return v.minor < other.minor
	}
	return v.patch < other.patch
}

func parseGitVersionOutput(out string) (gitVersion, bool) {
	s := strings.TrimSpace(out)
	if s == "" {
		return gitVersion{}, false
	}
	// Accepts "git version 2.44.0", "2.39.3 (Apple Git-146)" and
	// "2.39.3.windows.1", with or without the "git version" prefix.
	if idx := strings.Index(s, "git version"); idx >= 0 {
		s = strings.TrimSpace(s[idx+len("git version"):])
	}
	start := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	if start < 0 {
		return gitVersion{}, false
	}
	s = s[start:]
	end := 0
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	s = strings.Trim(s[:end], ".")

	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return gitVersion{}, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return gitVersion{}, false
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return gitVersion{}, false
	}
	patch := 0
	if len(parts) >= 3 {
		if p, err := strconv.Atoi(parts[2]); err == nil {
			patch = p
		}
	}
	return gitVersion{major: major, minor: minor, patch: patch}, true
}

// ValidateVersion reports whether a version string, as returned by
// Backend.Version, meets the minimum supported release.
func ValidateVersion(version string) error {
	got, ok := parseGitVersionOutput(version)
	if !ok {
		return fmt.Errorf("%w: unable to parse git version %q", ErrParse, strings.TrimSpace(version))
	}
	if got.less(minGitVersion) {
		return fmt.Errorf("git %s is too old; gitwrap requires git >= %s", got, minGitVersion)
	}
	return nil
}
