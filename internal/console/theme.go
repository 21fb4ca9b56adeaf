package console

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	darkmode "github.com/thiagokokada/dark-mode-go"
)

type ThemePreference int

const (
	ThemeAuto ThemePreference = iota
	ThemeLight
	ThemeDark
)

func (p ThemePreference) String() string {
	switch p {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "auto"
	}
}

var detectDarkMode = darkmode.IsDarkMode

func ParseThemePreference(raw string) (ThemePreference, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", ThemeAuto.String():
		return ThemeAuto, nil
	case ThemeDark.String():
		return ThemeDark, nil
	case ThemeLight.String():
		return ThemeLight, nil
	default:
		return ThemeAuto, fmt.Errorf("unknown color mode %q (want auto, light or dark)", raw)
	}
}

// IsDark resolves auto against the desktop setting. Detection failures fall
// back to light.
func (p ThemePreference) IsDark() bool {
	switch p {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	}
	if detectDarkMode == nil {
		return false
	}
	dark, err := detectDarkMode()
	if err != nil {
		slog.Debug("detect dark-mode", slog.Any("error", err))
		return false
	}
	return dark
}

func StyleForMode(p ThemePreference) *chroma.Style {
	name := "github"
	if p.IsDark() {
		name = "github-dark"
	}
	if st := styles.Get(name); st != nil {
		return st
	}
	return styles.Fallback
}
