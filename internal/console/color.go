package console

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorChoice int

const (
	ColorAuto ColorChoice = iota
	ColorAlways
	ColorNever
)

func (c ColorChoice) String() string {
	switch c {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseColorChoice(raw string) (ColorChoice, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", ColorAuto.String():
		return ColorAuto, nil
	case ColorAlways.String():
		return ColorAlways, nil
	case ColorNever.String():
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color choice %q (want auto, always or never)", raw)
	}
}

var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// UseColor decides whether output written to f gets ANSI colours. NO_COLOR
// disables auto.
func UseColor(c ColorChoice, f *os.File) bool {
	switch c {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return f != nil && isTerminal(f)
}
