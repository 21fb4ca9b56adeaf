package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "text"
	}
}

func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", FormatText.String():
		return FormatText, nil
	case FormatJSON.String():
		return FormatJSON, nil
	case FormatYAML.String():
		return FormatYAML, nil
	default:
		return FormatText, fmt.Errorf("unknown format %q (want text, json or yaml)", raw)
	}
}

// Encode writes v in the structured formats and defers to text otherwise.
func Encode(w io.Writer, f Format, v any, text func(io.Writer) error) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}
