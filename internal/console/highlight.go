package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
)

// HighlightDiff writes diff to w coloured with style for a 256 colour
// terminal. A nil style writes the text unchanged.
func HighlightDiff(w io.Writer, diff string, style *chroma.Style) error {
	if style == nil || diff == "" {
		_, err := io.WriteString(w, diff)
		return err
	}
	lexer := lexers.Get("diff")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, diff)
	if err != nil {
		return fmt.Errorf("tokenise diff: %w", err)
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	return formatter.Format(w, style, iterator)
}

// DiffFiles lists the b-side paths of every file header in diff.
func DiffFiles(diff string) []string {
	var files []string
	for line := range strings.SplitSeq(diff, "\n") {
		if path, ok := diffPathFromLine(line); ok && path != "" {
			files = append(files, path)
		}
	}
	return files
}

func diffPathFromLine(line string) (string, bool) {
	const prefix = "diff --git "
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	tokens := diffLineTokens(strings.TrimSpace(line[len(prefix):]))
	if len(tokens) < 2 {
		return "", true
	}
	return strings.TrimPrefix(tokens[1], "b/"), true
}

// diffLineTokens splits a header on blanks, honouring git's C-style quoting
// for paths with unusual characters.
func diffLineTokens(s string) []string {
	var tokens []string
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return tokens
		}
		if s[0] != '"' {
			end := strings.IndexAny(s, " \t")
			if end < 0 {
				return append(tokens, s)
			}
			tokens = append(tokens, s[:end])
			s = s[end:]
			continue
		}
		var buf strings.Builder
		i := 1
		for ; i < len(s) && s[i] != '"'; i++ {
			if s[i] == '\\' && i+1 < len(s) {
				i++
				switch s[i] {
				case 't':
					buf.WriteByte('\t')
				case 'n':
					buf.WriteByte('\n')
				default:
					buf.WriteByte(s[i])
				}
				continue
			}
			buf.WriteByte(s[i])
		}
		tokens = append(tokens, buf.String())
		if i < len(s) {
			i++
		}
		s = s[i:]
	}
}
