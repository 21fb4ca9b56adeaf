package backend

import (
	"fmt"
	"strconv"
	"strings"
)

// QuoteArg wraps a path or ref name in single quotes for a POSIX shell.
// Single quotes cannot be escaped inside such a string, so a token that
// contains one is rejected instead of being partially escaped.
func QuoteArg(token string) (string, error) {
	if strings.Contains(token, "'") {
		return "", fmt.Errorf("%w: %q contains a single quote", ErrUnsupportedInput, token)
	}
	return "'" + token + "'", nil
}

// CommandLine renders an argument vector as a shell command line for logs and
// error messages. Arguments are never executed through a shell; tokens that
// QuoteArg rejects are shown Go-quoted instead.
func CommandLine(name string, args ...string) string {
	var b strings.Builder
	b.WriteString(name)
	for _, arg := range args {
		b.WriteByte(' ')
		if isPlainArg(arg) {
			b.WriteString(arg)
			continue
		}
		quoted, err := QuoteArg(arg)
		if err != nil {
			quoted = strconv.Quote(arg)
		}
		b.WriteString(quoted)
	}
	return b.String()
}

func isPlainArg(arg string) bool {
	if arg == "" {
		return false
	}
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("-_=./:,@+", c) >= 0:
		default:
			return false
		}
	}
	return true
}
