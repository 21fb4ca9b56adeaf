package backend

import (
	"errors"

	"github.com/thiagokokada/gitwrap/internal/git/runner"
)

// Sentinel errors for classifying failures with errors.Is.
var (
	// ErrToolNotFound means the git executable could not be located.
	ErrToolNotFound = runner.ErrNotFound

	// ErrToolInvocation means git ran but failed, or its output could not be parsed.
	ErrToolInvocation = errors.New("git invocation failed")

	// ErrUnsupportedInput means an argument contains a character the quoting
	// scheme cannot represent.
	ErrUnsupportedInput = errors.New("unsupported input")

	// ErrParse means a record in git's output did not match the expected format.
	ErrParse = errors.New("unexpected git output")
)
