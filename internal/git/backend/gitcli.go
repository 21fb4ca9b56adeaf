package backend

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/thiagokokada/gitwrap/internal/git/runner"
)

const gitBinary = "git"

type gitCLI struct {
	path   string
	runner runner.Runner
}

// NewCLI returns a Backend that runs git against the repository at repoPath.
// It does not touch the repository until the first query.
func NewCLI(repoPath string, r runner.Runner) (Backend, error) {
	if r == nil {
		return nil, fmt.Errorf("runner not set")
	}
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	return &gitCLI{path: abs, runner: r}, nil
}

func (g *gitCLI) RepoPath() string {
	if g == nil {
		return ""
	}
	return g.path
}

// runGitCommand runs git in the repository. With allowExit1, an exit status
// of 1 with an empty stderr counts as success: git uses it for "nothing
// there" answers such as a detached HEAD or an unset config key.
func (g *gitCLI) runGitCommand(args []string, allowExit1 bool, context string) (string, error) {
	if g == nil || g.path == "" {
		return "", fmt.Errorf("repository root not set")
	}
	cmdArgs := append([]string{"-C", g.path}, args...)
	slog.Debug("run git", slog.String("cmd", CommandLine(gitBinary, cmdArgs...)))
	out, err := g.runner.Run("", gitBinary, cmdArgs...)
	if err == nil {
		return out, nil
	}
	if errors.Is(err, runner.ErrNotFound) {
		return "", fmt.Errorf("%s: %w", context, ErrToolNotFound)
	}
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(exitErr.Stderr)
		if allowExit1 && exitErr.Code == 1 && stderr == "" {
			return exitErr.Stdout, nil
		}
		if stderr != "" {
			return "", fmt.Errorf("%s: %w: exit status %d: %s", context, ErrToolInvocation, exitErr.Code, stderr)
		}
		return "", fmt.Errorf("%s: %w: exit status %d", context, ErrToolInvocation, exitErr.Code)
	}
	return "", fmt.Errorf("%s: %w: %v", context, ErrToolInvocation, err)
}
