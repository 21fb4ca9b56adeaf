package git

import (
	"path/filepath"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

// RepoHostConfig reads host settings straight from the repository on disk
// without spawning git.
type RepoHostConfig struct {
	path string
}

func NewRepoHostConfig(path string) *RepoHostConfig {
	return &RepoHostConfig{path: path}
}

func (h *RepoHostConfig) open() (*gitlib.Repository, error) {
	return gitlib.PlainOpenWithOptions(h.path, &gitlib.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
}

// VersioningEnabled reports whether path sits inside a repository with a
// work tree.
func (h *RepoHostConfig) VersioningEnabled() bool {
	repo, err := h.open()
	if err != nil {
		return false
	}
	_, err = repo.Worktree()
	return err == nil
}

// PreferredFormat reports whether the repository stores files without line
// ending conversion.
func (h *RepoHostConfig) PreferredFormat() bool {
	repo, err := h.open()
	if err != nil {
		return false
	}
	cfg, err := repo.ConfigScoped(config.GlobalScope)
	if err != nil {
		return false
	}
	if cfg.Core.IsBare {
		return false
	}
	switch strings.ToLower(cfg.Raw.Section("core").Option("autocrlf")) {
	case "", "false":
		return true
	default:
		return false
	}
}

// ResolveRoot returns the work tree root containing path. Paths outside any
// repository resolve to their absolute form.
func ResolveRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	repo, err := NewRepoHostConfig(abs).open()
	if err != nil {
		return abs, nil
	}
	wt, err := repo.Worktree()
	if err != nil {
		return abs, nil
	}
	return wt.Filesystem.Root(), nil
}
