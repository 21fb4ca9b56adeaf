package backend

import (
	"fmt"
	"strings"
)

func (g *gitCLI) ListRefs() ([]Ref, error) {
	out, err := g.runGitCommand(
		[]string{"for-each-ref", "--sort=refname:short", forEachRefFormat},
		false,
		"git for-each-ref",
	)
	if err != nil {
		return nil, err
	}
	refs, err := parseForEachRef(out)
	if err != nil {
		return nil, fmt.Errorf("parse git for-each-ref: %w: %w", ErrToolInvocation, err)
	}
	return refs, nil
}

func (g *gitCLI) SymbolicHead() (string, bool, error) {
	out, err := g.runGitCommand([]string{"symbolic-ref", "--quiet", "HEAD"}, true, "git symbolic-ref")
	if err != nil {
		return "", false, err
	}
	name := strings.TrimSpace(out)
	if name == "" {
		return "", false, nil
	}
	return name, true, nil
}

func (g *gitCLI) ShortRefName(fullName string) (string, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return "", fmt.Errorf("ref not specified")
	}
	out, err := g.runGitCommand(
		[]string{"for-each-ref", "--format=%(refname:short)", "--", fullName},
		false,
		"git for-each-ref",
	)
	if err != nil {
		return "", err
	}
	out = strings.TrimRight(out, "\n")
	if strings.Contains(out, "\n") {
		return "", fmt.Errorf("parse git for-each-ref: %w: %w: %q matches more than one ref", ErrToolInvocation, ErrParse, fullName)
	}
	if out == "" {
		// Unborn branch: HEAD names a ref that has no commit yet.
		if short, ok := strings.CutPrefix(fullName, "refs/heads/"); ok {
			return short, nil
		}
	}
	return out, nil
}

func (g *gitCLI) Status() ([]Change, error) {
	out, err := g.runGitCommand(
		[]string{"status", "--porcelain", "--untracked-files=all", "-z"},
		false,
		"git status",
	)
	if err != nil {
		return nil, err
	}
	changes, err := ParseStatus(out)
	if err != nil {
		return nil, fmt.Errorf("parse git status: %w: %w", ErrToolInvocation, err)
	}
	return changes, nil
}

func (g *gitCLI) Diff(path string, wordLevel bool) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path not specified")
	}
	args := []string{"diff", "--no-color", "--submodule=log"}
	if wordLevel {
		args = append(args, "--word-diff=porcelain")
	}
	args = append(args, "--", path)
	return g.runGitCommand(args, true, "git diff")
}

func (g *gitCLI) Add(path string) error {
	return g.mutate("git add", path, "add", "--ignore-errors")
}

func (g *gitCLI) Remove(path string) error {
	return g.mutate("git rm", path, "rm")
}

func (g *gitCLI) Reset(path string) error {
	return g.mutate("git reset", path, "reset", "HEAD")
}

func (g *gitCLI) mutate(context string, path string, args ...string) error {
	if path == "" {
		return fmt.Errorf("path not specified")
	}
	args = append(args, "--", path)
	_, err := g.runGitCommand(args, false, context)
	return err
}

func (g *gitCLI) Version() (string, error) {
	out, err := g.runGitCommand([]string{"--version"}, false, "git --version")
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(strings.TrimSpace(out), "git version "), nil
}

func (g *gitCLI) ConfigGet(key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, fmt.Errorf("config key not specified")
	}
	out, err := g.runGitCommand([]string{"config", "--get", key}, true, "git config")
	if err != nil {
		return "", false, err
	}
	if out == "" {
		return "", false, nil
	}
	return strings.TrimSuffix(out, "\n"), true, nil
}
