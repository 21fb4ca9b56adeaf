package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/thiagokokada/gitwrap/internal/buildinfo"
	"github.com/thiagokokada/gitwrap/internal/console"
	"github.com/thiagokokada/gitwrap/internal/git"
)

type refRow struct {
	Name     string `json:"name" yaml:"name"`
	Short    string `json:"short" yaml:"short"`
	ID       string `json:"id" yaml:"id"`
	Kind     string `json:"kind" yaml:"kind"`
	Upstream string `json:"upstream,omitempty" yaml:"upstream,omitempty"`
}

type branchRow struct {
	Branch   string `json:"branch" yaml:"branch"`
	Detached bool   `json:"detached" yaml:"detached"`
}

func (a *app) status(args []string) error {
	var watch bool
	if _, err := subcommand("status", args, func(fs *flag.FlagSet) {
		fs.BoolVar(&watch, "watch", false, "print status again whenever the repository changes")
	}); err != nil {
		return err
	}
	if err := a.printStatus(); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	var mu sync.Mutex
	w, err := console.Watch(a.svc.RepoPath(), console.DefaultWatchDelay, func() {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(a.stdout)
		if err := a.printStatus(); err != nil {
			fmt.Fprintf(a.stdout, "status: %v\n", err)
		}
	})
	if err != nil {
		return err
	}
	<-ctx.Done()
	return w.Close()
}

func (a *app) printStatus() error {
	changes, err := a.svc.Status()
	if err != nil {
		return err
	}
	return console.Encode(a.stdout, a.format, changes, func(w io.Writer) error {
		for _, c := range changes {
			if _, err := fmt.Fprintf(w, "%c%c %s\n", c.IndexStatus.Code(), c.WorkingStatus.Code(), c.Path); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *app) refs(args []string) error {
	if _, err := subcommand("refs", args, nil); err != nil {
		return err
	}
	refs, err := a.svc.ListRefs()
	if err != nil {
		return err
	}
	rows := make([]refRow, 0, len(refs))
	for _, r := range refs {
		upstream, _ := r.Upstream()
		rows = append(rows, refRow{
			Name:     r.FullName(),
			Short:    r.ShortName(),
			ID:       r.ID(),
			Kind:     r.Kind().String(),
			Upstream: upstream,
		})
	}
	return console.Encode(a.stdout, a.format, rows, func(w io.Writer) error {
		for _, r := range rows {
			line := fmt.Sprintf("%s\t%s\t%s", shortID(r.ID), r.Kind, r.Short)
			if r.Upstream != "" {
				line += " -> " + r.Upstream
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *app) branch(args []string) error {
	if _, err := subcommand("branch", args, nil); err != nil {
		return err
	}
	name, err := a.svc.CurrentBranch()
	if err != nil {
		return err
	}
	row := branchRow{Branch: name, Detached: name == ""}
	return console.Encode(a.stdout, a.format, row, func(w io.Writer) error {
		if row.Detached {
			_, err := fmt.Fprintln(w, "Detached HEAD")
			return err
		}
		_, err := fmt.Fprintln(w, name)
		return err
	})
}

func (a *app) diff(args []string) error {
	var word bool
	fs, err := subcommand("diff", args, func(fs *flag.FlagSet) {
		fs.BoolVar(&word, "word", false, "show word-level changes")
	})
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("diff: expected exactly one path")
	}
	path := fs.Arg(0)
	out, err := a.svc.Diff(path, word)
	if err != nil {
		return err
	}
	payload := map[string]any{"path": path, "diff": out, "files": console.DiffFiles(out)}
	return console.Encode(a.stdout, a.format, payload, func(w io.Writer) error {
		if !a.style {
			_, err := io.WriteString(w, out)
			return err
		}
		return console.HighlightDiff(w, out, console.StyleForMode(a.theme))
	})
}

func (a *app) stage(args []string) error {
	var all bool
	fs, err := subcommand("stage", args, func(fs *flag.FlagSet) {
		fs.BoolVar(&all, "all", false, "stage every unstaged change")
	})
	if err != nil {
		return err
	}
	if all {
		return a.eachChange(git.WorkingSet, a.svc.StageChange)
	}
	return eachPath(fs.Args(), a.svc.StagePath)
}

func (a *app) unstage(args []string) error {
	var all bool
	fs, err := subcommand("unstage", args, func(fs *flag.FlagSet) {
		fs.BoolVar(&all, "all", false, "unstage every staged change")
	})
	if err != nil {
		return err
	}
	if all {
		return a.eachChange(git.IndexSet, a.svc.UnstageChange)
	}
	return eachPath(fs.Args(), a.svc.UnstagePath)
}

func (a *app) remove(args []string) error {
	fs, err := subcommand("rm", args, nil)
	if err != nil {
		return err
	}
	return eachPath(fs.Args(), a.svc.RemovePath)
}

func (a *app) eachChange(filter func([]git.Change) []git.Change, fn func(git.Change) error) error {
	changes, err := a.svc.Status()
	if err != nil {
		return err
	}
	var errs []error
	for _, c := range filter(changes) {
		errs = append(errs, fn(c))
	}
	return errors.Join(errs...)
}

func eachPath(paths []string, fn func(string) error) error {
	if len(paths) == 0 {
		return errors.New("expected at least one path")
	}
	var errs []error
	for _, p := range paths {
		errs = append(errs, fn(p))
	}
	return errors.Join(errs...)
}

func (a *app) health(args []string) error {
	if _, err := subcommand("health", args, nil); err != nil {
		return err
	}
	// Query git once so a broken install shows up in the snapshot.
	if _, err := a.svc.Version(); err != nil {
		slog.Debug("health version query failed", slog.Any("error", err))
	}
	snap := a.avail.Snapshot()
	return console.Encode(a.stdout, a.format, snap, func(w io.Writer) error {
		lines := []string{
			"tool present:       " + yesNo(snap.ToolPresent),
			"versioning enabled: " + yesNo(snap.VersioningEnabled),
			"preferred format:   " + yesNo(snap.PreferredFormat),
			"working:            " + yesNo(snap.Working),
			"usable:             " + yesNo(snap.Usable),
		}
		if snap.Failure != "" {
			lines = append(lines, "failure:            "+snap.Failure)
		}
		_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
		return err
	})
}

func (a *app) version(args []string) error {
	if _, err := subcommand("version", args, nil); err != nil {
		return err
	}
	info := buildinfo.Read()
	v, err := a.svc.Version()
	if err != nil {
		return err
	}
	info.GitVersion = v
	if err := console.Encode(a.stdout, a.format, info, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, info)
		return err
	}); err != nil {
		return err
	}
	return git.ValidateVersion(v)
}

func (a *app) signoff(args []string) error {
	var msg string
	if _, err := subcommand("signoff", args, func(fs *flag.FlagSet) {
		fs.StringVar(&msg, "msg", "", "commit message to append the trailer to")
	}); err != nil {
		return err
	}
	line, err := a.svc.SignOffLine()
	if err != nil {
		return err
	}
	if msg == "" {
		_, err = fmt.Fprintln(a.stdout, line)
		return err
	}
	_, err = io.WriteString(a.stdout, git.AppendSignOff(msg, line))
	return err
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
