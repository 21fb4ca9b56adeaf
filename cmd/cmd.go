package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/thiagokokada/gitwrap/internal/buildinfo"
	"github.com/thiagokokada/gitwrap/internal/console"
	"github.com/thiagokokada/gitwrap/internal/git"
)

const usageText = `usage: gitwrap [flags] [command] [args]

commands:
  status [-watch]          list changed paths (default)
  refs                     list branches, tracking branches and tags
  branch                   print the current branch
  diff [-word] <path>      show unstaged changes for a path
  stage [-all] <path>...   add paths to the index
  unstage [-all] <path>... reset index entries to HEAD
  rm <path>...             remove paths from the index and work tree
  health                   report whether git can be used here
  version                  print gitwrap and git versions
  signoff [-msg text]      print or append the Signed-off-by trailer

flags:
`

type app struct {
	stdout io.Writer
	format console.Format
	style  bool
	theme  console.ThemePreference

	svc   *git.Service
	avail *git.Availability
}

func Run() error {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gitwrap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	repoPath := fs.String("C", ".", "run as if gitwrap was started in `path`")
	format := fs.String("format", console.FormatText.String(), "output format: text, json, or yaml")
	color := fs.String("color", console.ColorAuto.String(), "colorize diffs: auto, always, or never")
	mode := fs.String("mode", console.ThemeAuto.String(), "color mode: auto, light, or dark")
	verbose := fs.Bool("verbose", false, "enable verbose logging")
	showVersion := fs.Bool("version", false, "print version information and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	setupLogging(stderr, *verbose)

	if *showVersion {
		fmt.Fprintln(stdout, buildinfo.Read())
		return nil
	}

	a := &app{stdout: stdout}
	var err error
	if a.format, err = console.ParseFormat(*format); err != nil {
		return err
	}
	colorChoice, err := console.ParseColorChoice(*color)
	if err != nil {
		return err
	}
	if a.theme, err = console.ParseThemePreference(*mode); err != nil {
		return err
	}
	out, _ := stdout.(*os.File)
	a.style = console.UseColor(colorChoice, out)

	root, err := git.ResolveRoot(*repoPath)
	if err != nil {
		return err
	}
	a.avail = git.NewAvailability(git.NewToolLocator("git"), git.NewRepoHostConfig(root))
	if a.svc, err = git.Open(root, a.avail); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		rest = []string{"status"}
	}
	return a.dispatch(rest[0], rest[1:], stderr)
}

func (a *app) dispatch(name string, args []string, stderr io.Writer) error {
	var handler func([]string) error
	switch name {
	case "status":
		handler = a.status
	case "refs":
		handler = a.refs
	case "branch":
		handler = a.branch
	case "diff":
		handler = a.diff
	case "stage", "add":
		handler = a.stage
	case "unstage", "reset":
		handler = a.unstage
	case "rm":
		handler = a.remove
	case "health":
		handler = a.health
	case "version":
		handler = a.version
	case "signoff":
		handler = a.signoff
	default:
		fmt.Fprint(stderr, usageText)
		return fmt.Errorf("unknown command %q", name)
	}
	slog.Debug("dispatch", slog.String("command", name), slog.String("repo", a.svc.RepoPath()))
	return handler(args)
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func subcommand(name string, args []string, setup func(fs *flag.FlagSet)) (*flag.FlagSet, error) {
	fs := flag.NewFlagSet("gitwrap "+name, flag.ContinueOnError)
	if setup != nil {
		setup(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs, nil
}
