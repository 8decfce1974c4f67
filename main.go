package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/CrestNiraj12/hn/app"
	"github.com/CrestNiraj12/hn/domain"
	"github.com/CrestNiraj12/hn/infra/browser"
	"github.com/CrestNiraj12/hn/infra/clip"
	"github.com/CrestNiraj12/hn/infra/config"
	"github.com/CrestNiraj12/hn/infra/hn"
	"github.com/CrestNiraj12/hn/infra/logging"
	"github.com/CrestNiraj12/hn/infra/store"
	"github.com/CrestNiraj12/hn/tui/common"
	"github.com/CrestNiraj12/hn/tui/pager"
	"github.com/CrestNiraj12/hn/tui/render"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// env carries what the Before hook builds for the commands.
type env struct {
	cfg      config.Config
	log      zerolog.Logger
	styles   common.Styles
	launcher app.Launcher
}

// desktopLauncher hands URLs to the browser and the clipboard.
type desktopLauncher struct{}

func (desktopLauncher) Open(url string) error { return browser.Open(url) }
func (desktopLauncher) Copy(url string) error { return clip.Write(url) }

func newApp(stdout, stderr io.Writer, launcher app.Launcher) *cli.App {
	e := &env{launcher: launcher}
	return &cli.App{
		Name:      "hn",
		Usage:     "Read Hacker News from the terminal",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug output to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Args().First() == "version" {
				return nil
			}
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			level := cfg.LogLevel
			if c.Bool("verbose") {
				level = "debug"
			}
			e.cfg = cfg
			e.log = logging.New(stderr, level, cfg.NoColor)
			e.styles = common.StylesFor(stdout, cfg.NoColor)
			return nil
		},
		Commands: []*cli.Command{
			listCommand(e),
			viewCommand(e),
			versionCommand(),
		},
	}
}

func listCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List stories and remember their ranks",
		ArgsUsage: "[category] [limit]",
		Description: "category is one of " + categoryNames() +
			" (default " + string(domain.DefaultCategory) + ")",
		Action: func(c *cli.Context) error {
			category, limit, err := parseListArgs(c.Args().Slice())
			if err != nil {
				return usageError(c, err)
			}

			lister := &render.Lister{
				Items:  newClient(e),
				Store:  store.NewFileStore(e.cfg.StorePath, e.log),
				Now:    time.Now,
				Styles: e.styles,
				Log:    e.log,
			}
			return lister.List(c.Context, c.App.Writer, category, limit)
		},
	}
}

func viewCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "Show a story from the last list and its comments",
		ArgsUsage: "<rank> [limit]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "open", Aliases: []string{"o"}, Usage: "Open the story link in the browser"},
			&cli.BoolFlag{Name: "copy", Aliases: []string{"c"}, Usage: "Copy the story link to the clipboard"},
			&cli.BoolFlag{Name: "pager", Aliases: []string{"p"}, Usage: "Show the output in a scrollable pager"},
			&cli.BoolFlag{Name: "prune", Usage: "Stop fetching comments once the limit is reached"},
		},
		Action: func(c *cli.Context) error {
			args, trailing, err := splitViewArgs(c.Args().Slice())
			if err != nil {
				return usageError(c, err)
			}
			rank, limit, err := parseViewArgs(args)
			if err != nil {
				return usageError(c, err)
			}
			req := render.ViewRequest{
				Rank:  rank,
				Limit: limit,
				Open:  c.Bool("open") || trailing.open,
				Copy:  c.Bool("copy") || trailing.copy,
			}

			items := newClient(e)
			viewer := &render.Viewer{
				Items:    items,
				Store:    store.NewFileStore(e.cfg.StorePath, e.log),
				Launcher: e.launcher,
				Walker: &render.CommentWalker{
					Items:  items,
					Now:    time.Now,
					Width:  e.cfg.WrapWidth,
					Prune:  e.cfg.Prune || c.Bool("prune") || trailing.prune,
					Styles: e.styles,
					Log:    e.log,
				},
				Now:    time.Now,
				Styles: e.styles,
				Log:    e.log,
			}

			if !c.Bool("pager") && !trailing.pager {
				return viewer.View(c.Context, c.App.Writer, req)
			}

			story, err := viewer.Resolve(c.Context, rank)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := viewer.Show(c.Context, &buf, story, req); err != nil {
				return err
			}
			if err := pager.Run(buf.String(), story.URL, e.launcher, e.styles); err != nil {
				return fmt.Errorf("pager: %w", err)
			}
			return nil
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(c *cli.Context) error {
			v, cm, d := resolvedRuntimeVersionInfo(version, commit, date)
			_, err := fmt.Fprintf(c.App.Writer, "hn %s\ncommit: %s\nbuilt: %s\n", v, cm, d)
			return err
		},
	}
}

func newClient(e *env) *hn.Client {
	return hn.NewClient(e.cfg.APIBase, e.cfg.Timeout, e.log)
}

func parseListArgs(args []string) (domain.Category, int, error) {
	if err := checkPositionals(args, 2); err != nil {
		return "", 0, err
	}
	category := domain.DefaultCategory
	limit := render.DefaultListLimit
	if len(args) > 0 {
		c, err := domain.ParseCategory(args[0])
		if err != nil {
			return "", 0, err
		}
		category = c
	}
	if len(args) > 1 {
		n, err := positiveInt("limit", args[1])
		if err != nil {
			return "", 0, err
		}
		limit = n
	}
	return category, limit, nil
}

// viewFlags holds the view options found after the positional arguments.
type viewFlags struct {
	open, copy, pager, prune bool
}

// splitViewArgs pulls the view flags out of args. The flag parser stops at
// the first positional argument, so "view 2 -o" leaves "-o" in args.
// Everything after "--" is positional.
func splitViewArgs(args []string) ([]string, viewFlags, error) {
	var (
		rest  []string
		flags viewFlags
	)
	for i, a := range args {
		if a == "--" {
			rest = append(rest, args[i+1:]...)
			break
		}
		if !isFlag(a) {
			rest = append(rest, a)
			continue
		}
		switch strings.TrimLeft(a, "-") {
		case "o", "open":
			flags.open = true
		case "c", "copy":
			flags.copy = true
		case "p", "pager":
			flags.pager = true
		case "prune":
			flags.prune = true
		default:
			return nil, viewFlags{}, fmt.Errorf("flag provided but not defined: %s", a)
		}
	}
	return rest, flags, nil
}

// parseViewArgs returns the rank and the comment limit. A zero limit means
// none was given.
func parseViewArgs(args []string) (int, int, error) {
	if len(args) == 0 {
		return 0, 0, fmt.Errorf("missing required argument: rank")
	}
	if err := checkPositionals(args, 2); err != nil {
		return 0, 0, err
	}
	rank, err := positiveInt("rank", args[0])
	if err != nil {
		return 0, 0, err
	}
	limit := 0
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("limit must be a non-negative integer, got %q", args[1])
		}
		limit = n
	}
	return rank, limit, nil
}

// checkPositionals rejects extra arguments and flags given after them,
// which the flag parser leaves in the argument list.
func checkPositionals(args []string, most int) error {
	for _, a := range args {
		if isFlag(a) {
			return fmt.Errorf("flag %s must come before the arguments", a)
		}
	}
	if len(args) > most {
		return fmt.Errorf("unexpected argument: %s", strings.Join(args[most:], " "))
	}
	return nil
}

// isFlag reports whether a looks like a flag. Negative numbers do not.
func isFlag(a string) bool {
	if !strings.HasPrefix(a, "-") || len(a) < 2 {
		return false
	}
	_, err := strconv.Atoi(a)
	return err != nil
}

func positiveInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, s)
	}
	return n, nil
}

func categoryNames() string {
	names := make([]string, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// usageError prints the command help before returning err.
func usageError(c *cli.Context, err error) error {
	_ = cli.ShowSubcommandHelp(c)
	return err
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	if err := newApp(os.Stdout, os.Stderr, desktopLauncher{}).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "hn: %v\n", err)
		os.Exit(1)
	}
}
