package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/mandelview/internal/config"
	"github.com/example/mandelview/internal/render"
	"github.com/example/mandelview/internal/viewport"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs      *flag.FlagSet
	program string
	config  *config.Config
	stdout  io.Writer
	stderr  io.Writer

	depth    int
	trigger  string
	delivery string
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) subcommand(name string) *root {
	return &root{
		program: strings.TrimSpace(r.program + " " + name),
		config:  r.config,
		stdout:  r.stdout,
		stderr:  r.stderr,
	}
}

// newRoot binds the command line flags over cfg, so flags take precedence
// over the configuration file.
func newRoot(cfg *config.Config, stdout, stderr io.Writer) *root {
	r := &root{
		fs:      flag.NewFlagSet("mandelview", flag.ContinueOnError),
		program: "mandelview",
		config:  cfg,
		stdout:  stdout,
		stderr:  stderr,
	}
	r.fs.SetOutput(stderr)
	r.fs.IntVar(&cfg.Width, "width", cfg.Width, "initial window width in pixels")
	r.fs.IntVar(&cfg.Height, "height", cfg.Height, "initial window height in pixels")
	r.fs.IntVar(&r.depth, "depth", cfg.Depth.Int(), "initial iteration depth, a multiple of 100")
	r.fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "render goroutines, 0 uses every CPU")
	r.fs.IntVar(&cfg.PollRate, "poll-rate", cfg.PollRate, "input polls per second")
	r.fs.StringVar(&r.trigger, "trigger", cfg.Trigger.String(), "held mouse button behaviour: level or edge")
	r.fs.StringVar(&r.delivery, "delivery", cfg.Delivery.String(), "frame delivery: blit or plot")
	r.fs.BoolVar(&cfg.HUD, "hud", cfg.HUD, "show the status overlay at startup")
	r.fs.StringVar(&cfg.SaveDir, "save-dir", cfg.SaveDir, "directory for saved frames")
	r.fs.BoolVar(&cfg.Notify.Save, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a frame")
	r.fs.BoolVar(&cfg.Notify.Copy, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying a frame")
	r.fs.Usage = usageFunc(r)
	return r
}

// apply folds the flags that need parsing back into the configuration and
// validates the result.
func (r *root) apply() error {
	r.config.Depth = viewport.Depth(r.depth)
	t, err := viewport.ParseTrigger(r.trigger)
	if err != nil {
		return err
	}
	r.config.Trigger = t
	d, err := render.ParseDelivery(r.delivery)
	if err != nil {
		return err
	}
	r.config.Delivery = d
	return r.config.Validate()
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if err := r.apply(); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return (&viewCmd{root: r}).Run()
	}

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "view":
		cmd, err = parseViewCmd(subArgs, r.subcommand("view"))
	case "config":
		cmd, err = parseConfigCmd(subArgs, r.subcommand("config"))
	case "version":
		cmd = &versionCmd{r: r}
	case "help":
		return &UsageError{of: r, requested: true}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.NewLoader(version, configPathOverride).Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := newRoot(cfg, stdout, stderr).Run(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		var uerr *UsageError
		if errors.As(err, &uerr) && uerr.requested {
			fmt.Fprint(stdout, uerr.Error())
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
