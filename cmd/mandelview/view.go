package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/example/mandelview/internal/clipboard"
	"github.com/example/mandelview/internal/config"
	"github.com/example/mandelview/internal/notify"
	"github.com/example/mandelview/internal/render"
	"github.com/example/mandelview/internal/shinyui"
	"github.com/example/mandelview/internal/snapshot"
	"github.com/example/mandelview/internal/viewer"
	"github.com/example/mandelview/internal/viewport"
)

// runWindowFn is swapped in tests to avoid opening a window.
var runWindowFn = shinyui.Run

type viewCmd struct {
	*root
	fs *flag.FlagSet
}

func (v *viewCmd) FlagSet() *flag.FlagSet {
	return v.fs
}

func parseViewCmd(args []string, r *root) (*viewCmd, error) {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	v := &viewCmd{root: r, fs: fs}
	fs.Usage = usageFunc(v)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: v}
	}
	return v, nil
}

// Run opens the explorer window and blocks until it is closed.
func (v *viewCmd) Run() error {
	cfg := v.config
	opts := shinyui.Options{
		Title:    shinyui.DefaultTitle,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Delivery: cfg.Delivery,
	}
	if err := runWindowFn(opts, func(p viewer.Platform) error {
		return newLoop(p, cfg, v.stdout).Run()
	}); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

func newLoop(p viewer.Platform, cfg *config.Config, out io.Writer) *viewer.Loop {
	ctrl := viewport.NewController(
		viewport.WithDepth(cfg.Depth),
		viewport.WithTrigger(cfg.Trigger),
	)
	n := notify.New(
		notify.WithEvent(notify.EventSave, cfg.Notify.Save),
		notify.WithEvent(notify.EventCopy, cfg.Notify.Copy),
	)
	saveDir := cfg.SaveDir
	return viewer.New(p,
		viewer.WithController(ctrl),
		viewer.WithRenderer(render.NewRenderer(cfg.Workers, out)),
		viewer.WithPollRate(cfg.PollRate),
		viewer.WithOutput(out),
		viewer.WithHUD(cfg.HUD),
		viewer.WithClipboard(clipboard.WriteImage),
		viewer.WithSnapshots(func(img image.Image) (string, error) {
			return snapshot.Save(saveDir, img, time.Now())
		}),
		viewer.WithNotifier(n),
	)
}
