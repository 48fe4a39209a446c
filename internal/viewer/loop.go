// Package viewer runs the poll, dispatch and render loop of the explorer.
package viewer

import (
	"fmt"
	"image"
	"io"
	"log"
	"time"

	"github.com/example/mandelview/internal/render"
	"github.com/example/mandelview/internal/viewport"
)

// DefaultPollRate is the number of poll ticks per second.
const DefaultPollRate = 30

// Notifier is told about completed exports.
type Notifier interface {
	Save(path string)
	Copy(detail string)
}

// Loop owns the controller between renders. It is driven from a single
// goroutine; renders block the loop until the frame is presented.
type Loop struct {
	platform Platform
	ctrl     *viewport.Controller
	renderer *render.Renderer

	interval time.Duration
	sleep    func(time.Duration)
	out      io.Writer
	hud      bool

	copyImage func(image.Image) error
	saveImage func(image.Image) (string, error)
	notifier  Notifier

	frame *render.Frame
}

// Option modifies a Loop during creation.
type Option func(*Loop)

// WithController replaces the default controller.
func WithController(c *viewport.Controller) Option { return func(l *Loop) { l.ctrl = c } }

// WithRenderer replaces the default renderer.
func WithRenderer(r *render.Renderer) Option { return func(l *Loop) { l.renderer = r } }

// WithPollRate sets the number of poll ticks per second.
func WithPollRate(hz int) Option {
	return func(l *Loop) {
		if hz > 0 {
			l.interval = time.Second / time.Duration(hz)
		}
	}
}

// WithSleep replaces time.Sleep between ticks.
func WithSleep(fn func(time.Duration)) Option { return func(l *Loop) { l.sleep = fn } }

// WithOutput sets where depth changes and export results are reported.
func WithOutput(w io.Writer) Option { return func(l *Loop) { l.out = w } }

// WithHUD sets whether the status overlay starts visible.
func WithHUD(on bool) Option { return func(l *Loop) { l.hud = on } }

// WithClipboard sets the function used by the copy key.
func WithClipboard(fn func(image.Image) error) Option { return func(l *Loop) { l.copyImage = fn } }

// WithSnapshots sets the function used by the save key. It returns the path
// written.
func WithSnapshots(fn func(image.Image) (string, error)) Option {
	return func(l *Loop) { l.saveImage = fn }
}

// WithNotifier registers a notifier for exports.
func WithNotifier(n Notifier) Option { return func(l *Loop) { l.notifier = n } }

// New creates a loop over p.
func New(p Platform, opts ...Option) *Loop {
	l := &Loop{
		platform: p,
		interval: time.Second / DefaultPollRate,
		sleep:    time.Sleep,
		out:      io.Discard,
	}
	for _, o := range opts {
		o(l)
	}
	if l.ctrl == nil {
		l.ctrl = viewport.NewController()
	}
	if l.renderer == nil {
		l.renderer = render.NewRenderer(0, l.out)
	}
	return l
}

// Controller returns the controller driven by the loop.
func (l *Loop) Controller() *viewport.Controller { return l.ctrl }

// Frame returns the most recently rendered frame.
func (l *Loop) Frame() *render.Frame { return l.frame }

// Run renders the initial frame and then polls until a quit event. Render
// failures end the loop and are returned.
func (l *Loop) Run() error {
	if err := l.render(); err != nil {
		return err
	}
	for {
		for _, e := range l.platform.Poll() {
			quit, err := l.dispatch(e)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
		// Buttons are sampled once per tick, so a held button zooms on every
		// tick in level mode.
		if size := l.platform.Size(); !empty(size) && l.ctrl.Sample(l.platform.Pointer(), size) {
			if err := l.render(); err != nil {
				return err
			}
		}
		l.sleep(l.interval)
	}
}

func (l *Loop) dispatch(e Event) (quit bool, err error) {
	switch e.Kind {
	case EventQuit:
		return true, nil
	case EventResize:
		return false, l.render()
	case EventExpose:
		return false, l.present()
	case EventKeyDown:
	default:
		return false, nil
	}

	switch e.Key {
	case KeyEscape:
		return true, nil
	case KeyPlus:
		l.ctrl.IncreaseDepth()
		fmt.Fprintf(l.out, "Increasing iterations count to %d\n", l.ctrl.Depth())
		return false, l.render()
	case KeyMinus:
		if l.ctrl.DecreaseDepth() {
			fmt.Fprintf(l.out, "Decreasing iterations count to %d\n", l.ctrl.Depth())
			return false, l.render()
		}
	case KeyHUD:
		l.hud = !l.hud
		return false, l.present()
	case KeyCopy:
		l.copyFrame()
	case KeySave:
		l.saveFrame()
	}
	return false, nil
}

// render draws a new frame. It does nothing while the window has no area,
// such as when it is minimised; the next resize renders again.
func (l *Loop) render() error {
	size := l.platform.Size()
	if empty(size) {
		return nil
	}
	frame, err := l.renderer.Render(size, l.ctrl.Viewport(), l.ctrl.Depth(),
		render.PresenterFunc(func(f *render.Frame) error {
			return l.platform.Present(f, l.overlay())
		}))
	if err != nil {
		return err
	}
	l.frame = frame
	return nil
}

func empty(size image.Point) bool {
	return size.X <= 0 || size.Y <= 0
}

// present shows the last frame again, or renders one if the window size no
// longer matches it.
func (l *Loop) present() error {
	size := l.platform.Size()
	if empty(size) {
		return nil
	}
	if l.frame == nil || l.frame.Size() != size {
		return l.render()
	}
	if err := l.platform.Present(l.frame, l.overlay()); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

func (l *Loop) overlay() Overlay {
	if !l.hud {
		return nil
	}
	v := l.ctrl.Viewport()
	return Overlay{
		fmt.Sprintf("depth %d", l.ctrl.Depth()),
		fmt.Sprintf("top-left %g%+gi", real(v.TopLeft), imag(v.TopLeft)),
		fmt.Sprintf("bottom-right %g%+gi", real(v.BottomRight), imag(v.BottomRight)),
		fmt.Sprintf("trigger %s", l.ctrl.Trigger()),
	}
}

func (l *Loop) copyFrame() {
	if l.copyImage == nil || l.frame == nil {
		return
	}
	if err := l.copyImage(l.frame.RGBA()); err != nil {
		log.Printf("copy frame: %v", err)
		return
	}
	fmt.Fprintln(l.out, "Copied frame to clipboard")
	if l.notifier != nil {
		l.notifier.Copy("frame")
	}
}

func (l *Loop) saveFrame() {
	if l.saveImage == nil || l.frame == nil {
		return
	}
	path, err := l.saveImage(l.frame.RGBA())
	if err != nil {
		log.Printf("save frame: %v", err)
		return
	}
	fmt.Fprintf(l.out, "Saved frame to %s\n", path)
	if l.notifier != nil {
		l.notifier.Save(path)
	}
}
