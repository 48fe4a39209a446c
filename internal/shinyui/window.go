// Package shinyui connects the viewer loop to a native window through
// golang.org/x/exp/shiny.
package shinyui

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"

	"github.com/example/mandelview/internal/render"
	"github.com/example/mandelview/internal/viewer"
	"github.com/example/mandelview/internal/viewport"
)

// DefaultTitle is the window title used when Options.Title is empty.
const DefaultTitle = "Mandelbrot explorer"

// Options configures the window.
type Options struct {
	Title    string
	Width    int
	Height   int
	Delivery render.Delivery
}

// Run opens a window and calls fn with it on shiny's main goroutine. It
// returns once fn returns, with fn's error or any window setup error.
func Run(opts Options, fn func(viewer.Platform) error) error {
	var runErr error
	driver.Main(func(s screen.Screen) {
		runErr = run(s, opts, fn)
	})
	return runErr
}

func run(s screen.Screen, opts Options, fn func(viewer.Platform) error) error {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: opts.Width, Height: opts.Height, Title: opts.Title})
	if err != nil {
		return fmt.Errorf("new window: %w", err)
	}
	defer w.Release()

	win := newWindow(s, w, opts)
	go win.pump()
	return fn(win)
}

// window implements viewer.Platform. NextEvent runs on a pump goroutine that
// queues translated events; the loop drains them from its own goroutine.
type window struct {
	s        screen.Screen
	w        screen.Window
	delivery render.Delivery

	mu    sync.Mutex
	in    input
	queue []viewer.Event
}

func newWindow(s screen.Screen, w screen.Window, opts Options) *window {
	return &window{
		s:        s,
		w:        w,
		delivery: opts.Delivery,
		in:       input{size: image.Pt(opts.Width, opts.Height)},
	}
}

// pump forwards window events until the window reports it is gone. When the
// loop quits on its own, pump stays blocked in NextEvent until the process
// exits.
func (win *window) pump() {
	for {
		e := win.w.NextEvent()
		if quit := win.push(e); quit {
			return
		}
	}
}

// push translates e and queues the result. It reports whether the window
// is gone.
func (win *window) push(e interface{}) bool {
	win.mu.Lock()
	defer win.mu.Unlock()
	ev, ok := win.in.apply(e)
	if !ok {
		return false
	}
	win.queue = append(win.queue, ev)
	return ev.Kind == viewer.EventQuit
}

// Size implements viewer.Platform.
func (win *window) Size() image.Point {
	win.mu.Lock()
	defer win.mu.Unlock()
	return win.in.size
}

// Poll implements viewer.Platform.
func (win *window) Poll() []viewer.Event {
	win.mu.Lock()
	defer win.mu.Unlock()
	evs := win.queue
	win.queue = nil
	return evs
}

// Pointer implements viewer.Platform.
func (win *window) Pointer() viewport.Pointer {
	win.mu.Lock()
	defer win.mu.Unlock()
	return win.in.pointer
}

// Present implements viewer.Platform.
func (win *window) Present(f *render.Frame, o viewer.Overlay) error {
	switch win.delivery {
	case render.DeliveryPlot:
		render.Plot(win.w, f)
		if len(o) > 0 {
			if err := win.uploadHUD(f, o); err != nil {
				return err
			}
		}
	default:
		if err := win.blit(f, o); err != nil {
			return err
		}
	}
	win.w.Publish()
	return nil
}

func (win *window) blit(f *render.Frame, o viewer.Overlay) error {
	b, err := win.s.NewBuffer(f.Size())
	if err != nil {
		return fmt.Errorf("new buffer: %w", err)
	}
	defer b.Release()
	render.Blit(b.RGBA(), f)
	if len(o) > 0 {
		render.DrawHUD(b.RGBA(), o)
	}
	win.w.Upload(image.Point{}, b, b.Bounds())
	return nil
}

// uploadHUD composes the overlay over the frame off screen and uploads only
// the overlay box, leaving the plotted pixels around it untouched.
func (win *window) uploadHUD(f *render.Frame, o viewer.Overlay) error {
	b, err := win.s.NewBuffer(f.Size())
	if err != nil {
		return fmt.Errorf("new overlay buffer: %w", err)
	}
	defer b.Release()
	render.Blit(b.RGBA(), f)
	box := render.DrawHUD(b.RGBA(), o)
	win.w.Upload(box.Min, b, box)
	return nil
}
