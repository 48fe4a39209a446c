package render

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/example/mandelview/internal/viewport"
)

// Renderer runs the compute, paint and present stages for one frame and
// reports how long the compute and render phases took.
type Renderer struct {
	// Workers bounds the compute goroutines; <= 0 uses GOMAXPROCS.
	Workers int
	// Diagnostics receives the per-frame timings. Nil discards them.
	Diagnostics io.Writer
}

// NewRenderer returns a renderer writing timings to diag.
func NewRenderer(workers int, diag io.Writer) *Renderer {
	return &Renderer{Workers: workers, Diagnostics: diag}
}

// Render evaluates the whole window and hands the frame to p. The frame is
// returned so callers can re-present or export it.
func (r *Renderer) Render(size image.Point, vp viewport.Viewport, depth viewport.Depth, p Presenter) (*Frame, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("render: invalid window size %dx%d", size.X, size.Y)
	}
	start := time.Now()
	pixels := Pixels(size)
	results := Compute(pixels, size, vp, depth, r.Workers)
	r.printf("Computation time %v\n", time.Since(start))

	start = time.Now()
	frame := PaintFrame(pixels, results, size, depth)
	if p != nil {
		if err := p.Present(frame); err != nil {
			return nil, fmt.Errorf("present frame: %w", err)
		}
	}
	r.printf("Rendering time %v\n", time.Since(start))
	return frame, nil
}

func (r *Renderer) printf(format string, args ...any) {
	if r.Diagnostics == nil {
		return
	}
	fmt.Fprintf(r.Diagnostics, format, args...)
}
