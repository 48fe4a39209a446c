// Package render evaluates, colours and presents Mandelbrot frames.
package render

import (
	"image"
	"runtime"
	"sync"

	"github.com/example/mandelview/internal/mandel"
	"github.com/example/mandelview/internal/viewport"
)

// Result is the escape outcome of one pixel. Escaped is false for points
// treated as inside the set.
type Result struct {
	Iter    int
	Escaped bool
}

// minChunk keeps tiny frames from being split into more goroutines than
// pixels worth evaluating.
const minChunk = 256

// Compute evaluates every pixel in pixels against vp at the given depth.
// results[i] belongs to pixels[i]. The index range is split into contiguous
// chunks, one per worker; workers share only read-only inputs and each writes
// its own slots, so the final Wait is the only synchronisation. workers <= 0
// uses GOMAXPROCS.
func Compute(pixels []image.Point, size image.Point, vp viewport.Viewport, depth viewport.Depth, workers int) []Result {
	results := make([]Result, len(pixels))
	if len(pixels) == 0 {
		return results
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if limit := (len(pixels) + minChunk - 1) / minChunk; workers > limit {
		workers = limit
	}
	chunk := (len(pixels) + workers - 1) / workers
	maxIter := depth.Int()

	var wg sync.WaitGroup
	for start := 0; start < len(pixels); start += chunk {
		end := start + chunk
		if end > len(pixels) {
			end = len(pixels)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				n, ok := mandel.Escape(vp.Map(pixels[i], size), maxIter)
				results[i] = Result{Iter: n, Escaped: ok}
			}
		}(start, end)
	}
	wg.Wait()
	return results
}
