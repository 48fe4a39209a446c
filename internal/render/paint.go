package render

import (
	"image"

	"github.com/example/mandelview/internal/viewport"
)

// Paint maps an escape result to a colour: a green-white gradient scaled by
// the fraction of depth used, black for points that never escaped.
func Paint(r Result, depth viewport.Depth) RGB {
	if !r.Escaped || depth <= 0 {
		return RGB{}
	}
	c := uint8(255 * r.Iter / depth.Int())
	return RGB{c / 2, c, c}
}

// PaintFrame colours results into a new frame. results and pixels are
// index aligned as returned by Compute.
func PaintFrame(pixels []image.Point, results []Result, size image.Point, depth viewport.Depth) *Frame {
	f := NewFrame(size)
	for i, p := range pixels {
		f.Set(p.X, p.Y, Paint(results[i], depth))
	}
	return f
}
