// Package viewport maps window pixels onto the complex plane and owns the
// pan/zoom state driven by user input.
package viewport

import (
	"image"
	"math"
)

// ZoomStep is the fraction of the span removed or added per axis by a single
// zoom step.
const ZoomStep = 0.1

// Viewport is the rectangle of the complex plane shown in the window.
// TopLeft maps to pixel (0,0); BottomRight is the far corner.
type Viewport struct {
	TopLeft     complex128
	BottomRight complex128
}

// Default returns the startup view covering the whole set.
func Default() Viewport {
	return Viewport{
		TopLeft:     complex(-2, -1.5),
		BottomRight: complex(2, 1.5),
	}
}

// Span returns the per-axis extent BottomRight - TopLeft.
func (v Viewport) Span() complex128 {
	return v.BottomRight - v.TopLeft
}

// Valid reports whether both spans are finite and non-zero.
func (v Viewport) Valid() bool {
	d := v.Span()
	for _, f := range []float64{real(d), imag(d)} {
		if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Map converts pixel p of a window with the given size into a point of the
// complex plane by linear interpolation inside v. size must be non-zero on
// both axes.
func (v Viewport) Map(p image.Point, size image.Point) complex128 {
	relX := float64(p.X) / float64(size.X)
	relY := float64(p.Y) / float64(size.Y)
	d := v.Span()
	return complex(
		real(v.TopLeft)+relX*real(d),
		imag(v.TopLeft)+relY*imag(d),
	)
}

// ZoomIn shrinks v by ZoomStep per axis, biased towards the point under
// pixel p. The click point drifts towards the centre; it is not re-centred.
func (v Viewport) ZoomIn(p image.Point, size image.Point) Viewport {
	d := v.Span()
	cp := v.Map(p, size)
	relX := (real(cp) - real(v.TopLeft)) / real(d)
	relY := (imag(cp) - imag(v.TopLeft)) / imag(d)
	return Viewport{
		TopLeft: complex(
			real(v.TopLeft)+real(d)*ZoomStep*relX,
			imag(v.TopLeft)+imag(d)*ZoomStep*relY,
		),
		BottomRight: complex(
			real(v.BottomRight)-real(d)*ZoomStep*(1-relX),
			imag(v.BottomRight)-imag(d)*ZoomStep*(1-relY),
		),
	}
}

// ZoomOut grows v symmetrically by ZoomStep per axis.
func (v Viewport) ZoomOut() Viewport {
	d := v.Span()
	step := complex(real(d)*ZoomStep, imag(d)*ZoomStep)
	return Viewport{
		TopLeft:     v.TopLeft - step,
		BottomRight: v.BottomRight + step,
	}
}
