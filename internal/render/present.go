package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
)

// Delivery selects how a frame reaches the screen.
type Delivery int

const (
	// DeliveryBlit copies the whole frame into a buffer and uploads it once.
	DeliveryBlit Delivery = iota
	// DeliveryPlot issues one draw call per pixel. It is slower and renders
	// the same image.
	DeliveryPlot
)

// ParseDelivery accepts "blit" or "plot".
func ParseDelivery(s string) (Delivery, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "blit":
		return DeliveryBlit, nil
	case "plot":
		return DeliveryPlot, nil
	}
	return DeliveryBlit, fmt.Errorf("unknown delivery %q (want blit or plot)", s)
}

func (d Delivery) String() string {
	if d == DeliveryPlot {
		return "plot"
	}
	return "blit"
}

// Presenter shows a finished frame.
type Presenter interface {
	Present(f *Frame) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(f *Frame) error

// Present calls fn(f).
func (fn PresenterFunc) Present(f *Frame) error { return fn(f) }

// Filler is a surface that can fill rectangles with a solid colour. A shiny
// screen.Window satisfies it.
type Filler interface {
	Fill(dr image.Rectangle, src color.Color, op draw.Op)
}

// Blit copies f into dst in one pass, starting at dst's origin. Pixels
// outside dst are clipped.
func Blit(dst *image.RGBA, f *Frame) {
	r := dst.Bounds().Intersect(image.Rect(0, 0, f.Width, f.Height).Add(dst.Bounds().Min))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		fy := y - dst.Bounds().Min.Y
		src := f.Pix[fy*f.Width*3:]
		row := dst.Pix[dst.PixOffset(r.Min.X, y):]
		for x := 0; x < r.Dx(); x++ {
			row[x*4+0] = src[x*3+0]
			row[x*4+1] = src[x*3+1]
			row[x*4+2] = src[x*3+2]
			row[x*4+3] = 0xff
		}
	}
}

// Plot draws f onto dst one pixel at a time, each pixel a 1×1 fill in its
// own colour.
func Plot(dst Filler, f *Frame) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			dst.Fill(image.Rect(x, y, x+1, y+1), f.At(x, y).rgba(), draw.Src)
		}
	}
}
