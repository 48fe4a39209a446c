package render

import (
	"image"
	"image/color"
)

// RGB is one pixel of a frame.
type RGB struct {
	R, G, B uint8
}

// Frame is a row-major RGB24 image. Pix holds Width*Height*3 bytes.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrame allocates a black frame of the given size.
func NewFrame(size image.Point) *Frame {
	return &Frame{
		Width:  size.X,
		Height: size.Y,
		Pix:    make([]uint8, size.X*size.Y*3),
	}
}

// Size returns the frame dimensions.
func (f *Frame) Size() image.Point { return image.Pt(f.Width, f.Height) }

// At returns the colour of pixel (x, y).
func (f *Frame) At(x, y int) RGB {
	i := (y*f.Width + x) * 3
	return RGB{f.Pix[i], f.Pix[i+1], f.Pix[i+2]}
}

// Set stores the colour of pixel (x, y).
func (f *Frame) Set(x, y int, c RGB) {
	i := (y*f.Width + x) * 3
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = c.R, c.G, c.B
}

// RGBA converts the frame to an opaque *image.RGBA for image consumers such
// as the clipboard and PNG encoder.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	Blit(img, f)
	return img
}

func (c RGB) rgba() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// Pixels returns every pixel coordinate of a window of the given size, rows
// outermost, so index y*size.X+x holds (x, y).
func Pixels(size image.Point) []image.Point {
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	pts := make([]image.Point, 0, size.X*size.Y)
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			pts = append(pts, image.Pt(x, y))
		}
	}
	return pts
}
