package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	hudPadding    = 4
	hudLineHeight = 16
)

var (
	hudBackground = color.RGBA{0, 0, 0, 160}
	hudText       = color.RGBA{220, 255, 220, 255}
)

// DrawHUD draws lines of status text in a translucent box at the top-left
// corner of dst and returns the box. It draws onto the presented buffer only;
// frames stay untouched.
func DrawHUD(dst *image.RGBA, lines []string) image.Rectangle {
	if len(lines) == 0 {
		return image.Rectangle{}
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(hudText), Face: basicfont.Face7x13}
	width := 0
	for _, l := range lines {
		if w := d.MeasureString(l).Ceil(); w > width {
			width = w
		}
	}
	origin := dst.Bounds().Min
	box := image.Rect(0, 0, width+2*hudPadding, len(lines)*hudLineHeight+hudPadding).Add(origin)
	draw.Draw(dst, box, image.NewUniform(hudBackground), image.Point{}, draw.Over)
	for i, l := range lines {
		d.Dot = fixed.P(origin.X+hudPadding, origin.Y+(i+1)*hudLineHeight-2)
		d.DrawString(l)
	}
	return box.Intersect(dst.Bounds())
}
