package viewport

import (
	"image"
	"math"
	"testing"
)

const eps = 1e-12

func near(a, b complex128) bool {
	return math.Abs(real(a)-real(b)) < eps && math.Abs(imag(a)-imag(b)) < eps
}

func TestMapCorners(t *testing.T) {
	v := Default()
	size := image.Pt(800, 600)
	if got := v.Map(image.Pt(0, 0), size); got != v.TopLeft {
		t.Fatalf("Map(0,0) = %v, want %v", got, v.TopLeft)
	}
	if got := v.Map(image.Pt(400, 300), size); !near(got, 0) {
		t.Fatalf("Map(centre) = %v, want 0", got)
	}
	if got := v.Map(size, size); !near(got, v.BottomRight) {
		t.Fatalf("Map(size) = %v, want %v", got, v.BottomRight)
	}
}

func TestMapStaysInsideViewport(t *testing.T) {
	views := []Viewport{
		Default(),
		{TopLeft: complex(-0.8, 0.05), BottomRight: complex(-0.7, 0.15)},
		{TopLeft: complex(1, 1), BottomRight: complex(-1, -1)},
	}
	size := image.Pt(37, 23)
	for _, v := range views {
		minRe, maxRe := math.Min(real(v.TopLeft), real(v.BottomRight)), math.Max(real(v.TopLeft), real(v.BottomRight))
		minIm, maxIm := math.Min(imag(v.TopLeft), imag(v.BottomRight)), math.Max(imag(v.TopLeft), imag(v.BottomRight))
		for y := 0; y < size.Y; y++ {
			for x := 0; x < size.X; x++ {
				c := v.Map(image.Pt(x, y), size)
				if real(c) < minRe || real(c) > maxRe || imag(c) < minIm || imag(c) > maxIm {
					t.Fatalf("Map(%d,%d) = %v outside %v", x, y, c, v)
				}
				if c == v.BottomRight {
					t.Fatalf("Map(%d,%d) reached the far corner", x, y)
				}
			}
		}
	}
}

func TestZoomInAtCentre(t *testing.T) {
	got := Default().ZoomIn(image.Pt(400, 300), image.Pt(800, 600))
	if !near(got.TopLeft, complex(-1.8, -1.35)) {
		t.Errorf("TopLeft = %v, want (-1.8-1.35i)", got.TopLeft)
	}
	if !near(got.BottomRight, complex(1.8, 1.35)) {
		t.Errorf("BottomRight = %v, want (1.8+1.35i)", got.BottomRight)
	}
}

func TestZoomInAtCornerKeepsCorner(t *testing.T) {
	v := Default()
	got := v.ZoomIn(image.Pt(0, 0), image.Pt(800, 600))
	if got.TopLeft != v.TopLeft {
		t.Errorf("TopLeft moved to %v", got.TopLeft)
	}
	if !near(got.BottomRight, complex(1.6, 1.2)) {
		t.Errorf("BottomRight = %v, want (1.6+1.2i)", got.BottomRight)
	}
}

func TestZoomInIsNotARecentre(t *testing.T) {
	size := image.Pt(800, 600)
	click := image.Pt(600, 150)
	v := Default()
	before := v.Map(click, size)
	z := v.ZoomIn(click, size)
	mid := (z.TopLeft + z.BottomRight) / 2
	if near(mid, before) {
		t.Fatalf("single step re-centred on %v", before)
	}
	// The span always shrinks by exactly ZoomStep regardless of the click.
	if !near(z.Span(), v.Span()*complex(1-ZoomStep, 0)) {
		t.Fatalf("span = %v, want %v", z.Span(), v.Span()*complex(1-ZoomStep, 0))
	}
}

func TestZoomOut(t *testing.T) {
	got := Default().ZoomOut()
	if !near(got.TopLeft, complex(-2.4, -1.8)) {
		t.Errorf("TopLeft = %v, want (-2.4-1.8i)", got.TopLeft)
	}
	if !near(got.BottomRight, complex(2.4, 1.8)) {
		t.Errorf("BottomRight = %v, want (2.4+1.8i)", got.BottomRight)
	}
}

func TestValid(t *testing.T) {
	if !Default().Valid() {
		t.Fatal("default viewport should be valid")
	}
	flat := Viewport{TopLeft: complex(-1, 0), BottomRight: complex(1, 0)}
	if flat.Valid() {
		t.Fatal("zero imaginary span should be invalid")
	}
	inf := Viewport{TopLeft: complex(math.Inf(-1), -1), BottomRight: complex(1, 1)}
	if inf.Valid() {
		t.Fatal("infinite span should be invalid")
	}
}
