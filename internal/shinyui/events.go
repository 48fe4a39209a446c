package shinyui

import (
	"image"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/mandelview/internal/viewer"
	"github.com/example/mandelview/internal/viewport"
)

// input folds raw shiny events into viewer events plus the latest window
// size and pointer state.
type input struct {
	size    image.Point
	pointer viewport.Pointer
}

// apply consumes e and returns the viewer event it stands for, if any.
func (in *input) apply(e interface{}) (viewer.Event, bool) {
	switch e := e.(type) {
	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			return viewer.Event{Kind: viewer.EventQuit}, true
		}
	case size.Event:
		sz := e.Size()
		if sz == in.size {
			return viewer.Event{}, false
		}
		in.size = sz
		return viewer.Event{Kind: viewer.EventResize}, true
	case paint.Event:
		// Only paint requests from the window system need a redraw.
		if e.External {
			return viewer.Event{Kind: viewer.EventExpose}, true
		}
	case mouse.Event:
		in.pointer.Pos = image.Pt(int(e.X), int(e.Y))
		down := e.Direction == mouse.DirPress
		if e.Direction == mouse.DirPress || e.Direction == mouse.DirRelease {
			switch e.Button {
			case mouse.ButtonLeft:
				in.pointer.Left = down
			case mouse.ButtonRight:
				in.pointer.Right = down
			}
		}
	case key.Event:
		if e.Direction != key.DirPress {
			return viewer.Event{}, false
		}
		if k := translateKey(e); k != viewer.KeyUnknown {
			return viewer.Event{Kind: viewer.EventKeyDown, Key: k}, true
		}
	}
	return viewer.Event{}, false
}

func translateKey(e key.Event) viewer.Key {
	switch e.Code {
	case key.CodeEscape:
		return viewer.KeyEscape
	case key.CodeKeypadPlusSign:
		return viewer.KeyPlus
	case key.CodeKeypadHyphenMinus:
		return viewer.KeyMinus
	}
	switch e.Rune {
	case '+':
		return viewer.KeyPlus
	case '-':
		return viewer.KeyMinus
	case 'c', 'C':
		return viewer.KeyCopy
	case 's', 'S':
		return viewer.KeySave
	case 'h', 'H':
		return viewer.KeyHUD
	}
	return viewer.KeyUnknown
}
