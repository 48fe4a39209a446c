package viewer

import (
	"image"

	"github.com/example/mandelview/internal/render"
	"github.com/example/mandelview/internal/viewport"
)

// EventKind classifies a discrete platform event.
type EventKind int

const (
	// EventNone is the zero event and is ignored.
	EventNone EventKind = iota
	// EventQuit is sent when the window is closed.
	EventQuit
	// EventKeyDown carries a key press in Event.Key.
	EventKeyDown
	// EventResize is sent when the window size changes.
	EventResize
	// EventExpose asks for the current frame to be shown again.
	EventExpose
)

// Key identifies the keys the viewer reacts to.
type Key int

const (
	// KeyUnknown is any key without a binding.
	KeyUnknown Key = iota
	// KeyEscape quits.
	KeyEscape
	// KeyPlus raises the iteration depth.
	KeyPlus
	// KeyMinus lowers the iteration depth.
	KeyMinus
	// KeyCopy copies the frame to the clipboard.
	KeyCopy
	// KeySave writes the frame to a PNG file.
	KeySave
	// KeyHUD toggles the status overlay.
	KeyHUD
)

// Event is one entry of the platform event queue.
type Event struct {
	Kind EventKind
	Key  Key
}

// Overlay is drawn over the presented frame when non-empty.
type Overlay []string

// Platform is the window system collaborator the loop drives.
type Platform interface {
	// Size returns the current window size in pixels.
	Size() image.Point
	// Poll drains and returns the queued events without blocking.
	Poll() []Event
	// Pointer samples the current pointer position and button state.
	Pointer() viewport.Pointer
	// Present shows f with an optional overlay.
	Present(f *render.Frame, o Overlay) error
}
