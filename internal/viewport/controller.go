package viewport

import (
	"fmt"
	"image"
	"strings"
)

// Trigger selects how held mouse buttons are turned into zoom steps.
type Trigger int

const (
	// TriggerLevel zooms on every poll tick while a button is held. Holding a
	// button therefore keeps zooming at the poll rate.
	TriggerLevel Trigger = iota
	// TriggerEdge zooms once per press; the button must be released before
	// it zooms again.
	TriggerEdge
)

// ParseTrigger accepts "level" or "edge".
func ParseTrigger(s string) (Trigger, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "level":
		return TriggerLevel, nil
	case "edge":
		return TriggerEdge, nil
	}
	return TriggerLevel, fmt.Errorf("unknown trigger %q (want level or edge)", s)
}

func (t Trigger) String() string {
	if t == TriggerEdge {
		return "edge"
	}
	return "level"
}

// Pointer is a sample of the mouse position and button state.
type Pointer struct {
	Pos   image.Point
	Left  bool
	Right bool
}

// Controller owns the current viewport and iteration depth and applies input
// to them. It is not safe for concurrent use; the control loop owns it.
type Controller struct {
	view    Viewport
	depth   Depth
	trigger Trigger

	prevLeft  bool
	prevRight bool
}

// Option configures a Controller at creation.
type Option func(*Controller)

// WithViewport overrides the initial viewport. A viewport that is not Valid
// is ignored.
func WithViewport(v Viewport) Option {
	return func(c *Controller) {
		if v.Valid() {
			c.view = v
		}
	}
}

// WithDepth overrides the initial iteration depth.
func WithDepth(d Depth) Option { return func(c *Controller) { c.depth = d } }

// WithTrigger selects level or edge triggered zooming.
func WithTrigger(t Trigger) Option { return func(c *Controller) { c.trigger = t } }

// NewController returns a controller in its initial state.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		view:  Default(),
		depth: DefaultDepth,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Viewport returns the current view.
func (c *Controller) Viewport() Viewport { return c.view }

// Depth returns the current iteration depth.
func (c *Controller) Depth() Depth { return c.depth }

// Trigger returns the active trigger mode.
func (c *Controller) Trigger() Trigger { return c.trigger }

// IncreaseDepth raises the depth by one step. It always requires a render.
func (c *Controller) IncreaseDepth() bool {
	c.depth = c.depth.Increase()
	return true
}

// DecreaseDepth lowers the depth by one step unless it is at the floor. It
// reports whether the depth changed.
func (c *Controller) DecreaseDepth() bool {
	var changed bool
	c.depth, changed = c.depth.Decrease()
	return changed
}

// ZoomIn applies one zoom-in step towards pixel p.
func (c *Controller) ZoomIn(p image.Point, size image.Point) {
	c.view = c.view.ZoomIn(p, size)
}

// ZoomOut applies one zoom-out step.
func (c *Controller) ZoomOut() {
	c.view = c.view.ZoomOut()
}

// Sample applies the pointer state of one poll tick. The left button wins
// over the right one. It reports whether the viewport changed.
func (c *Controller) Sample(p Pointer, size image.Point) bool {
	left, right := p.Left, p.Right
	if c.trigger == TriggerEdge {
		left = p.Left && !c.prevLeft
		right = p.Right && !c.prevRight
	}
	c.prevLeft, c.prevRight = p.Left, p.Right

	switch {
	case left:
		c.ZoomIn(p.Pos, size)
		return true
	case right:
		c.ZoomOut()
		return true
	}
	return false
}
