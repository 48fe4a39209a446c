package viewport

import "strconv"

const (
	// DefaultDepth is the iteration bound used at startup.
	DefaultDepth Depth = 200
	// DepthStep is the amount each key press adds or removes.
	DepthStep Depth = 100
	// MinDepth is the floor below which decrements are refused.
	MinDepth Depth = 100
)

// Depth is the maximum number of escape-time iterations per pixel.
type Depth int

// Increase returns d raised by one step. There is no upper bound.
func (d Depth) Increase() Depth {
	return d + DepthStep
}

// Decrease returns d lowered by one step and true, or d unchanged and false
// when d is already at or below MinDepth.
func (d Depth) Decrease() (Depth, bool) {
	if d <= MinDepth {
		return d, false
	}
	return d - DepthStep, true
}

// Int returns d as a plain int for the evaluator.
func (d Depth) Int() int { return int(d) }

func (d Depth) String() string { return strconv.Itoa(int(d)) }
