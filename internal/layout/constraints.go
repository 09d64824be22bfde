package layout

import "math"

// Unbounded marks a constraint axis with no maximum. Children measured under
// an unbounded axis choose their own extent on that axis.
const Unbounded = math.MaxInt32

// Constraints is the measurement contract handed to a child: an acceptable
// range of widths and heights. The child returns a concrete Size; well-behaved
// children stay inside the range.
type Constraints struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// Loose returns constraints with zero minimums and the given maximums.
func Loose(maxWidth, maxHeight int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: maxHeight}
}

// Tight returns constraints that admit exactly one size.
func Tight(width, height int) Constraints {
	return Constraints{
		MinWidth: width, MaxWidth: width,
		MinHeight: height, MaxHeight: height,
	}
}

// RelaxHeight returns a copy with the height range widened to [0, Unbounded].
// The width range is preserved. This is how the toolbar measures children:
// height independent of the container, width under the incoming constraint.
func (c Constraints) RelaxHeight() Constraints {
	c.MinHeight = 0
	c.MaxHeight = Unbounded
	return c
}

// Constrain clamps s into the constraint ranges, each axis independently.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(s.Height, c.MinHeight, c.MaxHeight),
	}
}

// HeightBounded returns true if the height range has a finite maximum.
func (c Constraints) HeightBounded() bool {
	return c.MaxHeight < Unbounded
}

// WidthBounded returns true if the width range has a finite maximum.
func (c Constraints) WidthBounded() bool {
	return c.MaxWidth < Unbounded
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
