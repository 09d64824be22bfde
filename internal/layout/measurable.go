package layout

// Measurable is the interface children implement to participate in layout.
// The engine works entirely with this interface, enabling custom children.
type Measurable interface {
	// Measure returns the child's size under the given constraints.
	// The engine calls it once per layout pass with the height range
	// relaxed to [0, Unbounded].
	Measure(Constraints) Size
}
