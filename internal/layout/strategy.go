package layout

// StrategyKind identifies how a child moves as the toolbar collapses.
type StrategyKind uint8

const (
	StrategyNone     StrategyKind = iota // Child stays at the origin
	StrategyRoad                         // Offset interpolated between two alignments
	StrategyParallax                     // Reserved; currently placed at the origin
	StrategyPin                          // Reserved; currently placed at the origin
)

// Strategy is a per-child placement tag. The set is closed: every child
// carries exactly one Strategy, resolved exhaustively at placement time.
// The zero value is StrategyNone.
type Strategy struct {
	Kind StrategyKind

	// Collapsed and Expanded are the Road interpolation endpoints.
	// Unused by the other kinds.
	Collapsed Alignment
	Expanded  Alignment
}

// Road returns the strategy that interpolates a child's offset between the
// collapsed and expanded alignments as collapse progress varies.
func Road(whenCollapsed, whenExpanded Alignment) Strategy {
	return Strategy{Kind: StrategyRoad, Collapsed: whenCollapsed, Expanded: whenExpanded}
}

// Parallax returns the parallax strategy. Distinct parallax motion is not
// implemented; a Parallax child is placed at the origin, identical to an
// untagged child.
func Parallax() Strategy {
	return Strategy{Kind: StrategyParallax}
}

// Pin returns the pin strategy. Distinct pin behavior is not implemented;
// a Pin child is placed at the origin, identical to an untagged child.
func Pin() Strategy {
	return Strategy{Kind: StrategyPin}
}
