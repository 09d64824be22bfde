// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package collapse

import "github.com/grindlemire/go-collapse/internal/layout"

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y offset.
type Point = layout.Point

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Constraints is the acceptable range of widths and heights handed to a
// child during measurement.
type Constraints = layout.Constraints

// Alignment maps a child size and a container size to an offset.
type Alignment = layout.Alignment

// Measurable is the interface children implement for layout measurement.
type Measurable = layout.Measurable

// ToolbarState is the toolbar's retained sizing contract.
type ToolbarState = layout.ToolbarState

// Placement holds a child's measured size and placed offset.
type Placement = layout.Placement

// Unbounded marks a constraint axis with no maximum.
const Unbounded = layout.Unbounded

// Named alignments covering the nine canonical positions.
var (
	TopLeft      = layout.TopLeft
	TopCenter    = layout.TopCenter
	TopRight     = layout.TopRight
	CenterLeft   = layout.CenterLeft
	Center       = layout.Center
	CenterRight  = layout.CenterRight
	BottomLeft   = layout.BottomLeft
	BottomCenter = layout.BottomCenter
	BottomRight  = layout.BottomRight
)

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// Loose returns constraints with zero minimums and the given maximums.
func Loose(maxWidth, maxHeight int) Constraints {
	return layout.Loose(maxWidth, maxHeight)
}

// Tight returns constraints that admit exactly one size.
func Tight(width, height int) Constraints {
	return layout.Tight(width, height)
}

// NewToolbarState returns a retained state seeded with zero bounds and
// height. onHeightChange may be nil. The visible-height callback has no
// constructor parameter; set OnVisibleHeightChange on the returned state.
func NewToolbarState(onHeightChange func(minHeight, maxHeight int)) *ToolbarState {
	return layout.NewToolbarState(onHeightChange)
}
