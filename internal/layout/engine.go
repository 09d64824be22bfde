package layout

import "github.com/grindlemire/go-collapse/internal/debug"

// Child pairs a measurable with its resolved placement strategy.
type Child struct {
	Content  Measurable
	Strategy Strategy
}

// Placement is the engine's output for one child: the size the child chose
// during measurement and the offset it was placed at.
type Placement struct {
	Size   Size
	Offset Point
}

// Bounds returns the placed border box.
func (p Placement) Bounds() Rect {
	return NewRect(p.Offset.X, p.Offset.Y, p.Size.Width, p.Size.Height)
}

// Engine computes the toolbar's size and child placements. One Engine is
// created per container and retained across passes; it reads the container's
// current ToolbarState through the state func on every pass, so the state can
// be swapped without reconstructing the engine.
type Engine struct {
	state func() *ToolbarState
}

// NewEngine creates an engine reading its state through the given func.
func NewEngine(state func() *ToolbarState) *Engine {
	return &Engine{state: state}
}

// Layout runs one synchronous measure-then-place pass and returns the
// toolbar's size plus one Placement per child, in declaration order.
//
// Measurement: every child is measured with the height range relaxed to
// [0, Unbounded] (width range preserved). The toolbar's width and height are
// the per-axis maxima over children, clamped into cs; the height bounds are
// the min and max child height over all children uniformly, with no
// per-strategy exclusion, and are not clamped. The state is updated before
// placement, so Road children interpolate by this pass's own progress.
//
// The pass is total: it never fails and always completes, including any
// change notifications, before returning.
func (e *Engine) Layout(children []Child, cs Constraints) (Size, []Placement) {
	st := e.state()
	placements := make([]Placement, len(children))

	width, height := 0, 0
	minHeight, maxHeight := Unbounded, 0
	childCS := cs.RelaxHeight()
	for i, child := range children {
		size := child.Content.Measure(childCS)
		// A child reporting an unbounded extent would corrupt the
		// aggregates; clamp it to the incoming maximum and keep going.
		if size.Width >= Unbounded {
			debug.Log("layout: child %d measured unbounded width, clamping to %d", i, cs.MaxWidth)
			size.Width = cs.MaxWidth
		}
		if size.Height >= Unbounded {
			debug.Log("layout: child %d measured unbounded height, clamping to %d", i, cs.MaxHeight)
			size.Height = cs.MaxHeight
		}
		placements[i].Size = size

		if size.Width > width {
			width = size.Width
		}
		if size.Height > height {
			height = size.Height
		}
		if size.Height < minHeight {
			minHeight = size.Height
		}
		if size.Height > maxHeight {
			maxHeight = size.Height
		}
	}
	// No children leaves the min initializer in place; collapse the range.
	if minHeight > maxHeight {
		minHeight = maxHeight
	}

	width = clamp(width, cs.MinWidth, cs.MaxWidth)
	height = clamp(height, cs.MinHeight, cs.MaxHeight)

	st.update(minHeight, maxHeight, height)

	container := Size{Width: width, Height: height}
	progress := st.Progress()
	for i, child := range children {
		switch child.Strategy.Kind {
		case StrategyRoad:
			collapsed := child.Strategy.Collapsed.Align(placements[i].Size, container)
			expanded := child.Strategy.Expanded.Align(placements[i].Size, container)
			placements[i].Offset = Lerp(collapsed, expanded, progress)
		default:
			// StrategyNone, StrategyParallax, StrategyPin: the origin.
			// Distinct parallax and pin behavior is reserved.
			placements[i].Offset = Point{}
		}
	}
	return container, placements
}
