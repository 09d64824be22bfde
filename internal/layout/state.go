package layout

// ToolbarState holds the toolbar's sizing contract: the measured height
// bounds, the live height an external driver (typically a scroll coordinator)
// moves inside them, and the change notifications fired when a layout pass
// produces new values.
//
// One ToolbarState is retained per toolbar and mutated in place across
// passes; callers that hold a reference observe the mutation. The height
// bounds are written exclusively by the engine. The live height is written by
// the engine and by external drivers between passes via SetHeight.
type ToolbarState struct {
	minHeight int
	maxHeight int
	height    int

	// OnHeightChange fires when a layout pass produces height bounds that
	// differ from the stored ones. Called before the state is overwritten:
	// the new bounds arrive as arguments while the old bounds are still
	// readable on the state.
	OnHeightChange func(minHeight, maxHeight int)

	// OnVisibleHeightChange fires when a layout pass produces a live height
	// that differs from the stored one, under the same before-overwrite
	// ordering. Independent of OnHeightChange.
	OnVisibleHeightChange func(height int)
}

// NewToolbarState returns a state seeded with zero bounds and height.
// onHeightChange may be nil. There is no constructor parameter for
// OnVisibleHeightChange; set the field directly.
func NewToolbarState(onHeightChange func(minHeight, maxHeight int)) *ToolbarState {
	return &ToolbarState{OnHeightChange: onHeightChange}
}

// MinHeight returns the smallest measured child height from the last pass.
func (s *ToolbarState) MinHeight() int {
	return s.minHeight
}

// MaxHeight returns the largest measured child height from the last pass.
func (s *ToolbarState) MaxHeight() int {
	return s.maxHeight
}

// Height returns the current live height.
func (s *ToolbarState) Height() int {
	return s.height
}

// SetHeight sets the live height. Drivers are expected to stay inside
// [MinHeight, MaxHeight]; the state does not clamp. Progress reflects the
// new value immediately.
func (s *ToolbarState) SetHeight(height int) {
	s.height = height
}

// Expand snaps the live height to MaxHeight.
func (s *ToolbarState) Expand() {
	s.height = s.maxHeight
}

// Collapse snaps the live height to MinHeight.
func (s *ToolbarState) Collapse() {
	s.height = s.minHeight
}

// Progress returns the collapse progress in [0, 1]: 0 at MinHeight
// (collapsed), 1 at MaxHeight (expanded). It is recomputed from the current
// fields on every call, never cached. When the bounds coincide the range is
// degenerate and Progress is defined as 0.
func (s *ToolbarState) Progress() float64 {
	if s.maxHeight == s.minHeight {
		return 0
	}
	p := float64(s.height-s.minHeight) / float64(s.maxHeight-s.minHeight)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// update is called by the engine once per layout pass with the freshly
// computed bounds and height. Each callback fires at most once, only on
// change, before the corresponding fields are overwritten. The fields are
// then assigned unconditionally.
func (s *ToolbarState) update(minHeight, maxHeight, height int) {
	if (minHeight != s.minHeight || maxHeight != s.maxHeight) && s.OnHeightChange != nil {
		s.OnHeightChange(minHeight, maxHeight)
	}
	if height != s.height && s.OnVisibleHeightChange != nil {
		s.OnVisibleHeightChange(height)
	}
	s.minHeight = minHeight
	s.maxHeight = maxHeight
	s.height = height
}
