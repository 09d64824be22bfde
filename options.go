package collapse

import "github.com/grindlemire/go-collapse/internal/layout"

// Option configures a Toolbar.
type Option func(*Toolbar)

// WithState supplies an externally retained ToolbarState instead of the
// default freshly created one. The caller keeps ownership; the toolbar
// mutates the state in place on every layout pass.
func WithState(state *ToolbarState) Option {
	return func(t *Toolbar) {
		t.stateRef.Set(state)
	}
}

// WithOnHeightChange registers the height-bounds callback on whichever state
// the toolbar ends up with (supplied or default).
func WithOnHeightChange(fn func(minHeight, maxHeight int)) Option {
	return func(t *Toolbar) {
		t.onHeightChange = fn
	}
}

// WithItems appends items to the toolbar in declaration order.
func WithItems(items ...*Item) Option {
	return func(t *Toolbar) {
		t.items = append(t.items, items...)
	}
}

// ItemOption configures an Item. Options compose; the strategy slot holds a
// single value, so when several strategy options are applied the last one
// takes effect.
type ItemOption func(*Item)

// WithRoad tags the item to move between two alignment-derived positions as
// the toolbar collapses: whenCollapsed at progress 0, whenExpanded at
// progress 1, linearly interpolated in between.
func WithRoad(whenCollapsed, whenExpanded Alignment) ItemOption {
	return func(it *Item) {
		it.strategy = layout.Road(whenCollapsed, whenExpanded)
	}
}

// WithParallax tags the item for parallax motion. Distinct parallax behavior
// is not implemented; the item is placed at the origin, identical to an
// untagged item.
func WithParallax() ItemOption {
	return func(it *Item) {
		it.strategy = layout.Parallax()
	}
}

// WithPin tags the item to stay put while the toolbar collapses. Distinct
// pin behavior is not implemented; the item is placed at the origin,
// identical to an untagged item.
func WithPin() ItemOption {
	return func(it *Item) {
		it.strategy = layout.Pin()
	}
}
