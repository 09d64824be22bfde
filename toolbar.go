package collapse

import "github.com/grindlemire/go-collapse/internal/layout"

// Item is one toolbar child: a measurable plus its placement strategy.
// An item with no strategy option is placed at the origin.
type Item struct {
	content  Measurable
	strategy layout.Strategy
}

// NewItem creates an item wrapping content with the given options.
func NewItem(content Measurable, opts ...ItemOption) *Item {
	it := &Item{content: content}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Content returns the wrapped measurable.
func (it *Item) Content() Measurable {
	return it.content
}

// Toolbar is the collapsing container. It owns a retained ToolbarState
// (through a StateRef, so the state can be swapped without rebuilding the
// measurement engine) and lays its items out with the measurement engine.
//
// A Toolbar performs no threading of its own: Layout is synchronous and is
// expected to be driven by the host's layout pass.
type Toolbar struct {
	stateRef       *StateRef
	engine         *layout.Engine
	items          []*Item
	onHeightChange func(minHeight, maxHeight int)
}

// New creates a Toolbar with the given options. If no state is supplied, a
// fresh one is created and retained for the toolbar's lifetime.
func New(opts ...Option) *Toolbar {
	t := &Toolbar{stateRef: &StateRef{}}
	for _, opt := range opts {
		opt(t)
	}
	if !t.stateRef.IsSet() {
		t.stateRef.Set(NewToolbarState(t.onHeightChange))
	} else if t.onHeightChange != nil {
		t.stateRef.Get().OnHeightChange = t.onHeightChange
	}
	// The engine reads through the ref so SetState is observed without
	// reconstructing the engine.
	t.engine = layout.NewEngine(t.stateRef.Get)
	return t
}

// Add appends items to the toolbar and returns it for chaining.
func (t *Toolbar) Add(items ...*Item) *Toolbar {
	t.items = append(t.items, items...)
	return t
}

// Items returns the toolbar's items in declaration order.
func (t *Toolbar) Items() []*Item {
	out := make([]*Item, len(t.items))
	copy(out, t.items)
	return out
}

// State returns the toolbar's current retained state.
func (t *Toolbar) State() *ToolbarState {
	return t.stateRef.Get()
}

// SetState swaps the retained state. The engine observes the new state on
// the next layout pass.
func (t *Toolbar) SetState(state *ToolbarState) {
	t.stateRef.Set(state)
}

// Result is the outcome of one layout pass: the toolbar's own size and one
// placed item per child, in declaration order.
type Result struct {
	Size  Size
	Items []PlacedItem
}

// PlacedItem pairs an item with its measured size and placed offset.
type PlacedItem struct {
	Item   *Item
	Size   Size
	Offset Point
}

// Bounds returns the item's placed border box.
func (p PlacedItem) Bounds() Rect {
	return NewRect(p.Offset.X, p.Offset.Y, p.Size.Width, p.Size.Height)
}

// Layout runs one synchronous measure-then-place pass under the incoming
// constraints. The pass updates the retained state (firing its change
// notifications in-line) before any item is placed, so Road items
// interpolate by this pass's own progress.
func (t *Toolbar) Layout(cs Constraints) Result {
	children := make([]layout.Child, len(t.items))
	for i, item := range t.items {
		children[i] = layout.Child{Content: item.content, Strategy: item.strategy}
	}
	size, placements := t.engine.Layout(children, cs)

	placed := make([]PlacedItem, len(t.items))
	for i, item := range t.items {
		placed[i] = PlacedItem{
			Item:   item,
			Size:   placements[i].Size,
			Offset: placements[i].Offset,
		}
	}
	return Result{Size: size, Items: placed}
}
