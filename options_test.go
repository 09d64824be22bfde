package collapse

import "testing"

// layoutAtHalfProgress lays out a toolbar whose road children would visibly
// move: a 200-tall backdrop, a 50-tall item under test, and a height
// constraint that clamps the container to midway between the bounds.
func layoutAtHalfProgress(t *testing.T, item *Item) PlacedItem {
	t.Helper()
	toolbar := New(WithItems(
		NewItem(Box{Width: 30, Height: 200}),
		item,
	))
	result := toolbar.Layout(Loose(30, 125))
	if got := toolbar.State().Progress(); got != 0.5 {
		t.Fatalf("Progress() = %v, want 0.5", got)
	}
	return result.Items[1]
}

func TestItemOptions_StrategyResolution(t *testing.T) {
	type tc struct {
		opts           []ItemOption
		expectedOffset Point
	}

	// A road from TopLeft to BottomLeft at progress 0.5 sits at
	// y = (125-50)/2 = 37.5, rounded to 38.
	tests := map[string]tc{
		"no option defaults to origin": {
			opts:           nil,
			expectedOffset: Point{},
		},
		"road interpolates": {
			opts:           []ItemOption{WithRoad(TopLeft, BottomLeft)},
			expectedOffset: Point{X: 0, Y: 38},
		},
		"parallax stays at origin": {
			opts:           []ItemOption{WithParallax()},
			expectedOffset: Point{},
		},
		"pin stays at origin": {
			opts:           []ItemOption{WithPin()},
			expectedOffset: Point{},
		},
		"last strategy option wins: road then pin": {
			opts:           []ItemOption{WithRoad(TopLeft, BottomLeft), WithPin()},
			expectedOffset: Point{},
		},
		"last strategy option wins: pin then road": {
			opts:           []ItemOption{WithPin(), WithRoad(TopLeft, BottomLeft)},
			expectedOffset: Point{X: 0, Y: 38},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			item := NewItem(Box{Width: 30, Height: 50}, tt.opts...)
			placed := layoutAtHalfProgress(t, item)
			if placed.Offset != tt.expectedOffset {
				t.Errorf("Offset = %+v, want %+v", placed.Offset, tt.expectedOffset)
			}
		})
	}
}

func TestNewItem_Content(t *testing.T) {
	content := Text{Content: "hello"}
	item := NewItem(content, WithPin())
	if item.Content() != Measurable(content) {
		t.Error("Content() is not the wrapped measurable")
	}
}
