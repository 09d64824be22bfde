package layout

import "testing"

func TestConstraints_Constrain(t *testing.T) {
	type tc struct {
		cs       Constraints
		size     Size
		expected Size
	}

	tests := map[string]tc{
		"inside range is unchanged": {
			cs:       Constraints{MinWidth: 0, MaxWidth: 100, MinHeight: 0, MaxHeight: 100},
			size:     Size{Width: 50, Height: 60},
			expected: Size{Width: 50, Height: 60},
		},
		"clamped to max per axis": {
			cs:       Constraints{MaxWidth: 40, MaxHeight: 30},
			size:     Size{Width: 50, Height: 60},
			expected: Size{Width: 40, Height: 30},
		},
		"raised to min per axis": {
			cs:       Constraints{MinWidth: 20, MaxWidth: 100, MinHeight: 25, MaxHeight: 100},
			size:     Size{Width: 5, Height: 10},
			expected: Size{Width: 20, Height: 25},
		},
		"min wins over max": {
			cs:       Constraints{MinWidth: 50, MaxWidth: 40, MinHeight: 0, MaxHeight: 100},
			size:     Size{Width: 45, Height: 10},
			expected: Size{Width: 50, Height: 10},
		},
		"unbounded max passes through": {
			cs:       Loose(Unbounded, Unbounded),
			size:     Size{Width: 99999, Height: 99999},
			expected: Size{Width: 99999, Height: 99999},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.cs.Constrain(tt.size); got != tt.expected {
				t.Errorf("Constrain(%+v) = %+v, want %+v", tt.size, got, tt.expected)
			}
		})
	}
}

func TestConstraints_RelaxHeight(t *testing.T) {
	cs := Constraints{MinWidth: 10, MaxWidth: 80, MinHeight: 30, MaxHeight: 60}
	relaxed := cs.RelaxHeight()

	if relaxed.MinWidth != 10 || relaxed.MaxWidth != 80 {
		t.Errorf("width range = [%d, %d], want preserved [10, 80]", relaxed.MinWidth, relaxed.MaxWidth)
	}
	if relaxed.MinHeight != 0 || relaxed.MaxHeight != Unbounded {
		t.Errorf("height range = [%d, %d], want [0, Unbounded]", relaxed.MinHeight, relaxed.MaxHeight)
	}
	// The receiver is unchanged.
	if cs.MinHeight != 30 || cs.MaxHeight != 60 {
		t.Errorf("receiver mutated: %+v", cs)
	}
}

func TestConstraints_Constructors(t *testing.T) {
	loose := Loose(80, 24)
	if loose.MinWidth != 0 || loose.MinHeight != 0 || loose.MaxWidth != 80 || loose.MaxHeight != 24 {
		t.Errorf("Loose(80, 24) = %+v", loose)
	}

	tight := Tight(80, 24)
	if tight.MinWidth != 80 || tight.MaxWidth != 80 || tight.MinHeight != 24 || tight.MaxHeight != 24 {
		t.Errorf("Tight(80, 24) = %+v", tight)
	}
}

func TestConstraints_Bounded(t *testing.T) {
	cs := Loose(80, Unbounded)
	if !cs.WidthBounded() {
		t.Errorf("WidthBounded() = false, want true")
	}
	if cs.HeightBounded() {
		t.Errorf("HeightBounded() = true, want false")
	}
}
