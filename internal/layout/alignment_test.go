package layout

import "testing"

func TestAlignment_Align(t *testing.T) {
	type tc struct {
		alignment Alignment
		child     Size
		container Size
		expected  Point
	}

	child := Size{Width: 10, Height: 4}
	container := Size{Width: 30, Height: 10} // free space 20x6

	tests := map[string]tc{
		"top left":      {alignment: TopLeft, child: child, container: container, expected: Point{X: 0, Y: 0}},
		"top center":    {alignment: TopCenter, child: child, container: container, expected: Point{X: 10, Y: 0}},
		"top right":     {alignment: TopRight, child: child, container: container, expected: Point{X: 20, Y: 0}},
		"center left":   {alignment: CenterLeft, child: child, container: container, expected: Point{X: 0, Y: 3}},
		"center":        {alignment: Center, child: child, container: container, expected: Point{X: 10, Y: 3}},
		"center right":  {alignment: CenterRight, child: child, container: container, expected: Point{X: 20, Y: 3}},
		"bottom left":   {alignment: BottomLeft, child: child, container: container, expected: Point{X: 0, Y: 6}},
		"bottom center": {alignment: BottomCenter, child: child, container: container, expected: Point{X: 10, Y: 6}},
		"bottom right":  {alignment: BottomRight, child: child, container: container, expected: Point{X: 20, Y: 6}},
		"odd free space rounds half away": {
			alignment: Center,
			child:     Size{Width: 10, Height: 3},
			container: Size{Width: 15, Height: 10},
			expected:  Point{X: 3, Y: 4}, // 2.5 -> 3, 3.5 -> 4
		},
		"child larger than container goes negative": {
			alignment: BottomRight,
			child:     Size{Width: 40, Height: 12},
			container: container,
			expected:  Point{X: -10, Y: -2},
		},
		"fractional bias": {
			alignment: Alignment{X: 0.5, Y: -0.5},
			child:     child,
			container: container,
			expected:  Point{X: 15, Y: 2}, // 20*0.75, 6*0.25 rounded
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.alignment.Align(tt.child, tt.container); got != tt.expected {
				t.Errorf("Align(%+v, %+v) = %+v, want %+v", tt.child, tt.container, got, tt.expected)
			}
		})
	}
}
