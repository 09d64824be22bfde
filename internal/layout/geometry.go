package layout

import "math"

// Point represents an (X, Y) offset in cells.
type Point struct {
	X, Y int
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Lerp linearly interpolates between a and b by t, per axis. Each axis is
// rounded half away from zero, the same rule [Alignment.Align] uses, so an
// interpolated offset lands exactly on its endpoints at t=0 and t=1.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + roundToInt(float64(b.X-a.X)*t),
		Y: a.Y + roundToInt(float64(b.Y-a.Y)*t),
	}
}

// roundToInt rounds half away from zero.
func roundToInt(v float64) int {
	return int(math.Round(v))
}

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom
// edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
