package layout

// Alignment maps a child size and a container size to an offset. It is a
// fractional bias per axis in [-1, 1]: -1 aligns to the start edge, 0 centers,
// 1 aligns to the end edge. Using a continuous bias instead of an enum keeps a
// collapsed/expanded alignment pair linearly interpolable.
type Alignment struct {
	X, Y float64
}

// Named alignments covering the nine canonical positions.
var (
	TopLeft      = Alignment{X: -1, Y: -1}
	TopCenter    = Alignment{X: 0, Y: -1}
	TopRight     = Alignment{X: 1, Y: -1}
	CenterLeft   = Alignment{X: -1, Y: 0}
	Center       = Alignment{X: 0, Y: 0}
	CenterRight  = Alignment{X: 1, Y: 0}
	BottomLeft   = Alignment{X: -1, Y: 1}
	BottomCenter = Alignment{X: 0, Y: 1}
	BottomRight  = Alignment{X: 1, Y: 1}
)

// Align returns the child's top-left offset inside the container. Each axis
// distributes the free space (container minus child) by the bias and rounds
// half away from zero. Resolution is always left-to-right; right-to-left
// mirroring is not applied.
func (a Alignment) Align(child, container Size) Point {
	return Point{
		X: roundToInt(float64(container.Width-child.Width) * (a.X + 1) / 2),
		Y: roundToInt(float64(container.Height-child.Height) * (a.Y + 1) / 2),
	}
}
