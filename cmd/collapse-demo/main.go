// Package main demonstrates collapsing a toolbar by squeezing its height
// constraint, the way a scroll coordinator would as content scrolls under it.
//
// To build and run:
//
//	cd cmd/collapse-demo
//	go run .
package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	collapse "github.com/grindlemire/go-collapse"
)

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boundsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
)

func main() {
	var bounds string
	toolbar := collapse.New(
		collapse.WithOnHeightChange(func(minHeight, maxHeight int) {
			bounds = fmt.Sprintf("height bounds %d..%d", minHeight, maxHeight)
		}),
		collapse.WithItems(
			collapse.NewItem(collapse.Box{Width: 44, Height: 9}, collapse.WithParallax()),
			collapse.NewItem(collapse.Text{Content: "Collapsing Toolbar"},
				collapse.WithRoad(collapse.TopCenter, collapse.BottomLeft)),
			collapse.NewItem(collapse.Text{Content: "[back]  [share]  [more]"},
				collapse.WithPin()),
		),
	)

	// First pass with an unbounded height establishes the bounds.
	toolbar.Layout(collapse.Loose(44, collapse.Unbounded))
	fmt.Println(boundsStyle.Render(bounds))

	// Collapse by shrinking the height constraint, the way a scroll
	// coordinator squeezes the toolbar as content scrolls under it.
	state := toolbar.State()
	for h := state.MaxHeight(); h >= state.MinHeight(); h -= 2 {
		result := toolbar.Layout(collapse.Loose(44, h))
		fmt.Println(frameStyle.Render(render(result)))
		fmt.Println(statusStyle.Render(
			fmt.Sprintf("height=%d progress=%.2f", state.Height(), state.Progress())))
	}
}

// render paints the placed items onto a rune grid sized to the toolbar.
func render(result collapse.Result) string {
	grid := make([][]rune, result.Size.Height)
	for y := range grid {
		grid[y] = make([]rune, result.Size.Width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	for _, placed := range result.Items {
		switch content := placed.Item.Content().(type) {
		case collapse.Box:
			fill(grid, placed.Bounds(), '░')
		case collapse.Text:
			drawText(grid, placed.Offset, content.Content)
		}
	}

	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = string(row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func fill(grid [][]rune, r collapse.Rect, ch rune) {
	for y := r.Y; y < r.Bottom() && y < len(grid); y++ {
		if y < 0 {
			continue
		}
		for x := r.X; x < r.Right() && x < len(grid[y]); x++ {
			if x >= 0 {
				grid[y][x] = ch
			}
		}
	}
}

func drawText(grid [][]rune, at collapse.Point, text string) {
	y := at.Y
	x := at.X
	for _, r := range text {
		if r == '\n' {
			y++
			x = at.X
			continue
		}
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
			grid[y][x] = r
		}
		x++
	}
}
