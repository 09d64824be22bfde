package collapse

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Text is a measurable multi-line text block. Width is the display width in
// terminal cells of the widest line; height is the line count.
type Text struct {
	Content string
}

// Measure returns the text's size clamped into the constraints.
func (t Text) Measure(cs Constraints) Size {
	var width, height int
	for _, line := range strings.Split(t.Content, "\n") {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
		height++
	}
	return cs.Constrain(Size{Width: width, Height: height})
}

// Box is a measurable with a fixed preferred size, useful for spacers and
// fixed-extent children.
type Box struct {
	Width, Height int
}

// Measure returns the preferred size clamped into the constraints.
func (b Box) Measure(cs Constraints) Size {
	return cs.Constrain(Size{Width: b.Width, Height: b.Height})
}
