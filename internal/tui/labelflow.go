package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/mcobzarenco/zentui/internal/model"
)

// ChipPlacement is one padded label chip positioned on the flow canvas.
type ChipPlacement struct {
	Text   string // label name with one leading and trailing space
	Colour model.Colour
	Width  int // display width of Text
	X, Y   int // top-left cell, Y is the row index
}

// FlowLabels packs label chips left to right into rows of at most
// width cells. Chips on the same row are separated by a single space.
// A chip that does not fit in the remaining row starts a new row at
// column 0 and is placed unconditionally, so a chip wider than the
// whole row overflows it; chips are never split or truncated.
//
// The returned height is 1 + the number of wraps; callers must resize
// the backing canvas to this height before drawing.
func FlowLabels(width int, labels []model.Label) (chips []ChipPlacement, height int) {
	if width < 1 {
		width = 1
	}
	x, y := 0, 0
	for _, label := range labels {
		text := " " + label.Name + " "
		w := runewidth.StringWidth(text)
		if x > 0 {
			if x >= width || w > width-(x+1) {
				y++
				x = 0
			} else {
				x++ // inter-chip space
			}
		}
		chips = append(chips, ChipPlacement{
			Text:   text,
			Colour: label.Colour,
			Width:  w,
			X:      x,
			Y:      y,
		})
		x += w
	}
	return chips, y + 1
}

// IsLightColour reports whether a chip background is light enough to
// need black foreground text. The weights are the Rec. 601 luma
// coefficients.
func IsLightColour(colour model.Colour) bool {
	luma := 0.299*float32(colour.R) + 0.587*float32(colour.G) + 0.114*float32(colour.B)
	return luma > 146.0
}
