package tui

import (
	"testing"

	"github.com/mcobzarenco/zentui/internal/model"
)

func labels(names ...string) []model.Label {
	out := make([]model.Label, len(names))
	for i, name := range names {
		out[i] = model.Label{Name: name}
	}
	return out
}

func TestFlowLabelsPacksGreedily(t *testing.T) {
	// W=20, padded widths [5, 13, 4]: row 0 holds chips 1+2
	// (5+1+13=19 ≤ 20), chip 3 wraps, height 2.
	chips, height := FlowLabels(20, labels("bug", "help wanted", "P1"))

	if height != 2 {
		t.Fatalf("height = %d, want 2", height)
	}
	want := []ChipPlacement{
		{Text: " bug ", Width: 5, X: 0, Y: 0},
		{Text: " help wanted ", Width: 13, X: 6, Y: 0},
		{Text: " P1 ", Width: 4, X: 0, Y: 1},
	}
	for i, chip := range chips {
		if chip.Text != want[i].Text || chip.Width != want[i].Width ||
			chip.X != want[i].X || chip.Y != want[i].Y {
			t.Errorf("chip %d = %+v, want %+v", i, chip, want[i])
		}
	}
}

func TestFlowLabelsRowWidthInvariant(t *testing.T) {
	// Every row fits in W unless a single chip alone exceeds W.
	const width = 12
	chips, _ := FlowLabels(width, labels("a", "medium-ish", "bb", "ccc", "d", "very long label name", "e"))

	rowEnd := map[int]int{}
	rowChips := map[int]int{}
	for _, chip := range chips {
		if end := chip.X + chip.Width; end > rowEnd[chip.Y] {
			rowEnd[chip.Y] = end
		}
		rowChips[chip.Y]++
	}
	for row, end := range rowEnd {
		if end > width && rowChips[row] != 1 {
			t.Errorf("row %d overflows to %d with %d chips", row, end, rowChips[row])
		}
	}
}

func TestFlowLabelsOversizedChipOwnsItsRow(t *testing.T) {
	chips, height := FlowLabels(4, labels("x", "enormous", "y"))
	if height != 3 {
		t.Fatalf("height = %d, want 3", height)
	}
	if chips[1].X != 0 {
		t.Fatalf("oversized chip starts at column %d, want 0", chips[1].X)
	}
}

func TestFlowLabelsHeightMonotonic(t *testing.T) {
	names := []string{"bug", "help wanted", "P1", "needs triage", "ui", "backend", "wontfix"}
	previous := 0
	for n := 0; n <= len(names); n++ {
		_, height := FlowLabels(16, labels(names[:n]...))
		if height < previous {
			t.Fatalf("height shrank from %d to %d after appending chip %d", previous, height, n)
		}
		previous = height
	}
}

func TestFlowLabelsEmpty(t *testing.T) {
	chips, height := FlowLabels(10, nil)
	if len(chips) != 0 || height != 1 {
		t.Fatalf("got %d chips, height %d; want 0 chips, height 1", len(chips), height)
	}
}

func TestFlowLabelsWideRunes(t *testing.T) {
	// CJK runes occupy two cells; the packer must use display width.
	chips, _ := FlowLabels(20, labels("バグ"))
	if chips[0].Width != 6 { // space + 2 double-width runes + space
		t.Fatalf("width = %d, want 6", chips[0].Width)
	}
}

func TestIsLightColour(t *testing.T) {
	cases := []struct {
		colour model.Colour
		want   bool
	}{
		{model.Colour{R: 255, G: 255, B: 255}, true},
		{model.Colour{R: 0, G: 0, B: 0}, false},
		{model.Colour{R: 255, G: 0, B: 0}, false},   // luma ≈ 76
		{model.Colour{R: 0, G: 255, B: 0}, true},    // luma ≈ 150
		{model.Colour{R: 242, G: 149, B: 19}, true}, // github orange
	}
	for _, tc := range cases {
		if got := IsLightColour(tc.colour); got != tc.want {
			t.Errorf("IsLightColour(%+v) = %v, want %v", tc.colour, got, tc.want)
		}
	}
}
