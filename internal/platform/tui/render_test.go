package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

const testMap = `id: tui-test
name: TUI Test
origin: {x: 32, y: 64}
layout: |
  7777
  ....
  7777
player: {col: 0, row: 1}
ghosts:
  - from: {col: 3, row: 1}
    to: {col: 1, row: 1}
    asset: ghost.png
`

func loadTestMap(t *testing.T) *maze.MapFile {
	t.Helper()
	m, err := maze.ParseYAML([]byte(testMap))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	return m
}

func testRenderOptions() RenderOptions {
	return RenderOptions{
		PixelsPerColumn: 8,
		PixelsPerRow:    16,
		Glyphs: map[string]config.GlyphCell{
			"ghost.png": {Rune: 'M', Color: core.ColorRed},
		},
	}
}

func TestScreenSize(t *testing.T) {
	w, h := ScreenSize(loadTestMap(t), testRenderOptions())
	if w != 16 || h != 6 {
		t.Errorf("ScreenSize() = %dx%d, expected 16x6", w, h)
	}
}

func TestDrawLineHorizontalAndVertical(t *testing.T) {
	r := NewTermRenderer(loadTestMap(t), testRenderOptions(), nil)
	s := r.Screen()

	// Top edge of the first wall: local pixels 7..25 on row 7.
	if err := r.DrawLine(core.Pt(39, 71), core.Pt(57, 71), core.ColorCyan); err != nil {
		t.Fatalf("DrawLine() error = %v", err)
	}
	for col := 0; col <= 3; col++ {
		if got := s.Get(col, 0); got != runeHorizontal {
			t.Errorf("cell (%d,0) = %q, expected %q", col, got, runeHorizontal)
		}
	}
	if got := s.Get(4, 0); got != ' ' {
		t.Errorf("line end is exclusive, cell (4,0) = %q", got)
	}

	// Left edge crosses the top edge in cell (0,0).
	if err := r.DrawLine(core.Pt(39, 71), core.Pt(39, 89), core.ColorCyan); err != nil {
		t.Fatalf("DrawLine() error = %v", err)
	}
	if got := s.Get(0, 0); got != runeCross {
		t.Errorf("crossing cell = %q, expected %q", got, runeCross)
	}
	if got := s.Get(0, 1); got != runeVertical {
		t.Errorf("cell (0,1) = %q, expected %q", got, runeVertical)
	}
	if got := s.GetCell(0, 1).Color; got != core.ColorCyan {
		t.Errorf("line color = %v, expected cyan", got)
	}
}

func TestDrawLineReversedEndpoints(t *testing.T) {
	r := NewTermRenderer(loadTestMap(t), testRenderOptions(), nil)
	if err := r.DrawLine(core.Pt(57, 71), core.Pt(39, 71), core.ColorCyan); err != nil {
		t.Fatalf("DrawLine() error = %v", err)
	}
	if got := r.Screen().Row(0); !strings.HasPrefix(got, "────") {
		t.Errorf("row 0 = %q, expected four line cells", got)
	}
}

func TestDrawLineOffScreenIsIgnored(t *testing.T) {
	r := NewTermRenderer(loadTestMap(t), testRenderOptions(), nil)
	if err := r.DrawLine(core.Pt(-500, -500), core.Pt(-400, -500), core.ColorCyan); err != nil {
		t.Fatalf("DrawLine() error = %v", err)
	}
	if err := r.DrawLine(core.Pt(0, 0), core.Pt(100, 90), core.ColorCyan); err != nil {
		t.Fatalf("DrawLine() diagonal error = %v", err)
	}
}

func TestDrawImage(t *testing.T) {
	r := NewTermRenderer(loadTestMap(t), testRenderOptions(), nil)

	// Ghost at column 3, row 1 of the layout.
	if err := r.DrawImage("ghost.png", 32+96, 64+32, 32, 32); err != nil {
		t.Fatalf("DrawImage() error = %v", err)
	}
	cell := r.Screen().GetCell(14, 3)
	if cell.Rune != 'M' || cell.Color != core.ColorRed {
		t.Errorf("cell (14,3) = %+v, expected red M", cell)
	}

	err := r.DrawImage("missing.png", 0, 0, 32, 32)
	if err == nil || !strings.Contains(err.Error(), "missing.png") {
		t.Errorf("DrawImage() of unknown asset error = %v", err)
	}
}

func TestFillRect(t *testing.T) {
	r := NewTermRenderer(loadTestMap(t), testRenderOptions(), nil)
	s := r.Screen()

	// Pickup of layout cell (1,1): no cell center lies inside it.
	if err := r.FillRect(32+32+12, 64+32+12, 8, 8, core.ColorYellow); err != nil {
		t.Fatalf("FillRect() error = %v", err)
	}
	if got := s.GetCell(6, 3); got.Rune != runePickup || got.Color != core.ColorYellow {
		t.Errorf("pickup cell = %+v, expected yellow %q", got, runePickup)
	}

	// A whole layout cell covers 4x2 terminal cells.
	if err := r.FillRect(32, 64, 32, 32, core.ColorWhite); err != nil {
		t.Fatalf("FillRect() error = %v", err)
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			if got := s.Get(col, row); got != runeSolid {
				t.Errorf("cell (%d,%d) = %q, expected %q", col, row, got, runeSolid)
			}
		}
	}
	if got := s.Get(4, 0); got == runeSolid {
		t.Error("FillRect painted past the rectangle")
	}
}

func TestClearAndPresent(t *testing.T) {
	var presented *core.Screen
	r := NewTermRenderer(loadTestMap(t), testRenderOptions(), func(s *core.Screen) {
		presented = s
	})

	r.DrawLine(core.Pt(39, 71), core.Pt(57, 71), core.ColorCyan)
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := r.Screen().Get(0, 0); got != ' ' {
		t.Errorf("Clear() left %q", got)
	}

	if err := r.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if presented != r.Screen() {
		t.Error("Present() did not hand over the screen")
	}
}

func TestPaletteRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.Set(0, 0, '─', core.ColorCyan)
	s.Set(1, 0, '─', core.ColorCyan)
	s.Set(3, 1, 'M', core.ColorRed)

	out := NewPalette(nil).RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	if !strings.Contains(out, "──") || !strings.Contains(out, "M") {
		t.Errorf("RenderScreen() = %q, missing cells", out)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 8, 0},
		{8, 8, 1},
		{-1, 8, -1},
		{-8, 8, -1},
		{-9, 8, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.want)
		}
	}
}
