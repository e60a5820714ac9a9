package sim

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/maze-chase/internal/core"
)

func TestStyleLines(t *testing.T) {
	tests := []struct {
		code  rune
		style Style
		want  []Line
	}{
		{'1', StyleFull, []Line{Seg(7, 7, 25, 7), Seg(7, 7, 7, 25), Seg(25, 7, 25, 25), Seg(7, 25, 25, 25)}},
		{'2', StyleTop, []Line{Seg(7, 0, 7, 25), Seg(25, 0, 25, 25), Seg(7, 25, 25, 25)}},
		{'3', StyleBottom, []Line{Seg(7, 7, 25, 7), Seg(7, 7, 7, 32), Seg(25, 7, 25, 32)}},
		{'4', StyleLeft, []Line{Seg(0, 7, 25, 7), Seg(25, 7, 25, 25), Seg(0, 25, 25, 25)}},
		{'5', StyleRight, []Line{Seg(7, 7, 32, 7), Seg(7, 7, 7, 25), Seg(7, 25, 32, 25)}},
		{'6', StyleTopBottom, []Line{Seg(7, 0, 7, 32), Seg(25, 0, 25, 32)}},
		{'7', StyleLeftRight, []Line{Seg(0, 7, 32, 7), Seg(0, 25, 32, 25)}},
		{'8', StyleBottomRight, []Line{Seg(7, 7, 32, 7), Seg(7, 7, 7, 32), Seg(25, 25, 25, 32), Seg(25, 25, 32, 25)}},
		{'9', StyleBottomLeft, []Line{Seg(0, 7, 25, 7), Seg(0, 25, 7, 25), Seg(7, 25, 7, 32), Seg(25, 7, 25, 32)}},
		{'a', StyleTopRight, []Line{Seg(7, 0, 7, 25), Seg(7, 25, 32, 25), Seg(25, 0, 25, 7), Seg(25, 7, 32, 7)}},
		{'b', StyleTopLeft, []Line{Seg(0, 7, 7, 7), Seg(7, 0, 7, 7), Seg(25, 0, 25, 25), Seg(0, 25, 25, 25)}},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			style, ok := StyleFromCode(tt.code)
			if !ok || style != tt.style {
				t.Fatalf("StyleFromCode(%q) = %v, %v; expected %v", tt.code, style, ok, tt.style)
			}

			b := NewBlock(BlockName, 64, 96, style)
			b.Start(nil)
			got := b.Visual()
			if got.Kind != VisualLines {
				t.Fatalf("Visual().Kind = %v, expected lines", got.Kind)
			}
			if !reflect.DeepEqual(got.Lines, tt.want) {
				t.Errorf("lines = %v, expected %v", got.Lines, tt.want)
			}

			// Generation is deterministic.
			again := NewBlock(BlockName, 0, 0, style)
			again.Start(nil)
			if !reflect.DeepEqual(again.Visual().Lines, got.Lines) {
				t.Error("shape generation is not deterministic")
			}
		})
	}
}

func TestStyleFromCodeRejectsOtherRunes(t *testing.T) {
	for _, r := range []rune{'0', '.', ' ', 'c', 'A', '#'} {
		if _, ok := StyleFromCode(r); ok {
			t.Errorf("StyleFromCode(%q) should not map to a style", r)
		}
	}
}

func TestStyleLinesReturnsCopy(t *testing.T) {
	lines := StyleFull.Lines()
	lines[0] = Seg(0, 0, 0, 0)
	if StyleFull.Lines()[0] == lines[0] {
		t.Error("Lines() should not expose the shared table")
	}
}

func TestBlockBoundsIsFullCell(t *testing.T) {
	// Even a style drawing two walls collides over the whole cell.
	b := NewBlock(BlockName, 96, 128, StyleLeftRight)
	want := core.NewRect(96, 128, 32, 32)
	if got := b.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, expected %+v", got, want)
	}
	if b.Color() != core.ColorCyan {
		t.Errorf("Color() = %v, expected cyan", b.Color())
	}
	if b.Name() != "block" {
		t.Errorf("Name() = %q, expected block", b.Name())
	}
}

func TestBlockHasNoShapeBeforeStart(t *testing.T) {
	b := NewBlock(BlockName, 0, 0, StyleFull)
	if n := len(b.Visual().Lines); n != 0 {
		t.Errorf("expected no lines before Start, got %d", n)
	}
}
