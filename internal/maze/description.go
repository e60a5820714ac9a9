// Package maze turns textual map descriptions into fresh simulation sessions.
//
// A layout is a grid of characters, one row per line: '1'-'9', 'a' and 'b'
// select a wall style, '.' marks a pickup and anything else is empty floor.
package maze

import (
	"errors"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/sim"
)

// PickupMark is the layout character for a pickup cell.
const PickupMark = '.'

var (
	// ErrEmptyLayout is returned for a layout with no rows.
	ErrEmptyLayout = errors.New("maze: empty layout")

	// ErrNoPickups is returned for a layout that would be won before the first frame.
	ErrNoPickups = errors.New("maze: layout has no pickups")
)

// Wall is one wall cell of a layout.
type Wall struct {
	Col, Row int
	Style    sim.Style
}

// Description is a parsed layout in grid coordinates.
type Description struct {
	Walls   []Wall
	Pickups []core.Point // Column/row of every pickup, row-major
	Width   int          // Longest row, in cells
	Height  int          // Rows, in cells

	layout string
}

// Parse reads a layout. Rows may differ in length; a trailing newline is ignored.
func Parse(layout string) (*Description, error) {
	layout = strings.ReplaceAll(layout, "\r\n", "\n")
	layout = strings.TrimSuffix(layout, "\n")
	if strings.TrimSpace(layout) == "" {
		return nil, ErrEmptyLayout
	}

	d := &Description{layout: layout}
	for row, line := range strings.Split(layout, "\n") {
		col := 0
		for _, c := range line {
			if style, ok := sim.StyleFromCode(c); ok {
				d.Walls = append(d.Walls, Wall{Col: col, Row: row, Style: style})
			} else if c == PickupMark {
				d.Pickups = append(d.Pickups, core.Pt(col, row))
			}
			col++
		}
		d.Width = core.Max(d.Width, col)
		d.Height++
	}

	if len(d.Pickups) == 0 {
		return nil, ErrNoPickups
	}
	return d, nil
}

// Layout returns the normalized layout text.
func (d *Description) Layout() string {
	return d.layout
}

// Checksum identifies the layout revision. Maps sharing an ID but differing
// in layout get different checksums.
func (d *Description) Checksum() uint64 {
	return xxhash.Sum64String(d.layout)
}

// Contains reports whether (col, row) lies inside the grid.
func (d *Description) Contains(col, row int) bool {
	return col >= 0 && col < d.Width && row >= 0 && row < d.Height
}
