package sim

import "github.com/vovakirdan/maze-chase/internal/core"

// Line is a segment in an entity's local cell space.
type Line struct {
	Start, End core.Point
}

// Seg is shorthand for a Line between (x0, y0) and (x1, y1).
func Seg(x0, y0, x1, y1 int) Line {
	return Line{Start: core.Pt(x0, y0), End: core.Pt(x1, y1)}
}

// Translate returns the line moved by (x, y) into world space.
func (l Line) Translate(x, y int) Line {
	off := core.Pt(x, y)
	return Line{Start: l.Start.Add(off), End: l.End.Add(off)}
}

// VisualKind selects the representation held by a Visual.
type VisualKind int

const (
	VisualLines VisualKind = iota
	VisualImage
)

// Visual is a passive description of how an entity is rendered: either a set
// of local line segments or an image asset stamped as a cell-sized quad.
type Visual struct {
	Kind  VisualKind
	Lines []Line
	Asset string
}

// LinesVisual creates a line-set visual.
func LinesVisual(lines []Line) Visual {
	return Visual{Kind: VisualLines, Lines: lines}
}

// ImageVisual creates an image visual referencing an asset path.
func ImageVisual(asset string) Visual {
	return Visual{Kind: VisualImage, Asset: asset}
}
