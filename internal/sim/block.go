package sim

import "github.com/vovakirdan/maze-chase/internal/core"

// BlockName is shared by every obstacle.
const BlockName = "block"

// Style selects which edges of a wall cell are drawn.
type Style int

const (
	StyleFull Style = iota
	StyleTop
	StyleBottom
	StyleLeft
	StyleRight
	StyleTopBottom
	StyleLeftRight
	StyleBottomRight
	StyleBottomLeft
	StyleTopRight
	StyleTopLeft
)

var styleNames = [...]string{
	StyleFull:        "Full",
	StyleTop:         "Top",
	StyleBottom:      "Bottom",
	StyleLeft:        "Left",
	StyleRight:       "Right",
	StyleTopBottom:   "TopBottom",
	StyleLeftRight:   "LeftRight",
	StyleBottomRight: "BottomRight",
	StyleBottomLeft:  "BottomLeft",
	StyleTopRight:    "TopRight",
	StyleTopLeft:     "TopLeft",
}

// String returns the style name.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "Unknown"
	}
	return styleNames[s]
}

// StyleFromCode maps a layout character ('1'-'9', 'a', 'b') to its style.
func StyleFromCode(code rune) (Style, bool) {
	switch {
	case code >= '1' && code <= '9':
		return Style(code - '1'), true
	case code == 'a':
		return StyleTopRight, true
	case code == 'b':
		return StyleTopLeft, true
	}
	return 0, false
}

// styleLines holds the local segments of each style.
var styleLines = [...][]Line{
	StyleFull:        {Seg(7, 7, 25, 7), Seg(7, 7, 7, 25), Seg(25, 7, 25, 25), Seg(7, 25, 25, 25)},
	StyleTop:         {Seg(7, 0, 7, 25), Seg(25, 0, 25, 25), Seg(7, 25, 25, 25)},
	StyleBottom:      {Seg(7, 7, 25, 7), Seg(7, 7, 7, 32), Seg(25, 7, 25, 32)},
	StyleLeft:        {Seg(0, 7, 25, 7), Seg(25, 7, 25, 25), Seg(0, 25, 25, 25)},
	StyleRight:       {Seg(7, 7, 32, 7), Seg(7, 7, 7, 25), Seg(7, 25, 32, 25)},
	StyleTopBottom:   {Seg(7, 0, 7, 32), Seg(25, 0, 25, 32)},
	StyleLeftRight:   {Seg(0, 7, 32, 7), Seg(0, 25, 32, 25)},
	StyleBottomRight: {Seg(7, 7, 32, 7), Seg(7, 7, 7, 32), Seg(25, 25, 25, 32), Seg(25, 25, 32, 25)},
	StyleBottomLeft:  {Seg(0, 7, 25, 7), Seg(0, 25, 7, 25), Seg(7, 25, 7, 32), Seg(25, 7, 25, 32)},
	StyleTopRight:    {Seg(7, 0, 7, 25), Seg(7, 25, 32, 25), Seg(25, 0, 25, 7), Seg(25, 7, 32, 7)},
	StyleTopLeft:     {Seg(0, 7, 7, 7), Seg(7, 0, 7, 7), Seg(25, 0, 25, 25), Seg(0, 25, 25, 25)},
}

// Lines returns a fresh copy of the style's segments in local cell space.
func (s Style) Lines() []Line {
	if s < 0 || int(s) >= len(styleLines) {
		return nil
	}
	return append([]Line(nil), styleLines[s]...)
}

// Block is a static wall cell. Its collision footprint is always the whole
// cell, whatever edges its style draws.
type Block struct {
	name  string
	x, y  int
	style Style
	lines []Line
}

// NewBlock creates a block anchored at (x, y). Its shape is generated by Start.
func NewBlock(name string, x, y int, style Style) *Block {
	return &Block{name: name, x: x, y: y, style: style}
}

func (b *Block) Name() string      { return b.name }
func (b *Block) Pos() (int, int)   { return b.x, b.y }
func (b *Block) Color() core.Color { return core.ColorCyan }
func (b *Block) Style() Style      { return b.style }

// Bounds returns the collision footprint.
func (b *Block) Bounds() core.Rect {
	return core.CellRect(b.x, b.y)
}

func (b *Block) Visual() Visual {
	return LinesVisual(b.lines)
}

// Start generates the line pattern for the block's style.
func (b *Block) Start(*Env) {
	b.lines = b.style.Lines()
}

func (b *Block) Update(*Env)    {}
func (b *Block) OnKey(core.Key) {}
