package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// Runes used to rasterize world geometry.
const (
	runeHorizontal = '─'
	runeVertical   = '│'
	runeCross      = '┼'
	runeDiagonal   = '·'
	runePickup     = '•'
	runeSolid      = '█'
)

// RenderOptions controls how world pixels map onto terminal cells.
type RenderOptions struct {
	PixelsPerColumn int
	PixelsPerRow    int

	// Glyphs stand in for image assets, keyed by asset path.
	Glyphs map[string]config.GlyphCell
}

// RenderOptionsFrom builds render options from the configuration.
func RenderOptionsFrom(cfg config.Config) RenderOptions {
	return RenderOptions{
		PixelsPerColumn: cfg.Render.PixelsPerColumn,
		PixelsPerRow:    cfg.Render.PixelsPerRow,
		Glyphs:          cfg.GlyphTable(),
	}
}

// ScreenSize returns the terminal cells needed to show the whole layout of m.
func ScreenSize(m *maze.MapFile, opts RenderOptions) (width, height int) {
	desc := m.Description()
	width = ceilDiv(desc.Width*core.CellSize, opts.PixelsPerColumn)
	height = ceilDiv(desc.Height*core.CellSize, opts.PixelsPerRow)
	return width, height
}

// TermRenderer rasterizes frames onto a core.Screen. The screen's top-left
// cell shows the world position Origin.
type TermRenderer struct {
	screen  *core.Screen
	origin  core.Point
	opts    RenderOptions
	present func(*core.Screen)
}

// NewTermRenderer creates a renderer sized for the layout of m. present is
// called with the finished screen on every Present; it may be nil.
func NewTermRenderer(m *maze.MapFile, opts RenderOptions, present func(*core.Screen)) *TermRenderer {
	w, h := ScreenSize(m, opts)
	return &TermRenderer{
		screen:  core.NewScreen(w, h),
		origin:  core.Pt(m.Origin.X, m.Origin.Y),
		opts:    opts,
		present: present,
	}
}

// Screen returns the buffer frames are drawn into.
func (r *TermRenderer) Screen() *core.Screen {
	return r.screen
}

func (r *TermRenderer) Clear() error {
	r.screen.Clear()
	return nil
}

// DrawLine draws the pixel span [p0, p1) of an axis-aligned line. Crossing
// lines merge into a cross; diagonal lines are dotted.
func (r *TermRenderer) DrawLine(p0, p1 core.Point, c core.Color) error {
	switch {
	case p0.Y == p1.Y:
		row := r.row(p0.Y)
		from, to := r.span(p0.X, p1.X, r.opts.PixelsPerColumn, r.origin.X)
		for col := from; col <= to; col++ {
			r.plot(col, row, runeHorizontal, c)
		}
	case p0.X == p1.X:
		col := r.col(p0.X)
		from, to := r.span(p0.Y, p1.Y, r.opts.PixelsPerRow, r.origin.Y)
		for row := from; row <= to; row++ {
			r.plot(col, row, runeVertical, c)
		}
	default:
		r.diagonal(p0, p1, c)
	}
	return nil
}

// DrawImage draws the glyph configured for asset at the cell holding the
// center of the destination rectangle.
func (r *TermRenderer) DrawImage(asset string, x, y, w, h int) error {
	g, ok := r.opts.Glyphs[asset]
	if !ok {
		return fmt.Errorf("tui: no glyph for asset %q", asset)
	}
	r.screen.Set(r.col(x+w/2), r.row(y+h/2), g.Rune, g.Color)
	return nil
}

// FillRect paints every cell whose center lies inside the rectangle. A
// rectangle smaller than a cell paints the cell holding its center.
func (r *TermRenderer) FillRect(x, y, w, h int, c core.Color) error {
	ch := runeSolid
	if w*h <= r.opts.PixelsPerColumn*r.opts.PixelsPerRow {
		ch = runePickup
	}

	rect := core.NewRect(x, y, w, h)
	painted := false
	for row := r.row(y); row <= r.row(y+h); row++ {
		for col := r.col(x); col <= r.col(x+w); col++ {
			cx := r.origin.X + col*r.opts.PixelsPerColumn + r.opts.PixelsPerColumn/2
			cy := r.origin.Y + row*r.opts.PixelsPerRow + r.opts.PixelsPerRow/2
			if rect.Contains(cx, cy) {
				r.screen.Set(col, row, ch, c)
				painted = true
			}
		}
	}
	if !painted {
		r.screen.Set(r.col(x+w/2), r.row(y+h/2), ch, c)
	}
	return nil
}

func (r *TermRenderer) Present() error {
	if r.present != nil {
		r.present(r.screen)
	}
	return nil
}

func (r *TermRenderer) col(x int) int {
	return floorDiv(x-r.origin.X, r.opts.PixelsPerColumn)
}

func (r *TermRenderer) row(y int) int {
	return floorDiv(y-r.origin.Y, r.opts.PixelsPerRow)
}

// span returns the first and last cell covered by the pixels [a, b) or [b, a).
func (r *TermRenderer) span(a, b, scale, origin int) (int, int) {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi > lo {
		hi--
	}
	return floorDiv(lo-origin, scale), floorDiv(hi-origin, scale)
}

func (r *TermRenderer) plot(col, row int, ch rune, c core.Color) {
	if !r.screen.InBounds(col, row) {
		return
	}
	switch prev := r.screen.Get(col, row); {
	case prev == runeCross:
		ch = runeCross
	case prev == runeHorizontal && ch == runeVertical,
		prev == runeVertical && ch == runeHorizontal:
		ch = runeCross
	}
	r.screen.Set(col, row, ch, c)
}

func (r *TermRenderer) diagonal(p0, p1 core.Point, c core.Color) {
	x0, y0 := r.col(p0.X), r.row(p0.Y)
	x1, y1 := r.col(p1.X), r.row(p1.Y)
	steps := core.Max(core.Abs(x1-x0), core.Abs(y1-y0))
	if steps == 0 {
		r.screen.Set(x0, y0, runeDiagonal, c)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + (x1-x0)*i/steps
		y := y0 + (y1-y0)*i/steps
		r.screen.Set(x, y, runeDiagonal, c)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Palette renders screens with cached lipgloss styles.
type Palette struct {
	mu       sync.Mutex
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
}

// NewPalette creates a palette for the given renderer. A nil renderer uses
// the default one (standard output).
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Palette{renderer: r, styles: make(map[core.Color]lipgloss.Style)}
}

// Style returns the foreground style for c.
func (p *Palette) Style(c core.Color) lipgloss.Style {
	p.mu.Lock()
	defer p.mu.Unlock()

	style, ok := p.styles[c]
	if !ok {
		style = p.renderer.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		p.styles[c] = style
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
