package sim

import (
	"github.com/vovakirdan/maze-chase/internal/core"
)

const (
	// PacmanName is the name the player actor is looked up by.
	PacmanName = "pacman"

	// PacmanSpeed is the movement speed in pixels per frame.
	PacmanSpeed = 4

	// TurnTolerance is how close to a cell boundary, as a fraction of a cell,
	// pacman must be before a queued turn is taken.
	TurnTolerance = 0.05
)

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// Directions pacman can face. DirNone means no turn is queued.
var (
	DirNone  = Direction{0, 0}
	DirRight = Direction{1, 0}
	DirLeft  = Direction{-1, 0}
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
)

// PacmanAssets are the image assets for each facing.
type PacmanAssets struct {
	Right string `yaml:"right"`
	Left  string `yaml:"left"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
}

// DefaultPacmanAssets returns the bundled image paths.
func DefaultPacmanAssets() PacmanAssets {
	return PacmanAssets{
		Right: "./res/pacman_right.jpg",
		Left:  "./res/pacman_left.jpg",
		Up:    "./res/pacman_up.jpg",
		Down:  "./res/pacman_down.jpg",
	}
}

func (a PacmanAssets) forDirection(d Direction) (string, bool) {
	switch d {
	case DirRight:
		return a.Right, true
	case DirLeft:
		return a.Left, true
	case DirUp:
		return a.Up, true
	case DirDown:
		return a.Down, true
	}
	return "", false
}

// Pacman is the player actor. It glides at sub-cell resolution but only turns,
// or resumes after hitting a wall, when it is aligned with the grid.
type Pacman struct {
	name   string
	x, y   int
	dir    Direction
	wish   Direction
	walls  []core.Rect
	keys   KeyBindings
	assets PacmanAssets
	visual Visual
}

// NewPacman creates pacman at (x, y) facing right with no queued turn.
func NewPacman(name string, x, y int) *Pacman {
	assets := DefaultPacmanAssets()
	return &Pacman{
		name:   name,
		x:      x,
		y:      y,
		dir:    DirRight,
		keys:   DefaultKeyBindings(),
		assets: assets,
		visual: ImageVisual(assets.Right),
	}
}

// SetBlocks captures a private snapshot of the walls pacman collides with.
// Later changes to the blocks are not observed.
func (p *Pacman) SetBlocks(blocks []*Block) {
	p.walls = make([]core.Rect, len(blocks))
	for i, b := range blocks {
		p.walls[i] = b.Bounds()
	}
}

// SetKeyBindings replaces the direction bindings.
func (p *Pacman) SetKeyBindings(kb KeyBindings) {
	p.keys = kb
}

// SetAssets replaces the facing images and refreshes the current one.
func (p *Pacman) SetAssets(a PacmanAssets) {
	p.assets = a
	if asset, ok := a.forDirection(p.dir); ok {
		p.visual = ImageVisual(asset)
	}
}

func (p *Pacman) Name() string      { return p.name }
func (p *Pacman) Pos() (int, int)   { return p.x, p.y }
func (p *Pacman) Visual() Visual    { return p.visual }
func (p *Pacman) Color() core.Color { return core.ColorYellow }

// Direction returns the current heading.
func (p *Pacman) Direction() Direction { return p.dir }

// Queued returns the turn waiting for the next turn point.
func (p *Pacman) Queued() Direction { return p.wish }

func (p *Pacman) Start(*Env) {}

// OnKey latches a turn request if k is bound to a direction.
func (p *Pacman) OnKey(k core.Key) {
	if d := p.keys.Direction(k); d != DirNone {
		p.wish = d
	}
}

// Update moves pacman one frame: X first, then Y against the committed X,
// then takes a queued turn if blocked or grid-aligned.
func (p *Pacman) Update(*Env) {
	offX := subCell(p.x)
	offY := subCell(p.y)

	blocked := false

	newX := p.x + p.dir.DX*PacmanSpeed
	if p.hits(core.CellRect(newX, p.y)) {
		newX = p.x
		blocked = true
	}
	p.x = newX

	if !blocked {
		newY := p.y + p.dir.DY*PacmanSpeed
		if p.hits(core.CellRect(p.x, newY)) {
			newY = p.y
			blocked = true
		}
		p.y = newY
	}

	if blocked || (offX < TurnTolerance && offY < TurnTolerance) {
		p.step()
	}
}

// step takes the queued turn: new heading, snapped position, matching image.
func (p *Pacman) step() {
	if p.wish == DirNone {
		return
	}
	p.dir = p.wish
	if asset, ok := p.assets.forDirection(p.dir); ok {
		p.visual = ImageVisual(asset)
	}
	p.x = core.Snap(p.x)
	p.y = core.Snap(p.y)
	p.wish = DirNone
}

func (p *Pacman) hits(r core.Rect) bool {
	for _, w := range p.walls {
		if r.Intersects(w) {
			return true
		}
	}
	return false
}

// subCell returns the fractional part of v measured in cells.
func subCell(v int) float64 {
	return float64(v)/core.CellSize - float64(v/core.CellSize)
}
