package sim

import (
	"math"

	"github.com/vovakirdan/maze-chase/internal/core"
)

const (
	// GhostName is the name every patroller is registered under.
	GhostName = "ghost"

	// GhostSpeed is the patrol speed in pixels per frame.
	GhostSpeed = 5
)

// Ghost ping-pongs between two fixed waypoints. It passes through walls.
type Ghost struct {
	name         string
	x, y         int
	homeX, homeY int
	gotoX, gotoY int
	forward      bool
	visual       Visual
}

// NewGhost creates a ghost at its home waypoint (x, y) heading for (gotoX, gotoY).
func NewGhost(name string, x, y, gotoX, gotoY int, visual Visual) *Ghost {
	return &Ghost{
		name:    name,
		x:       x,
		y:       y,
		homeX:   x,
		homeY:   y,
		gotoX:   gotoX,
		gotoY:   gotoY,
		forward: true,
		visual:  visual,
	}
}

func (g *Ghost) Name() string      { return g.name }
func (g *Ghost) Pos() (int, int)   { return g.x, g.y }
func (g *Ghost) Visual() Visual    { return g.visual }
func (g *Ghost) Color() core.Color { return core.ColorRed }

// Forward reports whether the ghost is heading for its target waypoint
// rather than returning home.
func (g *Ghost) Forward() bool { return g.forward }

// Target returns the waypoint the ghost is currently moving to.
func (g *Ghost) Target() (int, int) {
	if g.forward {
		return g.gotoX, g.gotoY
	}
	return g.homeX, g.homeY
}

func (g *Ghost) Start(*Env)     {}
func (g *Ghost) OnKey(core.Key) {}

// Update moves the ghost one step towards its current waypoint. A waypoint
// within reach is landed on exactly and the heading flips.
func (g *Ghost) Update(*Env) {
	tx, ty := g.Target()
	dx := float64(tx - g.x)
	dy := float64(ty - g.y)
	dist := math.Hypot(dx, dy)

	if dist <= GhostSpeed {
		g.x, g.y = tx, ty
		g.forward = !g.forward
		return
	}

	g.x += int(math.Round(dx / dist * GhostSpeed))
	g.y += int(math.Round(dy / dist * GhostSpeed))
}
