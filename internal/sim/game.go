package sim

import (
	"context"
	"fmt"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// Outcome is the state of a session after a frame.
type Outcome int

const (
	Running Outcome = iota
	Win
	Lose
	Close
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "Running"
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case Close:
		return "Close"
	default:
		return "Unknown"
	}
}

const (
	pickupSize   = 8
	pickupOffset = core.CellSize/2 - pickupSize/2
)

// Game owns the entities and the remaining pickups of one session and
// sequences a frame.
type Game struct {
	env       *Environment
	pickups   []core.Point
	cancelKey core.Key
	started   bool
	frames    int
}

// NewGame creates an empty session cancelled by the escape key.
func NewGame() *Game {
	return &Game{
		env:       NewEnvironment(),
		cancelKey: core.KeyEscape,
	}
}

// AddEntity registers an entity. Must be called before Start.
func (g *Game) AddEntity(e Entity) {
	g.env.Add(e)
}

// SetPickups replaces the pickup sequence with a copy of pts.
func (g *Game) SetPickups(pts []core.Point) {
	g.pickups = append([]core.Point(nil), pts...)
}

// Pickups returns the remaining pickup positions.
func (g *Game) Pickups() []core.Point {
	return g.pickups
}

// SetCancelKey sets the key that ends the session with Close.
func (g *Game) SetCancelKey(k core.Key) {
	g.cancelKey = k
}

// Environment exposes the entity registry.
func (g *Game) Environment() *Environment {
	return g.env
}

// Frames returns the number of frames that ran to completion.
func (g *Game) Frames() int {
	return g.frames
}

// Start calls every entity's Start hook once. Later calls are no-ops.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	view := g.env.View()
	for _, e := range g.env.All() {
		e.Start(view)
	}
}

// Frame runs one frame against the given events. It returns Running while
// the session continues. Errors come only from the renderer.
func (g *Game) Frame(events []core.Event, r Renderer) (Outcome, error) {
	g.Start()

	for _, ev := range events {
		if ev.Kind == core.EventQuit || (ev.Kind == core.EventKeyDown && ev.Key == g.cancelKey) {
			return Close, nil
		}
	}
	for _, ev := range events {
		if ev.Kind == core.EventKeyDown {
			g.dispatchKey(ev.Key)
		}
	}

	if g.caught() {
		return Lose, nil
	}

	view := g.env.View()
	for _, e := range g.env.All() {
		e.Update(view)
	}

	g.collectPickup()
	if len(g.pickups) == 0 {
		return Win, nil
	}

	if err := g.draw(r); err != nil {
		return Running, err
	}
	g.frames++
	return Running, nil
}

// Run starts the session and loops frames until a terminal outcome, a
// renderer error or ctx cancellation, which ends the session with Close.
func (g *Game) Run(ctx context.Context, in InputSource, r Renderer, p Pacer) (Outcome, error) {
	g.Start()
	for {
		if ctx.Err() != nil {
			return Close, nil
		}
		out, err := g.Frame(in.Poll(), r)
		if err != nil {
			return out, err
		}
		if out != Running {
			return out, nil
		}
		if err := p.Wait(ctx); err != nil {
			return Close, nil
		}
	}
}

func (g *Game) dispatchKey(k core.Key) {
	for _, e := range g.env.All() {
		e.OnKey(k)
	}
}

// caught reports whether pacman shares a grid cell with any ghost.
func (g *Game) caught() bool {
	pac, ok := g.env.FirstMatching(PacmanName)
	if !ok {
		return false
	}
	cell := core.CellOf(pac.Pos())
	for _, e := range g.env.All() {
		if e.Name() != GhostName {
			continue
		}
		if core.CellOf(e.Pos()) == cell {
			return true
		}
	}
	return false
}

// collectPickup removes at most one pickup in pacman's grid cell.
func (g *Game) collectPickup() {
	pac, ok := g.env.FirstMatching(PacmanName)
	if !ok {
		return
	}
	cell := core.CellOf(pac.Pos())
	for i, p := range g.pickups {
		if core.CellOf(p.X, p.Y) == cell {
			g.pickups = append(g.pickups[:i], g.pickups[i+1:]...)
			return
		}
	}
}

func (g *Game) draw(r Renderer) error {
	if err := r.Clear(); err != nil {
		return fmt.Errorf("sim: clear: %w", err)
	}
	for _, p := range g.pickups {
		if err := r.FillRect(p.X+pickupOffset, p.Y+pickupOffset, pickupSize, pickupSize, core.ColorYellow); err != nil {
			return fmt.Errorf("sim: draw pickup at (%d, %d): %w", p.X, p.Y, err)
		}
	}
	for _, e := range g.env.All() {
		if err := drawEntity(r, e); err != nil {
			return fmt.Errorf("sim: draw entity %q: %w", e.Name(), err)
		}
	}
	if err := r.Present(); err != nil {
		return fmt.Errorf("sim: present: %w", err)
	}
	return nil
}

func drawEntity(r Renderer, e Entity) error {
	x, y := e.Pos()
	v := e.Visual()
	switch v.Kind {
	case VisualLines:
		c := e.Color()
		for _, l := range v.Lines {
			l = l.Translate(x, y)
			if err := r.DrawLine(l.Start, l.End, c); err != nil {
				return err
			}
		}
	case VisualImage:
		return r.DrawImage(v.Asset, x, y, core.CellSize, core.CellSize)
	}
	return nil
}
