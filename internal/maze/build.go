package maze

import (
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/sim"
)

// BuildOptions customize the sessions built from a map. Zero values select
// the defaults.
type BuildOptions struct {
	CancelKey    core.Key
	Keys         sim.KeyBindings
	PacmanAssets sim.PacmanAssets
}

// Build constructs a fresh session from m. Walls are registered first in
// row-major order, then pacman, then the ghosts in file order. Every call
// returns independent state, so restarting after a loss is another Build.
func Build(m *MapFile, opts BuildOptions) *sim.Game {
	g := sim.NewGame()
	if opts.CancelKey != "" {
		g.SetCancelKey(opts.CancelKey)
	}

	desc := m.Description()
	blocks := make([]*sim.Block, 0, len(desc.Walls))
	for _, w := range desc.Walls {
		pos := m.World(Cell{Col: w.Col, Row: w.Row})
		b := sim.NewBlock(sim.BlockName, pos.X, pos.Y, w.Style)
		blocks = append(blocks, b)
		g.AddEntity(b)
	}

	start := m.World(m.Player)
	pac := sim.NewPacman(sim.PacmanName, start.X, start.Y)
	pac.SetBlocks(blocks)
	if hasBindings(opts.Keys) {
		pac.SetKeyBindings(opts.Keys)
	}
	if opts.PacmanAssets != (sim.PacmanAssets{}) {
		pac.SetAssets(opts.PacmanAssets)
	}
	g.AddEntity(pac)

	for _, gs := range m.Ghosts {
		from, to := m.World(gs.From), m.World(gs.To)
		g.AddEntity(sim.NewGhost(sim.GhostName, from.X, from.Y, to.X, to.Y, sim.ImageVisual(gs.Asset)))
	}

	pickups := make([]core.Point, len(desc.Pickups))
	for i, p := range desc.Pickups {
		pickups[i] = m.World(Cell{Col: p.X, Row: p.Y})
	}
	g.SetPickups(pickups)

	return g
}

func hasBindings(kb sim.KeyBindings) bool {
	return len(kb.Up)+len(kb.Down)+len(kb.Left)+len(kb.Right) > 0
}
