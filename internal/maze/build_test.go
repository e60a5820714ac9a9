package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/registry"
	"github.com/vovakirdan/maze-chase/internal/sim"
	"github.com/vovakirdan/maze-chase/internal/sim/simtest"
)

func TestClassicIsRegistered(t *testing.T) {
	require.True(t, registry.Exists(DefaultMap))

	var title string
	for _, info := range registry.List() {
		if info.ID == DefaultMap {
			title = info.Title
		}
	}
	assert.Equal(t, "Classic", title)
}

func TestOpenUnknownMap(t *testing.T) {
	_, err := Open("no-such-map")
	assert.ErrorIs(t, err, ErrUnknownMap)
}

func TestBuildClassic(t *testing.T) {
	m, err := Open(DefaultMap)
	require.NoError(t, err)

	desc := m.Description()
	assert.Equal(t, 20, desc.Width)
	assert.Equal(t, 13, desc.Height)
	assert.Len(t, desc.Walls, 134)
	assert.Len(t, desc.Pickups, 124)

	g := Build(m, BuildOptions{})
	all := g.Environment().All()
	require.Len(t, all, 134+1+3)

	// Walls first, then pacman, then the ghosts.
	for i := 0; i < 134; i++ {
		assert.Equal(t, sim.BlockName, all[i].Name(), "entity %d", i)
	}
	assert.Equal(t, sim.PacmanName, all[134].Name())
	for i := 135; i < len(all); i++ {
		assert.Equal(t, sim.GhostName, all[i].Name(), "entity %d", i)
	}

	x, y := all[0].Pos()
	assert.Equal(t, [2]int{64, 96}, [2]int{x, y}, "first wall sits at the origin")

	x, y = all[134].Pos()
	assert.Equal(t, [2]int{64, 96 + 6*32}, [2]int{x, y})

	red := all[135].(*sim.Ghost)
	x, y = red.Pos()
	assert.Equal(t, [2]int{64 + 2*32, 96 + 32}, [2]int{x, y})
	tx, ty := red.Target()
	assert.Equal(t, [2]int{64 + 17*32, 96 + 32}, [2]int{tx, ty})
	assert.Equal(t, "./res/red.jpg", red.Visual().Asset)

	pink := all[137].(*sim.Ghost)
	tx, ty = pink.Target()
	assert.Equal(t, [2]int{64 + 7*32, 96 + 11*32}, [2]int{tx, ty})

	pickups := g.Pickups()
	require.Len(t, pickups, 124)
	assert.Equal(t, core.Pt(64+32, 96+32), pickups[0])
}

func TestBuildReturnsFreshState(t *testing.T) {
	m, err := Open(DefaultMap)
	require.NoError(t, err)

	first := Build(m, BuildOptions{})
	first.SetPickups(nil)
	first.Environment().Clear()

	second := Build(m, BuildOptions{})
	assert.Len(t, second.Pickups(), 124)
	assert.Equal(t, 138, second.Environment().Len())
}

func TestBuildOptions(t *testing.T) {
	m, err := ParseYAML([]byte(tinyMap))
	require.NoError(t, err)

	g := Build(m, BuildOptions{
		CancelKey:    "q",
		Keys:         sim.KeyBindings{Down: []core.Key{"j"}},
		PacmanAssets: sim.PacmanAssets{Right: "r", Left: "l", Up: "u", Down: "d"},
	})

	ent, ok := g.Environment().FirstMatching(sim.PacmanName)
	require.True(t, ok)
	pac := ent.(*sim.Pacman)
	assert.Equal(t, "r", pac.Visual().Asset)

	pac.OnKey("j")
	assert.Equal(t, sim.DirDown, pac.Queued())

	out, err := g.Frame([]core.Event{core.Press(core.KeyEscape)}, &simtest.RecordingRenderer{})
	require.NoError(t, err)
	assert.Equal(t, sim.Running, out, "escape is not the cancel key")

	out, err = g.Frame([]core.Event{core.Press("q")}, &simtest.RecordingRenderer{})
	require.NoError(t, err)
	assert.Equal(t, sim.Close, out)
}

func TestBuildPacmanCollidesWithLayoutWalls(t *testing.T) {
	m, err := ParseYAML([]byte(tinyMap))
	require.NoError(t, err)
	g := Build(m, BuildOptions{})

	ent, _ := g.Environment().FirstMatching(sim.PacmanName)
	pac := ent.(*sim.Pacman)
	pac.OnKey("up")
	pac.Update(nil)

	// The turn is taken, and the wall above then stops any movement.
	pac.Update(nil)
	x, y := pac.Pos()
	assert.Equal(t, [2]int{32, 64 + 32}, [2]int{x, y})
}
