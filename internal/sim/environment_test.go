package sim

import (
	"testing"

	"github.com/vovakirdan/maze-chase/internal/core"
)

func TestEnvironmentFirstMatching(t *testing.T) {
	env := NewEnvironment()
	b1 := NewBlock(BlockName, 0, 0, StyleFull)
	b2 := NewBlock(BlockName, 32, 0, StyleFull)
	p := NewPacman(PacmanName, 64, 0)
	env.Add(b1)
	env.Add(b2)
	env.Add(p)

	got, ok := env.FirstMatching(BlockName)
	if !ok || got != b1 {
		t.Errorf("FirstMatching(block) = %v, %v; expected the first block", got, ok)
	}
	got, ok = env.FirstMatching(PacmanName)
	if !ok || got != p {
		t.Errorf("FirstMatching(pacman) = %v, %v; expected pacman", got, ok)
	}
	if _, ok := env.FirstMatching("nobody"); ok {
		t.Error("FirstMatching should report a missing name")
	}
}

func TestEnvironmentOrderAndDuplicates(t *testing.T) {
	env := NewEnvironment()
	g := NewGhost(GhostName, 0, 0, 10, 0, ImageVisual("x"))
	env.Add(g)
	env.Add(g)

	if env.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 (duplicates allowed)", env.Len())
	}

	view := env.View()
	if view.Len() != 2 || view.At(0) != view.At(1) {
		t.Error("view should expose both registrations in order")
	}

	var names []string
	view.Each(func(e Entity) bool {
		names = append(names, e.Name())
		return false
	})
	if len(names) != 1 {
		t.Errorf("Each should stop when fn returns false, visited %d", len(names))
	}
}

func TestEnvironmentClear(t *testing.T) {
	env := NewEnvironment()
	env.Add(NewPacman(PacmanName, 0, 0))
	env.Clear()

	if env.Len() != 0 || len(env.All()) != 0 {
		t.Errorf("Clear() left %d entities", env.Len())
	}
	if _, ok := env.View().FirstMatching(PacmanName); ok {
		t.Error("FirstMatching after Clear should find nothing")
	}
}

// probe reads a sibling through the view during Update.
type probe struct {
	starts  int
	updates int
	seen    core.Point
}

func (p *probe) Name() string      { return "probe" }
func (p *probe) Pos() (int, int)   { return 0, 0 }
func (p *probe) Visual() Visual    { return LinesVisual(nil) }
func (p *probe) Color() core.Color { return core.ColorWhite }
func (p *probe) Start(*Env)        { p.starts++ }
func (p *probe) OnKey(core.Key)    {}

func (p *probe) Update(env *Env) {
	p.updates++
	if pac, ok := env.FirstMatching(PacmanName); ok {
		x, y := pac.Pos()
		p.seen = core.Pt(x, y)
	}
}

func TestEnvViewReadsSiblings(t *testing.T) {
	env := NewEnvironment()
	pr := &probe{}
	env.Add(pr)
	env.Add(NewPacman(PacmanName, 64, 96))

	pr.Update(env.View())
	if pr.seen != core.Pt(64, 96) {
		t.Errorf("probe saw %v, expected (64, 96)", pr.seen)
	}
}
