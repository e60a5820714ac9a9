package sim

import (
	"testing"

	"github.com/vovakirdan/maze-chase/internal/core"
)

func TestPacmanBlockedOnX(t *testing.T) {
	p := NewPacman(PacmanName, 64, 96)
	p.SetBlocks([]*Block{NewBlock(BlockName, 96, 96, StyleFull)})

	p.Update(nil)

	if x, y := p.Pos(); x != 64 || y != 96 {
		t.Errorf("Pos() = (%d, %d), expected (64, 96)", x, y)
	}
	if p.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right (no turn queued)", p.Direction())
	}
}

func TestPacmanBlockedOnY(t *testing.T) {
	p := NewPacman(PacmanName, 64, 96)
	p.dir = DirDown
	p.SetBlocks([]*Block{NewBlock(BlockName, 64, 128, StyleFull)})

	p.Update(nil)

	if x, y := p.Pos(); x != 64 || y != 96 {
		t.Errorf("Pos() = (%d, %d), expected (64, 96)", x, y)
	}
}

func TestPacmanMovesFreely(t *testing.T) {
	tests := []struct {
		name  string
		dir   Direction
		wantX int
		wantY int
	}{
		{"right", DirRight, 68, 96},
		{"left", DirLeft, 60, 96},
		{"up", DirUp, 64, 92},
		{"down", DirDown, 64, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPacman(PacmanName, 64, 96)
			p.dir = tt.dir
			p.SetBlocks([]*Block{NewBlock(BlockName, 256, 256, StyleFull)})

			p.Update(nil)

			if x, y := p.Pos(); x != tt.wantX || y != tt.wantY {
				t.Errorf("Pos() = (%d, %d), expected (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPacmanTurnsAtGridPoint(t *testing.T) {
	p := NewPacman(PacmanName, 64, 96)
	p.OnKey("s")
	if p.Queued() != DirDown {
		t.Fatalf("Queued() = %v, expected down", p.Queued())
	}

	p.Update(nil)

	// The X move to 68 is snapped back onto the cell as the turn is taken.
	if x, y := p.Pos(); x != 64 || y != 96 {
		t.Errorf("Pos() = (%d, %d), expected (64, 96)", x, y)
	}
	if p.Direction() != DirDown {
		t.Errorf("Direction() = %v, expected down", p.Direction())
	}
	if p.Queued() != DirNone {
		t.Errorf("Queued() = %v, expected none", p.Queued())
	}
	if v := p.Visual(); v.Kind != VisualImage || v.Asset != DefaultPacmanAssets().Down {
		t.Errorf("Visual() = %+v, expected down image", v)
	}

	p.Update(nil)
	if x, y := p.Pos(); x != 64 || y != 100 {
		t.Errorf("Pos() = (%d, %d), expected (64, 100)", x, y)
	}
}

func TestPacmanKeepsTurnQueuedMidCell(t *testing.T) {
	p := NewPacman(PacmanName, 68, 96)
	p.OnKey(core.KeyUp)

	p.Update(nil)

	if x, y := p.Pos(); x != 72 || y != 96 {
		t.Errorf("Pos() = (%d, %d), expected (72, 96)", x, y)
	}
	if p.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", p.Direction())
	}
	if p.Queued() != DirUp {
		t.Errorf("Queued() = %v, expected up to stay queued", p.Queued())
	}

	// Keep gliding until the next cell boundary, where the turn is taken.
	for i := 0; i < 6; i++ {
		p.Update(nil)
	}
	if x, _ := p.Pos(); x != 96 {
		t.Fatalf("x = %d, expected 96 after reaching the next cell", x)
	}
	p.Update(nil)
	if p.Direction() != DirUp {
		t.Errorf("Direction() = %v, expected up at the grid point", p.Direction())
	}
	if x, y := p.Pos(); x != 96 || y != 96 {
		t.Errorf("Pos() = (%d, %d), expected snapped (96, 96)", x, y)
	}
}

func TestPacmanBlockedTakesQueuedTurn(t *testing.T) {
	p := NewPacman(PacmanName, 64, 96)
	p.SetBlocks([]*Block{NewBlock(BlockName, 96, 96, StyleFull)})
	p.OnKey(core.KeyDown)

	p.Update(nil)

	if p.Direction() != DirDown {
		t.Errorf("Direction() = %v, expected down", p.Direction())
	}
	if x, y := p.Pos(); x != 64 || y != 96 {
		t.Errorf("Pos() = (%d, %d), expected (64, 96)", x, y)
	}
}

func TestPacmanKeyBindings(t *testing.T) {
	tests := []struct {
		key  core.Key
		want Direction
	}{
		{core.KeyRight, DirRight},
		{"d", DirRight},
		{core.KeyLeft, DirLeft},
		{"a", DirLeft},
		{core.KeyDown, DirDown},
		{"s", DirDown},
		{core.KeyUp, DirUp},
		{"w", DirUp},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			p := NewPacman(PacmanName, 0, 0)
			p.OnKey(tt.key)
			if p.Queued() != tt.want {
				t.Errorf("Queued() = %v, expected %v", p.Queued(), tt.want)
			}
		})
	}
}

func TestPacmanUnboundKeyKeepsQueue(t *testing.T) {
	p := NewPacman(PacmanName, 0, 0)
	p.OnKey("w")
	p.OnKey("x")
	p.OnKey(core.KeySpace)
	if p.Queued() != DirUp {
		t.Errorf("Queued() = %v, expected up", p.Queued())
	}
}

func TestPacmanCustomBindings(t *testing.T) {
	p := NewPacman(PacmanName, 0, 0)
	p.SetKeyBindings(KeyBindings{Up: []core.Key{"i"}, Down: []core.Key{"k"}, Left: []core.Key{"j"}, Right: []core.Key{"l"}})

	p.OnKey("w")
	if p.Queued() != DirNone {
		t.Errorf("default key should be unbound, Queued() = %v", p.Queued())
	}
	p.OnKey("j")
	if p.Queued() != DirLeft {
		t.Errorf("Queued() = %v, expected left", p.Queued())
	}
}

func TestPacmanSetAssets(t *testing.T) {
	p := NewPacman(PacmanName, 0, 0)
	p.SetAssets(PacmanAssets{Right: "r.png", Left: "l.png", Up: "u.png", Down: "d.png"})
	if got := p.Visual().Asset; got != "r.png" {
		t.Errorf("Visual().Asset = %q, expected r.png", got)
	}
	p.OnKey("a")
	p.Update(nil)
	if got := p.Visual().Asset; got != "l.png" {
		t.Errorf("Visual().Asset = %q, expected l.png", got)
	}
}
