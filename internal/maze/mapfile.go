package maze

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// ErrUnknownMap is returned when no built-in or on-disk map has the requested ID.
var ErrUnknownMap = errors.New("maze: unknown map")

// Cell addresses a grid cell of a layout.
type Cell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// GhostSpec places one ghost patrolling between two cells.
type GhostSpec struct {
	From  Cell   `yaml:"from"`
	To    Cell   `yaml:"to"`
	Asset string `yaml:"asset"`
}

// Window is the preferred size of a graphical window, in pixels.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Offset is a pixel offset in world space.
type Offset struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// MapFile is a complete map: layout plus where everything starts.
type MapFile struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Origin Offset      `yaml:"origin"` // World position of the layout's top-left cell
	Window Window      `yaml:"window"`
	Layout string      `yaml:"layout"`
	Player Cell        `yaml:"player"`
	Ghosts []GhostSpec `yaml:"ghosts"`

	desc *Description
}

// ParseYAML decodes and validates a map file.
func ParseYAML(data []byte) (*MapFile, error) {
	var m MapFile
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("maze: decode map: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile reads and validates a map file from disk.
func LoadFile(path string) (*MapFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maze: read %s: %w", path, err)
	}
	m, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func (m *MapFile) validate() error {
	if m.ID == "" {
		return errors.New("maze: map has no id")
	}
	if m.Name == "" {
		m.Name = m.ID
	}
	// Actors snap to the world grid, so the layout must sit on it too.
	if m.Origin.X%core.CellSize != 0 || m.Origin.Y%core.CellSize != 0 {
		return fmt.Errorf("maze: map %q: origin (%d, %d) is not a multiple of %d", m.ID, m.Origin.X, m.Origin.Y, core.CellSize)
	}

	desc, err := Parse(m.Layout)
	if err != nil {
		return fmt.Errorf("maze: map %q: %w", m.ID, err)
	}
	if !desc.Contains(m.Player.Col, m.Player.Row) {
		return fmt.Errorf("maze: map %q: player cell %+v outside the layout", m.ID, m.Player)
	}
	for i, g := range m.Ghosts {
		if !desc.Contains(g.From.Col, g.From.Row) || !desc.Contains(g.To.Col, g.To.Row) {
			return fmt.Errorf("maze: map %q: ghost %d patrols outside the layout", m.ID, i)
		}
		if g.Asset == "" {
			return fmt.Errorf("maze: map %q: ghost %d has no asset", m.ID, i)
		}
	}

	if m.Window.Width <= 0 || m.Window.Height <= 0 {
		m.Window = Window{
			Width:  2*m.Origin.X + desc.Width*core.CellSize,
			Height: 2*m.Origin.Y + desc.Height*core.CellSize,
		}
	}

	m.desc = desc
	return nil
}

// Description returns the parsed layout.
func (m *MapFile) Description() *Description {
	return m.desc
}

// World converts a grid cell to its top-left world position.
func (m *MapFile) World(c Cell) core.Point {
	return core.Pt(m.Origin.X+c.Col*core.CellSize, m.Origin.Y+c.Row*core.CellSize)
}
