// Package config provides YAML-based configuration loading for the maze
// simulation: frame rate, controls, terminal rendering, assets, storage,
// logging and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/sim"
)

// Config is the complete runtime configuration.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Controls   ControlsConfig   `yaml:"controls"`
	Render     RenderConfig     `yaml:"render"`
	Assets     AssetsConfig     `yaml:"assets"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
	SSH        SSHConfig        `yaml:"ssh"`
}

// SimulationConfig controls frame pacing.
type SimulationConfig struct {
	TickRate int `yaml:"tick_rate"` // Frames per second
}

// ControlsConfig lists the keys for each action by name ("up", "w", "esc", ...).
type ControlsConfig struct {
	Cancel string   `yaml:"cancel"`
	Up     []string `yaml:"up"`
	Down   []string `yaml:"down"`
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
}

// RenderConfig controls how world pixels map onto terminal cells.
type RenderConfig struct {
	PixelsPerColumn int              `yaml:"pixels_per_column"`
	PixelsPerRow    int              `yaml:"pixels_per_row"`
	Glyphs          map[string]Glyph `yaml:"glyphs"` // Keyed by image asset path
}

// Glyph stands in for an image asset on a terminal.
type Glyph struct {
	Rune  string `yaml:"rune"`
	Color string `yaml:"color"` // "#rrggbb"
}

// AssetsConfig names the image assets and the directory of extra map files.
type AssetsConfig struct {
	Pacman  sim.PacmanAssets `yaml:"pacman"`
	MapsDir string           `yaml:"maps_dir"`
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig sets the log level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `yaml:"level"`
}

// SSHConfig configures `mazechase serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate reports the first setting the simulation cannot run with.
func (c Config) Validate() error {
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("config: simulation.tick_rate must be positive, got %d", c.Simulation.TickRate)
	}
	if c.Render.PixelsPerColumn <= 0 || c.Render.PixelsPerRow <= 0 {
		return fmt.Errorf("config: render scale must be positive, got %dx%d",
			c.Render.PixelsPerColumn, c.Render.PixelsPerRow)
	}
	if c.Controls.Cancel == "" {
		return errors.New("config: controls.cancel must name a key")
	}
	for asset, g := range c.Render.Glyphs {
		if utf8.RuneCountInString(g.Rune) != 1 {
			return fmt.Errorf("config: glyph for %s must be a single character, got %q", asset, g.Rune)
		}
		if _, err := core.ParseHex(g.Color); err != nil {
			return fmt.Errorf("config: glyph for %s: %w", asset, err)
		}
	}
	return nil
}

// CancelKey returns the key that closes a session.
func (c Config) CancelKey() core.Key {
	return core.Key(c.Controls.Cancel)
}

// Bindings converts the control lists into pacman key bindings.
func (c Config) Bindings() sim.KeyBindings {
	return sim.KeyBindings{
		Up:    toKeys(c.Controls.Up),
		Down:  toKeys(c.Controls.Down),
		Left:  toKeys(c.Controls.Left),
		Right: toKeys(c.Controls.Right),
	}
}

func toKeys(names []string) []core.Key {
	keys := make([]core.Key, len(names))
	for i, n := range names {
		keys[i] = core.Key(n)
	}
	return keys
}
