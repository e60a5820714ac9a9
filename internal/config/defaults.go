package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/maze-chase/internal/sim"
)

//go:embed defaults/mazechase.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when even the embedded
// defaults cannot be decoded.
func Default() Config {
	kb := sim.DefaultKeyBindings()
	return Config{
		Simulation: SimulationConfig{
			TickRate: 60,
		},
		Controls: ControlsConfig{
			Cancel: "esc",
			Up:     fromKeys(kb.Up),
			Down:   fromKeys(kb.Down),
			Left:   fromKeys(kb.Left),
			Right:  fromKeys(kb.Right),
		},
		Render: RenderConfig{
			PixelsPerColumn: 8,
			PixelsPerRow:    16,
		},
		Assets: AssetsConfig{
			Pacman: sim.DefaultPacmanAssets(),
		},
		Storage: StorageConfig{
			DBPath: "~/.mazechase/runs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
