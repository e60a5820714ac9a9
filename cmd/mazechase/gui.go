package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui [map]",
	Short: "Play a map in a window",
	Long: `Open a window and play a map. Image assets are loaded from the paths
in the map and the config (./res by default). Set assets.pacman in the config
and the ghost assets in the map to point at your own artwork; assets that are
missing are drawn as solid squares in their glyph color.

Examples:
  mazechase gui
  mazechase gui classic --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGUI,
}

func init() {
	guiCmd.Flags().StringVar(&flagMapFile, "map-file", "", "Play a map from a YAML file")
}

func runGUI(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	exitOnError("loading config", err)

	m, err := resolveMap(cfg, args, flagMapFile)
	exitOnError("loading map", err)

	logger := newLogger(os.Stderr, cfg, "mazechase")
	opts := gui.Options{
		Map:      m,
		Build:    buildOptions(cfg),
		TickRate: cfg.Simulation.TickRate,
		Player:   playerName(),
		Logger:   logger,
		Images:   gui.WithPlaceholders(gui.LoadImageFile, glyphColors(cfg), logger),
	}
	store := openStore(cfg, logger)
	if store != nil {
		opts.Store = store
	}

	res, runErr := gui.Run(cmd.Context(), opts)

	if store != nil {
		store.Close()
	}

	exitOnError("running map", runErr)
	printResult(res)
}

// glyphColors maps each asset to the color of its terminal glyph.
func glyphColors(cfg config.Config) map[string]core.Color {
	glyphs := cfg.GlyphTable()
	colors := make(map[string]core.Color, len(glyphs))
	for asset, g := range glyphs {
		colors[asset] = g.Color
	}
	return colors
}
