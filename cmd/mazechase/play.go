package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-chase/internal/platform/tui"
	"github.com/vovakirdan/maze-chase/internal/session"
	"github.com/vovakirdan/maze-chase/internal/sim"
)

var flagMapFile string

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Play a map in the terminal",
	Long: `Play a map in the terminal. Without a map name the classic map is played.

Controls (configurable):
  Arrows/WASD  - Move
  Esc          - Give up
  Ctrl+C       - Quit

Getting caught by a ghost restarts the map from scratch. The play ends when
every pickup is eaten or you give up; each run is recorded in the history.

Examples:
  mazechase play
  mazechase play classic
  mazechase play --map-file ./maps/spiral.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMapFile, "map-file", "", "Play a map from a YAML file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	exitOnError("loading config", err)

	m, err := resolveMap(cfg, args, flagMapFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'mazechase maps' to see available maps.")
		os.Exit(1)
	}

	render := tui.RenderOptionsFrom(cfg)
	needW, needH := tui.ScreenSize(m, render)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH+4) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, %q needs at least %dx%d\n", w, h, m.ID, needW, needH+4)
	}

	// The program owns the terminal while it runs; logs are shown afterwards.
	var logs bytes.Buffer
	logger := newLogger(&logs, cfg, "mazechase")

	opts := tui.PlayOptions{
		Map:      m,
		Build:    buildOptions(cfg),
		TickRate: cfg.Simulation.TickRate,
		Render:   render,
		Player:   playerName(),
		Logger:   logger,
	}
	store := openStore(cfg, logger)
	if store != nil {
		opts.Store = store
	}

	res, playErr := tui.Play(cmd.Context(), opts)

	if store != nil {
		store.Close()
	}
	os.Stderr.Write(logs.Bytes())

	exitOnError("running map", playErr)
	printResult(res)
}

func printResult(res session.Result) {
	switch res.Outcome {
	case sim.Win:
		fmt.Printf("You won! %d frames, %d restarts.\n", res.Frames, res.Restarts)
	case sim.Close:
		fmt.Printf("Gave up after %d frames and %d restarts.\n", res.Frames, res.Restarts)
	}
	if res.RunID != "" {
		fmt.Printf("Run recorded as %s\n", res.RunID)
	}
}
