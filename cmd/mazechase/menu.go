package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick maps from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or w/s to navigate, Enter to play the selected map.
After a play ends, you return to the menu.

Controls:
  Up/Down/w/s  - Navigate menu
  Enter/Space  - Play map
  Tab          - Run history
  Q            - Quit

Examples:
  mazechase menu
  mazechase menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError("loading config", err)

	rows, err := collectMaps(cfg, "")
	exitOnError("reading maps", err)
	maps := make([]*maze.MapFile, len(rows))
	for i, r := range rows {
		maps[i] = r.m
	}

	var logs bytes.Buffer
	logger := newLogger(&logs, cfg, "mazechase")
	store := openStore(cfg, logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	play := tui.PlayOptions{
		Build:    buildOptions(cfg),
		TickRate: cfg.Simulation.TickRate,
		Render:   tui.RenderOptionsFrom(cfg),
		Player:   playerName(),
		Logger:   logger,
	}
	var stats tui.MapStats
	if store != nil {
		play.Store = store
		stats = store
	}

	for cmd.Context().Err() == nil {
		menuResult, err := tui.RunMenu(maps, stats, width)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			if store == nil {
				continue
			}
			if err := tui.RunHistoryView(store, "", width, height); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				break
			}
			continue
		}

		opts := play
		opts.Map = menuResult.Map
		if _, err := tui.Play(cmd.Context(), opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running map: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
	os.Stderr.Write(logs.Bytes())
}
