// Package session drives whole plays of a map: it builds a simulation, runs
// it to an outcome, rebuilds after a loss and records every finished run.
package session

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/sim"
	"github.com/vovakirdan/maze-chase/internal/storage"
)

// RunRecorder stores finished runs. *storage.Store satisfies it.
type RunRecorder interface {
	SaveRun(r storage.RunRecord) (string, error)
}

// Driver plays one map until the player wins or closes the session.
type Driver struct {
	Map      *maze.MapFile
	Options  maze.BuildOptions
	Input    sim.InputSource
	Renderer sim.Renderer

	// NewPacer creates the pacer for each run. Pacers with a Stop method
	// are stopped when their run ends.
	NewPacer func() sim.Pacer

	// Store is optional. Failures to record are logged, never fatal.
	Store  RunRecorder
	Player string

	// Logger is optional.
	Logger *log.Logger

	// OnRestart is called after a loss, before the fresh run starts.
	OnRestart func(restarts int)
}

// Result summarizes a play.
type Result struct {
	Outcome  sim.Outcome // Win or Close
	Restarts int         // Losses before the final run
	Frames   int         // Frames drawn across all runs
	RunID    string      // ID of the last recorded run, if any
}

// Play runs sessions until one ends in Win or Close. A Lose discards the
// session and starts a fresh one built from the map. Renderer errors end
// the play and are returned.
func (d *Driver) Play(ctx context.Context) (Result, error) {
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("map", d.Map.ID)

	var res Result
	for {
		game := maze.Build(d.Map, d.Options)
		logger.Debug("run started", "restarts", res.Restarts, "pickups", len(game.Pickups()))

		outcome, err := d.run(ctx, game)
		res.Frames += game.Frames()
		if err != nil {
			logger.Error("run aborted", "error", err, "frames", game.Frames())
			return res, fmt.Errorf("session: %s: %w", d.Map.ID, err)
		}

		if id := d.record(logger, game, outcome, res.Restarts); id != "" {
			res.RunID = id
		}
		logger.Info("run finished",
			"outcome", outcome,
			"frames", game.Frames(),
			"pickups_left", len(game.Pickups()),
			"restarts", res.Restarts,
		)

		if outcome != sim.Lose {
			res.Outcome = outcome
			return res, nil
		}

		res.Restarts++
		if d.OnRestart != nil {
			d.OnRestart(res.Restarts)
		}
	}
}

func (d *Driver) run(ctx context.Context, game *sim.Game) (sim.Outcome, error) {
	pacer := d.NewPacer()
	if s, ok := pacer.(interface{ Stop() }); ok {
		defer s.Stop()
	}
	return game.Run(ctx, d.Input, d.Renderer, pacer)
}

func (d *Driver) record(logger *log.Logger, game *sim.Game, outcome sim.Outcome, restarts int) string {
	if d.Store == nil {
		return ""
	}
	id, err := d.Store.SaveRun(storage.RunRecord{
		MapID:       d.Map.ID,
		MapChecksum: d.Map.Description().Checksum(),
		Player:      d.Player,
		Outcome:     outcome.String(),
		Frames:      game.Frames(),
		Restarts:    restarts,
		PickupsLeft: len(game.Pickups()),
	})
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return ""
	}
	return id
}
