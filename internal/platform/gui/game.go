package gui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/session"
	"github.com/vovakirdan/maze-chase/internal/sim"
)

// Options configures a windowed play of one map.
type Options struct {
	Map      *maze.MapFile
	Build    maze.BuildOptions
	TickRate int
	Store    session.RunRecorder
	Player   string
	Logger   *log.Logger
	Images   ImageLoader // nil reads files from disk
}

// Game adapts a session driver to ebiten.Game.
type Game struct {
	ctx      context.Context
	width    int
	height   int
	driver   *session.Driver
	queue    *session.EventQueue
	renderer *Renderer
	keys     []ebiten.Key
	started  bool
	done     chan struct{}
	result   session.Result
	err      error
}

// NewGame prepares a windowed play. The driver starts with the first Update.
func NewGame(ctx context.Context, opts Options) *Game {
	queue := &session.EventQueue{}
	renderer := NewRenderer(opts.Images)
	return &Game{
		ctx:      ctx,
		width:    opts.Map.Window.Width,
		height:   opts.Map.Window.Height,
		queue:    queue,
		renderer: renderer,
		done:     make(chan struct{}),
		driver: &session.Driver{
			Map:      opts.Map,
			Options:  opts.Build,
			Input:    queue,
			Renderer: renderer,
			NewPacer: func() sim.Pacer {
				return sim.NewTickerPacer(opts.TickRate)
			},
			Store:  opts.Store,
			Player: opts.Player,
			Logger: opts.Logger,
		},
	}
}

func (g *Game) start() {
	g.started = true
	go func() {
		defer close(g.done)
		g.result, g.err = g.driver.Play(g.ctx)
	}()
}

// Update forwards input to the simulation and ends the window once the
// play is over.
func (g *Game) Update() error {
	if !g.started {
		g.start()
	}

	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}

	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(core.Quit())
		return nil
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, ev := range keyEvents(g.keys) {
		g.queue.Push(ev)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Result returns the outcome once the window has closed.
func (g *Game) Result() (session.Result, error) {
	<-g.done
	return g.result, g.err
}

// Run opens a window and plays the map until the player wins or closes it.
// It returns once the simulation has stopped.
func Run(ctx context.Context, opts Options) (session.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := NewGame(ctx, opts)
	ebiten.SetWindowTitle(fmt.Sprintf("Maze Chase - %s", opts.Map.Name))
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)

	runErr := ebiten.RunGame(g)
	cancel()
	if !g.started {
		if runErr != nil {
			return session.Result{}, fmt.Errorf("gui: %w", runErr)
		}
		return session.Result{Outcome: sim.Close}, nil
	}
	// The driver must be done with the store and logger before returning.
	res, err := g.Result()
	if runErr != nil {
		return res, fmt.Errorf("gui: %w", runErr)
	}
	return res, err
}
