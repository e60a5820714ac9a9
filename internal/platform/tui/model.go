package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
	"github.com/vovakirdan/maze-chase/internal/session"
	"github.com/vovakirdan/maze-chase/internal/sim"
)

// PlayOptions configures a terminal play of one map.
type PlayOptions struct {
	Map      *maze.MapFile
	Build    maze.BuildOptions
	TickRate int
	Render   RenderOptions
	Palette  *Palette // nil uses the default renderer
	Store    session.RunRecorder
	Player   string
	Logger   *log.Logger
}

// PlayModel is the Bubble Tea model for playing a map. The simulation runs
// on its own goroutine; the model forwards keys to it and shows the frames
// it presents.
type PlayModel struct {
	ctx      context.Context
	title    string
	driver   *session.Driver
	queue    *session.EventQueue
	feed     *frameFeed
	run      *playRun
	keys     PlayKeyMap
	help     help.Model
	screen   string
	restarts int
	result   session.Result
	err      error
	done     bool
}

// NewPlayModel creates a play model. The play starts with Init and stops
// when it ends or ctx is cancelled.
func NewPlayModel(ctx context.Context, opts PlayOptions) PlayModel {
	palette := opts.Palette
	if palette == nil {
		palette = NewPalette(nil)
	}

	queue := &session.EventQueue{}
	feed := newFrameFeed()
	restarts := new(atomic.Int64)

	renderer := NewTermRenderer(opts.Map, opts.Render, func(s *core.Screen) {
		feed.publish(FrameMsg{
			Screen:   palette.RenderScreen(s),
			Restarts: int(restarts.Load()),
		})
	})

	driver := &session.Driver{
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
		OnRestart: func(n int) {
			restarts.Store(int64(n))
		},
	}

	kb := opts.Build.Keys
	if kb.Up == nil && kb.Down == nil && kb.Left == nil && kb.Right == nil {
		kb = sim.DefaultKeyBindings()
	}
	cancel := opts.Build.CancelKey
	if cancel == "" {
		cancel = core.KeyEscape
	}

	h := help.New()
	h.ShowAll = false

	return PlayModel{
		ctx:    ctx,
		title:  opts.Map.Name,
		driver: driver,
		queue:  queue,
		feed:   feed,
		run:    newPlayRun(),
		keys:   NewPlayKeyMap(kb, cancel),
		help:   h,
	}
}

// Init starts the simulation and waits for its first frame.
func (m PlayModel) Init() tea.Cmd {
	return tea.Batch(m.play(), m.feed.waitCmd())
}

func (m PlayModel) play() tea.Cmd {
	driver, feed, run, ctx := m.driver, m.feed, m.run, m.ctx
	return func() tea.Msg {
		if !run.begin() {
			feed.stop()
			return DoneMsg{Result: session.Result{Outcome: sim.Close}}
		}
		res, err := driver.Play(ctx)
		feed.stop()
		run.finish(res, err)
		return DoneMsg{Result: res, Err: err}
	}
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.done {
			m.queue.Push(keyEvent(msg))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.screen = msg.Screen
		m.restarts = msg.Restarts
		return m, m.feed.waitCmd()

	case DoneMsg:
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

// View renders the latest frame with a title and the help bar.
func (m PlayModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("MAZE CHASE - %s", m.title)
	if m.restarts > 0 {
		title += fmt.Sprintf("  (restarts: %d)", m.restarts)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.screen == "" {
		b.WriteString("Loading...")
	} else {
		b.WriteString(m.screen)
	}

	b.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Result returns the outcome of the play once it has ended.
func (m PlayModel) Result() (session.Result, error) {
	return m.result, m.err
}

// Done reports whether the play has ended.
func (m PlayModel) Done() bool {
	return m.done
}

// Play runs a map in the terminal until the player wins or closes it.
// Cancelling ctx ends the play with a Close outcome. Play returns only after
// the simulation has stopped, so the store and logger may be closed then.
func Play(ctx context.Context, opts PlayOptions, progOpts ...tea.ProgramOption) (session.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewPlayModel(ctx, opts)
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)

	finalModel, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		killed := errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil
		cancel()
		if !model.run.wait() {
			if killed {
				return session.Result{Outcome: sim.Close}, nil
			}
			return session.Result{}, fmt.Errorf("tui: %w", err)
		}
		if killed {
			return model.run.result, model.run.err
		}
		return model.run.result, fmt.Errorf("tui: %w", err)
	}
	model.run.wait()

	m, ok := finalModel.(PlayModel)
	if !ok {
		return session.Result{}, nil
	}
	return m.Result()
}
