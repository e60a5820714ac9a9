// Package tui provides the Bubble Tea integration for the maze simulation:
// a terminal renderer, the play loop, the run history view and the SSH server.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-chase/internal/session"
)

// FrameMsg carries a rendered frame from the simulation goroutine.
type FrameMsg struct {
	Screen   string
	Restarts int
}

// DoneMsg is sent once the play has ended.
type DoneMsg struct {
	Result session.Result
	Err    error
}

// frameFeed delivers the latest frame to the Bubble Tea loop. Frames the UI
// has not picked up yet are replaced by newer ones.
type frameFeed struct {
	frames  chan FrameMsg
	stopped chan struct{}
}

func newFrameFeed() *frameFeed {
	return &frameFeed{
		frames:  make(chan FrameMsg, 1),
		stopped: make(chan struct{}),
	}
}

// publish is called from the simulation goroutine only.
func (f *frameFeed) publish(msg FrameMsg) {
	select {
	case f.frames <- msg:
		return
	default:
	}
	select {
	case <-f.frames:
	default:
	}
	select {
	case f.frames <- msg:
	default:
	}
}

func (f *frameFeed) stop() {
	close(f.stopped)
}

// waitCmd returns a command that waits for the next frame. It yields nil
// once the feed is stopped.
func (f *frameFeed) waitCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-f.frames:
			return msg
		case <-f.stopped:
			return nil
		}
	}
}

// playRun tracks the simulation goroutine so the caller of the program can
// wait for it. Once sealed, a run that has not started never starts.
type playRun struct {
	mu      sync.Mutex
	started bool
	sealed  bool
	done    chan struct{}
	result  session.Result
	err     error
}

func newPlayRun() *playRun {
	return &playRun{done: make(chan struct{})}
}

// begin reports whether the simulation may start.
func (r *playRun) begin() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return false
	}
	r.started = true
	return true
}

func (r *playRun) finish(res session.Result, err error) {
	r.result, r.err = res, err
	close(r.done)
}

// wait seals the run and blocks until a started simulation has returned.
// It reports false when the simulation never started.
func (r *playRun) wait() bool {
	r.mu.Lock()
	r.sealed = true
	started := r.started
	r.mu.Unlock()

	if started {
		<-r.done
	}
	return started
}
