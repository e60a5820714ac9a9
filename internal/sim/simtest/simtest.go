// Package simtest provides in-memory backends for driving a sim.Game in tests.
package simtest

import (
	"context"
	"fmt"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpLine
	OpImage
	OpFill
	OpPresent
)

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	From  core.Point
	To    core.Point
	Asset string
	Rect  core.Rect
	Color core.Color
}

// RecordingRenderer records every draw call. Set FailOn to make the first
// call of that kind return an error.
type RecordingRenderer struct {
	Ops    []Op
	FailOn *OpKind
}

// Fail makes the renderer fail on the given kind of call.
func (r *RecordingRenderer) Fail(k OpKind) {
	r.FailOn = &k
}

func (r *RecordingRenderer) record(op Op) error {
	if r.FailOn != nil && *r.FailOn == op.Kind {
		return fmt.Errorf("simtest: injected failure on op %d", op.Kind)
	}
	r.Ops = append(r.Ops, op)
	return nil
}

func (r *RecordingRenderer) Clear() error {
	return r.record(Op{Kind: OpClear})
}

func (r *RecordingRenderer) DrawLine(p0, p1 core.Point, c core.Color) error {
	return r.record(Op{Kind: OpLine, From: p0, To: p1, Color: c})
}

func (r *RecordingRenderer) DrawImage(asset string, x, y, w, h int) error {
	return r.record(Op{Kind: OpImage, Asset: asset, Rect: core.NewRect(x, y, w, h)})
}

func (r *RecordingRenderer) FillRect(x, y, w, h int, c core.Color) error {
	return r.record(Op{Kind: OpFill, Rect: core.NewRect(x, y, w, h), Color: c})
}

func (r *RecordingRenderer) Present() error {
	return r.record(Op{Kind: OpPresent})
}

// Count returns how many ops of kind k were recorded.
func (r *RecordingRenderer) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Reset drops the recorded ops.
func (r *RecordingRenderer) Reset() {
	r.Ops = r.Ops[:0]
}

// ScriptedInput returns one scripted batch of events per Poll and nothing
// once the script runs out.
type ScriptedInput struct {
	Frames [][]core.Event
	polls  int
}

// Poll returns the next scripted batch.
func (s *ScriptedInput) Poll() []core.Event {
	defer func() { s.polls++ }()
	if s.polls < len(s.Frames) {
		return s.Frames[s.polls]
	}
	return nil
}

// Polls returns how many times Poll was called.
func (s *ScriptedInput) Polls() int {
	return s.polls
}

// NoPacer never waits. After Limit waits (if non-zero) it reports
// context.Canceled so a runaway session ends.
type NoPacer struct {
	Limit int
	waits int
}

func (p *NoPacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.waits++
	if p.Limit > 0 && p.waits > p.Limit {
		return context.Canceled
	}
	return nil
}

// Waits returns how many times Wait was called.
func (p *NoPacer) Waits() int {
	return p.waits
}
