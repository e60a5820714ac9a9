package sim

import (
	"context"
	"time"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// Renderer is the drawing surface a frame is rendered onto.
// Any error aborts the current run.
type Renderer interface {
	Clear() error
	DrawLine(p0, p1 core.Point, c core.Color) error
	DrawImage(asset string, x, y, w, h int) error
	FillRect(x, y, w, h int, c core.Color) error
	Present() error
}

// InputSource yields the events that arrived since the previous poll.
type InputSource interface {
	Poll() []core.Event
}

// Pacer blocks until the next frame slot. Overrun is not compensated:
// a late frame simply starts late.
type Pacer interface {
	Wait(ctx context.Context) error
}

// TickerPacer paces frames with a time.Ticker.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer firing rate times per second.
// A non-positive rate falls back to 60.
func NewTickerPacer(rate int) *TickerPacer {
	if rate <= 0 {
		rate = 60
	}
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

// Wait blocks until the next tick or until ctx is done.
func (p *TickerPacer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}
