package session

import (
	"sync"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// EventQueue hands input events from a UI loop to the simulation
// goroutine. It implements sim.InputSource.
type EventQueue struct {
	mu     sync.Mutex
	events []core.Event
}

// Push appends an event for the next poll.
func (q *EventQueue) Push(ev core.Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Poll returns and clears the queued events, oldest first.
func (q *EventQueue) Poll() []core.Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := q.events
	q.events = nil
	return events
}
