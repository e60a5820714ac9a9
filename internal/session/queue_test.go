package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/maze-chase/internal/core"
)

func TestEventQueuePollDrains(t *testing.T) {
	var q EventQueue
	assert.Empty(t, q.Poll())

	q.Push(core.Press(core.KeyLeft))
	q.Push(core.Quit())

	assert.Equal(t, []core.Event{core.Press(core.KeyLeft), core.Quit()}, q.Poll())
	assert.Empty(t, q.Poll())
}

func TestEventQueueConcurrentPush(t *testing.T) {
	var q EventQueue
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(core.Press(core.KeyUp))
			}
		}()
	}

	got := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		select {
		case <-done:
			got += len(q.Poll())
			assert.Equal(t, 800, got)
			return
		default:
			got += len(q.Poll())
		}
	}
}
