package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/maze-chase/internal/core"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want core.Key
		ok   bool
	}{
		{ebiten.KeyArrowUp, core.KeyUp, true},
		{ebiten.KeyArrowLeft, core.KeyLeft, true},
		{ebiten.KeyEscape, core.KeyEscape, true},
		{ebiten.KeySpace, core.KeySpace, true},
		{ebiten.KeyW, "w", true},
		{ebiten.KeyD, "d", true},
		{ebiten.KeyDigit3, "3", true},
		{ebiten.KeyShiftLeft, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got, ok := keyName(tt.key)
			if got != tt.want || ok != tt.ok {
				t.Errorf("keyName(%v) = %q, %v; expected %q, %v", tt.key, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeyEventsSkipsUnnamedKeys(t *testing.T) {
	events := keyEvents([]ebiten.Key{ebiten.KeyA, ebiten.KeyControlLeft, ebiten.KeyArrowDown})
	want := []core.Event{core.Press("a"), core.Press(core.KeyDown)}

	if len(events) != len(want) {
		t.Fatalf("keyEvents() = %+v, expected %+v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, expected %+v", i, events[i], want[i])
		}
	}
}
