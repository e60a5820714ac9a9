package gui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/maze-chase/internal/core"
)

var specialKeys = map[ebiten.Key]core.Key{
	ebiten.KeyArrowUp:    core.KeyUp,
	ebiten.KeyArrowDown:  core.KeyDown,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyEscape:     core.KeyEscape,
	ebiten.KeyEnter:      core.KeyEnter,
	ebiten.KeySpace:      core.KeySpace,
}

// keyName maps an Ebiten key to the simulation's key name. Letters map to
// their lower-case rune; keys without a name report false.
func keyName(k ebiten.Key) (core.Key, bool) {
	if name, ok := specialKeys[k]; ok {
		return name, true
	}
	s := k.String()
	if len(s) == 1 {
		return core.Key(strings.ToLower(s)), true
	}
	if digit, ok := strings.CutPrefix(s, "Digit"); ok && len(digit) == 1 {
		return core.Key(digit), true
	}
	return "", false
}

// keyEvents converts newly pressed keys to key-down events.
func keyEvents(keys []ebiten.Key) []core.Event {
	events := make([]core.Event, 0, len(keys))
	for _, k := range keys {
		if name, ok := keyName(k); ok {
			events = append(events, core.Press(name))
		}
	}
	return events
}
