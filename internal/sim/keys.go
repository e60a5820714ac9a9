package sim

import "github.com/vovakirdan/maze-chase/internal/core"

// KeyBindings maps keys to pacman directions. A key may appear in several lists;
// the first match in Up, Down, Left, Right order wins.
type KeyBindings struct {
	Up    []core.Key
	Down  []core.Key
	Left  []core.Key
	Right []core.Key
}

// DefaultKeyBindings returns arrow keys plus WASD.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:    []core.Key{core.KeyUp, "w"},
		Down:  []core.Key{core.KeyDown, "s"},
		Left:  []core.Key{core.KeyLeft, "a"},
		Right: []core.Key{core.KeyRight, "d"},
	}
}

// Direction returns the direction bound to k, or DirNone.
func (b KeyBindings) Direction(k core.Key) Direction {
	switch {
	case hasKey(b.Up, k):
		return DirUp
	case hasKey(b.Down, k):
		return DirDown
	case hasKey(b.Left, k):
		return DirLeft
	case hasKey(b.Right, k):
		return DirRight
	}
	return DirNone
}

func hasKey(keys []core.Key, k core.Key) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}
