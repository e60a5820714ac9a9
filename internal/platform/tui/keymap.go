package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/sim"
)

// PlayKeyMap describes the keys of a running maze for the help bar.
// Gameplay keys are interpreted by the simulation, not matched here.
type PlayKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Cancel}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Cancel, k.Quit},
	}
}

// NewPlayKeyMap builds the help bindings from the movement keys and the
// cancel key.
func NewPlayKeyMap(kb sim.KeyBindings, cancel core.Key) PlayKeyMap {
	return PlayKeyMap{
		Up:     binding(kb.Up, "up"),
		Down:   binding(kb.Down, "down"),
		Left:   binding(kb.Left, "left"),
		Right:  binding(kb.Right, "right"),
		Cancel: binding([]core.Key{cancel}, "give up"),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func binding(keys []core.Key, desc string) key.Binding {
	names := make([]string, len(keys))
	labels := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
		labels[i] = keyLabel(k)
	}
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

func keyLabel(k core.Key) string {
	switch k {
	case core.KeyUp:
		return "↑"
	case core.KeyDown:
		return "↓"
	case core.KeyLeft:
		return "←"
	case core.KeyRight:
		return "→"
	case core.KeySpace:
		return "space"
	}
	return string(k)
}

// keyEvent translates a Bubble Tea key message to a simulation event.
// ctrl+c always quits; every other key is passed through by name.
func keyEvent(msg tea.KeyMsg) core.Event {
	if msg.Type == tea.KeyCtrlC {
		return core.Quit()
	}
	return core.Press(core.Key(msg.String()))
}
