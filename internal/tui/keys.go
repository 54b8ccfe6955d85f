package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/speedtype/internal/model"
)

type keyMap struct {
	phase model.Phase

	Prev    key.Binding
	Next    key.Binding
	Start   key.Binding
	Restart key.Binding
	Reset   key.Binding
	Quit    key.Binding
	Abort   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/→", "duration"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the current phase.
func (k keyMap) ShortHelp() []key.Binding {
	switch k.phase {
	case model.PhaseIdle:
		return []key.Binding{k.Prev, k.Start, k.Quit}
	case model.PhaseCountingDown:
		return []key.Binding{k.Quit}
	case model.PhaseFinished:
		return []key.Binding{k.Restart, k.Reset, k.Quit}
	default:
		return []key.Binding{k.Abort}
	}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
