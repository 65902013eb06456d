package emulator

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/tokenui/internal/widget"
)

// keyMap defines the emulator key bindings
type keyMap struct {
	Quit   key.Binding
	Trace  key.Binding
	Redraw key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Trace, k.Redraw, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Trace, k.Redraw, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Trace: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trace"),
		),
		Redraw: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "redraw"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "swipe"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "swipe down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "swipe"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "swipe right"),
		),
	}
}

// swipeFor returns the swipe bound to msg, if any.
func (k keyMap) swipeFor(msg tea.KeyMsg) (widget.SwipeDirection, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return widget.SwipeUp, true
	case key.Matches(msg, k.Down):
		return widget.SwipeDown, true
	case key.Matches(msg, k.Left):
		return widget.SwipeLeft, true
	case key.Matches(msg, k.Right):
		return widget.SwipeRight, true
	}
	return 0, false
}
