package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the controller's key subscriptions.
type KeyMap struct {
	Analyze  key.Binding
	Clear    key.Binding
	Examples []key.Binding
}

// DefaultKeyMap binds analyze to ctrl+s and to what terminals send for
// Ctrl+Enter (ctrl+j) and Cmd/Alt+Enter, clear to esc and the samples to
// alt+1 through alt+N.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Analyze: key.NewBinding(
			key.WithKeys("ctrl+s", "ctrl+j", "alt+enter"),
			key.WithHelp("ctrl+s", "analyze"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
	}
	for i := range SampleTexts {
		k := fmt.Sprintf("alt+%d", i+1)
		km.Examples = append(km.Examples, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, fmt.Sprintf("example %d", i+1)),
		))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{km.Analyze, km.Clear}
	if len(km.Examples) > 0 {
		first := km.Examples[0]
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(first.Keys()...),
			key.WithHelp(fmt.Sprintf("alt+1..%d", len(km.Examples)), "examples"),
		))
	}
	return bindings
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Analyze, km.Clear}, km.Examples}
}

// HandleKey runs the action bound to msg. It reports whether the key was
// consumed; after Close no key is.
func (c *Controller) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if c.closed {
		return nil, false
	}

	switch {
	case key.Matches(msg, c.keys.Analyze):
		return c.Submit(), true
	case key.Matches(msg, c.keys.Clear):
		c.Clear()
		return nil, true
	}

	for i, binding := range c.keys.Examples {
		if key.Matches(msg, binding) {
			c.LoadExample(i)
			return nil, true
		}
	}
	return nil, false
}
