package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines the host's global bindings. Screen keys (j/k, enter, f,
// /) are handled by the screens themselves.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Stack      key.Binding
	Back       key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Tab1       key.Binding
	Tab2       key.Binding
	Tab3       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Stack: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Show back stack"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "Back"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "Next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab", "Previous tab"),
		),
		Tab1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "First tab")),
		Tab2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "Second tab")),
		Tab3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "Third tab")),
	}
}

// tabIndex maps a numeric binding to a tab position.
func (k keyMap) tabIndex(msg tea.KeyMsg) (int, bool) {
	for i, b := range []key.Binding{k.Tab1, k.Tab2, k.Tab3} {
		if key.Matches(msg, b) {
			return i, true
		}
	}
	return 0, false
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Back, k.Stack, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab1, k.Tab2, k.Tab3, k.NextTab, k.PrevTab, k.Back},
		{k.Stack, k.CycleTheme, k.Help, k.Quit},
	}
}
