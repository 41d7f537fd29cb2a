// Package screens holds the leaf views rendered for each destination.
// Screens never touch the back stack directly: they emit NavigateMsg and
// BackMsg intents which the host turns into controller calls.
package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tabnav/internal/nav"
)

// StateStore reads and writes transient state on the current entry.
// *nav.Controller satisfies it.
type StateStore interface {
	State(key string) (any, bool)
	SetState(key string, value any)
}

// Styles are the lipgloss styles a screen renders with.
type Styles struct {
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Selected lipgloss.Style
	Danger   lipgloss.Style
}

// Context is everything a screen needs for one Update or View call.
type Context struct {
	Entry  nav.Entry
	Store  StateStore
	Styles Styles
	Width  int
	Height int
}

// Screen renders one destination and reacts to keys while it is on top.
type Screen interface {
	Update(ctx Context, msg tea.KeyMsg) tea.Cmd
	View(ctx Context) string
}

// InputCapturer is implemented by screens that sometimes own the keyboard
// (for example while editing text) so the host skips global bindings.
type InputCapturer interface {
	CapturesInput(ctx Context) bool
}

// NavigateMsg asks the host to navigate.
type NavigateMsg struct {
	ID      string
	Args    nav.Args
	Options []nav.Option
}

// BackMsg asks the host to pop the back stack.
type BackMsg struct{}

// Navigate returns a command emitting a NavigateMsg.
func Navigate(id string, args nav.Args, opts ...nav.Option) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{ID: id, Args: args, Options: opts}
	}
}

// Back returns a command emitting a BackMsg.
func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

// Registry maps destination ids to screens.
type Registry map[string]Screen

// Lookup returns the screen for id.
func (r Registry) Lookup(id string) (Screen, bool) {
	s, ok := r[id]
	return s, ok
}

func intState(store StateStore, key string, def int) int {
	if store == nil {
		return def
	}
	v, ok := store.State(key)
	if !ok {
		return def
	}
	n, ok := v.(int)
	if !ok {
		return def
	}
	return n
}

func stringState(store StateStore, key string) string {
	if store == nil {
		return ""
	}
	v, ok := store.State(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func boolState(store StateStore, key string) bool {
	if store == nil {
		return false
	}
	v, ok := store.State(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// moveCursor applies a list navigation key and stores the result.
func moveCursor(store StateStore, key string, msg tea.KeyMsg, count int) bool {
	if count == 0 {
		return false
	}
	cur := clamp(intState(store, key, 0), 0, count-1)
	next := cur
	switch msg.String() {
	case "j", "down":
		next++
	case "k", "up":
		next--
	case "g", "home":
		next = 0
	case "G", "end":
		next = count - 1
	default:
		return false
	}
	store.SetState(key, clamp(next, 0, count-1))
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// renderList draws items with the cursor row highlighted.
func renderList(ctx Context, items []string, cursor int) string {
	var rows []string
	for i, item := range items {
		if i == cursor {
			rows = append(rows, ctx.Styles.Selected.Render("› "+item))
			continue
		}
		rows = append(rows, ctx.Styles.Text.Render("  "+item))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
