package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var homeTips = []string{
	"Use 1-3 or tab to switch between Home, Search and Friends",
	"Each tab keeps its own history while you are away",
	"Open a friend to see their profile, then f for their friends",
	"esc goes back one screen; the root is never popped",
	"s shows the back stack, ? lists every key",
}

// Home is the start destination: a static list of tips.
type Home struct {
	tips []string
}

// NewHome creates the home screen.
func NewHome() *Home {
	return &Home{tips: homeTips}
}

// Update moves the tip cursor. The cursor lives in the entry state so it
// survives tab switches.
func (h *Home) Update(ctx Context, msg tea.KeyMsg) tea.Cmd {
	moveCursor(ctx.Store, "cursor", msg, len(h.tips))
	return nil
}

// View renders the tips.
func (h *Home) View(ctx Context) string {
	var b strings.Builder
	b.WriteString(ctx.Styles.Title.Render("Home"))
	b.WriteString("\n\n")
	cursor := clamp(intState(ctx.Store, "cursor", 0), 0, len(h.tips)-1)
	b.WriteString(renderList(ctx, h.tips, cursor))
	return b.String()
}
