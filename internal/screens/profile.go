package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tabnav/internal/nav"
)

// ProfileScreen shows one person. It requires the typed Profile argument.
type ProfileScreen struct {
	dir *Directory
}

// NewProfile creates the profile screen.
func NewProfile(dir *Directory) *ProfileScreen {
	return &ProfileScreen{dir: dir}
}

// Update handles f (friends of this person) and b (back).
func (p *ProfileScreen) Update(ctx Context, msg tea.KeyMsg) tea.Cmd {
	prof, err := nav.Decode[Profile](ctx.Entry.Args)
	if err != nil {
		return nil
	}
	switch msg.String() {
	case "f":
		return Navigate(FriendsID, nav.Args{"of": prof.Name})
	case "b":
		return Back()
	}
	return nil
}

// View renders the profile card.
func (p *ProfileScreen) View(ctx Context) string {
	prof, err := nav.Decode[Profile](ctx.Entry.Args)
	if err != nil {
		return ctx.Styles.Danger.Render(fmt.Sprintf("Profile unavailable: %v", err))
	}

	friends := p.dir.FriendsOf(prof.Name)
	lines := []string{
		ctx.Styles.Title.Render(prof.Name),
		"",
		ctx.Styles.Muted.Render("Friends  ") + ctx.Styles.Text.Render(fmt.Sprintf("%d", len(friends))),
		ctx.Styles.Muted.Render("Mutual   ") + ctx.Styles.Text.Render(fmt.Sprintf("%d", prof.Mutual)),
	}
	if !p.dir.Has(prof.Name) {
		lines = append(lines, "", ctx.Styles.Muted.Render("Not in your directory."))
	} else if len(friends) > 0 {
		lines = append(lines, "", ctx.Styles.Accent.Render(strings.Join(friends, ", ")))
	}
	lines = append(lines, "", ctx.Styles.Muted.Render("f friends of "+prof.Name+"  b back"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
