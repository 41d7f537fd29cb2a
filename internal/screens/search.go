package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Search filters the directory by name. The query, the editing flag and
// the result cursor are kept in the entry state; the text input widget is
// shared and reloaded from that state on every call.
type Search struct {
	dir   *Directory
	input textinput.Model
}

// NewSearch creates the search screen.
func NewSearch(dir *Directory) *Search {
	ti := textinput.New()
	ti.Placeholder = "name"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	// The host does not forward blink ticks to screens.
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &Search{dir: dir, input: ti}
}

// CapturesInput reports whether the query is being edited.
func (s *Search) CapturesInput(ctx Context) bool {
	return boolState(ctx.Store, "editing")
}

func (s *Search) load(ctx Context) {
	s.input.SetValue(stringState(ctx.Store, "query"))
	s.input.CursorEnd()
	if boolState(ctx.Store, "editing") {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// Update edits the query or moves through the results.
func (s *Search) Update(ctx Context, msg tea.KeyMsg) tea.Cmd {
	s.load(ctx)

	if boolState(ctx.Store, "editing") {
		switch msg.String() {
		case "enter", "esc":
			ctx.Store.SetState("editing", false)
			return nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if q := s.input.Value(); q != stringState(ctx.Store, "query") {
			ctx.Store.SetState("query", q)
			ctx.Store.SetState("cursor", 0)
		}
		return cmd
	}

	results := s.dir.Search(stringState(ctx.Store, "query"))
	if moveCursor(ctx.Store, "cursor", msg, len(results)) {
		return nil
	}
	switch msg.String() {
	case "/":
		ctx.Store.SetState("editing", true)
	case "enter":
		if len(results) == 0 {
			return nil
		}
		name := results[clamp(intState(ctx.Store, "cursor", 0), 0, len(results)-1)]
		return Navigate(ProfileID, Profile{Name: name}.Args())
	}
	return nil
}

// View renders the query and the matches.
func (s *Search) View(ctx Context) string {
	s.load(ctx)

	var b strings.Builder
	b.WriteString(ctx.Styles.Title.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	query := stringState(ctx.Store, "query")
	results := s.dir.Search(query)
	switch {
	case strings.TrimSpace(query) == "":
		b.WriteString(ctx.Styles.Muted.Render("Press / to type a name."))
	case len(results) == 0:
		b.WriteString(ctx.Styles.Muted.Render("No matches."))
	default:
		cursor := clamp(intState(ctx.Store, "cursor", 0), 0, len(results)-1)
		b.WriteString(renderList(ctx, results, cursor))
	}
	return b.String()
}
