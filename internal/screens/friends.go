package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tabnav/internal/nav"
)

// Friends lists the user's friends, or the friends of the person named by
// the "of" argument.
type Friends struct {
	dir *Directory
}

// NewFriends creates the friends screen.
func NewFriends(dir *Directory) *Friends {
	return &Friends{dir: dir}
}

func (f *Friends) list(ctx Context) (FriendsOf, []string) {
	args, err := nav.Decode[FriendsOf](ctx.Entry.Args)
	if err != nil {
		return FriendsOf{}, nil
	}
	return args, f.dir.FriendsOf(args.Of)
}

// Update moves the cursor and opens the selected profile on enter.
func (f *Friends) Update(ctx Context, msg tea.KeyMsg) tea.Cmd {
	args, names := f.list(ctx)
	if moveCursor(ctx.Store, "cursor", msg, len(names)) {
		return nil
	}
	if msg.String() != "enter" || len(names) == 0 {
		return nil
	}
	name := names[clamp(intState(ctx.Store, "cursor", 0), 0, len(names)-1)]
	p := Profile{Name: name, Mutual: f.dir.Mutual(args.Of, name)}
	return Navigate(ProfileID, p.Args())
}

// View renders the list.
func (f *Friends) View(ctx Context) string {
	args, names := f.list(ctx)
	title := "Friends"
	if args.Of != "" {
		title = fmt.Sprintf("Friends of %s", args.Of)
	}

	var b strings.Builder
	b.WriteString(ctx.Styles.Title.Render(title))
	b.WriteString("\n\n")
	if len(names) == 0 {
		b.WriteString(ctx.Styles.Muted.Render("No friends yet."))
		return b.String()
	}
	cursor := clamp(intState(ctx.Store, "cursor", 0), 0, len(names)-1)
	b.WriteString(renderList(ctx, names, cursor))
	b.WriteString("\n\n")
	b.WriteString(ctx.Styles.Muted.Render("enter open profile"))
	return b.String()
}
