package ui

import (
	"fmt"
	"sort"
	"strings"
)

// renderStack renders the back stack inspector: entries from top to
// bottom, then the saved tab segments.
func (m Model) renderStack() string {
	styles := m.theme.Styles()
	entries := m.ctrl.Entries()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(fmt.Sprintf("Back Stack (%d)", len(entries))))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n")

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		marker := "  "
		routeStyle := styles.Text
		if i == len(entries)-1 {
			marker = "› "
			routeStyle = styles.AccentText
		}
		b.WriteString(marker)
		b.WriteString(routeStyle.Render(truncate(e.Route(), 36)))
		b.WriteString(" ")
		b.WriteString(styles.FaintText.Render(shortID(e.ID)))
		if keys := stateKeys(e.State); len(keys) > 0 {
			b.WriteString(" ")
			b.WriteString(styles.MutedText.Render("[" + strings.Join(keys, ",") + "]"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Saved"))
	b.WriteString("\n")
	saved := m.ctrl.SavedIDs()
	if len(saved) == 0 {
		b.WriteString(styles.MutedText.Render("none"))
	} else {
		b.WriteString(styles.Text.Render(strings.Join(saved, ", ")))
	}

	return m.renderOverlay(b.String(), 56)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func stateKeys(state map[string]any) []string {
	if len(state) == 0 {
		return nil
	}
	keys := make([]string, 0, len(state))
	for k := range state {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
