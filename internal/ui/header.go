package ui

import (
	"fmt"
	"strings"
)

// renderHeader renders the logo, the current route and the stack depth.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	snap := m.ctrl.Snapshot()

	parts := []string{
		bg.Render("tabnav", styles.Logo),
		bg.Render(truncateMiddle(snap.Current.Route(), m.width/2), styles.AccentText),
		bg.Render(fmt.Sprintf("depth %d", snap.Depth()), styles.MutedText),
	}
	if saved := m.ctrl.SavedIDs(); len(saved) > 0 {
		parts = append(parts, bg.Render("saved "+strings.Join(saved, ","), styles.FaintText))
	}
	return bg.FillLine(bg.Spaces(1)+bg.Join(parts, "  "), m.width)
}

// renderFooter shows the last navigation error, or the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	if err := m.ctrl.Snapshot().LastError; err != nil {
		msg := truncateMiddle(err.Error(), m.width-4)
		return bg.FillLine(bg.Spaces(1)+bg.Render(msg, styles.DangerText), m.width)
	}

	var hints []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, bg.Render(h.Key, styles.AccentText)+bg.Spaces(1)+bg.Render(h.Desc, styles.MutedText))
	}
	return bg.FillLine(bg.Spaces(1)+bg.Join(hints, "  "), m.width)
}
