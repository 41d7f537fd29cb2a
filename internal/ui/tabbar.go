package ui

import (
	"fmt"

	"github.com/five82/tabnav/internal/nav"
)

// activeTab returns the id of the tab that owns the current back stack.
func (m Model) activeTab() string {
	return m.ctrl.Graph().TabRoot(m.ctrl.Entries())
}

// selectTab switches to the tab at position i using the standard tab
// options: pop to start saving state, single top, restore state.
func (m Model) selectTab(i int) {
	tabs := m.ctrl.Graph().TopLevel()
	if i < 0 || i >= len(tabs) {
		return
	}
	m.navigate(tabs[i].ID, nil, m.ctrl.Graph().TabOptions()...)
}

// cycleTab moves to the next or previous tab, wrapping around.
func (m Model) cycleTab(delta int) {
	tabs := m.ctrl.Graph().TopLevel()
	if len(tabs) == 0 {
		return
	}
	active := m.activeTab()
	idx := 0
	for i, t := range tabs {
		if t.ID == active {
			idx = i
			break
		}
	}
	m.selectTab(((idx+delta)%len(tabs) + len(tabs)) % len(tabs))
}

// renderTabBar renders one item per top-level destination and highlights
// the active one.
func (m Model) renderTabBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)
	active := m.activeTab()
	compact := m.width < LayoutCompactWidth

	var items []string
	for i, d := range m.ctrl.Graph().TopLevel() {
		label := tabLabel(i, d, compact)
		if d.ID == active {
			items = append(items, styles.TabActive.Render(label))
			continue
		}
		items = append(items, styles.TabInactive.Render(label))
	}
	return bg.FillLine(bg.Join(items, " "), m.width)
}

func tabLabel(i int, d nav.Destination, compact bool) string {
	icon := d.Icon
	if icon == "" {
		icon = "•"
	}
	if compact {
		return fmt.Sprintf("%d %s", i+1, icon)
	}
	return fmt.Sprintf("%d %s %s", i+1, icon, d.Label)
}
