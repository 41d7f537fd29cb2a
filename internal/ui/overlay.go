package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderOverlay centers content in a bordered modal over the whole screen.
func (m Model) renderOverlay(content string, width int) string {
	if width > m.width-4 && m.width > 10 {
		width = m.width - 4
	}
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(width)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
