package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.JoinVertical(lipgloss.Left, m.formModel.View(), m.resultsModel.View()),
		m.renderMessage(),
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and the focused pane
func (m Model) renderTitleBar() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("NETTO - Gross-to-Net Calculator"),
		SubtitleStyle.Render(m.pane.String()),
	)
}

// renderMessage shows the last error or confirmation
func (m Model) renderMessage() string {
	switch {
	case m.err != nil:
		return ErrorStyle.Render("Error: " + m.err.Error())
	case m.status != "":
		return InfoStyle.Render(m.status)
	default:
		return ""
	}
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("tab", "switch pane"),
		formatShortcut("enter", "add"),
		formatShortcut("d", "remove"),
		formatShortcut("q", "quit"),
	}
	return StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}
