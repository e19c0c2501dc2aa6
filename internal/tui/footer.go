package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"})

	statusStyle = lipgloss.NewStyle().
			Foreground(special).
			Background(subtle).
			PaddingRight(2)
)

// renderFooter draws the status message followed by the key help.
func renderFooter(width int, status string, h help.Model, keys keyMap) string {
	var content string
	if status != "" {
		content = statusStyle.Render(status)
	}
	h.Width = max(width-lipgloss.Width(content), 0)
	content += h.View(keys)
	return footerStyle.Width(width).MaxWidth(width).Render(content)
}
