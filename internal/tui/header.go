package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}).
			Height(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Background(subtle).
			Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
			Background(highlight).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
			Margin(0, 1).
			Padding(0, 1)

	badgeActiveStyle = badgeStyle.
				Background(special).
				Bold(true)
)

// renderHeader draws the title bar with the move count and drag state.
func renderHeader(width int, title string, moves int, dragging bool) string {
	badges := []string{badgeStyle.Render(fmt.Sprintf("moves %d", moves))}
	if dragging {
		badges = append(badges, badgeActiveStyle.Render("dragging"))
	}
	badgeSection := lipgloss.JoinHorizontal(lipgloss.Center, badges...)
	badgeWidth := lipgloss.Width(badgeSection)

	// Truncate the title with an ellipsis if it won't fit.
	maxTitleWidth := max(width-badgeWidth-2, 0)
	titleText := title
	if lipgloss.Width(titleText) > maxTitleWidth {
		runes := []rune(titleText)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxTitleWidth {
			runes = runes[:len(runes)-1]
		}
		if maxTitleWidth > 0 {
			titleText = string(runes) + "…"
		} else {
			titleText = ""
		}
	}
	titleView := titleStyle.Render(titleText)

	spacingWidth := max(width-lipgloss.Width(titleView)-badgeWidth, 0)
	spacing := lipgloss.NewStyle().Background(subtle).Width(spacingWidth).Render("")

	content := lipgloss.JoinHorizontal(lipgloss.Center, titleView, spacing, badgeSection)
	return headerStyle.Width(width).MaxWidth(width).MaxHeight(1).Render(content)
}
