package tui

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(highlight)

	paneHeader = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(subtle)

	rowStyle = lipgloss.NewStyle().PaddingLeft(2)

	cursorRowStyle = rowStyle.
			Foreground(special).
			Bold(true)

	shiftedRowStyle = rowStyle.
			Foreground(lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"})

	draggingRowStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Bold(true)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#999", Dark: "#777"}).
		Width(4)

	logLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"})

	logReorderStyle = lipgloss.NewStyle().Foreground(special)
)
