package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	handleWidth   = 1    // Width of the divider in characters
	minPaneWidth  = 16   // Minimum width in characters for either pane
	maxProportion = 0.80 // Maximum share of the width for either pane
)

var (
	handleStyle = lipgloss.NewStyle().
			Width(handleWidth).
			Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#585858"})

	handleActiveStyle = handleStyle.
				Foreground(highlight)
)

// dividerDrag tracks a mouse drag of the split divider.
type dividerDrag struct {
	dragging bool
	lastX    int
}

// handle processes mouse events for the divider and returns whether the
// event was consumed and the horizontal distance moved.
func (d *dividerDrag) handle(msg tea.MouseMsg, onDivider bool) (bool, int) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && onDivider {
			d.dragging = true
			d.lastX = msg.X
			return true, 0
		}
	case tea.MouseActionMotion:
		if d.dragging {
			deltaX := msg.X - d.lastX
			d.lastX = msg.X
			return true, deltaX
		}
	case tea.MouseActionRelease:
		if d.dragging {
			d.dragging = false
			d.lastX = 0
			return true, 0
		}
	}
	return false, 0
}

// split lays out the list and the event log side by side with a draggable
// divider between them.
type split struct {
	id         string
	width      int
	height     int
	proportion float64 // Left pane's share of the available width.
	drag       dividerDrag
}

func newSplit(zones *zone.Manager, proportion float64) *split {
	return &split{
		id:         zones.NewPrefix(),
		proportion: proportion,
	}
}

func (s *split) setSize(width, height int) {
	s.width = width
	s.height = height
	s.clamp()
}

// widths returns the left and right pane widths.
func (s *split) widths() (int, int) {
	available := max(s.width-handleWidth, 0)
	left := int(float64(available) * s.proportion)
	return left, available - left
}

// resize moves the divider by deltaX columns within the pane limits.
func (s *split) resize(deltaX int) {
	available := s.width - handleWidth
	if available <= 0 {
		return
	}
	s.proportion += float64(deltaX) / float64(available)
	s.clamp()
}

func (s *split) clamp() {
	available := s.width - handleWidth
	if available <= 0 {
		return
	}
	minProportion := float64(minPaneWidth) / float64(available)
	lo := max(minProportion, 1-maxProportion)
	hi := min(1-minProportion, maxProportion)
	if lo > hi {
		// Too narrow for both limits; split evenly.
		s.proportion = 0.5
		return
	}
	s.proportion = max(lo, min(s.proportion, hi))
}

func (s *split) handleID() string {
	return s.id + "handle"
}

// render joins the two panes with the divider between them.
func (s *split) render(zones *zone.Manager, left, right string) string {
	lw, rw := s.widths()

	style := handleStyle
	if s.drag.dragging {
		style = handleActiveStyle
	}
	handle := zones.Mark(s.handleID(), style.Render(strings.TrimSuffix(strings.Repeat("│\n", s.height), "\n")))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(lw).MaxWidth(lw).Height(s.height).MaxHeight(s.height).Render(left),
		handle,
		lipgloss.NewStyle().Width(rw).MaxWidth(rw).Height(s.height).MaxHeight(s.height).Render(right),
	)
}
