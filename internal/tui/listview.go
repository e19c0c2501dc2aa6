package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/reorderlist/internal/dnd"
)

// listView draws the list from the states dnd.Layout derives for the
// current drag. Each row occupies itemHeight lines. Rows are placed at
// index*itemHeight plus their offset; the dragged row is drawn last so it
// stays on top of the rows it passes over.
type listView struct {
	states     []dnd.ItemState
	itemHeight int
	width      int
	cursor     int
	zones      *zone.Manager
	zoneID     func(id string) string
}

func (v listView) render() string {
	total := len(v.states) * v.itemHeight
	if total == 0 || v.width <= 0 {
		return ""
	}
	blank := strings.Repeat(" ", v.width)
	canvas := make([]string, total)
	for i := range canvas {
		canvas[i] = blank
	}

	dragging := -1
	for i, st := range v.states {
		if st.Dragging {
			dragging = i
		}
	}
	for _, st := range v.states {
		if st.Dragging {
			continue
		}
		top := st.Index*v.itemHeight + int(st.Offset)
		v.place(canvas, top, v.renderRow(st, dragging >= 0))
	}
	if dragging >= 0 {
		st := v.states[dragging]
		top := st.Index*v.itemHeight + int(math.Round(st.Offset))
		// Keep the dragged row inside the list while the pointer is outside.
		top = max(0, min(top, total-v.itemHeight))
		v.place(canvas, top, v.renderRow(st, true))
	}
	return strings.Join(canvas, "\n")
}

func (v listView) renderRow(st dnd.ItemState, dragActive bool) string {
	style := rowStyle
	switch {
	case st.Dragging:
		style = draggingRowStyle
	case st.Offset != 0:
		style = shiftedRowStyle
	case !dragActive && st.Index == v.cursor:
		style = cursorRowStyle
	}

	label := lipgloss.JoinHorizontal(lipgloss.Top, idStyle.Render(st.Item.ID), st.Item.Name)
	row := style.
		Width(v.width).
		MaxWidth(v.width).
		Height(v.itemHeight).
		MaxHeight(v.itemHeight).
		Render(label)

	// Zones are only needed to pick a row up, which happens while idle.
	if !dragActive && v.zones != nil {
		row = v.zones.Mark(v.zoneID(st.Item.ID), row)
	}
	return row
}

func (v listView) place(canvas []string, top int, row string) {
	for i, line := range strings.Split(row, "\n") {
		y := top + i
		if y < 0 || y >= len(canvas) {
			continue
		}
		canvas[y] = line
	}
}
