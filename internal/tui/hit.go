package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// hitTester answers which part of the screen a mouse event landed on.
type hitTester interface {
	// ItemAt returns the id and top row of the item under the pointer.
	ItemAt(msg tea.MouseMsg) (id string, top int, ok bool)
	// InList reports whether the pointer is over the list pane.
	InList(msg tea.MouseMsg) bool
	// OnDivider reports whether the pointer is over the split divider.
	OnDivider(msg tea.MouseMsg) bool
}

// zoneHits resolves hits from the zones marked in the last View.
type zoneHits struct {
	m *Model
}

func (h zoneHits) ItemAt(msg tea.MouseMsg) (string, int, bool) {
	for _, item := range h.m.list.Items() {
		z := h.m.zones.Get(h.m.itemZoneID(item.ID))
		if inBounds(z, msg) {
			return item.ID, z.StartY, true
		}
	}
	return "", 0, false
}

func (h zoneHits) InList(msg tea.MouseMsg) bool {
	return inBounds(h.m.zones.Get(h.m.listZoneID()), msg)
}

func (h zoneHits) OnDivider(msg tea.MouseMsg) bool {
	return inBounds(h.m.zones.Get(h.m.split.handleID()), msg)
}

func inBounds(z *zone.ZoneInfo, msg tea.MouseMsg) bool {
	return z != nil && !z.IsZero() && z.InBounds(msg)
}

// layoutHits resolves hits from the model's computed layout. It needs no
// rendered frame, which makes it usable before the first View and in tests.
type layoutHits struct {
	m *Model
}

func (h layoutHits) ItemAt(msg tea.MouseMsg) (string, int, bool) {
	l := h.m.layout()
	if msg.X < l.listX || msg.X >= l.listX+l.listWidth {
		return "", 0, false
	}
	row := msg.Y - l.rowsTop
	if row < 0 || row >= h.m.list.Len()*h.m.itemHeight {
		return "", 0, false
	}
	index := row / h.m.itemHeight
	return h.m.list.Items()[index].ID, l.rowsTop + index*h.m.itemHeight, true
}

func (h layoutHits) InList(msg tea.MouseMsg) bool {
	l := h.m.layout()
	return msg.X >= l.listX && msg.X < l.listX+l.listWidth &&
		msg.Y >= l.bodyTop && msg.Y < l.bodyTop+l.bodyHeight
}

func (h layoutHits) OnDivider(msg tea.MouseMsg) bool {
	l := h.m.layout()
	return msg.X == l.dividerX && msg.Y >= l.bodyTop && msg.Y < l.bodyTop+l.bodyHeight
}
