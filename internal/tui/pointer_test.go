package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/rileylov/reorderlist/internal/dnd"
)

// stubHits places one item "a" with its top at row 10 and treats x < 40
// as the list.
type stubHits struct{}

func (stubHits) ItemAt(msg tea.MouseMsg) (string, int, bool) {
	if msg.X < 40 && msg.Y >= 10 && msg.Y < 13 {
		return "a", 10, true
	}
	return "", 0, false
}

func (stubHits) InList(msg tea.MouseMsg) bool   { return msg.X < 40 }
func (stubHits) OnDivider(msg tea.MouseMsg) bool { return msg.X == 40 }

func TestPointerBackend(t *testing.T) {
	p := newPointerBackend()

	ev, ok := p.HandleMouseEvent(mouse(tea.MouseActionMotion, 5, 11), stubHits{})
	assert.False(t, ok)
	assert.Nil(t, ev)

	ev, ok = p.HandleMouseEvent(mouse(tea.MouseActionPress, 5, 30), stubHits{})
	assert.False(t, ok, "press outside any item")

	ev, ok = p.HandleMouseEvent(mouse(tea.MouseActionPress, 5, 12), stubHits{})
	assert.True(t, ok)
	assert.Equal(t, dnd.DragStart{ItemID: "a"}, ev)
	assert.True(t, p.IsDragging())

	ev, ok = p.HandleMouseEvent(mouse(tea.MouseActionMotion, 5, 20), stubHits{})
	assert.True(t, ok)
	assert.Equal(t, dnd.DragMove{PointerY: 18}, ev)

	// Leaving the list keeps reporting moves.
	ev, _ = p.HandleMouseEvent(mouse(tea.MouseActionMotion, 70, 0), stubHits{})
	assert.Equal(t, dnd.DragMove{PointerY: -2}, ev)

	ev, ok = p.HandleMouseEvent(mouse(tea.MouseActionRelease, 5, 20), stubHits{})
	assert.True(t, ok)
	assert.Equal(t, dnd.Drop{}, ev)
	assert.False(t, p.IsDragging())
}

func TestPointerBackend_Cancel(t *testing.T) {
	p := newPointerBackend()

	p.HandleMouseEvent(mouse(tea.MouseActionPress, 5, 10), stubHits{})
	ev, ok := p.HandleMouseEvent(mouse(tea.MouseActionRelease, 50, 10), stubHits{})
	assert.True(t, ok)
	assert.Equal(t, dnd.DragCancel{}, ev)

	p.HandleMouseEvent(mouse(tea.MouseActionPress, 5, 10), stubHits{})
	right := tea.MouseMsg{X: 5, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	ev, ok = p.HandleMouseEvent(right, stubHits{})
	assert.True(t, ok)
	assert.Equal(t, dnd.DragCancel{}, ev)
	assert.False(t, p.IsDragging())

	// A second left press during a drag is ignored.
	p.HandleMouseEvent(mouse(tea.MouseActionPress, 5, 10), stubHits{})
	_, ok = p.HandleMouseEvent(mouse(tea.MouseActionPress, 5, 11), stubHits{})
	assert.False(t, ok)
	assert.True(t, p.IsDragging())
}
