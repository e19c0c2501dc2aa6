package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileylov/reorderlist/internal/dnd"
)

type pointerState int

const (
	pointerIdle pointerState = iota
	pointerDragging
)

// pointerBackend turns raw mouse messages into drag events for the list.
// The position it reports is the dragged row's top edge rather than the
// pointer itself, so a row grabbed by its second line does not jump.
type pointerBackend struct {
	state      pointerState
	grabOffset int // Rows between the grabbed row's top and the pointer.
}

func newPointerBackend() *pointerBackend {
	return &pointerBackend{state: pointerIdle}
}

// HandleMouseEvent returns the drag event for msg, if any. Pointer
// movement outside the list still produces moves; releasing outside it
// cancels the drag.
func (p *pointerBackend) HandleMouseEvent(msg tea.MouseMsg, hits hitTester) (dnd.Event, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if p.state == pointerDragging {
			if msg.Button != tea.MouseButtonLeft {
				p.reset()
				return dnd.DragCancel{}, true
			}
			return nil, false
		}
		if msg.Button != tea.MouseButtonLeft {
			return nil, false
		}
		id, top, ok := hits.ItemAt(msg)
		if !ok {
			return nil, false
		}
		p.state = pointerDragging
		p.grabOffset = msg.Y - top
		return dnd.DragStart{ItemID: id}, true
	case tea.MouseActionMotion:
		if p.state == pointerDragging {
			return dnd.DragMove{PointerY: float64(msg.Y - p.grabOffset)}, true
		}
	case tea.MouseActionRelease:
		if p.state == pointerDragging {
			p.reset()
			if hits.InList(msg) {
				return dnd.Drop{}, true
			}
			return dnd.DragCancel{}, true
		}
	}
	return nil, false
}

// IsDragging returns true if a mouse drag is in progress.
func (p *pointerBackend) IsDragging() bool {
	return p.state == pointerDragging
}

func (p *pointerBackend) reset() {
	p.state = pointerIdle
	p.grabOffset = 0
}
