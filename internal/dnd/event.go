package dnd

import "fmt"

// Event is one of DragStart, DragMove, Drop or DragCancel.
type Event interface {
	event()
}

// DragStart picks up the item with the given id.
type DragStart struct {
	ItemID string
}

// DragMove reports the pointer's vertical position.
type DragMove struct {
	PointerY float64
}

// Drop releases the dragged item at its hover index.
type Drop struct{}

// DragCancel abandons the drag.
type DragCancel struct{}

func (DragStart) event()  {}
func (DragMove) event()   {}
func (Drop) event()       {}
func (DragCancel) event() {}

func (e DragStart) String() string { return "start " + e.ItemID }
func (e DragMove) String() string  { return fmt.Sprintf("move %.0f", e.PointerY) }
func (Drop) String() string        { return "drop" }
func (DragCancel) String() string  { return "cancel" }

// Dispatch routes ev to the matching On* method.
func (l *List) Dispatch(ev Event) {
	switch ev := ev.(type) {
	case DragStart:
		l.OnDragStart(ev.ItemID)
	case DragMove:
		l.OnDragMove(ev.PointerY)
	case Drop:
		l.OnDrop()
	case DragCancel:
		l.OnDragCancel()
	}
}
