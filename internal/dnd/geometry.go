package dnd

import (
	"fmt"
	"math"
)

// Geometry describes the list's layout in the pointer's coordinate space.
// All rows share the same height.
type Geometry struct {
	ItemHeight   float64 // Height of one row.
	ContainerTop float64 // Vertical position of the list's top edge.
}

// Validate reports an error if the geometry cannot be used for hit testing.
func (g Geometry) Validate() error {
	if g.ItemHeight <= 0 || math.IsNaN(g.ItemHeight) || math.IsInf(g.ItemHeight, 0) {
		return fmt.Errorf("%w: %v: %w", ErrInvalidConfig, g.ItemHeight, ErrInvalidItemHeight)
	}
	return nil
}

// Hover is the result of resolving a pointer position against the list.
type Hover struct {
	// Index is the slot the dragged item would land in if dropped now.
	Index int
	// PointerOffset is the distance between the pointer and the dragged
	// item's undisplaced slot.
	PointerOffset float64
}

// Resolve maps a pointer position to a hover index and pointer offset.
// Positions above or below the list clamp to the first or last slot.
func Resolve(pointerY float64, geom Geometry, items []Item, originIndex int) (Hover, error) {
	if err := geom.Validate(); err != nil {
		return Hover{}, err
	}
	if len(items) == 0 {
		return Hover{}, ErrEmptyList
	}

	position := pointerY - geom.ContainerTop
	raw := position / geom.ItemHeight

	return Hover{
		Index:         clamp(roundHalfUp(raw), 0, len(items)-1),
		PointerOffset: position - float64(originIndex)*geom.ItemHeight,
	}, nil
}

// VisualOffset returns how far a non-dragged row at itemIndex shifts to open
// a gap at hoverIndex for an item dragged from originIndex.
func VisualOffset(itemIndex, originIndex, hoverIndex int, itemHeight float64) float64 {
	switch {
	case originIndex < itemIndex && itemIndex <= hoverIndex:
		return -itemHeight
	case hoverIndex <= itemIndex && itemIndex < originIndex:
		return itemHeight
	default:
		return 0
	}
}

// ItemState is what a renderer needs to draw one row.
type ItemState struct {
	Item     Item
	Index    int
	Offset   float64
	Dragging bool
}

// Layout derives the per-row offsets for the given session. It is meant to
// be called on every render; nothing is cached.
func Layout(items []Item, s Session, itemHeight float64) []ItemState {
	states := make([]ItemState, len(items))
	for i, item := range items {
		states[i] = ItemState{Item: item, Index: i}
		if !s.Active {
			continue
		}
		if item.ID == s.DraggedID {
			states[i].Offset = s.PointerOffset
			states[i].Dragging = true
			continue
		}
		states[i].Offset = VisualOffset(i, s.OriginIndex, s.HoverIndex, itemHeight)
	}
	return states
}

func roundHalfUp(v float64) int {
	f := math.Floor(v + 0.5)
	// Keep the conversion in range; clamp handles the rest.
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < math.MinInt32 || math.IsNaN(f) {
		return math.MinInt32
	}
	return int(f)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
