package dnd

import (
	"slices"

	"github.com/rs/zerolog"
)

// Reorder is delivered to the list's owner when a drop changes the order.
type Reorder struct {
	OriginIndex int
	HoverIndex  int
	Items       []Item // The complete new sequence.
}

// ReorderFunc receives committed reorders.
type ReorderFunc func(Reorder)

// Option configures a List.
type Option func(*List)

// WithLogger sets the logger used for drag tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *List) {
		l.logger = logger
	}
}

// WithReorderFunc sets the callback fired once per order-changing drop.
func WithReorderFunc(fn ReorderFunc) Option {
	return func(l *List) {
		l.onReorder = fn
	}
}

// List binds a drag tracker to a sequence of items and a geometry. It
// receives the four drag events from an input backend and tells its owner
// about committed reorders. The list never applies a reorder to its own
// items; the owner does that with SetItems.
//
// A List is not safe for concurrent use. Events must be delivered in order
// from a single goroutine.
type List struct {
	items     []Item
	geometry  Geometry
	tracker   Tracker
	onReorder ReorderFunc
	logger    zerolog.Logger
}

// NewList validates items and geometry and returns a list over a copy of
// items.
func NewList(items []Item, geom Geometry, opts ...Option) (*List, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateItems(items); err != nil {
		return nil, err
	}
	l := &List{
		items:    slices.Clone(items),
		geometry: geom,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Items returns a copy of the current sequence.
func (l *List) Items() []Item {
	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// SetItems replaces the sequence. Any drag in progress is cancelled since
// its origin index no longer refers to the same slot.
func (l *List) SetItems(items []Item) error {
	if err := ValidateItems(items); err != nil {
		return err
	}
	if l.tracker.Active() {
		l.logger.Debug().Str("item", l.tracker.Session().DraggedID).Msg("items replaced during drag, cancelling")
		l.tracker.Cancel()
	}
	l.items = slices.Clone(items)
	return nil
}

// Geometry returns the current geometry.
func (l *List) Geometry() Geometry {
	return l.geometry
}

// SetContainerTop moves the list's top edge, e.g. after a terminal resize.
func (l *List) SetContainerTop(top float64) {
	l.geometry.ContainerTop = top
}

// SetItemHeight changes the row height.
func (l *List) SetItemHeight(height float64) error {
	geom := l.geometry
	geom.ItemHeight = height
	if err := geom.Validate(); err != nil {
		return err
	}
	l.geometry = geom
	return nil
}

// Session returns the current drag session.
func (l *List) Session() Session {
	return l.tracker.Session()
}

// Dragging reports whether a drag is active.
func (l *List) Dragging() bool {
	return l.tracker.Active()
}

// Layout returns the per-row render state for the current session.
func (l *List) Layout() []ItemState {
	return Layout(l.items, l.tracker.Session(), l.geometry.ItemHeight)
}

// OnDragStart begins dragging itemID. Starts while a drag is active and
// unknown ids are ignored.
func (l *List) OnDragStart(itemID string) {
	if l.tracker.Active() {
		l.logger.Debug().Str("item", itemID).Str("active", l.tracker.Session().DraggedID).Msg("drag start ignored, session active")
		return
	}
	s, ok := l.tracker.Start(itemID, l.items)
	if !ok {
		l.logger.Debug().Str("item", itemID).Msg("drag start ignored, unknown item")
		return
	}
	l.logger.Debug().Str("item", itemID).Int("origin", s.OriginIndex).Msg("drag start")
}

// OnDragMove updates the hover position. Moves without a drag are ignored.
func (l *List) OnDragMove(pointerY float64) {
	if !l.tracker.Active() {
		l.logger.Debug().Float64("y", pointerY).Msg("drag move ignored, no session")
		return
	}
	prev := l.tracker.Session().HoverIndex
	s, err := l.tracker.Update(pointerY, l.geometry, l.items)
	if err != nil {
		// Only reachable if the list was emptied under an active drag.
		l.logger.Error().Err(err).Msg("drag move")
		return
	}
	if s.HoverIndex != prev {
		l.logger.Debug().Int("origin", s.OriginIndex).Int("hover", s.HoverIndex).Msg("hover changed")
	}
}

// OnDrop ends the drag and, if the order changed, fires the reorder
// callback. Drops without a drag are ignored.
func (l *List) OnDrop() {
	if !l.tracker.Active() {
		l.logger.Debug().Msg("drop ignored, no session")
		return
	}
	final := l.tracker.End()
	next, changed := Commit(l.items, final.OriginIndex, final.HoverIndex)
	if !changed {
		l.logger.Debug().Str("item", final.DraggedID).Msg("drop without change")
		return
	}
	l.logger.Info().
		Str("item", final.DraggedID).
		Msgf("reorder %d > %d", final.OriginIndex, final.HoverIndex)
	if l.onReorder != nil {
		l.onReorder(Reorder{
			OriginIndex: final.OriginIndex,
			HoverIndex:  final.HoverIndex,
			Items:       next,
		})
	}
}

// OnDragCancel clears the drag without reordering.
func (l *List) OnDragCancel() {
	if !l.tracker.Active() {
		l.logger.Debug().Msg("cancel ignored, no session")
		return
	}
	l.logger.Debug().Str("item", l.tracker.Session().DraggedID).Msg("drag cancelled")
	l.tracker.Cancel()
}
