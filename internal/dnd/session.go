package dnd

// Session is the state of an in-flight drag. The zero value means no drag
// is active.
type Session struct {
	Active        bool
	DraggedID     string
	OriginIndex   int     // Index of the dragged item when the drag began.
	HoverIndex    int     // Slot the item would land in if dropped now.
	PointerOffset float64 // Pointer distance from the item's undisplaced slot.
}

// Start begins a drag of itemID. It returns s unchanged if a drag is already
// active or the id is not in items.
func Start(s Session, itemID string, items []Item) Session {
	if s.Active {
		return s
	}
	index := IndexOf(items, itemID)
	if index < 0 {
		return s
	}
	return Session{
		Active:      true,
		DraggedID:   itemID,
		OriginIndex: index,
		HoverIndex:  index,
	}
}

// Update recomputes the hover index and pointer offset from scratch. An
// inactive session yields the zero Session. On error s is returned as is.
func Update(s Session, pointerY float64, geom Geometry, items []Item) (Session, error) {
	if !s.Active {
		return Session{}, nil
	}
	hover, err := Resolve(pointerY, geom, items, s.OriginIndex)
	if err != nil {
		return s, err
	}
	s.HoverIndex = hover.Index
	s.PointerOffset = hover.PointerOffset
	return s, nil
}

// End returns the final state of s and the cleared session that replaces
// it. It is safe to call without an active drag.
func End(s Session) (final Session, next Session) {
	return s, Session{}
}

// Cancel drops the session without any reorder.
func Cancel(Session) Session {
	return Session{}
}

// Tracker owns the single live drag session.
type Tracker struct {
	session Session
}

// Session returns a copy of the current session.
func (t *Tracker) Session() Session {
	return t.session
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool {
	return t.session.Active
}

// Start begins a drag. It reports false if the start was rejected.
func (t *Tracker) Start(itemID string, items []Item) (Session, bool) {
	next := Start(t.session, itemID, items)
	started := !t.session.Active && next.Active
	t.session = next
	return next, started
}

// Update moves the hover position of the active drag.
func (t *Tracker) Update(pointerY float64, geom Geometry, items []Item) (Session, error) {
	next, err := Update(t.session, pointerY, geom, items)
	if err != nil {
		return t.session, err
	}
	t.session = next
	return next, nil
}

// End clears the session and returns its final state.
func (t *Tracker) End() Session {
	final, next := End(t.session)
	t.session = next
	return final
}

// Cancel clears the session.
func (t *Tracker) Cancel() {
	t.session = Cancel(t.session)
}
