package dnd

import "slices"

// Commit moves the item at originIndex to hoverIndex and returns the new
// sequence. The hover index is an insert position in the sequence with the
// dragged item already removed. It reports false, and returns nil, when the
// indices are equal or out of range. items is never modified.
func Commit(items []Item, originIndex, hoverIndex int) ([]Item, bool) {
	if originIndex == hoverIndex {
		return nil, false
	}
	if originIndex < 0 || originIndex >= len(items) || hoverIndex < 0 || hoverIndex >= len(items) {
		return nil, false
	}

	dragged := items[originIndex]
	next := slices.Delete(slices.Clone(items), originIndex, originIndex+1)
	return slices.Insert(next, hoverIndex, dragged), true
}
