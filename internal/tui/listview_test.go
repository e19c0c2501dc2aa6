package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/reorderlist/internal/dnd"
	"github.com/rileylov/reorderlist/internal/items"
)

func TestListView_Idle(t *testing.T) {
	states := dnd.Layout(items.Generate(3), dnd.Session{}, 1)
	out := listView{states: states, itemHeight: 1, width: 20, cursor: 1}.render()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Item-1")
	assert.Contains(t, lines[1], "Item-2")
	assert.Contains(t, lines[2], "Item-3")
}

func TestListView_Reflow(t *testing.T) {
	list := items.Generate(4)
	s := dnd.Session{Active: true, DraggedID: "1", OriginIndex: 0, HoverIndex: 2, PointerOffset: 2}
	out := listView{states: dnd.Layout(list, s, 1), itemHeight: 1, width: 20}.render()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Item-2")
	assert.Contains(t, lines[1], "Item-3")
	assert.Contains(t, lines[2], "Item-1")
	assert.Contains(t, lines[3], "Item-4")
}

func TestListView_DraggedRowStaysInside(t *testing.T) {
	list := items.Generate(3)
	s := dnd.Session{Active: true, DraggedID: "2", OriginIndex: 1, HoverIndex: 2, PointerOffset: 40}
	out := listView{states: dnd.Layout(list, s, 2), itemHeight: 2, width: 20}.render()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[4], "Item-2")
	assert.Contains(t, lines[2], "Item-3")
}

func TestListView_Empty(t *testing.T) {
	assert.Empty(t, listView{itemHeight: 1, width: 10}.render())
}
