package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(ids ...string) []Item {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Name: "Item-" + id}
	}
	return items
}

func numbered(n int) []Item {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}
	return makeItems(ids...)
}

func TestResolve(t *testing.T) {
	geom := Geometry{ItemHeight: 40, ContainerTop: 100}
	items := numbered(10)

	tests := []struct {
		name       string
		pointerY   float64
		origin     int
		wantIndex  int
		wantOffset float64
	}{
		{name: "far above clamps to first", pointerY: 0, origin: 3, wantIndex: 0, wantOffset: -220},
		{name: "far below clamps to last", pointerY: 10000, origin: 0, wantIndex: 9, wantOffset: 9900},
		{name: "exact slot", pointerY: 180, origin: 2, wantIndex: 2, wantOffset: 0},
		{name: "just under half rounds down", pointerY: 199, origin: 2, wantIndex: 2, wantOffset: 19},
		{name: "half rounds up", pointerY: 200, origin: 0, wantIndex: 3, wantOffset: 100},
		{name: "negative half rounds up", pointerY: 80, origin: 0, wantIndex: 0, wantOffset: -20},
		{name: "offset is relative to origin", pointerY: 140, origin: 4, wantIndex: 1, wantOffset: -120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hover, err := Resolve(tt.pointerY, geom, items, tt.origin)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, hover.Index)
			assert.InDelta(t, tt.wantOffset, hover.PointerOffset, 1e-9)
		})
	}
}

func TestResolve_HoverAlwaysInRange(t *testing.T) {
	for n := 1; n <= 12; n++ {
		items := numbered(n)
		for _, height := range []float64{1, 3, 40} {
			geom := Geometry{ItemHeight: height, ContainerTop: 7}
			for y := -500.0; y <= 1500; y += 13.5 {
				hover, err := Resolve(y, geom, items, n/2)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, hover.Index, 0)
				assert.LessOrEqual(t, hover.Index, n-1)
			}
		}
	}
}

func TestResolve_Errors(t *testing.T) {
	_, err := Resolve(10, Geometry{ItemHeight: 0}, numbered(3), 0)
	assert.ErrorIs(t, err, ErrInvalidItemHeight)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Resolve(10, Geometry{ItemHeight: -4}, numbered(3), 0)
	assert.ErrorIs(t, err, ErrInvalidItemHeight)

	_, err = Resolve(10, Geometry{ItemHeight: 40}, nil, 0)
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestVisualOffset(t *testing.T) {
	const h = 40.0

	t.Run("dragging down", func(t *testing.T) {
		got := make([]float64, 6)
		for i := range got {
			got[i] = VisualOffset(i, 1, 3, h)
		}
		// Index 1 is the dragged item; Layout overrides it.
		assert.Equal(t, []float64{0, 0, -h, -h, 0, 0}, got)
	})

	t.Run("dragging up", func(t *testing.T) {
		got := make([]float64, 6)
		for i := range got {
			got[i] = VisualOffset(i, 4, 1, h)
		}
		assert.Equal(t, []float64{0, h, h, h, 0, 0}, got)
	})

	t.Run("hovering at origin", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			assert.Zero(t, VisualOffset(i, 2, 2, h))
		}
	})
}

func TestLayout(t *testing.T) {
	items := numbered(5)

	t.Run("idle", func(t *testing.T) {
		for _, st := range Layout(items, Session{}, 40) {
			assert.Zero(t, st.Offset)
			assert.False(t, st.Dragging)
		}
	})

	t.Run("dragging", func(t *testing.T) {
		s := Session{Active: true, DraggedID: "b", OriginIndex: 1, HoverIndex: 3, PointerOffset: 75}
		states := Layout(items, s, 40)
		require.Len(t, states, 5)

		assert.Zero(t, states[0].Offset)
		assert.True(t, states[1].Dragging)
		assert.Equal(t, 75.0, states[1].Offset)
		assert.Equal(t, -40.0, states[2].Offset)
		assert.Equal(t, -40.0, states[3].Offset)
		assert.Zero(t, states[4].Offset)

		for i, st := range states {
			assert.Equal(t, i, st.Index)
			assert.Equal(t, items[i], st.Item)
			if i != 1 {
				assert.False(t, st.Dragging)
			}
		}
	})
}

func TestGeometryValidate(t *testing.T) {
	assert.NoError(t, Geometry{ItemHeight: 1}.Validate())
	assert.ErrorIs(t, Geometry{}.Validate(), ErrInvalidItemHeight)
}
