package grid_test

import (
	"testing"

	"github.com/NoSuchProcess/SOAX/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := grid.New(grid.Size{0, 3, 1})
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	g, err := grid.New(grid.Size{4, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Dim())
	assert.Equal(t, 12, g.Len())

	g3, err := grid.New(grid.Size{4, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, g3.Dim())
}

func TestOffsetCoordinateRoundTrip(t *testing.T) {
	g, err := grid.New(grid.Size{5, 4, 3})
	require.NoError(t, err)
	for off := 0; off < g.Len(); off++ {
		idx := g.Coordinate(off)
		require.True(t, g.InBounds(idx))
		require.Equal(t, off, g.Offset(idx))
	}
	assert.False(t, g.InBounds(grid.Index{5, 0, 0}))
	assert.False(t, g.InBounds(grid.Index{0, -1, 0}))
}

func TestLateralOffsets(t *testing.T) {
	g2, _ := grid.New(grid.Size{3, 3, 1})
	assert.Equal(t, []grid.Index{{0, -1, 0}, {0, 0, 0}, {0, 1, 0}}, g2.LateralOffsets(0))
	assert.Equal(t, []grid.Index{{-1, 0, 0}, {0, 0, 0}, {1, 0, 0}}, g2.LateralOffsets(1))
	assert.Nil(t, g2.LateralOffsets(2))

	g3, _ := grid.New(grid.Size{3, 3, 3})
	off := g3.LateralOffsets(2)
	require.Len(t, off, 9)
	assert.Equal(t, grid.Index{-1, -1, 0}, off[0])
	assert.Equal(t, grid.Index{-1, 0, 0}, off[1])
	assert.Equal(t, grid.Index{1, 1, 0}, off[8])
}

func TestScanOrder(t *testing.T) {
	g, _ := grid.New(grid.Size{2, 3, 1})
	var seen []grid.Index
	require.NoError(t, g.Scan(0, func(idx grid.Index) bool {
		seen = append(seen, idx)
		return true
	}))
	require.Len(t, seen, 6)
	// x outermost, then y.
	assert.Equal(t, grid.Index{0, 0, 0}, seen[0])
	assert.Equal(t, grid.Index{0, 1, 0}, seen[1])
	assert.Equal(t, grid.Index{1, 0, 0}, seen[3])

	var n int
	require.NoError(t, g.Scan(1, func(grid.Index) bool {
		n++
		return n < 2
	}))
	assert.Equal(t, 2, n)
	require.ErrorIs(t, g.Scan(2, func(grid.Index) bool { return true }), grid.ErrAxis)
}

func TestLines(t *testing.T) {
	g, _ := grid.New(grid.Size{4, 3, 2})
	var starts []grid.Index
	require.NoError(t, g.Lines(1, func(s grid.Index) { starts = append(starts, s) }))
	assert.Len(t, starts, 8)
	for _, s := range starts {
		assert.Zero(t, s[1])
	}
}

func TestFlags(t *testing.T) {
	g, _ := grid.New(grid.Size{3, 3, 1})
	f := grid.NewFlags(g)
	idx := grid.Index{1, 2, 0}
	f.Set(idx, 0, true)
	f.Set(idx, 1, true)
	assert.True(t, f.Get(idx, 0))
	assert.True(t, f.Get(idx, 1))
	assert.Equal(t, 1, f.Count(0))

	f.Set(idx, 0, false)
	assert.False(t, f.Get(idx, 0))
	assert.True(t, f.Get(idx, 1))

	f.Clear(idx)
	assert.False(t, f.Get(idx, 1))
	assert.False(t, f.Get(grid.Index{9, 9, 0}, 0))
	f.Set(grid.Index{-1, 0, 0}, 0, true)
	assert.Equal(t, 0, f.Count(0))
	assert.Same(t, g, f.Grid())
}
