package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_SetClearCounts(t *testing.T) {
	g := NewGrid(4)
	assert.False(t, g.Any())

	g.Set(1, 2)
	g.Set(1, 2) // idempotent
	g.Set(3, 0)
	g.Set(9, 9) // outside, ignored

	assert.Equal(t, 2, g.Count())
	assert.Equal(t, 1, g.ColumnCount(1))
	assert.Equal(t, 1, g.ColumnCount(3))
	assert.True(t, g.At(1, 2))
	assert.False(t, g.At(2, 1))
	assert.False(t, g.At(-1, 0))

	g.Clear(1, 2)
	g.Clear(1, 2)
	assert.Equal(t, 1, g.Count())
	assert.Equal(t, 0, g.ColumnCount(1))
}

func TestGrid_SetRectClips(t *testing.T) {
	g := NewGrid(5)
	g.SetRect(-2, 3, 10, 10)
	assert.Equal(t, 10, g.Count())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.RowIndices(4))
	assert.Empty(t, g.RowIndices(2))
}

func TestGrid_DiscShape(t *testing.T) {
	tests := []struct {
		radius int
		want   int
	}{
		{0, 1},
		{1, 5},
		{2, 13},
		{3, 29},
	}

	for _, tt := range tests {
		g := NewGrid(21)
		g.FillDisc(Point{Col: 10, Row: 10}, tt.radius)
		assert.Equal(t, tt.want, g.Count(), "radius %d", tt.radius)
	}
}

func TestGrid_DiscClippedAtBorder(t *testing.T) {
	g := NewGrid(10)
	g.FillDisc(Point{Col: 0, Row: 0}, 1)
	// (0,0), (1,0), (0,1)
	assert.Equal(t, 3, g.Count())
}

func TestGrid_DiscHitsAnyDoesNotMutate(t *testing.T) {
	g := NewGrid(16)
	g.Set(8, 8)
	before := g.Clone()

	assert.True(t, g.DiscHitsAny(Point{Col: 5, Row: 8}, 3))
	assert.False(t, g.DiscHitsAny(Point{Col: 5, Row: 8}, 2))
	// (6,10) is at squared distance 8 from (8,8)
	assert.True(t, g.DiscHitsAny(Point{Col: 6, Row: 10}, 3))
	assert.False(t, g.DiscHitsAny(Point{Col: 6, Row: 10}, 2))

	assert.Equal(t, before.cells, g.cells)
	assert.Equal(t, before.Count(), g.Count())
}

func TestGrid_ClearDisc(t *testing.T) {
	g := NewGrid(9)
	g.SetRect(0, 0, 9, 9)
	g.ClearDisc(Point{Col: 4, Row: 4}, 2)
	assert.Equal(t, 81-13, g.Count())
	assert.False(t, g.At(4, 2))
	assert.True(t, g.At(2, 2))
}

func TestGrid_NthEnumeratesColumnMajor(t *testing.T) {
	g := NewGrid(3)
	g.Set(2, 0)
	g.Set(0, 2)
	g.Set(0, 1)
	g.Set(2, 2)

	want := []Point{{0, 1}, {0, 2}, {2, 0}, {2, 2}}
	for i, w := range want {
		p, ok := g.Nth(i)
		require.True(t, ok)
		assert.Equal(t, w, p, "n=%d", i)
	}
	_, ok := g.Nth(len(want))
	assert.False(t, ok)
	_, ok = g.Nth(-1)
	assert.False(t, ok)
}

func TestIsqrt(t *testing.T) {
	for n := 0; n < 2000; n++ {
		r := isqrt(n)
		assert.LessOrEqual(t, r*r, n)
		assert.Greater(t, (r+1)*(r+1), n)
	}
}

func TestDiscSpan(t *testing.T) {
	lo, hi, ok := DiscSpan(Point{Col: 5, Row: 5}, 3, 7)
	require.True(t, ok)
	assert.Equal(t, 3, lo)
	assert.Equal(t, 7, hi)

	_, _, ok = DiscSpan(Point{Col: 5, Row: 5}, 3, 9)
	assert.False(t, ok)
}
