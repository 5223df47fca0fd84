// SPDX-License-Identifier: MIT
// Package grid_test contains unit tests for construction and cell access.

package grid_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_ShapeAndZeroFill checks size and default values for several shapes.
func TestNew_ShapeAndZeroFill(t *testing.T) {
	shapes := [][2]int{{1, 1}, {3, 2}, {2, 3}, {7, 5}}
	for _, s := range shapes {
		g := grid.New[int](s[0], s[1])
		w, h := g.Size()
		require.Equal(t, s[0], w)
		require.Equal(t, s[1], h)
		require.Len(t, g.Flatten(), s[0]*s[1])
		for v := range g.Iter() {
			require.Zero(t, v)
		}
	}

	gs := grid.New[string](2, 2)
	require.Equal(t, []string{"", "", "", ""}, gs.Flatten())
}

// TestNew_ZeroSized verifies that 0×N and N×0 grids are legal and empty.
func TestNew_ZeroSized(t *testing.T) {
	g := grid.New[int](0, 4)
	require.True(t, g.IsEmpty())
	require.Equal(t, 0, g.Cols())
	require.Equal(t, 4, g.Rows())

	g = grid.New[int](4, 0)
	require.True(t, g.IsEmpty())
}

// TestNew_NegativeDimensions ensures negative shapes are precondition violations.
func TestNew_NegativeDimensions(t *testing.T) {
	requirePanicIs(t, grid.ErrInvalidDimensions, func() { grid.New[int](-1, 2) })
	requirePanicIs(t, grid.ErrInvalidDimensions, func() { grid.Init(2, -1, 0) })
}

// TestInit_FillsValue checks every cell equals the seed value.
func TestInit_FillsValue(t *testing.T) {
	g := grid.Init(4, 3, 7)
	require.Len(t, g.Flatten(), 12)
	for v := range g.Iter() {
		require.Equal(t, 7, v)
	}
}

// TestFromSlice_RoundTrip verifies height derivation and identity of the buffer.
func TestFromSlice_RoundTrip(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8}
	g := grid.FromSlice(data, 4)

	require.Equal(t, 4, g.Width())
	require.Equal(t, 2, g.Height())
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6, 7, 8}, g.Flatten()); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}
	// The buffer is adopted, not copied.
	require.Same(t, &data[0], &g.Flatten()[0])
}

// TestFromSlice_Preconditions ensures bad lengths abort instead of truncating.
func TestFromSlice_Preconditions(t *testing.T) {
	requirePanicIs(t, grid.ErrShapeMismatch, func() { grid.FromSlice([]int{1, 2, 3, 4, 5, 6, 7}, 3) })
	requirePanicIs(t, grid.ErrShapeMismatch, func() { grid.FromSlice([]int{1}, 2) })
	requirePanicIs(t, grid.ErrInvalidDimensions, func() { grid.FromSlice([]int{}, 0) })
	requirePanicIs(t, grid.ErrInvalidDimensions, func() { grid.FromSlice([]int{1, 2}, -2) })

	g := grid.FromSlice([]int(nil), 3)
	require.True(t, g.IsEmpty())
	require.Equal(t, 0, g.Height())
}

// TestFromRows checks copying and rejection of empty or ragged input.
func TestFromRows(t *testing.T) {
	rows := [][]int{{1, 2, 3}, {4, 5, 6}}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, g.Flatten())

	rows[0][0] = 99 // input is copied
	v, _ := g.Get(0, 0)
	require.Equal(t, 1, v)

	cases := []struct {
		name string
		rows [][]int
		err  error
	}{
		{"Nil", nil, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"Ragged", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromRows(tc.rows)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Access
//----------------------------------------------------------------------------//

// TestGet_MatchesUnchecked compares both access tiers on every in-bounds cell.
func TestGet_MatchesUnchecked(t *testing.T) {
	g := seq3x2()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			v, ok := g.Get(x, y)
			require.True(t, ok)
			require.Equal(t, g.GetUnchecked(x, y), v)
			require.Same(t, g.GetUncheckedPtr(x, y), g.GetPtr(x, y))
			require.Equal(t, x+y*3, v)
		}
	}
}

// TestGet_LinearOffsetAliasing pins the documented bounds semantics: only the
// linear offset is checked, so an x overflow reads the next row.
func TestGet_LinearOffsetAliasing(t *testing.T) {
	g := seq3x2()

	v, ok := g.Get(3, 0) // offset 3: row 1, col 0
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Same(t, g.GetPtr(0, 1), g.GetPtr(3, 0))
	require.False(t, g.InBounds(3, 0))

	_, ok = g.Get(0, 2) // offset 6: past the buffer
	require.False(t, ok)
	require.Nil(t, g.GetPtr(0, 2))

	_, ok = g.Get(5, 1) // offset 8
	require.False(t, ok)

	// Negative coordinates are always absent, even when the offset would land.
	_, ok = g.Get(-1, 1)
	require.False(t, ok)
	require.Nil(t, g.GetPtr(1, -1))

	// Huge coordinates whose offset would overflow int are absent, not a crash.
	_, ok = g.Get(0, math.MaxInt/2)
	require.False(t, ok)
	_, ok = g.Get(math.MaxInt, 1)
	require.False(t, ok)
	require.Nil(t, g.GetPtr(1, math.MaxInt/3+1))
	require.False(t, g.Set(math.MaxInt, 1, 9))
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, g.Flatten())
}

// TestGetPtr_WritesThrough verifies pointer writes update the grid.
func TestGetPtr_WritesThrough(t *testing.T) {
	g := grid.New[int](2, 2)
	*g.GetPtr(1, 1) = 42
	*g.GetUncheckedPtr(0, 1) = 7
	require.Equal(t, []int{0, 0, 7, 42}, g.Flatten())
}

// TestSet checks checked writes and their presence report.
func TestSet(t *testing.T) {
	g := grid.New[string](2, 2)
	require.True(t, g.Set(1, 0, "a"))
	require.False(t, g.Set(0, 2, "b"))
	require.False(t, g.Set(-1, 0, "c"))
	require.Equal(t, []string{"", "a", "", ""}, g.Flatten())
}

// TestGetUnchecked_PastBuffer shows that the trusted tier leaves violations
// to the runtime.
func TestGetUnchecked_PastBuffer(t *testing.T) {
	g := seq3x2()
	require.Panics(t, func() { _ = g.GetUnchecked(0, 2) })
}

// TestShapeQueries covers Size, Rows, Cols, IsEmpty, Index and Coordinate.
func TestShapeQueries(t *testing.T) {
	g := grid.New[byte](5, 3)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 5, g.Cols())
	require.False(t, g.IsEmpty())

	require.Equal(t, 13, g.Index(3, 2))
	x, y := g.Coordinate(13)
	require.Equal(t, 3, x)
	require.Equal(t, 2, y)

	require.True(t, g.InBounds(4, 2))
	require.False(t, g.InBounds(5, 0))
	require.False(t, g.InBounds(0, -1))
}

// TestZeroValueGrid ensures the zero Grid behaves as an empty 0×0 grid.
func TestZeroValueGrid(t *testing.T) {
	var g grid.Grid[int]
	require.True(t, g.IsEmpty())
	w, h := g.Size()
	require.Zero(t, w)
	require.Zero(t, h)
	_, ok := g.Get(0, 0)
	require.False(t, ok)
	require.Empty(t, collect(g.Iter()))
	require.Equal(t, "", g.String())
}
