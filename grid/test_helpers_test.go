// SPDX-License-Identifier: MIT
// Package grid_test contains test helpers shared by the grid tests.

package grid_test

import (
	"iter"
	"testing"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/stretchr/testify/require"
)

// requirePanicIs RUNS fn and asserts it panics with an error matching target.
// Implementation:
//   - Stage 1: recover in a deferred closure.
//   - Stage 2: assert the recovered value is an error and errors.Is(target).
//
// Notes:
//   - Grid precondition violations panic with wrapped sentinels, so
//     require.PanicsWithError would tie tests to message text.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %#v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// seq3x2 BUILDS the 3×2 grid
//
//	0 1 2
//	3 4 5
//
// used across tests for offset arithmetic.
func seq3x2() *grid.Grid[int] {
	return grid.FromSlice([]int{0, 1, 2, 3, 4, 5}, 3)
}

// collect drains a sequence into a slice.
func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// ptr returns a pointer to a fresh copy of v.
func ptr(v int) *int { return &v }
