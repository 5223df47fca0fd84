// SPDX-License-Identifier: MIT

// Package grid - bulk operations over the whole buffer.
//
// Purpose:
//   - In-place writes: Fill, FillWith.
//   - Consuming transforms: Map, IntoSlice (source becomes an empty 0×0 grid).
//   - Views and copies: Flatten (no copy), Clone (deep buffer copy).
//
// Determinism:
//   - Every per-cell callback runs exactly once per cell in row-major order.

package grid

import (
	"fmt"
	"slices"
	"strings"
)

// Formatting literals for String.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Fill overwrites every cell with value.
// Panics with ErrBorrowed while an iteration over g is running.
// Complexity: O(W*H).
func (g *Grid[T]) Fill(value T) {
	g.mustNotBeBorrowed(ctxFill)
	for i := range g.data {
		g.data[i] = value
	}
}

// FillWith overwrites every cell with the result of produce, called once per
// cell in row-major order. Useful for per-cell distinct values such as
// random fills.
// Panics with ErrBorrowed while an iteration over g is running.
// Complexity: O(W*H) calls.
func (g *Grid[T]) FillWith(produce func() T) {
	g.mustNotBeBorrowed(ctxFillWith)
	for i := range g.data {
		g.data[i] = produce()
	}
}

// Map consumes g and returns a grid of the same shape whose cells are
// transform applied to g's cells in row-major order.
// MAIN DESCRIPTION:
//   - Element-wise transform with a change of element type.
//
// Implementation:
//   - Stage 1: refuse to run under a live iteration.
//   - Stage 2: build the output buffer in one row-major pass.
//   - Stage 3: reset g to the empty 0×0 state.
//
// Behavior highlights:
//   - Cells are handed to transform, not copied beforehand; g must not be
//     used as a source afterwards.
//
// Panics:
//   - ErrBorrowed while an iteration over g is running, or when transform
//     itself tries to Fill, Clear or consume g.
//
// Complexity:
//   - Time O(W*H), Space O(W*H).
func Map[T, U any](g *Grid[T], transform func(T) U) *Grid[U] {
	g.mustNotBeBorrowed(ctxMap)
	out := func() []U {
		defer g.borrow()() // transform must not restructure g
		out := make([]U, len(g.data))
		for i, v := range g.data {
			out[i] = transform(v)
		}
		return out
	}()
	res := &Grid[U]{width: g.width, height: g.height, data: out}
	g.release()

	return res
}

// Flatten returns the backing buffer in row-major order without copying.
// Writes through the slice update the grid.
func (g *Grid[T]) Flatten() []T {
	return g.data
}

// IntoSlice consumes g and returns its backing buffer in row-major order.
// Width and height are discarded; g becomes an empty 0×0 grid.
// Panics with ErrBorrowed while an iteration over g is running.
// Complexity: O(1).
func (g *Grid[T]) IntoSlice() []T {
	g.mustNotBeBorrowed(ctxIntoSlice)
	data := g.data
	g.release()

	return data
}

// Clear resets g to the empty 0×0 state.
// Panics with ErrBorrowed while an iteration over g is running.
func (g *Grid[T]) Clear() {
	g.mustNotBeBorrowed(ctxClear)
	g.release()
}

// release drops the buffer and zeroes the dimensions.
func (g *Grid[T]) release() {
	g.width, g.height = 0, 0
	g.data = nil
}

// Clone returns an independent copy of g with its own buffer.
// Complexity: O(W*H) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{width: g.width, height: g.height, data: slices.Clone(g.data)}
}

// Equal reports whether a and b have the same shape and equal cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	return a.width == b.width && a.height == b.height && slices.Equal(a.data, b.data)
}

// String renders one bracketed, comma-separated line per row.
// Intended for diagnostics; not for hot paths.
func (g *Grid[T]) String() string {
	var b strings.Builder
	var x, y, base int
	for y = 0; y < g.height; y++ {
		b.WriteString(_fmtRowOpen)
		base = y * g.width
		for x = 0; x < g.width; x++ {
			fmt.Fprint(&b, g.data[base+x])
			if x+1 < g.width {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
