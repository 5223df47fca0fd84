// SPDX-License-Identifier: MIT

// Package grid - lazy iteration.
//
// Purpose:
//   - Expose row-major, row and column walks as iter.Seq values usable with
//     range-over-func.
//   - Register every running range loop as a borrow so structural mutators
//     can refuse to run underneath it.
//
// Behavior highlights:
//   - Sequences are restartable: ranging twice walks the grid twice.
//   - Row and column indices are validated when the sequence is created, not
//     when it is ranged, so a bad index fails at the call site.
//   - Mutable forms yield *T pointing into the backing buffer.

package grid

import "iter"

// borrow marks the start of an iteration and returns its release func.
func (g *Grid[T]) borrow() func() {
	g.borrows++
	return func() { g.borrows-- }
}

// mustNotBeBorrowed panics with ErrBorrowed if an iteration is running.
func (g *Grid[T]) mustNotBeBorrowed(method string) {
	if g.borrows > 0 {
		panic(gridErrorf(method, ErrBorrowed, "live=%d", g.borrows))
	}
}

// Iter yields every cell by value in row-major order.
// Complexity: O(W*H).
func (g *Grid[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer g.borrow()()
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// IterMut yields a pointer to every cell in row-major order.
// Complexity: O(W*H).
func (g *Grid[T]) IterMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		defer g.borrow()()
		for i := range g.data {
			if !yield(&g.data[i]) {
				return
			}
		}
	}
}

// All yields every cell with its coordinate in row-major order.
// Complexity: O(W*H).
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		defer g.borrow()()
		for i, v := range g.data {
			if !yield(Point{X: i % g.width, Y: i / g.width}, v) {
				return
			}
		}
	}
}

// Row returns the contiguous cells of row as a sub-slice of the backing
// buffer, i.e. offsets [row*Width, row*Width+Width). Writes through the
// slice update the grid.
//
// Panics with ErrRowOutOfRange unless 0 <= row < Height.
// Complexity: O(1).
func (g *Grid[T]) Row(row int) []T {
	if row < 0 || row >= g.height {
		panic(gridErrorf(ctxRow, ErrRowOutOfRange, "%d of %d", row, g.height))
	}
	start := row * g.width

	return g.data[start : start+g.width : start+g.width]
}

// IterRow yields the Width cells of row by value, left to right.
// Panics with ErrRowOutOfRange unless 0 <= row < Height.
// Complexity: O(W).
func (g *Grid[T]) IterRow(row int) iter.Seq[T] {
	cells := g.Row(row)
	return func(yield func(T) bool) {
		defer g.borrow()()
		for _, v := range cells {
			if !yield(v) {
				return
			}
		}
	}
}

// IterRowMut is the pointer form of IterRow.
func (g *Grid[T]) IterRowMut(row int) iter.Seq[*T] {
	cells := g.Row(row)
	return func(yield func(*T) bool) {
		defer g.borrow()()
		for i := range cells {
			if !yield(&cells[i]) {
				return
			}
		}
	}
}

// colCells validates col and returns the buffer tail starting at col.
func (g *Grid[T]) colCells(col int) []T {
	if col < 0 || col >= g.width {
		panic(gridErrorf(ctxCol, ErrColOutOfRange, "%d of %d", col, g.width))
	}
	if g.height == 0 {
		return nil // W×0: valid column, no cells
	}

	return g.data[col:]
}

// IterCol yields the cells at offsets col, col+Width, col+2*Width, ... to
// the end of the buffer, i.e. the Height cells of column col top to bottom.
// Panics with ErrColOutOfRange unless 0 <= col < Width.
// Complexity: O(H).
func (g *Grid[T]) IterCol(col int) iter.Seq[T] {
	cells, stride := g.colCells(col), g.width
	return func(yield func(T) bool) {
		defer g.borrow()()
		for i := 0; i < len(cells); i += stride {
			if !yield(cells[i]) {
				return
			}
		}
	}
}

// IterColMut is the pointer form of IterCol.
func (g *Grid[T]) IterColMut(col int) iter.Seq[*T] {
	cells, stride := g.colCells(col), g.width
	return func(yield func(*T) bool) {
		defer g.borrow()()
		for i := 0; i < len(cells); i += stride {
			if !yield(&cells[i]) {
				return
			}
		}
	}
}
