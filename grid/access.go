// SPDX-License-Identifier: MIT

// Package grid - cell access and shape queries.
//
// Purpose:
//   - Checked tier: Get/GetPtr/Set report absence instead of failing.
//   - Trusted tier: GetUnchecked/GetUncheckedPtr skip the grid-level check.
//
// Bounds semantics of the checked tier:
//   - A coordinate is present when x >= 0, y >= 0 and x + y*Width < len(data).
//   - Only the linear offset is compared with the buffer length, so x >= Width
//     aliases into the next row: on a 3×2 grid Get(3,0) reads (0,1), while
//     Get(0,2) is absent. Use InBounds for a strict per-axis check.

package grid

// offset returns the linear offset of (x, y) and whether the checked tier
// treats it as present.
// y is compared by division so x + y*width is never computed out of range.
func (g *Grid[T]) offset(x, y int) (int, bool) {
	n := len(g.data)
	if x < 0 || y < 0 || x >= n {
		return 0, false
	}
	// n > 0 implies width > 0 here.
	if y > (n-1-x)/g.width {
		return 0, false
	}

	return x + y*g.width, true
}

// Get returns a copy of the cell at (x, y) and true, or the zero value and
// false when the linear offset lies outside the buffer.
// Complexity: O(1).
func (g *Grid[T]) Get(x, y int) (T, bool) {
	off, ok := g.offset(x, y)
	if !ok {
		var zero T
		return zero, false
	}

	return g.data[off], true
}

// GetPtr returns a pointer to the cell at (x, y), or nil when absent.
// Writes through the pointer update the grid in place. The pointer is valid
// until the next structural change (Clear, IntoSlice, Map, Or).
// Complexity: O(1).
func (g *Grid[T]) GetPtr(x, y int) *T {
	off, ok := g.offset(x, y)
	if !ok {
		return nil
	}

	return &g.data[off]
}

// Set stores v at (x, y) and reports whether the cell was present.
// Bounds follow Get.
// Complexity: O(1).
func (g *Grid[T]) Set(x, y int, v T) bool {
	off, ok := g.offset(x, y)
	if !ok {
		return false
	}
	g.data[off] = v

	return true
}

// GetUnchecked returns the cell at (x, y) without a grid-level bounds check.
// MAIN DESCRIPTION:
//   - Trusted fast path for loops whose coordinates are already validated.
//
// Contract:
//   - The caller guarantees 0 <= x < Width and 0 <= y < Height.
//   - On violation the result is unspecified: an x overflow silently reads
//     another row, and an offset past the buffer ends in a runtime panic.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T]) GetUnchecked(x, y int) T {
	return g.data[x+y*g.width]
}

// GetUncheckedPtr is the pointer form of GetUnchecked, with the same contract.
func (g *Grid[T]) GetUncheckedPtr(x, y int) *T {
	return &g.data[x+y*g.width]
}

// InBounds reports whether 0 <= x < Width and 0 <= y < Height.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x, y) to its row-major offset x + y*Width. No bounds check.
func (g *Grid[T]) Index(x, y int) int {
	return x + y*g.width
}

// Coordinate converts a row-major offset back to (x, y).
// Width must be positive.
func (g *Grid[T]) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Size returns (Width, Height).
func (g *Grid[T]) Size() (width, height int) { return g.width, g.height }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Rows is an alias of Height.
func (g *Grid[T]) Rows() int { return g.height }

// Cols is an alias of Width.
func (g *Grid[T]) Cols() int { return g.width }

// IsEmpty reports whether the grid holds no cells.
func (g *Grid[T]) IsEmpty() bool { return len(g.data) == 0 }
