// SPDX-License-Identifier: MIT

package grid

// Or merges two grids of optional cells, where a nil *T means "absent".
// MAIN DESCRIPTION:
//   - Cell-wise fallback: each result cell is a's cell if non-nil, else b's
//     cell (which may itself be nil).
//
// Implementation:
//   - Stage 1: require identical width and height.
//   - Stage 2: pair cells by linear offset in one row-major pass.
//   - Stage 3: consume both operands (they become empty 0×0 grids).
//
// Behavior highlights:
//   - Pointers are moved, not copied: the result shares pointees with the
//     operands' former cells.
//   - Passing the same grid twice is allowed and yields its own cells.
//
// Panics:
//   - ErrShapeMismatch when the shapes differ.
//   - ErrBorrowed while an iteration over either operand is running.
//
// Complexity:
//   - Time O(W*H), Space O(W*H).
func Or[T any](a, b *Grid[*T]) *Grid[*T] {
	if a.width != b.width || a.height != b.height {
		panic(gridErrorf(ctxOr, ErrShapeMismatch, "%dx%d vs %dx%d", a.width, a.height, b.width, b.height))
	}
	a.mustNotBeBorrowed(ctxOr)
	b.mustNotBeBorrowed(ctxOr)

	out := make([]*T, len(a.data))
	for i, v := range a.data {
		if v == nil {
			v = b.data[i]
		}
		out[i] = v
	}
	res := &Grid[*T]{width: a.width, height: a.height, data: out}
	a.release()
	b.release()

	return res
}
