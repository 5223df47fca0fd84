// SPDX-License-Identifier: MIT

// Package grid provides Grid[T], a dense two-dimensional container backed
// by a single row-major slice.
//
// What:
//
//   - Cell (x, y) lives at linear offset x + y*Width; a row is a contiguous
//     sub-slice, a column is a strided walk with stride Width.
//   - Construction: New (zero values), Init (copies of one value),
//     FromSlice (adopts an existing buffer), FromRows (copies a [][]T).
//   - Access: a checked tier (Get, GetPtr, Set) and a trusted tier
//     (GetUnchecked, GetUncheckedPtr) for hot loops.
//   - Iteration: Iter/IterMut, IterRow/IterRowMut, IterCol/IterColMut and All,
//     all lazy range-over-func sequences in row-major order.
//   - Bulk: Fill, FillWith, Map, Flatten, IntoSlice, Clear, and Or for grids
//     of optional (*T) cells.
//
// Errors:
//
//   - Precondition violations (bad shapes, out-of-range rows or columns,
//     structural mutation during iteration) panic with an error wrapping one
//     of the sentinels in errors.go. They are caller bugs.
//   - Absence is not an error: Get reports ok=false and GetPtr returns nil.
//   - FromRows is the only constructor that returns an error, because its
//     input usually comes from outside the program.
//
// Ownership:
//
//   - A Grid owns its buffer. Flatten, Row and the mutable iterators hand out
//     views of that buffer; they stay valid until the next structural change.
//   - IntoSlice, Map and Or consume their receivers: afterwards the source is
//     an empty 0×0 grid.
//   - While a range loop over any of the grid's iterators is running, Fill,
//     FillWith, Clear, IntoSlice, Map and Or panic with ErrBorrowed.
//
// A Grid is not safe for concurrent mutation; synchronize externally.
//
// Complexity:
//
//   - Construction O(W×H); Get/Set O(1); row iteration O(W); column O(H).
package grid
