// SPDX-License-Identifier: MIT

// Package grid - construction of Grid values.
//
// Purpose:
//   - Allocate fully-populated grids: zero-filled (New), value-filled (Init).
//   - Adopt an existing row-major buffer without copying (FromSlice).
//   - Copy a rectangular [][]T coming from callers (FromRows).
//
// Complexity quicksheet:
//   - New/Init/FromRows: O(W*H); FromSlice: O(1).

package grid

// New creates a width×height grid with every cell set to T's zero value.
// MAIN DESCRIPTION:
//   - Public constructor for the default-filled grid.
//
// Implementation:
//   - Stage 1: validate width>=0 && height>=0; else panic.
//   - Stage 2: allocate a zero-filled buffer of width*height cells.
//
// Behavior highlights:
//   - Zero-sized shapes (0×N, N×0) are legal and produce an empty grid.
//
// Panics:
//   - ErrInvalidDimensions on negative dimensions.
//
// Complexity:
//   - Time O(W*H), Space O(W*H).
func New[T any](width, height int) *Grid[T] {
	mustDimensions(ctxNew, width, height)

	return &Grid[T]{
		width:  width,
		height: height,
		data:   make([]T, width*height), // make() zero-fills deterministically
	}
}

// Init creates a width×height grid with every cell set to a copy of value.
// MAIN DESCRIPTION:
//   - Value-filled constructor.
//
// Behavior highlights:
//   - Copies are Go assignments: for pointer, slice or map element types all
//     cells share the referenced object.
//
// Panics:
//   - ErrInvalidDimensions on negative dimensions.
//
// Complexity:
//   - Time O(W*H), Space O(W*H).
func Init[T any](width, height int, value T) *Grid[T] {
	mustDimensions(ctxInit, width, height)
	data := make([]T, width*height)
	for i := range data {
		data[i] = value
	}

	return &Grid[T]{width: width, height: height, data: data}
}

// FromSlice adopts data as the row-major buffer of a grid of the given width.
// MAIN DESCRIPTION:
//   - Wrap an existing buffer; height is derived as len(data)/width.
//
// Implementation:
//   - Stage 1: require width > 0.
//   - Stage 2: require len(data) to be an exact multiple of width.
//   - Stage 3: take ownership of data (no copy).
//
// Behavior highlights:
//   - Never truncates or pads. A mismatched length is a caller bug.
//   - The caller must not keep using data afterwards except through the grid.
//
// Panics:
//   - ErrInvalidDimensions when width <= 0.
//   - ErrShapeMismatch when len(data) % width != 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func FromSlice[T any](data []T, width int) *Grid[T] {
	if width <= 0 {
		panic(gridErrorf(ctxFromSlice, ErrInvalidDimensions, "len=%d,width=%d", len(data), width))
	}
	if len(data)%width != 0 {
		panic(gridErrorf(ctxFromSlice, ErrShapeMismatch, "len=%d,width=%d", len(data), width))
	}

	return &Grid[T]{width: width, height: len(data) / width, data: data}
}

// FromRows copies a rectangular rows[y][x] slice into a new grid.
// Returns ErrEmptyGrid if rows has no rows or no columns and
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(W*H) time and memory.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, gridErrorf(ctxFromRows, ErrEmptyGrid, "rows=%d", len(rows))
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, gridErrorf(ctxFromRows, ErrNonRectangular, "row=%d,len=%d,want=%d", y, len(row), w)
		}
	}
	data := make([]T, 0, w*h)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Grid[T]{width: w, height: h, data: data}, nil
}

// mustDimensions panics unless both dimensions are non-negative.
func mustDimensions(method string, width, height int) {
	if width < 0 || height < 0 {
		panic(gridErrorf(method, ErrInvalidDimensions, "%d,%d", width, height))
	}
}
