// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Grid is a dense W×H container of T stored row-major in one slice.
//   - width, height hold dimensions (>= 0).
//   - data holds width*height cells; cell (x, y) is data[x+y*width].
//   - borrows counts range loops currently running over the grid's iterators.
//
// The zero value is an empty 0×0 grid ready for use.
type Grid[T any] struct {
	width, height int // column and row counts
	data          []T // contiguous row-major storage (len == width*height)
	borrows       int // live iterations; structural mutators refuse to run while > 0
}

// Point is a cell coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[int])(nil)
