// SPDX-License-Identifier: MIT

// Package gridmat bridges grid.Grid[float64] and gonum's mat.Dense.
//
// Both types store cells row-major in one flat slice, so ToDense wraps the
// grid buffer without copying: cell (x, y) of the grid is element (y, x) of
// the matrix, and writes through either side are visible in the other.
//
// Complexity quicksheet:
//   - ToDense: O(1); FromDense: O(r*c); Mul: O(r*k*c).
package gridmat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmpty indicates a zero-sized grid, which gonum cannot represent.
	ErrEmpty = errors.New("gridmat: grid has no cells")
	// ErrShapeMismatch indicates incompatible operand shapes for Mul.
	ErrShapeMismatch = errors.New("gridmat: incompatible shapes")
)

// ToDense returns a Height×Width *mat.Dense sharing g's backing buffer.
// Returns ErrEmpty when g has no cells.
// The view is valid until g is cleared or consumed.
func ToDense(g *grid.Grid[float64]) (*mat.Dense, error) {
	if g.IsEmpty() {
		return nil, ErrEmpty
	}

	return mat.NewDense(g.Rows(), g.Cols(), g.Flatten()), nil
}

// FromDense copies any gonum matrix into a new grid of Width=c, Height=r.
// An empty matrix yields an empty 0×0 grid.
func FromDense(m mat.Matrix) *grid.Grid[float64] {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return grid.New[float64](0, 0)
	}
	// Fast path: a contiguous *mat.Dense copies in one call.
	if d, ok := m.(*mat.Dense); ok {
		raw := d.RawMatrix()
		if raw.Stride == c {
			return grid.FromSlice(append([]float64(nil), raw.Data[:r*c]...), c)
		}
	}
	g := grid.New[float64](c, r)
	for y := 0; y < r; y++ {
		row := g.Row(y)
		for x := range row {
			row[x] = m.At(y, x)
		}
	}

	return g
}

// Mul returns the matrix product a×b as a new grid, treating each grid's
// rows as matrix rows. Requires a.Width() == b.Height().
func Mul(a, b *grid.Grid[float64]) (*grid.Grid[float64], error) {
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("gridmat.Mul(%dx%d, %dx%d): %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch)
	}
	ma, err := ToDense(a)
	if err != nil {
		return nil, fmt.Errorf("gridmat.Mul: left operand: %w", err)
	}
	mb, err := ToDense(b)
	if err != nil {
		return nil, fmt.Errorf("gridmat.Mul: right operand: %w", err)
	}
	var prod mat.Dense
	prod.Mul(ma, mb)

	return FromDense(&prod), nil
}
