// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations. Precondition violations panic with
// an error wrapping one of these; FromRows returns them.
var (
	// ErrInvalidDimensions indicates a negative dimension or a non-positive FromSlice width.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	// ErrShapeMismatch indicates a buffer length that is not a multiple of
	// the width, or operands of different shapes.
	ErrShapeMismatch = errors.New("grid: shape mismatch")
	// ErrRowOutOfRange indicates a row index outside [0, Height).
	ErrRowOutOfRange = errors.New("grid: row out of range")
	// ErrColOutOfRange indicates a column index outside [0, Width).
	ErrColOutOfRange = errors.New("grid: column out of range")
	// ErrBorrowed indicates a structural mutation while an iteration is live.
	ErrBorrowed = errors.New("grid: grid is borrowed by a live iteration")
	// ErrEmptyGrid indicates FromRows input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates FromRows input rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Method tags used in error wrappers.
const (
	ctxNew       = "New"
	ctxInit      = "Init"
	ctxFromSlice = "FromSlice"
	ctxFromRows  = "FromRows"
	ctxRow       = "IterRow"
	ctxCol       = "IterCol"
	ctxFill      = "Fill"
	ctxFillWith  = "FillWith"
	ctxMap       = "Map"
	ctxIntoSlice = "IntoSlice"
	ctxClear     = "Clear"
	ctxOr        = "Or"
)

// gridErrorf wraps a sentinel with the method tag and a formatted detail,
// producing "Grid.<method>(<detail>): <sentinel>".
func gridErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("Grid.%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
