package gridgraph

import (
	"errors"

	"github.com/katalvlaran/lvlgrid/grid"
)

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	// It is grid.ErrEmptyGrid, so errors.Is matches either name.
	ErrEmptyGrid = grid.ErrEmptyGrid
	// ErrNonRectangular indicates rows of differing lengths; alias of grid.ErrNonRectangular.
	ErrNonRectangular = grid.ErrNonRectangular
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)
