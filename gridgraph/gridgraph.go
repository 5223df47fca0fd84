// Package gridgraph provides utilities to treat a grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected components of “land” cells
//   - Shortest-path expansions between components
//
// Cells with value < LandThreshold are considered “water”; cells with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty grid.
// It clones the input to ensure immutability.
// Returns ErrEmptyGrid if g has no rows or no columns.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(g *grid.Grid[int], opts GridOptions) (*GridGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("gridgraph.NewGridGraph(nil): %w", ErrEmptyGrid)
	}
	if g.Width() == 0 || g.Height() == 0 {
		return nil, fmt.Errorf("gridgraph.NewGridGraph(%dx%d): %w", g.Width(), g.Height(), ErrEmptyGrid)
	}
	// Precompute neighbor offsets based on connectivity
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}
	gg := &GridGraph{
		Width:           g.Width(),
		Height:          g.Height(),
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		cells:           g.Clone(),
		neighborOffsets: offsets,
	}

	return gg, nil
}

// From2D builds a GridGraph from rows[y][x] with default options and the
// given connectivity. Empty and ragged inputs fail with errors matching
// ErrEmptyGrid and ErrNonRectangular, carrying the grid.FromRows detail.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	g, err := grid.FromRows(values)
	if err != nil {
		return nil, fmt.Errorf("gridgraph.From2D: %w", err)
	}
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(g, opts)
}

// Cells returns a copy of the underlying value grid.
func (gg *GridGraph) Cells() *grid.Grid[int] {
	return gg.cells.Clone()
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return gg.cells.InBounds(x, y)
}

// IsLand reports whether (x,y) is in bounds and holds a value ≥ LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.cells.GetUnchecked(x, y) >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return gg.cells.Index(x, y)
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return gg.cells.Coordinate(idx)
}
