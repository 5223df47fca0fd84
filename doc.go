// Package lvlgrid is a small toolkit for dense two-dimensional data: a
// generic row-major grid and the analyses built on top of it.
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/      — Grid[T]: construction, checked and trusted access, lazy row/column
//	             iteration, Fill/Map/Or and consuming conversions
//	gridgraph/ — islands over a Grid[int]: connected components, labels, 0-1 BFS bridging
//	gridmat/   — zero-copy bridge between Grid[float64] and gonum mat.Dense
//
// Quick ASCII example of the row-major layout of a 3×2 grid:
//
//	(0,0) (1,0) (2,0)      offsets 0 1 2
//	(0,1) (1,1) (2,1)      offsets 3 4 5
//
// A row is a contiguous window of the buffer; a column is a walk with stride 3.
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
