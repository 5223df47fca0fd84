package gridgraph

import "github.com/katalvlaran/lvlgrid/grid"

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (value ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order. Components are numbered in the row-major order
// of their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := grid.New[bool](gg.Width, gg.Height).Flatten()
	var comps [][]int
	offsets := gg.NeighborOffsets()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue // water
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ux, uy := gg.Coordinate(u)
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// LabelComponents returns a grid of the same shape where every land cell
// holds the index of its component in ConnectedComponents() and every water
// cell holds -1.
//
// Time: O(W·H·d), Memory: O(W·H).
func (gg *GridGraph) LabelComponents() *grid.Grid[int] {
	labels := grid.Map(gg.Cells(), func(int) int { return -1 })
	cells := labels.Flatten()
	for id, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			cells[idx] = id
		}
	}
	return labels
}
