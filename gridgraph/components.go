package gridgraph

// ConnectedComponents finds all contiguous regions of open cells under
// 8-connectivity. Components are returned in row-major discovery order and
// the cells of each component are listed in row-major order.
//
// Time:   O(R·C·8).
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	labels := gg.ComponentIndex()
	var comps [][]Cell
	for i, l := range labels {
		if l < 0 {
			continue // obstacle
		}
		if l == len(comps) {
			comps = append(comps, nil)
		}
		comps[l] = append(comps[l], gg.Coordinate(i))
	}

	return comps
}

// ComponentIndex labels every cell with the index of its component
// (row-major discovery order, starting at 0). Blocked cells get -1.
//
// Time:   O(R·C·8).
// Memory: O(R·C).
func (gg *GridGraph) ComponentIndex() []int {
	total := gg.rows * gg.cols
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	next := 0
	queue := make([]int, 0, total)

	for i := 0; i < total; i++ {
		if labels[i] >= 0 || gg.Blocked(gg.Coordinate(i)) {
			continue
		}
		labels[i] = next
		queue = append(queue[:0], i)
		for qi := 0; qi < len(queue); qi++ {
			uc := gg.Coordinate(queue[qi])
			for _, d := range neighborOffsets {
				vc := uc.Add(d)
				if !gg.Passable(vc) {
					continue
				}
				vi := gg.index(vc)
				if labels[vi] < 0 {
					labels[vi] = next
					queue = append(queue, vi)
				}
			}
		}
		next++
	}

	return labels
}

// Connected reports whether a and b are open cells of the same component.
// Out-of-bounds or blocked cells are never connected.
func (gg *GridGraph) Connected(a, b Cell) bool {
	if !gg.Passable(a) || !gg.Passable(b) {
		return false
	}
	labels := gg.ComponentIndex()

	return labels[gg.index(a)] == labels[gg.index(b)]
}
