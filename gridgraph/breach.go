package gridgraph

import (
	"container/list"
	"fmt"
)

// Breach finds a path from a to b that crosses the fewest obstacles, moving in
// 8 directions. Entering an open cell costs 0, entering a blocked cell costs 1;
// a blocked start cell counts as one obstacle as well.
// Returns the sequence of cells (including a and b) and the number of
// obstacles that would have to be cleared for the path to exist. A cost of 0
// means a and b are already connected.
//
// Behavior:
//  1. Validate a and b lie inside the grid.
//  2. 0–1 BFS from a:
//     • Moving into an open cell    → cost 0 (push front)
//     • Moving into a blocked cell  → cost 1 (push back)
//  3. Stop when b is popped.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(R·C·8), Memory: O(R·C) for distance and prev pointers.
func (gg *GridGraph) Breach(a, b Cell) (path []Cell, cost int, err error) {
	if !gg.InBounds(a) {
		return nil, 0, fmt.Errorf("%w: %s", ErrOutOfBounds, a)
	}
	if !gg.InBounds(b) {
		return nil, 0, fmt.Errorf("%w: %s", ErrOutOfBounds, b)
	}

	n := gg.rows * gg.cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := gg.index(a), gg.index(b)
	dist[src] = 0
	if gg.Blocked(a) {
		dist[src] = 1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(src)
	done := make([]bool, n)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			break
		}
		uc := gg.Coordinate(u)
		for _, d := range neighborOffsets {
			vc := uc.Add(d)
			if !gg.InBounds(vc) {
				continue
			}
			v := gg.index(vc)
			step := 0
			if gg.Blocked(vc) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !done[dst] {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at := dst; at >= 0; at = prev[at] {
		path = append(path, gg.Coordinate(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[dst], nil
}
