package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// entry is one frontier record: a cell and its estimated total cost f = g + h.
// seq is the insertion sequence number that breaks ties between equal f.
type entry struct {
	f    float64
	seq  int
	cell gridgraph.Cell
}

// frontier is a min-heap of entry ordered by (f, seq) ascending.
// We use the “lazy-decrease-key” approach: when we find a cheaper cost to a cell,
// we push a new entry. The outdated entry stays in the heap and is ignored when
// popped (checked via the settled map).
type frontier []entry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by estimated total cost, then by earlier insertion.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be an entry. Called by heap.Push.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
