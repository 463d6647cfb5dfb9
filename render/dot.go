package render

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

const dotGraphName = "grid"

// Graphviz colors.
const (
	dotColorPath = "palegreen"
	dotColorSlow = "khaki"
	dotColorOpen = "white"
)

// nodeID names the DOT node of c, e.g. r2c3.
func nodeID(c gridgraph.Cell) string {
	return fmt.Sprintf("r%dc%d", c.Row, c.Col)
}

// DOT renders the open cells of g as a Graphviz digraph. Every open cell is a
// node pinned at (col, -row); walls are omitted. Path cells are filled and the
// path is drawn as directed edges labelled with their step cost. A path that
// is not a valid 8-connected walk over open cells is rejected with the astar error.
// Use `neato -n` to keep the grid layout.
func DOT(g *gridgraph.GridGraph, path []gridgraph.Cell) (string, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName(dotGraphName); err != nil {
		return "", err
	}
	if err := graph.SetDir(true); err != nil {
		return "", err
	}
	for _, attr := range [][2]string{{"splines", "true"}, {"overlap", "false"}} {
		if err := graph.AddAttr(dotGraphName, attr[0], attr[1]); err != nil {
			return "", err
		}
	}

	onPath := make(map[gridgraph.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := gridgraph.C(r, c)
			if g.Blocked(cell) {
				continue
			}
			fill := dotColorOpen
			switch {
			case onPath[cell]:
				fill = dotColorPath
			case g.EnterCost(cell) > 1:
				fill = dotColorSlow
			}
			err := graph.AddNode(dotGraphName, nodeID(cell), map[string]string{
				"label":     strconv.Quote(fmt.Sprintf("%d,%d\n%g", r, c, g.Cost(cell))),
				"pos":       strconv.Quote(fmt.Sprintf("%d,%d!", c*72, -r*72)),
				"shape":     "box",
				"style":     "filled",
				"fillcolor": fill,
			})
			if err != nil {
				return "", err
			}
		}
	}

	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		step, err := astar.PathCost(g, []gridgraph.Cell{prev, cur})
		if err != nil {
			return "", err
		}
		err = graph.AddEdge(nodeID(prev), nodeID(cur), true, map[string]string{
			"label":    strconv.Quote(strconv.FormatFloat(step, 'f', 3, 64)),
			"penwidth": "2",
		})
		if err != nil {
			return "", err
		}
	}

	return graph.String(), nil
}
