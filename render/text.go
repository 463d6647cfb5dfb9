package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Glyphs used by Grid.
const (
	GlyphStart = "S"
	GlyphGoal  = "G"
	GlyphPath  = "*"
	GlyphWall  = "#"
	GlyphOpen  = "."
)

// Styles holds the lipgloss style applied to each glyph.
type Styles struct {
	Start, Goal, Path, Wall, Open lipgloss.Style
	// Slow styles open cells whose entering cost is above 1.
	Slow lipgloss.Style
}

// DefaultStyles colors the path green, walls grey and slow terrain yellow.
func DefaultStyles() Styles {
	return Styles{
		Start: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Goal:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Path:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Wall:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Open:  lipgloss.NewStyle(),
		Slow:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// PlainStyles renders every glyph unstyled.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Start: plain, Goal: plain, Path: plain, Wall: plain, Open: plain, Slow: plain}
}

// Grid writes one line per row, glyphs separated by single spaces.
// path may be nil, in which case only walls and floor are drawn.
func Grid(w io.Writer, g *gridgraph.GridGraph, path []gridgraph.Cell, st Styles) error {
	onPath := make(map[gridgraph.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := gridgraph.C(r, c)
			switch {
			case len(path) > 0 && cell == path[0]:
				sb.WriteString(st.Start.Render(GlyphStart))
			case len(path) > 0 && cell == path[len(path)-1]:
				sb.WriteString(st.Goal.Render(GlyphGoal))
			case onPath[cell]:
				sb.WriteString(st.Path.Render(GlyphPath))
			case g.Blocked(cell):
				sb.WriteString(st.Wall.Render(GlyphWall))
			case g.EnterCost(cell) > 1:
				sb.WriteString(st.Slow.Render(GlyphOpen))
			default:
				sb.WriteString(st.Open.Render(GlyphOpen))
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// Costs writes the raw cost table, right-aligned per column with one space
// between columns. Grids without a cost map print 1 everywhere.
func Costs(w io.Writer, g *gridgraph.GridGraph) error {
	rows := make([][]string, g.Rows())
	for r := range rows {
		rows[r] = make([]string, g.Cols())
		for c := range rows[r] {
			rows[r][c] = strconv.FormatFloat(g.Cost(gridgraph.C(r, c)), 'g', -1, 64)
		}
	}

	cell := lipgloss.NewStyle().Align(lipgloss.Right)
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col > 0 {
				return cell.PaddingLeft(1)
			}
			return cell
		}).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())

	return err
}
