package grid

import (
	"fmt"
	"strings"
)

// Layout characters understood by Parse and produced by String.
const (
	CellOpen   = '.'
	CellWall   = '#'
	CellStart  = 'S'
	CellFinish = 'F'
)

// Parse builds a grid from a text layout, one string per row:
//
//	S..#.
//	.#.#.
//	...#F
//
// '.' is open, '#' a wall, 'S' the start and 'F' the finish. Surrounding
// blank lines and spaces are trimmed from each row.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadCell or ErrEndpointCount.
// Complexity: O(R×C).
func Parse(lines ...string) (*Grid, error) {
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			rows = append(rows, l)
		}
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])

	var starts, finishes, walls []Coord
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c := 0; c < len(row); c++ {
			at := Coord{Row: r, Col: c}
			switch row[c] {
			case CellOpen:
			case CellWall:
				walls = append(walls, at)
			case CellStart:
				starts = append(starts, at)
			case CellFinish:
				finishes = append(finishes, at)
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrBadCell, row[c], at)
			}
		}
	}
	if len(starts) != 1 || len(finishes) != 1 {
		return nil, fmt.Errorf("%w: found %d start and %d finish cells", ErrEndpointCount, len(starts), len(finishes))
	}

	return New(len(rows), w, starts[0], finishes[0], WithWalls(walls...))
}

// String renders the grid in the layout accepted by Parse, rows separated
// by newlines. A walled endpoint prints as its endpoint letter.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Columns + 1))
	for i := range g.nodes {
		if i > 0 && i%g.Columns == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte(g.cellChar(i))
	}
	return sb.String()
}

func (g *Grid) cellChar(i int) byte {
	n := &g.nodes[i]
	switch {
	case n.IsStart:
		return CellStart
	case n.IsFinish:
		return CellFinish
	case n.IsWall:
		return CellWall
	default:
		return CellOpen
	}
}
