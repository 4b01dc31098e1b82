package scenario

import (
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Overlay characters used by Render on top of the grid.Parse layout.
const (
	CellPath    = '*'
	CellVisited = 'o'
)

// Render writes g to w, one line per row. With a non-nil res, visited
// cells print as CellVisited and, when the finish was reached, path cells
// as CellPath. Endpoints and walls keep their layout characters.
func Render(w io.Writer, g *grid.Grid, res *search.Result) error {
	overlay := make([]byte, g.Len())
	if res != nil {
		for _, i := range res.Order {
			overlay[i] = CellVisited
		}
		if path, err := res.Path(); err == nil {
			for _, i := range path {
				overlay[i] = CellPath
			}
		}
	}

	var sb strings.Builder
	sb.Grow(g.Rows * (g.Columns + 1))
	for i := 0; i < g.Len(); i++ {
		n := g.NodeAt(i)
		switch {
		case n.IsStart:
			sb.WriteByte(grid.CellStart)
		case n.IsFinish:
			sb.WriteByte(grid.CellFinish)
		case n.IsWall:
			sb.WriteByte(grid.CellWall)
		case overlay[i] != 0:
			sb.WriteByte(overlay[i])
		default:
			sb.WriteByte(grid.CellOpen)
		}
		if (i+1)%g.Columns == 0 {
			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
