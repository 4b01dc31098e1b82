package dijkstra

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Dijkstra searches g from start to finish and returns the run record.
// Result.Order holds the visited cells in finalization order; when
// Result.Found reports true, Result.Path rebuilds the shortest path.
//
// Options customization:
//
//   - search.WithContext(ctx): stop between iterations when ctx is done.
//   - search.WithOnVisit(fn):  observe each finalized cell; an error aborts.
//   - search.WithLogger(l):    Debug records about the run.
//   - search.WithMaxSteps(n):  cap the number of pops.
//
// Complexity: O(N log N) time, O(N) space.
func Dijkstra(g *grid.Grid, start, finish grid.Coord, opts ...search.Option) (*search.Result, error) {
	return search.Run(g, start, finish, UnitCost, opts...)
}

// Solve runs Dijkstra between the grid's own start and finish cells.
func Solve(g *grid.Grid, opts ...search.Option) (*search.Result, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	return Dijkstra(g, g.Start().Coord(), g.Finish().Coord(), opts...)
}

// UnitCost is the relaxation rule of uniform-cost search: one more step
// than the expanded cell.
func UnitCost(_ *grid.Grid, current float64, _ int) float64 {
	return current + 1
}
