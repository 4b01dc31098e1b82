package astar

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// AStar searches g from start to finish and returns the run record.
// Result.Order holds the visited cells in finalization order; when
// Result.Found reports true, Result.Path rebuilds the route.
// Options are those of package search.
//
// Complexity: O(N log N) time, O(N) space.
func AStar(g *grid.Grid, start, finish grid.Coord, opts ...search.Option) (*search.Result, error) {
	return search.Run(g, start, finish, EstimatedTotal, opts...)
}

// Solve runs AStar between the grid's own start and finish cells.
func Solve(g *grid.Grid, opts ...search.Option) (*search.Result, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	return AStar(g, g.Start().Coord(), g.Finish().Coord(), opts...)
}

// EstimatedTotal is the relaxation rule of this A*: one step past the
// expanded cell plus the neighbor's Manhattan distance to the finish.
func EstimatedTotal(g *grid.Grid, current float64, neighbor int) float64 {
	return current + 1 + float64(g.NodeAt(neighbor).DistanceToFinish)
}
