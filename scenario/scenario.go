package scenario

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Scenario is a decoded scenario file: a board, its walls and the
// algorithm to run on it.
type Scenario struct {
	Name      string
	Algorithm Algorithm
	Board     grid.Config
	Walls     []grid.Coord
}

// Build constructs a fresh grid for the scenario.
func (s *Scenario) Build() (*grid.Grid, error) {
	return grid.NewFromConfig(s.Board, grid.WithWalls(s.Walls...))
}

// Run builds the grid and runs the scenario's algorithm from start to
// finish. The grid is returned alongside the result for rendering.
func (s *Scenario) Run(opts ...search.Option) (*grid.Grid, *search.Result, error) {
	g, err := s.Build()
	if err != nil {
		return nil, nil, err
	}
	res, err := s.Algorithm.Search(g, s.Board.Start, s.Board.Finish, opts...)
	return g, res, err
}
