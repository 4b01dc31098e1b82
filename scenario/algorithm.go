package scenario

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Algorithm selects one of the two interchangeable searches.
type Algorithm int

const (
	// Dijkstra is uniform-cost search (package dijkstra).
	Dijkstra Algorithm = iota
	// AStar is Manhattan-guided search (package astar).
	AStar
)

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name to an Algorithm, case-insensitively.
// "a*" and "a-star" are accepted for AStar.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Search runs the selected algorithm on g.
func (a Algorithm) Search(g *grid.Grid, start, finish grid.Coord, opts ...search.Option) (*search.Result, error) {
	switch a {
	case Dijkstra:
		return dijkstra.Dijkstra(g, start, finish, opts...)
	case AStar:
		return astar.AStar(g, start, finish, opts...)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}
}
