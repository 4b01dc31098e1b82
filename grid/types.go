package grid

import "fmt"

// Coord addresses a single cell by row and column.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |c.Row-o.Row| + |c.Col-o.Col|.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Node is one cell of the board.
//
// Row and Col are fixed at construction and match the node's position in
// the arena. IsStart and IsFinish are set once. IsWall is the only field a
// caller changes, and only between searches. DistanceToFinish is the
// Manhattan distance to the finish cell and stays constant for the grid's
// lifetime.
type Node struct {
	Row, Col         int
	IsStart          bool
	IsFinish         bool
	IsWall           bool
	DistanceToFinish int
}

// Coord returns the node's coordinate.
func (n *Node) Coord() Coord {
	return Coord{Row: n.Row, Col: n.Col}
}

// Config describes the shape of a board and its two endpoints.
type Config struct {
	Rows, Columns int
	Start, Finish Coord
}

// DefaultConfig returns the 20×50 board with the start at (10,30) and the
// finish at (3,34).
func DefaultConfig() Config {
	return Config{
		Rows:    20,
		Columns: 50,
		Start:   Coord{Row: 10, Col: 30},
		Finish:  Coord{Row: 3, Col: 34},
	}
}

// Options holds construction-time settings for New.
type Options struct {
	// Walls lists cells that start out blocked.
	Walls []Coord
}

// Option configures New via functional arguments.
type Option func(*Options)

// WithWalls marks the given cells as walls right after construction.
// Every cell must be in bounds, otherwise New fails with ErrOutOfBounds.
func WithWalls(cells ...Coord) Option {
	return func(o *Options) {
		o.Walls = append(o.Walls, cells...)
	}
}

// neighborOffsets lists (dRow, dCol) pairs in N, S, W, E order.
// Searches observe this order when several neighbors tie.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a rectangular board of Nodes held in a row-major arena.
// Rows and Columns are fixed at construction.
type Grid struct {
	Rows, Columns int
	nodes         []Node
	start, finish int
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
