package grid

import "fmt"

// New builds a rows×columns board with the given start and finish cells.
// Every node starts open, with DistanceToFinish precomputed. Options are
// applied afterwards (e.g. WithWalls).
//
// Returns ErrEmptyGrid if rows or columns is not positive, ErrOutOfBounds
// if an endpoint or an initial wall lies outside the board, and
// ErrSameEndpoints if start == finish.
// Complexity: O(R×C) time and memory.
func New(rows, columns int, start, finish Coord, opts ...Option) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, columns)
	}
	g := &Grid{Rows: rows, Columns: columns}
	if !g.InBounds(start.Row, start.Col) {
		return nil, fmt.Errorf("%w: start %s on %d×%d board", ErrOutOfBounds, start, rows, columns)
	}
	if !g.InBounds(finish.Row, finish.Col) {
		return nil, fmt.Errorf("%w: finish %s on %d×%d board", ErrOutOfBounds, finish, rows, columns)
	}
	if start == finish {
		return nil, fmt.Errorf("%w: %s", ErrSameEndpoints, start)
	}

	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	g.start = g.index(start.Row, start.Col)
	g.finish = g.index(finish.Row, finish.Col)
	g.nodes = make([]Node, rows*columns)
	g.Reset()

	if err := g.PaintWalls(o.Walls...); err != nil {
		return nil, err
	}

	return g, nil
}

// NewFromConfig is New with the shape and endpoints taken from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Grid, error) {
	return New(cfg.Rows, cfg.Columns, cfg.Start, cfg.Finish, opts...)
}

// Reset returns every node to its initial state: open, with coordinates,
// endpoint flags and DistanceToFinish recomputed.
func (g *Grid) Reset() {
	fr, fc := g.Coordinate(g.finish)
	finish := Coord{Row: fr, Col: fc}
	for i := range g.nodes {
		r, c := g.Coordinate(i)
		g.nodes[i] = Node{
			Row:              r,
			Col:              c,
			IsStart:          i == g.start,
			IsFinish:         i == g.finish,
			DistanceToFinish: finish.Manhattan(Coord{Row: r, Col: c}),
		}
	}
}

// InBounds reports whether (row,col) lies on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Columns
}

// Len returns the number of cells, Rows×Columns.
func (g *Grid) Len() int { return len(g.nodes) }

// Index returns the row-major index of (row,col), or -1 when out of bounds.
func (g *Grid) Index(row, col int) int {
	if !g.InBounds(row, col) {
		return -1
	}
	return g.index(row, col)
}

func (g *Grid) index(row, col int) int {
	return row*g.Columns + col
}

// Coordinate converts a row-major index back to (row,col).
func (g *Grid) Coordinate(i int) (row, col int) {
	return i / g.Columns, i % g.Columns
}

// Node returns the node at (row,col), or nil when out of bounds.
// Complexity: O(1).
func (g *Grid) Node(row, col int) *Node {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.nodes[g.index(row, col)]
}

// NodeAt returns the node with the given index, or nil when out of range.
func (g *Grid) NodeAt(i int) *Node {
	if i < 0 || i >= len(g.nodes) {
		return nil
	}
	return &g.nodes[i]
}

// Nodes returns a snapshot of all nodes in row-major order.
func (g *Grid) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Start returns the start node.
func (g *Grid) Start() *Node { return &g.nodes[g.start] }

// Finish returns the finish node.
func (g *Grid) Finish() *Node { return &g.nodes[g.finish] }

// StartIndex returns the arena index of the start node.
func (g *Grid) StartIndex() int { return g.start }

// FinishIndex returns the arena index of the finish node.
func (g *Grid) FinishIndex() int { return g.finish }

// Neighbors returns the in-bounds 4-neighbors of node i in N, S, W, E order.
// Walls are included; callers decide how to treat them.
func (g *Grid) Neighbors(i int) []int {
	return g.AppendUnvisitedNeighbors(make([]int, 0, 4), i, nil)
}

// AppendUnvisitedNeighbors appends to dst the in-bounds 4-neighbors of node
// i whose visited flag is false, in N, S, W, E order, and returns the
// extended slice. A nil visited slice means nothing has been visited.
func (g *Grid) AppendUnvisitedNeighbors(dst []int, i int, visited []bool) []int {
	r, c := g.Coordinate(i)
	for _, d := range neighborOffsets {
		nr, nc := r+d[0], c+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		j := g.index(nr, nc)
		if visited != nil && visited[j] {
			continue
		}
		dst = append(dst, j)
	}
	return dst
}

// Adjacent reports whether nodes i and j are 4-neighbors.
func (g *Grid) Adjacent(i, j int) bool {
	ri, ci := g.Coordinate(i)
	rj, cj := g.Coordinate(j)
	return abs(ri-rj)+abs(ci-cj) == 1
}

// Coords maps a slice of node indices to their coordinates.
func (g *Grid) Coords(indices []int) []Coord {
	out := make([]Coord, len(indices))
	for k, i := range indices {
		r, c := g.Coordinate(i)
		out[k] = Coord{Row: r, Col: c}
	}
	return out
}
