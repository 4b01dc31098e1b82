package grid

import "fmt"

// SetWall blocks the cell at c. Painting a cell that is already a wall is a
// no-op. The endpoints are not protected: a walled start makes every
// search return an empty visit order.
func (g *Grid) SetWall(c Coord) error {
	n := g.Node(c.Row, c.Col)
	if n == nil {
		return fmt.Errorf("%w: wall %s", ErrOutOfBounds, c)
	}
	n.IsWall = true
	return nil
}

// ClearWall opens the cell at c.
func (g *Grid) ClearWall(c Coord) error {
	n := g.Node(c.Row, c.Col)
	if n == nil {
		return fmt.Errorf("%w: wall %s", ErrOutOfBounds, c)
	}
	n.IsWall = false
	return nil
}

// ToggleWall flips the wall flag at c and returns the new value.
func (g *Grid) ToggleWall(c Coord) (bool, error) {
	n := g.Node(c.Row, c.Col)
	if n == nil {
		return false, fmt.Errorf("%w: wall %s", ErrOutOfBounds, c)
	}
	n.IsWall = !n.IsWall
	return n.IsWall, nil
}

// PaintWalls blocks every cell of a stroke, in order. It stops at the first
// out-of-bounds cell; cells painted before it stay walls.
func (g *Grid) PaintWalls(cells ...Coord) error {
	for _, c := range cells {
		if err := g.SetWall(c); err != nil {
			return err
		}
	}
	return nil
}

// IsWall reports whether (row,col) is a wall. Out-of-bounds cells report false.
func (g *Grid) IsWall(row, col int) bool {
	n := g.Node(row, col)
	return n != nil && n.IsWall
}

// Walls returns the wall coordinates in row-major order.
func (g *Grid) Walls() []Coord {
	var out []Coord
	for i := range g.nodes {
		if g.nodes[i].IsWall {
			out = append(out, g.nodes[i].Coord())
		}
	}
	return out
}

// WallCount returns the number of blocked cells.
func (g *Grid) WallCount() int {
	n := 0
	for i := range g.nodes {
		if g.nodes[i].IsWall {
			n++
		}
	}
	return n
}
