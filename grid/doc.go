// Package grid models a rectangular board of cells for 4-directional
// shortest-path searches.
//
// What:
//
//   - Grid owns an arena of Nodes stored in row-major order; a node's index
//     is row*Columns + col and never changes.
//   - Each Node carries its coordinates, start/finish flags, a mutable wall
//     flag, and the Manhattan distance to the finish cell (used by A*).
//   - Adjacency is 4-directional (N, S, W, E) with no wraparound.
//   - Regions splits the open cells into connected areas; FewestWallsPath
//     counts the walls that separate start from finish.
//
// Why:
//
//   - Searches keep their own per-run state keyed by node index, so the
//     grid itself stays read-only while a search runs and can be reused.
//   - Index-based addressing keeps parent links as plain ints instead of
//     pointers between nodes.
//
// Complexity:
//
//   - New, Reset:          O(R×C) time and memory.
//   - Node, Index, Coordinate, InBounds: O(1).
//   - Neighbors:           O(1) (at most four cells).
//   - Regions, Connected, FewestWallsPath: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:     rows or columns ≤ 0.
//   - ErrOutOfBounds:   a coordinate lies outside the board.
//   - ErrSameEndpoints: start and finish name the same cell.
//   - ErrNonRectangular, ErrBadCell, ErrEndpointCount: malformed text
//     layouts passed to Parse.
//
// The default board (DefaultConfig) is 20×50 with the start at (10,30) and
// the finish at (3,34).
package grid
