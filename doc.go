// Package gridpath finds shortest paths on a 2D grid of open and blocked
// cells, with two interchangeable searches that report both the order in
// which cells were visited and the path found.
//
// What is inside?
//
//	grid/      the board: row-major node arena, walls, Manhattan distances, text layouts
//	search/    the shared search loop, its per-run Result and path reconstruction
//	dijkstra/  uniform-cost search
//	astar/     Manhattan-guided search
//	bfs/       exact breadth-first step counts, used as an optimality oracle
//	scenario/  HCL scenario files, algorithm selection and text rendering
//	cmd/gridpath  command-line front end
//
// Quick start:
//
//	g, _ := grid.New(5, 5, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 4, Col: 4})
//	_ = g.PaintWalls(grid.Coord{Row: 1, Col: 2}, grid.Coord{Row: 2, Col: 2})
//	res, _ := dijkstra.Solve(g)
//	path, err := res.Path() // search.ErrNoPath when the finish is walled off
//
// Movement is 4-directional and every step costs 1. A search never writes to
// the grid, so one board may serve several searches; painting walls while a
// search runs is not supported.
package gridpath
