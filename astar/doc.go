// Package astar runs heuristic-guided (A*) search on a grid.Grid, steered by
// each cell's Manhattan distance to the finish.
//
// The control loop is the one in package search, shared with dijkstra.
// The difference is the relaxation rule:
//
//	Distance[neighbor] = Distance[current] + 1 + neighbor.DistanceToFinish
//
// The heuristic is folded into the stored key at relaxation time and the
// frontier orders cells by that key alone. Keys therefore accumulate the
// heuristic of every cell along the way; they bias expansion towards the
// finish and are not path costs. Measure the route with Result.Path.
//
// On an open board, and on most boards with walls, the path found has the
// minimum number of steps. Because the key is not g + h, that is not
// guaranteed: a detour that stays close to the finish can win over a
// shorter route that first moves away from it. Use package dijkstra when
// the step count must be exact.
//
// DistanceToFinish is precomputed against the grid's own finish cell, so
// pass that cell as finish (Solve does).
//
// Complexity: O(N log N) time, O(N) space for N = Rows×Columns cells; in
// practice far fewer cells are visited than with Dijkstra.
package astar
