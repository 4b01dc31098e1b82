// Package dijkstra runs uniform-cost (Dijkstra) search on a grid.Grid and
// returns the order in which cells were finalized together with the
// parent links needed to rebuild the shortest path.
//
// Overview:
//
//   - Every traversable step costs 1; there is no heuristic.
//   - The full set of cells, walls included, starts in the frontier. Walls
//     are popped and skipped, never visited or expanded.
//   - The search stops as soon as the finish is visited, or when the
//     closest remaining cell is at infinite distance (finish unreachable).
//   - Relaxation writes Distance = current + 1 and Previous = current into
//     every unvisited neighbor without checking for an improvement. Cells
//     are expanded in nondecreasing distance and a 4-connected grid is
//     bipartite, so the overwrite never changes a distance; it only moves
//     the parent to the most recently expanded neighbor.
//
// When to use:
//
//   - Exact step counts on boards with binary obstacles.
//   - Recording a reproducible visit order for playback: ties are broken
//     deterministically (see package search).
//
// Complexity:
//
//   - Time:  O(N log N) for N = Rows×Columns cells.
//   - Space: O(N) for the per-run record and the frontier.
//
// Errors:
//
//   - search.ErrNilGrid, search.ErrNodeNotFound, search.ErrOptionViolation
//     for invalid input.
//   - An unreachable finish is reported through Result.Found, not an error.
//
// Example:
//
//	res, err := dijkstra.Solve(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if path, err := res.Path(); err == nil {
//	    fmt.Println(len(path)-1, "steps")
//	}
package dijkstra
