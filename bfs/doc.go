// Package bfs provides breadth-first search over a grid.Grid, returning the
// exact number of 4-directional steps from a start cell to every cell it
// can reach while avoiding walls.
//
// It serves as the reference measure for the heuristic searches: a path
// from dijkstra or astar is optimal exactly when its step count equals
// Depth of the finish cell here.
//
// What
//
//   - Explore cells in non-decreasing step count from the start.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-cell step count from start (-1 if unreachable)
//   - Parent: per-cell predecessor in the BFS tree (-1 for start/unreached)
//   - OnVisit hook (may abort with an error), neighbor filtering and a
//     MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Neighbors are enqueued in N, S, W, E order, so the visit sequence is
//	fully reproducible.
//
// Complexity (N = Rows×Columns)
//
//   - Time:   O(N)
//   - Memory: O(N)
//
// Usage
//
//	res, err := bfs.BFS(g, g.Start().Coord())
//	if err != nil {
//	    // ErrGridNil, ErrStartNotFound, ErrOptionViolation or a hook error
//	}
//	steps, ok := res.StepsTo(g.FinishIndex())
package bfs
