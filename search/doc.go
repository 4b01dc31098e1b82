// Package search holds the machinery shared by the grid searches in
// packages dijkstra and astar: the per-run state record, the frontier
// queue, the selection/relaxation loop and path reconstruction.
//
// A run never writes to the grid. Everything it learns lives in a fresh
// Result keyed by node index:
//
//	Distance[i] – current key of node i (+Inf until first relaxed; 0 for the start)
//	Visited[i]  – set exactly once, when node i is finalized
//	Previous[i] – index of the node that last relaxed i, or -1
//	Order       – finalized nodes, in finalization order
//
// Loop, one node per iteration:
//
//  1. Pop the unvisited node with the smallest key.
//  2. Walls are skipped: never visited, never relaxed from.
//  3. A key of +Inf means nothing reachable is left; the run stops.
//  4. Otherwise the node is visited; reaching the finish stops the run.
//  5. Every unvisited in-bounds neighbor (walls included) gets
//     Distance = Relax(current key, neighbor) and Previous = current,
//     unconditionally.
//
// Ties between equal keys are broken the way a stable sort of the
// remaining nodes, repeated before every pop, would break them: compare
// the two nodes' key histories from the most recent change backwards, the
// smaller earlier key wins, and row-major index decides among nodes whose
// keys never differed. This keeps recorded visit orders reproducible.
//
// Complexity: O(N log N · k) for N cells, where k is the length of the
// longest key history compared (a handful of entries in practice).
//
// Cancellation: WithContext is checked once per iteration. A canceled run
// returns the partial Result together with ctx.Err().
package search
