package search

import (
	"fmt"
	"math"
)

// Result is the state record of one run, keyed by node index.
// It is produced fresh per run and never shared between runs.
type Result struct {
	Start, Finish int

	// Order lists visited nodes in finalization order.
	Order []int
	// Distance holds each node's last written key (+Inf if never relaxed).
	Distance []float64
	// Visited marks finalized nodes.
	Visited []bool
	// Previous holds the index that last relaxed each node, or -1.
	Previous []int

	// Steps counts loop iterations, skipped walls included.
	Steps int
	// Reason tells why the run stopped.
	Reason Termination
}

func newResult(n, start, finish int) *Result {
	res := &Result{
		Start:    start,
		Finish:   finish,
		Order:    make([]int, 0, n),
		Distance: make([]float64, n),
		Visited:  make([]bool, n),
		Previous: make([]int, n),
	}
	for i := range res.Distance {
		res.Distance[i] = math.Inf(1)
		res.Previous[i] = -1
	}
	res.Distance[start] = 0
	return res
}

// Found reports whether the finish node was visited.
func (r *Result) Found() bool {
	return r.Visited[r.Finish]
}

// Chain walks Previous links back from i until a node without a parent and
// returns the nodes in root→i order. It does not check that i was reached:
// for an unreached node the chain is whatever links the run left behind,
// and a node never relaxed yields just [i].
func (r *Result) Chain(i int) []int {
	n := 0
	for at := i; at >= 0; at = r.Previous[at] {
		n++
	}
	path := make([]int, n)
	for at := i; at >= 0; at = r.Previous[at] {
		n--
		path[n] = at
	}
	return path
}

// PathTo reconstructs the start→target path of a visited node.
// Returns ErrNoPath if target was not visited during the run.
func (r *Result) PathTo(target int) ([]int, error) {
	if target < 0 || target >= len(r.Visited) {
		return nil, fmt.Errorf("%w: index %d", ErrNodeNotFound, target)
	}
	if !r.Visited[target] {
		return nil, fmt.Errorf("%w: index %d", ErrNoPath, target)
	}
	return r.Chain(target), nil
}

// Path reconstructs the start→finish path. It is PathTo(r.Finish).
func (r *Result) Path() ([]int, error) {
	return r.PathTo(r.Finish)
}
