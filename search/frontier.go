package search

import (
	"container/heap"
	"math"
)

// keyChange records that a node's key became key during iteration step.
type keyChange struct {
	step int
	key  float64
}

// frontier is a min-heap of unvisited node indices.
//
// Equal keys are ordered by comparing key histories backwards from the
// latest change, then by index. This is the order a stable sort of the
// remaining nodes, repeated before every pop, produces. The pairwise order
// of two nodes whose keys did not change in an iteration is preserved, so
// only updated nodes need heap.Fix.
type frontier struct {
	items   []int
	pos     []int // position of each node in items, -1 once popped
	history [][]keyChange
}

// newFrontier holds all n nodes, every key +Inf except start's 0.
func newFrontier(n, start int) *frontier {
	f := &frontier{
		items:   make([]int, n),
		pos:     make([]int, n),
		history: make([][]keyChange, n),
	}
	backing := make([]keyChange, n)
	for i := 0; i < n; i++ {
		f.items[i] = i
		f.pos[i] = i
		backing[i] = keyChange{step: 0, key: math.Inf(1)}
		f.history[i] = backing[i : i+1 : i+1]
	}
	f.history[start][0].key = 0
	heap.Init(f)
	return f
}

// Len returns the number of nodes still queued.
func (f *frontier) Len() int { return len(f.items) }

// Less orders items by key, falling back to key history and index.
func (f *frontier) Less(i, j int) bool { return f.before(f.items[i], f.items[j]) }

// Swap swaps two items and keeps pos in sync.
func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.pos[f.items[i]] = i
	f.pos[f.items[j]] = j
}

// Push appends a node index. Called by heap.Push.
func (f *frontier) Push(x interface{}) {
	v := x.(int)
	f.pos[v] = len(f.items)
	f.items = append(f.items, v)
}

// Pop removes the last item. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	v := old[n-1]
	f.items = old[:n-1]
	f.pos[v] = -1

	return v
}

// pop removes and returns the node with the smallest key.
func (f *frontier) pop() int {
	return heap.Pop(f).(int)
}

// key returns the current key of node v.
func (f *frontier) key(v int) float64 {
	h := f.history[v]
	return h[len(h)-1].key
}

// update records that v's key became key during iteration step and
// restores the heap order. Writing the current key again changes nothing.
// Nodes already popped only get their history updated.
func (f *frontier) update(v int, key float64, step int) {
	if f.key(v) == key {
		return
	}
	f.history[v] = append(f.history[v], keyChange{step: step, key: key})
	if p := f.pos[v]; p >= 0 {
		heap.Fix(f, p)
	}
}

// before reports whether node a precedes node b.
func (f *frontier) before(a, b int) bool {
	ha, hb := f.history[a], f.history[b]
	i, j := len(ha)-1, len(hb)-1
	for {
		if ka, kb := ha[i].key, hb[j].key; ka != kb {
			return ka < kb
		}
		if i == 0 && j == 0 {
			return a < b
		}
		// Step back past whichever change happened last.
		sa, sb := ha[i].step, hb[j].step
		switch {
		case sa > sb:
			i--
		case sb > sa:
			j--
		default:
			i--
			j--
		}
	}
}
