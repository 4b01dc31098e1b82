package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// queueItem pairs a cell index with its BFS depth.
type queueItem struct {
	index int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *grid.Grid
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	buf   []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Walls are never entered; a walled start
// reaches nothing.
// Returns ErrGridNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *grid.Grid, start grid.Coord, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := g.Index(start.Row, start.Col)
	if s < 0 {
		return nil, fmt.Errorf("%w: %s", ErrStartNotFound, start)
	}

	n := g.Len()
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		buf:   make([]int, 0, 4),
		res: &BFSResult{
			Start:  s,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	if !g.NodeAt(s).IsWall {
		w.enqueue(s, 0, -1)
	}
	return w.res, w.loop()
}

// enqueue records depth and parent of i and adds it to the queue.
func (w *walker) enqueue(i, d, parent int) {
	w.res.Depth[i] = d
	w.res.Parent[i] = parent
	w.queue = append(w.queue, queueItem{index: i, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.index)
		if err := w.opts.OnVisit(item.index, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.index, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors enqueues every unseen, open neighbor that passes the
// filter and the depth limit.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	w.buf = w.grid.AppendUnvisitedNeighbors(w.buf[:0], item.index, nil)
	for _, nbr := range w.buf {
		if w.res.Depth[nbr] >= 0 || w.grid.NodeAt(nbr).IsWall {
			continue
		}
		if !w.opts.FilterNeighbor(item.index, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.index)
	}
}
