package search

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Run searches g from start to finish, writing neighbor keys with relax.
// It is the loop behind dijkstra.Dijkstra and astar.AStar; see the package
// documentation for the exact steps.
//
// Returns ErrNilGrid, ErrNilRelax, ErrNodeNotFound or ErrOptionViolation
// for invalid input. An unreachable finish is not an error: check
// Result.Found. Cancellation and OnVisit failures return the partial
// Result together with the error.
func Run(g *grid.Grid, start, finish grid.Coord, relax Relax, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if relax == nil {
		return nil, ErrNilRelax
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
		return nil, fmt.Errorf("%w: start %s", ErrNodeNotFound, start)
	}
	f := g.Index(finish.Row, finish.Col)
	if f < 0 {
		return nil, fmt.Errorf("%w: finish %s", ErrNodeNotFound, finish)
	}

	r := &runner{
		g:      g,
		opts:   o,
		relax:  relax,
		res:    newResult(g.Len(), s, f),
		queue:  newFrontier(g.Len(), s),
		buf:    make([]int, 0, 4),
		logger: o.Logger.With("start", start.String(), "finish", finish.String()),
	}
	r.logger.Debug("search started", "cells", g.Len())
	err := r.loop()
	r.logger.Debug("search finished",
		"reason", r.res.Reason.String(),
		"steps", r.res.Steps,
		"visited", len(r.res.Order),
	)

	return r.res, err
}

// runner holds the mutable state of a single run.
type runner struct {
	g      *grid.Grid
	opts   Options
	relax  Relax
	res    *Result
	queue  *frontier
	buf    []int
	logger *slog.Logger
}

// loop pops one node per iteration until the finish is visited, the
// closest node is unreachable, the queue empties, or the run is stopped.
func (r *runner) loop() error {
	res := r.res
	for r.queue.Len() > 0 {
		if r.opts.MaxSteps > 0 && res.Steps >= r.opts.MaxSteps {
			res.Reason = StepLimit
			return nil
		}
		select {
		case <-r.opts.Ctx.Done():
			res.Reason = Canceled
			return r.opts.Ctx.Err()
		default:
		}

		res.Steps++
		u := r.queue.pop()
		if r.g.NodeAt(u).IsWall {
			continue
		}
		d := res.Distance[u]
		if math.IsInf(d, 1) {
			res.Reason = Unreachable
			return nil
		}

		res.Visited[u] = true
		res.Order = append(res.Order, u)
		if err := r.opts.OnVisit(u, d); err != nil {
			res.Reason = Aborted
			return fmt.Errorf("search: OnVisit error at %d: %w", u, err)
		}
		if u == res.Finish {
			res.Reason = ReachedFinish
			return nil
		}
		r.relaxNeighbors(u, d)
	}
	res.Reason = Exhausted
	return nil
}

// relaxNeighbors overwrites key and parent of every unvisited neighbor of u.
// No improvement check is made: the latest expanded neighbor always wins.
func (r *runner) relaxNeighbors(u int, d float64) {
	r.buf = r.g.AppendUnvisitedNeighbors(r.buf[:0], u, r.res.Visited)
	for _, v := range r.buf {
		key := r.relax(r.g, d, v)
		r.queue.update(v, key, r.res.Steps)
		r.res.Distance[v] = key
		r.res.Previous[v] = u
	}
}
