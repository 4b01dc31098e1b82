package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

func at(r, c int) grid.Coord { return grid.Coord{Row: r, Col: c} }

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, at(0, 0)); !errors.Is(err, bfs.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	g, err := grid.New(2, 2, at(0, 0), at(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := bfs.BFS(g, at(5, 0)); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("off-grid start: want ErrStartNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, at(0, 0), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_LayerOrder checks depths and the N,S,W,E expansion on a 3×3 board.
func TestBFS_LayerOrder(t *testing.T) {
	g, err := grid.New(3, 3, at(1, 1), at(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, at(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	want := []grid.Coord{at(1, 1), at(0, 1), at(2, 1), at(1, 0), at(1, 2), at(0, 0), at(0, 2), at(2, 0), at(2, 2)}
	if got := g.Coords(res.Order); !reflect.DeepEqual(got, want) {
		t.Errorf("Order = %v; want %v", got, want)
	}
	for i := 0; i < g.Len(); i++ {
		r, c := g.Coordinate(i)
		wantDepth := at(r, c).Manhattan(at(1, 1))
		if d, ok := res.StepsTo(i); !ok || d != wantDepth {
			t.Errorf("StepsTo(%d,%d) = %d,%v; want %d", r, c, d, ok, wantDepth)
		}
	}
}

// TestBFS_Walls verifies walls are never entered and the detour depth.
func TestBFS_Walls(t *testing.T) {
	g, err := grid.Parse(
		"S#.F",
		".#..",
		"....",
	)
	if err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, g.Start().Coord())
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range res.Order {
		if g.NodeAt(i).IsWall {
			t.Errorf("wall %v visited", g.NodeAt(i).Coord())
		}
	}
	if len(res.Order) != g.Len()-g.WallCount() {
		t.Errorf("visited %d cells; want %d", len(res.Order), g.Len()-g.WallCount())
	}
	if d, _ := res.StepsTo(g.FinishIndex()); d != 7 {
		t.Errorf("StepsTo(finish) = %d; want 7", d)
	}
	path, err := res.PathTo(g.FinishIndex())
	if err != nil {
		t.Fatal(err)
	}
	if path[0] != g.StartIndex() || path[len(path)-1] != g.FinishIndex() {
		t.Errorf("path endpoints = %d..%d", path[0], path[len(path)-1])
	}
	for k := 1; k < len(path); k++ {
		if !g.Adjacent(path[k-1], path[k]) {
			t.Errorf("path step %d not adjacent", k)
		}
	}
}

// TestBFS_Unreachable covers an enclosed cell and a walled start.
func TestBFS_Unreachable(t *testing.T) {
	g, err := grid.Parse(
		"S...",
		"....",
		"...#",
		"..#F",
	)
	if err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, g.Start().Coord())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.StepsTo(g.FinishIndex()); ok {
		t.Error("finish reported reachable")
	}
	if _, err := res.PathTo(g.FinishIndex()); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo: want ErrNoPath, got %v", err)
	}

	if err := g.SetWall(at(0, 0)); err != nil {
		t.Fatal(err)
	}
	res, err = bfs.BFS(g, at(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 0 {
		t.Errorf("walled start visited %d cells", len(res.Order))
	}
}

// TestBFS_MaxDepth limits exploration to the given layer.
func TestBFS_MaxDepth(t *testing.T) {
	g, err := grid.New(5, 5, at(0, 0), at(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, at(0, 0), bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 6 {
		t.Errorf("visited %d cells within depth 2; want 6", len(res.Order))
	}
	for _, i := range res.Order {
		if res.Depth[i] > 2 {
			t.Errorf("cell %d at depth %d", i, res.Depth[i])
		}
	}
}

// TestBFS_Filter forbids moving east; only column 0 is reachable.
func TestBFS_Filter(t *testing.T) {
	g, err := grid.New(3, 3, at(0, 0), at(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	noEast := func(curr, nbr int) bool { return nbr != curr+1 }
	res, err := bfs.BFS(g, at(0, 0), bfs.WithFilterNeighbor(noEast))
	if err != nil {
		t.Fatal(err)
	}
	want := []grid.Coord{at(0, 0), at(1, 0), at(2, 0)}
	if got := g.Coords(res.Order); !reflect.DeepEqual(got, want) {
		t.Errorf("Order = %v; want %v", got, want)
	}
}

// TestBFS_Hooks covers OnVisit abort and context cancellation.
func TestBFS_Hooks(t *testing.T) {
	g, err := grid.New(3, 3, at(0, 0), at(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	stop := errors.New("stop")
	visits := 0
	onVisit := func(_, depth int) error {
		visits++
		if depth == 1 {
			return stop
		}
		return nil
	}
	if _, err := bfs.BFS(g, at(0, 0), bfs.WithOnVisit(onVisit)); !errors.Is(err, stop) {
		t.Errorf("OnVisit: want stop, got %v", err)
	}
	if visits != 2 {
		t.Errorf("visits = %d; want 2", visits)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.BFS(g, at(0, 0), bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ctx: want context.Canceled, got %v", err)
	}
	if res == nil || len(res.Order) != 0 {
		t.Errorf("canceled run should return an empty partial result")
	}
}
