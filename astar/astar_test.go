package astar_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

func at(r, c int) grid.Coord { return grid.Coord{Row: r, Col: c} }

func TestAStar_Validation(t *testing.T) {
	_, err := astar.Solve(nil)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	g, err := grid.New(2, 2, at(0, 0), at(1, 1))
	require.NoError(t, err)
	_, err = astar.AStar(g, at(-1, 0), at(1, 1))
	assert.ErrorIs(t, err, search.ErrNodeNotFound)
}

// TestEstimatedTotal: key = current + 1 + neighbor's Manhattan distance.
func TestEstimatedTotal(t *testing.T) {
	g, err := grid.New(3, 3, at(0, 0), at(2, 2))
	require.NoError(t, err)
	assert.Equal(t, float64(0+1+3), astar.EstimatedTotal(g, 0, g.Index(0, 1)))
	assert.Equal(t, float64(4+1+0), astar.EstimatedTotal(g, 4, g.Index(2, 2)))
}

func TestAStar_OpenFiveByFive(t *testing.T) {
	g, err := grid.New(5, 5, at(0, 0), at(4, 4))
	require.NoError(t, err)

	res, err := astar.Solve(g)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.LessOrEqual(t, len(res.Order), 25)

	path, err := res.Path()
	require.NoError(t, err)
	assert.Equal(t, 8, len(path)-1)
	assert.Equal(t, g.Start().DistanceToFinish, len(path)-1, "no walls: Manhattan distance")
}

// TestAStar_WallColumn: walls at column 2, rows 0–3. The search funnels
// through row 4 and visits fewer cells than Dijkstra.
func TestAStar_WallColumn(t *testing.T) {
	g, err := grid.Parse(
		"S.#..",
		"..#..",
		"..#..",
		"..#..",
		"....F",
	)
	require.NoError(t, err)

	res, err := astar.Solve(g)
	require.NoError(t, err)
	require.True(t, res.Found())

	path, err := res.Path()
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{
		at(0, 0), at(1, 0), at(2, 0), at(3, 0), at(4, 0), at(4, 1), at(4, 2), at(4, 3), at(4, 4),
	}, g.Coords(path))

	wantOrder := []grid.Coord{
		at(0, 0), at(0, 1), at(1, 0), at(1, 1), at(2, 0), at(2, 1), at(3, 0),
		at(3, 1), at(4, 0), at(4, 1), at(4, 2), at(4, 3), at(4, 4),
	}
	if diff := cmp.Diff(wantOrder, g.Coords(res.Order)); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}

	dres, err := dijkstra.Solve(g)
	require.NoError(t, err)
	assert.Less(t, len(res.Order), len(dres.Order))
}

// TestAStar_KeysAreEstimates: a visited key is not the step count.
func TestAStar_KeysAreEstimates(t *testing.T) {
	g, err := grid.New(3, 3, at(0, 0), at(2, 2))
	require.NoError(t, err)
	res, err := astar.Solve(g)
	require.NoError(t, err)

	// (0,1) relaxed from the start: 0 + 1 + h(0,1)=3
	assert.Equal(t, float64(4), res.Distance[g.Index(0, 1)])
	assert.Equal(t, float64(0), res.Distance[g.StartIndex()])
}

// TestAStar_LongerThanOracle pins a board where this A* settles on a
// 10-step route although 8 steps suffice: the detour stays close to the
// finish and its accumulated keys stay lower.
func TestAStar_LongerThanOracle(t *testing.T) {
	g, err := grid.Parse(
		"#....",
		"....F",
		".#.##",
		".....",
		"...#.",
		".#...",
		"...S.",
	)
	require.NoError(t, err)

	res, err := astar.Solve(g)
	require.NoError(t, err)
	require.True(t, res.Found())
	path, err := res.Path()
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{
		at(6, 3), at(6, 4), at(5, 4), at(4, 4), at(3, 4), at(3, 3),
		at(3, 2), at(2, 2), at(1, 2), at(1, 3), at(1, 4),
	}, g.Coords(path))
	assert.Len(t, res.Order, 20)

	oracle, err := bfs.BFS(g, g.Start().Coord())
	require.NoError(t, err)
	steps, ok := oracle.StepsTo(g.FinishIndex())
	require.True(t, ok)
	assert.Equal(t, 8, steps)

	dres, err := dijkstra.Solve(g)
	require.NoError(t, err)
	dpath, err := dres.Path()
	require.NoError(t, err)
	assert.Equal(t, 8, len(dpath)-1)
}

func TestAStar_EnclosedFinish(t *testing.T) {
	g, err := grid.Parse(
		"S...",
		"....",
		"...#",
		"..#F",
	)
	require.NoError(t, err)

	res, err := astar.Solve(g)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Equal(t, search.Unreachable, res.Reason)
	assert.Len(t, res.Order, 13)
	_, err = res.Path()
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestAStar_WalledStart(t *testing.T) {
	g, err := grid.New(2, 3, at(0, 0), at(1, 2), grid.WithWalls(at(0, 0)))
	require.NoError(t, err)
	res, err := astar.Solve(g)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
}

// TestAStar_Properties on random boards: reachability matches BFS, paths
// are valid 4-neighbor chains never shorter than the oracle, parents are
// visited before their children, and reruns are identical.
func TestAStar_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 300; iter++ {
		rows, cols := 2+rng.Intn(7), 2+rng.Intn(7)
		start := at(rng.Intn(rows), rng.Intn(cols))
		finish := start
		for finish == start {
			finish = at(rng.Intn(rows), rng.Intn(cols))
		}
		var walls []grid.Coord
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if at(r, c) != start && at(r, c) != finish && rng.Float64() < 0.3 {
					walls = append(walls, at(r, c))
				}
			}
		}
		g, err := grid.New(rows, cols, start, finish, grid.WithWalls(walls...))
		require.NoError(t, err)

		res, err := astar.Solve(g)
		require.NoError(t, err)
		oracle, err := bfs.BFS(g, start)
		require.NoError(t, err)
		want, reachable := oracle.StepsTo(g.FinishIndex())
		require.Equal(t, reachable, res.Found(), "iter %d:\n%s", iter, g)

		seen := make(map[int]bool, len(res.Order))
		for _, v := range res.Order {
			if p := res.Previous[v]; p >= 0 {
				require.True(t, seen[p])
			}
			seen[v] = true
		}

		again, err := astar.Solve(g)
		require.NoError(t, err)
		require.Equal(t, res.Order, again.Order)

		if !reachable {
			continue
		}
		path, err := res.Path()
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(path)-1, want)
		require.GreaterOrEqual(t, len(path)-1, start.Manhattan(finish))
		for k := 1; k < len(path); k++ {
			require.True(t, g.Adjacent(path[k-1], path[k]))
		}
	}
}
