package grid

import "container/list"

// Regions finds every contiguous area of open cells under 4-connectivity.
// Regions are listed in row-major order of their first cell; each region
// holds cell indices in breadth-first discovery order. Walls belong to no
// region.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, len(g.nodes))
	var regions [][]int
	var buf []int

	for i0 := range g.nodes {
		if g.nodes[i0].IsWall || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			buf = g.AppendUnvisitedNeighbors(buf[:0], queue[qi], seen)
			for _, v := range buf {
				if g.nodes[v].IsWall {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// Connected reports whether the start and finish lie in the same open
// region. A walled endpoint is never connected.
func (g *Grid) Connected() bool {
	for _, region := range g.Regions() {
		for _, i := range region {
			if i == g.start {
				return regionHas(region, g.finish)
			}
		}
	}
	return false
}

func regionHas(region []int, i int) bool {
	for _, j := range region {
		if j == i {
			return true
		}
	}
	return false
}

// FewestWallsPath finds a start→finish route that crosses the fewest
// walls, and that count: the minimum number of cells to clear before the
// finish becomes reachable. Walled endpoints count too.
//
// Behavior:
//  1. 0–1 BFS from the start: entering an open cell costs 0, a wall 1.
//  2. Stop when the finish is settled.
//  3. Reconstruct the path via predecessors.
//
// Among routes of equal cost the one found first, in N,S,W,E order, wins;
// it is not necessarily the shortest in steps.
// Complexity: O(R·C) time and memory.
func (g *Grid) FewestWallsPath() (path []int, walls int) {
	n := len(g.nodes)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dq := list.New()
	dist[g.start] = g.wallCost(g.start)
	dq.PushFront(g.start)

	var buf []int
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == g.finish {
			break
		}
		buf = g.AppendUnvisitedNeighbors(buf[:0], u, done)
		for _, v := range buf {
			w := g.wallCost(v)
			if dist[u]+w >= dist[v] {
				continue
			}
			dist[v] = dist[u] + w
			prev[v] = u
			if w == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	for cur := g.finish; cur >= 0; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[g.finish]
}

func (g *Grid) wallCost(i int) int {
	if g.nodes[i].IsWall {
		return 1
	}
	return 0
}
