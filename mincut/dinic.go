package mincut

import "github.com/katalvlaran/theorysat/core"

// Dinic computes max-flow/min-cut in phases: a BFS level graph, then a
// blocking flow found by DFS restricted to strictly-increasing levels,
// repeated until t is no longer reachable in the level graph — adapted
// from lvlath's flow.Dinic (flow/dinic.go). Wired in as the third pluggable
// MinCutOracle algorithm choice in place of IBFS, which has no grounding
// source anywhere in the example pack.
type Dinic struct{}

func (Dinic) MinCut(g *core.Graph, cap CapacityFunc, s, t int) ([]core.EdgeIndex, bool) {
	if s == t || s < 0 || s >= g.NodeCount() || t < 0 || t >= g.NodeCount() {
		return nil, false
	}
	r := newResidual(g, cap)
	for {
		level, reached := bfsLevels(r, s)
		if !reached[t] {
			break
		}
		iter := make([]int, g.NodeCount()) // next-arc-to-try index per node, for the blocking-flow DFS
		for {
			pushed := dinicDFS(r, s, t, Infinite, level, iter)
			if pushed == 0 {
				break
			}
		}
	}
	return r.extractCut(s), true
}

func bfsLevels(r *residual, s int) ([]int, []bool) {
	n := r.g.NodeCount()
	level := make([]int, n)
	reached := make([]bool, n)
	reached[s] = true
	level[s] = 0
	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, idx := range r.g.Neighbors(v) {
			_, to := r.g.Endpoints(idx)
			if !reached[to] && r.capOf(idx) > 0 {
				reached[to] = true
				level[to] = level[v] + 1
				queue = append(queue, to)
			}
		}
		for _, idx := range r.revAdj[v] {
			from, _ := r.g.Endpoints(idx)
			if !reached[from] && r.capBack(idx) > 0 {
				reached[from] = true
				level[from] = level[v] + 1
				queue = append(queue, from)
			}
		}
	}
	return level, reached
}

// dinicDFS pushes up to `limit` flow from v to t, only ever advancing to a
// node at level[v]+1 (the level-graph restriction that makes each blocking
// flow phase run in O(V*E)). iter[v] remembers which of v's out-arcs have
// already been exhausted this phase so repeated calls don't re-scan them.
func dinicDFS(r *residual, v, t int, limit int64, level []int, iter []int) int64 {
	if v == t || limit == 0 {
		return limit
	}
	neighbors := r.g.Neighbors(v)
	rev := r.revAdj[v]
	total := len(neighbors) + len(rev)
	for ; iter[v] < total; iter[v]++ {
		var (
			to       int
			idx      core.EdgeIndex
			forward  bool
			residual int64
		)
		if iter[v] < len(neighbors) {
			idx = neighbors[iter[v]]
			_, to = r.g.Endpoints(idx)
			forward = true
			residual = r.capOf(idx)
		} else {
			idx = rev[iter[v]-len(neighbors)]
			to, _ = r.g.Endpoints(idx)
			forward = false
			residual = r.capBack(idx)
		}
		if residual <= 0 || level[to] != level[v]+1 {
			continue
		}
		cap := residual
		if cap > limit {
			cap = limit
		}
		pushed := dinicDFS(r, to, t, cap, level, iter)
		if pushed > 0 {
			if forward {
				r.push(idx, pushed)
			} else {
				r.push(idx, -pushed)
			}
			return pushed
		}
	}
	return 0
}
