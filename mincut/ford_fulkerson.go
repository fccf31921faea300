package mincut

import "github.com/katalvlaran/theorysat/core"

// FordFulkerson finds augmenting paths by DFS instead of BFS — adapted
// from lvlath's flow.FordFulkerson (flow/ford_fulkerson.go). Simpler than
// EdmondsKarp but without the polynomial bound on integer capacities; fine
// here since capacities are always 1 or Infinite, so the
// number of augmentations is bounded by the number of disabled edges on
// any minimal cut.
type FordFulkerson struct{}

func (FordFulkerson) MinCut(g *core.Graph, cap CapacityFunc, s, t int) ([]core.EdgeIndex, bool) {
	if s == t || s < 0 || s >= g.NodeCount() || t < 0 || t >= g.NodeCount() {
		return nil, false
	}
	r := newResidual(g, cap)
	for {
		visited := make([]bool, g.NodeCount())
		path, bottleneck, found := dfsAugmentingPath(r, s, t, visited)
		if !found {
			break
		}
		augment(r, path, bottleneck)
	}
	return r.extractCut(s), true
}

func dfsAugmentingPath(r *residual, v, t int, visited []bool) ([]arc, int64, bool) {
	if v == t {
		return nil, Infinite, true
	}
	visited[v] = true
	for _, idx := range r.g.Neighbors(v) {
		_, to := r.g.Endpoints(idx)
		if visited[to] || r.capOf(idx) <= 0 {
			continue
		}
		if rest, bottleneck, ok := dfsAugmentingPath(r, to, t, visited); ok {
			if c := r.capOf(idx); c < bottleneck {
				bottleneck = c
			}
			return append([]arc{{idx: idx, forward: true}}, rest...), bottleneck, true
		}
	}
	for _, idx := range r.revAdj[v] {
		from, _ := r.g.Endpoints(idx)
		if visited[from] || r.capBack(idx) <= 0 {
			continue
		}
		if rest, bottleneck, ok := dfsAugmentingPath(r, from, t, visited); ok {
			if c := r.capBack(idx); c < bottleneck {
				bottleneck = c
			}
			return append([]arc{{idx: idx, forward: false}}, rest...), bottleneck, true
		}
	}
	return nil, 0, false
}
