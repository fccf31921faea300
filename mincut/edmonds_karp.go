package mincut

import "github.com/katalvlaran/theorysat/core"

// EdmondsKarp finds augmenting paths by BFS (fewest-edges), giving the
// O(V*E^2) worst-case bound — adapted from lvlath's flow.EdmondsKarp
// (flow/edmonds_karp.go), rewritten against core.Graph's int node ids and
// the shared residual/cut machinery in types.go/cut.go.
type EdmondsKarp struct{}

func (EdmondsKarp) MinCut(g *core.Graph, cap CapacityFunc, s, t int) ([]core.EdgeIndex, bool) {
	if s == t || s < 0 || s >= g.NodeCount() || t < 0 || t >= g.NodeCount() {
		return nil, false
	}
	r := newResidual(g, cap)
	for {
		path, bottleneck, found := bfsAugmentingPath(r, s, t)
		if !found {
			break
		}
		augment(r, path, bottleneck)
	}
	return r.extractCut(s), true
}

type arc struct {
	idx     core.EdgeIndex
	forward bool // true: traverse idx forward (from->to), false: reverse (to->from)
}

// bfsAugmentingPath finds the shortest (fewest-arc) augmenting path s->t in
// the current residual graph, returning the sequence of arcs and the
// bottleneck residual capacity along it.
func bfsAugmentingPath(r *residual, s, t int) (path []arc, bottleneck int64, found bool) {
	n := r.g.NodeCount()
	visited := make([]bool, n)
	parentArc := make([]arc, n)
	parentNode := make([]int, n)
	visited[s] = true
	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if v == t {
			found = true
			break
		}
		for _, idx := range r.g.Neighbors(v) {
			_, to := r.g.Endpoints(idx)
			if !visited[to] && r.capOf(idx) > 0 {
				visited[to] = true
				parentNode[to] = v
				parentArc[to] = arc{idx: idx, forward: true}
				queue = append(queue, to)
			}
		}
		for _, idx := range r.revAdj[v] {
			from, _ := r.g.Endpoints(idx)
			if !visited[from] && r.capBack(idx) > 0 {
				visited[from] = true
				parentNode[from] = v
				parentArc[from] = arc{idx: idx, forward: false}
				queue = append(queue, from)
			}
		}
	}
	if !visited[t] {
		return nil, 0, false
	}
	bottleneck = Infinite
	for v := t; v != s; {
		a := parentArc[v]
		var residualCap int64
		if a.forward {
			residualCap = r.capOf(a.idx)
		} else {
			residualCap = r.capBack(a.idx)
		}
		if residualCap < bottleneck {
			bottleneck = residualCap
		}
		path = append([]arc{a}, path...)
		v = parentNode[v]
	}
	return path, bottleneck, true
}

func augment(r *residual, path []arc, bottleneck int64) {
	for _, a := range path {
		if a.forward {
			r.push(a.idx, bottleneck)
		} else {
			r.push(a.idx, -bottleneck)
		}
	}
}
