package mincut

import "github.com/katalvlaran/theorysat/core"

// reachableSet returns, for the current residual state, every node
// reachable from s by a forward arc with positive residual capacity or a
// backward arc (cancelling previously pushed flow) with positive residual
// capacity.
func (r *residual) reachableSet(s int) []bool {
	n := r.g.NodeCount()
	reached := make([]bool, n)
	reached[s] = true
	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, idx := range r.g.Neighbors(v) {
			_, to := r.g.Endpoints(idx)
			if !reached[to] && r.capOf(idx) > 0 {
				reached[to] = true
				queue = append(queue, to)
			}
		}
		for _, idx := range r.revAdj[v] {
			from, _ := r.g.Endpoints(idx)
			if !reached[from] && r.capBack(idx) > 0 {
				reached[from] = true
				queue = append(queue, from)
			}
		}
	}
	return reached
}

// extractCut returns the currently-disabled (capacity < Infinite) edges
// crossing from the residual-reachable side of s to its complement — the
// standard min-cut extraction once no further augmenting path exists.
// Invariant: every edge returned here is disabled.
func (r *residual) extractCut(s int) []core.EdgeIndex {
	reached := r.reachableSet(s)
	var cut []core.EdgeIndex
	for i := 0; i < r.g.EdgeCount(); i++ {
		idx := core.EdgeIndex(i)
		from, to := r.g.Endpoints(idx)
		if reached[from] && !reached[to] && r.cap(idx) < Infinite {
			cut = append(cut, idx)
		}
	}
	return cut
}
