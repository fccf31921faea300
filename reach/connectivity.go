package reach

import "github.com/katalvlaran/theorysat/core"

// Connectivity is the Connectivity ReachOracle variant: DFS/BFS reachability
// only, no distances. Its first Update, and any Update whose log holds a
// deletion of a current tree edge (policy.go), is a full recompute (a plain
// BFS over the enabled-edge adjacency); otherwise newly enabled edges are
// applied incrementally — adapted from lvlath's bfs package (bfs.BFS),
// simplified to int node ids and an enabled-only neighbor walk.
type Connectivity struct {
	base

	reachable  []bool
	parent     []int
	parentEdge []core.EdgeIndex
	hasParent  []bool
}

// NewConnectivity constructs a Connectivity oracle rooted at source over g.
// Call Update before the first Connected/Previous query.
func NewConnectivity(g *core.Graph, source int) *Connectivity {
	n := g.NodeCount()
	return &Connectivity{
		base:       newBase("Connectivity", g, source),
		reachable:  make([]bool, n),
		parent:     make([]int, n),
		parentEdge: make([]core.EdgeIndex, n),
		hasParent:  make([]bool, n),
	}
}

func (o *Connectivity) Update() {
	entries := o.g.Since(o.cur)
	if o.initialized && len(entries) == 0 {
		o.record(UpdateSkipped)
		return
	}
	fellBack := o.initialized && needsFullRecompute(entries, o.parentEdge, o.hasParent, o.reachable)
	if !o.initialized || fellBack {
		o.fullRecompute()
		if !o.initialized {
			o.record(UpdateFull)
		} else {
			o.record(UpdateFailedFast)
		}
	} else {
		o.applyInsertions(entries)
		o.record(UpdateFast)
	}
	o.initialized = true
	o.g.Advance(o.cur)
}

func (o *Connectivity) fullRecompute() {
	n := len(o.reachable)
	for i := 0; i < n; i++ {
		o.reachable[i] = false
		o.hasParent[i] = false
	}
	o.reachable[o.source] = true
	queue := []int{o.source}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, idx := range o.g.Neighbors(v) {
			if !o.g.EdgeEnabled(idx) {
				continue
			}
			_, to := o.g.Endpoints(idx)
			if o.reachable[to] {
				continue
			}
			o.reachable[to] = true
			o.parent[to] = v
			o.parentEdge[to] = idx
			o.hasParent[to] = true
			queue = append(queue, to)
		}
	}
}

// applyInsertions relaxes only the newly enabled edges from the log: any
// node already reachable may extend reachability through its new out-edge.
// Safe because insertions only ever grow the reachable set.
func (o *Connectivity) applyInsertions(entries []core.LogEntry) {
	var frontier []int
	for _, e := range entries {
		// An edge enabled and then disabled again within the same log is
		// not part of the current graph.
		if e.Kind != core.LogEnable || !o.g.EdgeEnabled(e.Index) {
			continue
		}
		from, to := o.g.Endpoints(e.Index)
		if o.reachable[from] && !o.reachable[to] {
			o.reachable[to] = true
			o.parent[to] = from
			o.parentEdge[to] = e.Index
			o.hasParent[to] = true
			frontier = append(frontier, to)
		}
	}
	for len(frontier) > 0 {
		v := frontier[0]
		frontier = frontier[1:]
		for _, idx := range o.g.Neighbors(v) {
			if !o.g.EdgeEnabled(idx) {
				continue
			}
			_, to := o.g.Endpoints(idx)
			if o.reachable[to] {
				continue
			}
			o.reachable[to] = true
			o.parent[to] = v
			o.parentEdge[to] = idx
			o.hasParent[to] = true
			frontier = append(frontier, to)
		}
	}
}

func (o *Connectivity) Connected(t int) bool       { return o.reachable[t] }
func (o *Connectivity) ConnectedUnsafe(t int) bool { return o.reachable[t] }

func (o *Connectivity) Previous(t int) (int, bool) {
	if !o.hasParent[t] {
		return 0, false
	}
	return o.parent[t], true
}

func (o *Connectivity) PreviousEdge(t int) (core.EdgeIndex, bool) {
	if !o.hasParent[t] {
		return 0, false
	}
	return o.parentEdge[t], true
}

func (o *Connectivity) Distance(int) (int64, bool) { return 0, false }
