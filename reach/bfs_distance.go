package reach

import "github.com/katalvlaran/theorysat/core"

// BFSDistance is the BFS-Distance ReachOracle variant: shortest-path-by-hops,
// adapted from lvlath's bfs package (bfs.BFS / BFSResult.Depth) extended
// with the incremental/full update policy from policy.go.
type BFSDistance struct {
	base

	reachable  []bool
	dist       []int64
	parent     []int
	parentEdge []core.EdgeIndex
	hasParent  []bool
}

// NewBFSDistance constructs a BFSDistance oracle rooted at source over g.
func NewBFSDistance(g *core.Graph, source int) *BFSDistance {
	n := g.NodeCount()
	return &BFSDistance{
		base:       newBase("BFSDistance", g, source),
		reachable:  make([]bool, n),
		dist:       make([]int64, n),
		parent:     make([]int, n),
		parentEdge: make([]core.EdgeIndex, n),
		hasParent:  make([]bool, n),
	}
}

func (o *BFSDistance) Update() {
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

func (o *BFSDistance) fullRecompute() {
	n := len(o.reachable)
	for i := 0; i < n; i++ {
		o.reachable[i] = false
		o.hasParent[i] = false
		o.dist[i] = -1
	}
	o.reachable[o.source] = true
	o.dist[o.source] = 0
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
			o.dist[to] = o.dist[v] + 1
			o.parent[to] = v
			o.parentEdge[to] = idx
			o.hasParent[to] = true
			queue = append(queue, to)
		}
	}
}

// relax updates to's distance/parent if reaching it via from (one hop) is
// strictly better than its current state, queuing it for further relaxation
// of its own neighbors. Used both for the newly inserted edges themselves
// and for the forward wave they can trigger (a new direct edge can shorten
// a previously-settled detour).
func (o *BFSDistance) relax(from, to int, idx core.EdgeIndex, frontier *[]int) {
	nd := o.dist[from] + 1
	if o.reachable[to] && o.dist[to] <= nd {
		return
	}
	o.reachable[to] = true
	o.dist[to] = nd
	o.parent[to] = from
	o.parentEdge[to] = idx
	o.hasParent[to] = true
	*frontier = append(*frontier, to)
}

func (o *BFSDistance) applyInsertions(entries []core.LogEntry) {
	var frontier []int
	for _, e := range entries {
		// An edge enabled and then disabled again within the same log is
		// not part of the current graph.
		if e.Kind != core.LogEnable || !o.g.EdgeEnabled(e.Index) {
			continue
		}
		from, to := o.g.Endpoints(e.Index)
		if o.reachable[from] {
			o.relax(from, to, e.Index, &frontier)
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
			o.relax(v, to, idx, &frontier)
		}
	}
}

func (o *BFSDistance) Connected(t int) bool       { return o.reachable[t] }
func (o *BFSDistance) ConnectedUnsafe(t int) bool { return o.reachable[t] }

func (o *BFSDistance) Previous(t int) (int, bool) {
	if !o.hasParent[t] {
		return 0, false
	}
	return o.parent[t], true
}

func (o *BFSDistance) PreviousEdge(t int) (core.EdgeIndex, bool) {
	if !o.hasParent[t] {
		return 0, false
	}
	return o.parentEdge[t], true
}

func (o *BFSDistance) Distance(t int) (int64, bool) {
	if !o.reachable[t] {
		return 0, false
	}
	return o.dist[t], true
}
