package reach

import (
	"container/heap"
	"math/rand"

	"github.com/katalvlaran/theorysat/core"
)

// Weight maps an edge index to a non-negative cost. A nil Weight passed to
// NewDijkstra treats every edge as cost 1 (equivalent to BFSDistance, but
// routed through the heap-based algorithm — used when a detector wants a
// random-weighted tiebreak for its decision heuristic without paying for a
// second oracle).
type Weight func(core.EdgeIndex) int64

// Dijkstra is the general single-source shortest-path ReachOracle variant,
// adapted from lvlath's dijkstra package (heap.Interface + lazy
// decrease-key). Always performs a full recompute: unlike BFSDistance,
// incrementally patching a Dijkstra tree after an edge deletion is not
// profitable in general (a deleted tree edge can require re-relaxing
// arbitrarily many downstream vertices with different weights), so this
// variant recomputes on every Update whose log is non-empty, insertions
// included; it does not consult the fallback rule in policy.go.
type Dijkstra struct {
	base

	weight Weight
	rng    *rand.Rand // nil => no randomized tiebreak

	reachable  []bool
	dist       []int64
	parent     []int
	parentEdge []core.EdgeIndex
	hasParent  []bool
}

// NewDijkstra constructs a Dijkstra oracle rooted at source over g. weight
// may be nil (unit weights). rng, if non-nil, is used to randomly perturb
// tie-breaking among equal-distance candidates; this never changes
// Connected/Distance results, only which of several shortest paths is
// chosen as Previous.
func NewDijkstra(g *core.Graph, source int, weight Weight, rng *rand.Rand) *Dijkstra {
	n := g.NodeCount()
	return &Dijkstra{
		base:       newBase("Dijkstra", g, source),
		weight:     weight,
		rng:        rng,
		reachable:  make([]bool, n),
		dist:       make([]int64, n),
		parent:     make([]int, n),
		parentEdge: make([]core.EdgeIndex, n),
		hasParent:  make([]bool, n),
	}
}

func (o *Dijkstra) edgeWeight(idx core.EdgeIndex) int64 {
	if o.weight == nil {
		return 1
	}
	return o.weight(idx)
}

type heapItem struct {
	node int
	dist int64
	tie  float64
}

type itemHeap []heapItem

func (h itemHeap) Len() int { return len(h) }
func (h itemHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].tie < h[j].tie
}
func (h itemHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x any)        { *h = append(*h, x.(heapItem)) }
func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func (o *Dijkstra) Update() {
	entries := o.g.Since(o.cur)
	if o.initialized && len(entries) == 0 {
		o.record(UpdateSkipped)
		return
	}
	o.fullRecompute()
	o.record(UpdateFull)
	o.initialized = true
	o.g.Advance(o.cur)
}

func (o *Dijkstra) fullRecompute() {
	n := len(o.reachable)
	for i := 0; i < n; i++ {
		o.reachable[i] = false
		o.hasParent[i] = false
		o.dist[i] = -1
	}
	o.dist[o.source] = 0
	o.reachable[o.source] = true

	h := &itemHeap{{node: o.source, dist: 0, tie: o.tie()}}
	heap.Init(h)
	for h.Len() > 0 {
		top := heap.Pop(h).(heapItem)
		if top.dist > o.dist[top.node] {
			continue // stale lazy-decrease-key entry
		}
		for _, idx := range o.g.Neighbors(top.node) {
			if !o.g.EdgeEnabled(idx) {
				continue
			}
			_, to := o.g.Endpoints(idx)
			nd := top.dist + o.edgeWeight(idx)
			if !o.reachable[to] || nd < o.dist[to] {
				o.reachable[to] = true
				o.dist[to] = nd
				o.parent[to] = top.node
				o.parentEdge[to] = idx
				o.hasParent[to] = true
				heap.Push(h, heapItem{node: to, dist: nd, tie: o.tie()})
			}
		}
	}
}

func (o *Dijkstra) tie() float64 {
	if o.rng == nil {
		return 0
	}
	return o.rng.Float64()
}

func (o *Dijkstra) Connected(t int) bool       { return o.reachable[t] }
func (o *Dijkstra) ConnectedUnsafe(t int) bool { return o.reachable[t] }

func (o *Dijkstra) Previous(t int) (int, bool) {
	if !o.hasParent[t] {
		return 0, false
	}
	return o.parent[t], true
}

func (o *Dijkstra) PreviousEdge(t int) (core.EdgeIndex, bool) {
	if !o.hasParent[t] {
		return 0, false
	}
	return o.parentEdge[t], true
}

func (o *Dijkstra) Distance(t int) (int64, bool) {
	if !o.reachable[t] {
		return 0, false
	}
	return o.dist[t], true
}
