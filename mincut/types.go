// Package mincut implements MinCutOracle: an on-demand s-t min-cut over a
// weighted view of a core.Graph, used purely to extract "why-not-reachable"
// explanations for the graph theory.
//
// Weights come from the current assignment, not from the graph itself:
// core.Graph carries no weights, so capacity is supplied by the caller via
// a CapacityFunc. A disabled edge has capacity 1; an enabled-or-unassigned
// edge has capacity Infinite. The algorithm is pluggable — EdmondsKarp,
// FordFulkerson and Dinic all satisfy Algorithm — adapted from lvlath's
// flow package (flow/edmonds_karp.go, flow/ford_fulkerson.go, flow/dinic.go),
// rewritten against core.Graph's dense int node/edge ids instead of lvlath's
// string vertex ids and *core.Graph-valued residuals.
package mincut

import "github.com/katalvlaran/theorysat/core"

// Infinite is the sentinel capacity assigned to any edge that is enabled or
// unassigned: large enough that no finite combination of disabled-edge
// capacities (each 1) can ever saturate it first, so a min cut never
// includes such an edge.
const Infinite int64 = 1 << 30

// CapacityFunc returns the capacity of edge idx in the weighted view used
// for this min-cut call (normally: Infinite if core.Graph.EdgeEnabled(idx),
// 1 otherwise).
type CapacityFunc func(idx core.EdgeIndex) int64

// Algorithm computes an s-t min cut over g under cap. It returns the edge
// indices whose removal separates s from t with minimum total capacity.
// ok=false is returned only when s==t or either node id is out of range;
// if no s-t path exists at all, the cut is empty and ok is true. Callers
// only invoke this when the anti-graph already reports t unreachable from
// s, so ok=false should not occur in practice.
type Algorithm interface {
	MinCut(g *core.Graph, cap CapacityFunc, s, t int) (cut []core.EdgeIndex, ok bool)
}

// residual is the shared mutable state every Algorithm implementation
// augments: the net flow pushed along each original edge, plus a synthetic
// reverse arc for it (forward residual capacity is cap(idx)-flow[idx], see
// capOf; reverse residual capacity is flow[idx], the flow that can be
// pulled back, see capBack).
type residual struct {
	g      *core.Graph
	cap    CapacityFunc
	flow   []int64   // flow[idx]: net flow currently pushed along edge idx
	revAdj [][]core.EdgeIndex // revAdj[v]: edges whose "to" endpoint is v
}

func newResidual(g *core.Graph, cap CapacityFunc) *residual {
	r := &residual{
		g:      g,
		cap:    cap,
		flow:   make([]int64, g.EdgeCount()),
		revAdj: make([][]core.EdgeIndex, g.NodeCount()),
	}
	for i := 0; i < g.EdgeCount(); i++ {
		idx := core.EdgeIndex(i)
		_, to := g.Endpoints(idx)
		r.revAdj[to] = append(r.revAdj[to], idx)
	}
	return r
}

// capOf returns the remaining forward residual capacity of edge idx.
func (r *residual) capOf(idx core.EdgeIndex) int64 {
	return r.cap(idx) - r.flow[idx]
}

// capBack returns the remaining reverse (pull-back) residual capacity of
// edge idx, i.e. however much flow has already been pushed along it.
func (r *residual) capBack(idx core.EdgeIndex) int64 {
	return r.flow[idx]
}

func (r *residual) push(idx core.EdgeIndex, amount int64) {
	r.flow[idx] += amount
}
