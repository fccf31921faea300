package theory

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/theorysat/core"
	"github.com/katalvlaran/theorysat/detector"
	"github.com/katalvlaran/theorysat/internal/xlog"
	"github.com/katalvlaran/theorysat/lit"
	"github.com/katalvlaran/theorysat/mincut"
	"github.com/katalvlaran/theorysat/reach"
)

var gtLog = xlog.For("theory.GraphTheory")

// OracleKind selects which reach.Oracle variant a target binding uses for
// its reach decisions. The path-reason extractor is independent of this
// and defaults to a plain walk of oPlus's tree unless overridden via
// SetPathExtractor on the detector AddReachDetector returns.
type OracleKind uint8

const (
	OracleConnectivity OracleKind = iota
	OracleBFSDistance
	OracleDijkstra
)

// trailKind classifies one consumed-literal record.
type trailKind uint8

const (
	trailEdgePlus trailKind = iota
	trailEdgeMinus
	trailDetectorLit
)

type trailEntry struct {
	kind trailKind
	edge core.EdgeIndex
	lit  lit.Lit
}

// GraphTheory implements theory.Theory over a registry of
// *detector.ReachDetector instances, all sharing one G+/G- pair of
// DynamicGraph views: G+ and G- themselves must stay distinct instances,
// not that every detector needs its own copy.
type GraphTheory struct {
	gPlus, gMinus *core.Graph
	edgeBase      core.EdgeVarBase
	numEdges      int

	detectors []*detector.ReachDetector
	cutAlg    mincut.Algorithm

	trail     []trailEntry
	watermark []int // watermark[i] = len(trail) at the start of decision level i+1

	host           SatCore
	reachMarker    ReasonMarker
	nonReachMarker ReasonMarker
}

// NewGraphTheory builds an empty theory over numNodes nodes; edges are added
// with AddEdge. edgeBase is the first SAT variable edge literals occupy
// (core.EdgeVarBase), consecutively assigned as edges are added.
func NewGraphTheory(numNodes int, edgeBase core.EdgeVarBase, host SatCore) *GraphTheory {
	gt := &GraphTheory{
		gPlus:    core.NewGraph(),
		gMinus:   core.NewGraph(),
		edgeBase: edgeBase,
		host:     host,
	}
	for i := 0; i < numNodes; i++ {
		gt.gPlus.AddNode()
		gt.gMinus.AddNode()
	}
	gt.reachMarker = host.NewReasonMarker(gt)
	gt.nonReachMarker = host.NewReasonMarker(gt)
	gt.cutAlg = mincut.EdmondsKarp{}
	return gt
}

// SetCutAlgorithm overrides the mincut.Algorithm new detectors are built
// with (internal/config's WithMinCutAlgorithm). Detectors already created
// by AddReachDetector keep whatever algorithm was in effect when they were
// added.
func (gt *GraphTheory) SetCutAlgorithm(alg mincut.Algorithm) { gt.cutAlg = alg }

// AddEdge adds edge from->to to both graph views at the next dense index and
// returns it. The edge's SAT variable is edgeBase+idx.
func (gt *GraphTheory) AddEdge(from, to int) (core.EdgeIndex, error) {
	idx := core.EdgeIndex(gt.numEdges)
	if err := gt.gPlus.AddEdge(from, to, idx); err != nil {
		return 0, err
	}
	if err := gt.gMinus.AddEdge(from, to, idx); err != nil {
		return 0, err
	}
	gt.numEdges++
	return idx, nil
}

// isEdgeVar reports whether v falls in this theory's contiguous edge-literal
// range, and if so its edge index.
func (gt *GraphTheory) isEdgeVar(v lit.Var) (core.EdgeIndex, bool) {
	base := lit.Var(gt.edgeBase)
	if v < base || int(v-base) >= gt.numEdges {
		return 0, false
	}
	return gt.edgeBase.EdgeIndex(v), true
}

// AddReachDetector registers a new ReachDetector rooted at source, using the
// given oracle variant for reach decisions, and returns it so the caller can
// Bind targets and optionally override its path extractor. weight/rng are
// only consulted when kind is OracleDijkstra.
func (gt *GraphTheory) AddReachDetector(source int, kind OracleKind, weight reach.Weight, rng *rand.Rand) *detector.ReachDetector {
	var oPlus, oMinus reach.Oracle
	switch kind {
	case OracleBFSDistance:
		oPlus = reach.NewBFSDistance(gt.gPlus, source)
		oMinus = reach.NewBFSDistance(gt.gMinus, source)
	case OracleDijkstra:
		oPlus = reach.NewDijkstra(gt.gPlus, source, weight, rng)
		oMinus = reach.NewDijkstra(gt.gMinus, source, weight, rng)
	default:
		oPlus = reach.NewConnectivity(gt.gPlus, source)
		oMinus = reach.NewConnectivity(gt.gMinus, source)
	}
	d := detector.NewReachDetector(source, gt.edgeBase, oPlus, oMinus, gt.gMinus, gt.cutAlg)
	gt.detectors = append(gt.detectors, d)
	return d
}

// Preprocess enables every added edge in G-, matching the "unassigned !=
// false" default every edge starts in before any literal is ever consumed.
// Must run once, after all edges have been added and before the first
// PropagateTheory call.
func (gt *GraphTheory) Preprocess() error {
	for i := 0; i < gt.numEdges; i++ {
		if err := gt.gMinus.EnableEdge(core.EdgeIndex(i)); err != nil {
			return err
		}
	}
	return nil
}

// EnqueueTheory records a newly consumed literal, toggling the edge graph it
// belongs to if it is an edge literal.
func (gt *GraphTheory) EnqueueTheory(l lit.Lit) error {
	idx, isEdge := gt.isEdgeVar(l.Var())
	if !isEdge {
		gt.trail = append(gt.trail, trailEntry{kind: trailDetectorLit, lit: l})
		return nil
	}
	if l.IsPos() {
		if err := gt.gPlus.EnableEdge(idx); err != nil {
			return fmt.Errorf("theory: enabling G+ edge %d: %w", idx, err)
		}
		gt.trail = append(gt.trail, trailEntry{kind: trailEdgePlus, edge: idx, lit: l})
		return nil
	}
	if err := gt.gMinus.DisableEdge(idx); err != nil {
		return fmt.Errorf("theory: disabling G- edge %d: %w", idx, err)
	}
	gt.trail = append(gt.trail, trailEntry{kind: trailEdgeMinus, edge: idx, lit: l})
	return nil
}

// PropagateTheory runs every detector once, in registration order; the first
// conflict short-circuits the rest.
func (gt *GraphTheory) PropagateTheory() ([]lit.Lit, bool) {
	for _, d := range gt.detectors {
		props, conflict := d.Propagate(gt.host.Value)
		if conflict != nil {
			gtLog.With("source", d.Source()).With("marker", conflict.Marker).
				Debugf("conflict at target %d, reason has %d literals", conflict.Target, len(conflict.Reason))
			return conflict.Reason, false
		}
		for _, p := range props {
			marker := gt.reachMarker
			if p.Marker == detector.MarkerNonReach {
				marker = gt.nonReachMarker
			}
			if err := gt.host.Enqueue(p.Lit, marker); err != nil {
				return []lit.Lit{p.Lit}, false
			}
		}
	}
	// Every detector's oracles have now observed both change logs.
	gt.gPlus.ClearHistory()
	gt.gMinus.ClearHistory()
	return nil, true
}

// SolveTheory has no extra work beyond PropagateTheory for this theory: every
// propagation step already drives detectors to a full fixpoint, so there is
// nothing a separate "solve" pass would additionally discover.
func (gt *GraphTheory) SolveTheory() ([]lit.Lit, bool) {
	return gt.PropagateTheory()
}

// BuildReason dispatches to the owning detector based on which of the two
// markers this theory registered for itself fired. The reason reflects the
// graph views as they are at the time of the call; the trail is not
// replayed back to the point l was propagated.
func (gt *GraphTheory) BuildReason(l lit.Lit, marker ReasonMarker) ([]lit.Lit, error) {
	var kind detector.Marker
	switch marker {
	case gt.reachMarker:
		kind = detector.MarkerReach
	case gt.nonReachMarker:
		kind = detector.MarkerNonReach
	default:
		return nil, fmt.Errorf("theory: marker %v does not belong to this GraphTheory", marker)
	}
	for _, d := range gt.detectors {
		if d.Owns(l.Var()) {
			return d.BuildReason(l, kind)
		}
	}
	return nil, fmt.Errorf("theory: no detector owns variable of literal %s", l)
}

// NewDecisionLevel pushes a trail-size watermark for the level about to
// start.
func (gt *GraphTheory) NewDecisionLevel() {
	gt.watermark = append(gt.watermark, len(gt.trail))
}

// BacktrackUntil walks the trail above level's watermark in reverse,
// inverting each edge toggle. Detectors need no explicit notice: their
// oracles observe the change log lazily on their next Update.
func (gt *GraphTheory) BacktrackUntil(level int) {
	if level >= len(gt.watermark) {
		return
	}
	target := gt.watermark[level]
	gtLog.Debugf("backtrack to level %d, undoing %d trail entries", level, len(gt.trail)-target)
	for i := len(gt.trail) - 1; i >= target; i-- {
		gt.undo(gt.trail[i])
	}
	gt.trail = gt.trail[:target]
	gt.watermark = gt.watermark[:level]
}

// UndecideTheory undoes a single literal — the finer-grained counterpart
// to BacktrackUntil, used by the host to roll back a single assignment
// without collapsing a whole decision level. It acts only when l is the
// most recent trail entry; for any other literal it does nothing.
func (gt *GraphTheory) UndecideTheory(l lit.Lit) {
	n := len(gt.trail)
	if n == 0 || gt.trail[n-1].lit != l {
		return
	}
	gt.undo(gt.trail[n-1])
	gt.trail = gt.trail[:n-1]
}

func (gt *GraphTheory) undo(e trailEntry) {
	switch e.kind {
	case trailEdgePlus:
		_ = gt.gPlus.DisableEdge(e.edge)
	case trailEdgeMinus:
		_ = gt.gMinus.EnableEdge(e.edge)
	}
}

// DecideTheory asks each detector in registration order for a forced-reach
// guidance literal, returning the first one offered.
func (gt *GraphTheory) DecideTheory() (lit.Lit, bool) {
	for _, d := range gt.detectors {
		if l, ok := d.Decide(gt.host.Value); ok {
			return l, true
		}
	}
	return lit.Null, false
}

// CheckSolved re-runs every detector's propagation step as a debug assertion:
// at a genuine fixpoint this must return no conflict and no new
// propagations.
func (gt *GraphTheory) CheckSolved() bool {
	for _, d := range gt.detectors {
		props, conflict := d.Propagate(gt.host.Value)
		if conflict != nil || len(props) != 0 {
			return false
		}
	}
	return true
}
