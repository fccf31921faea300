package detector

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/theorysat/core"
	"github.com/katalvlaran/theorysat/lit"
	"github.com/katalvlaran/theorysat/mincut"
	"github.com/katalvlaran/theorysat/reach"
)

// ValueFunc is how a detector reads the SAT host's current assignment; the
// detector never mutates it, only calls it.
type ValueFunc func(lit.Lit) lit.Value

// Propagation is a literal a detector wants enqueued, tagged with the
// marker BuildReason will later need to reconstruct why.
type Propagation struct {
	Lit    lit.Lit
	Marker Marker
	Target int
}

// Conflict is an immediate clausal conflict discovered during Propagate.
type Conflict struct {
	Reason []lit.Lit
	Marker Marker
	Target int
}

// ReachDetector binds a source node and a set of (target, literal) pairs to
// two ReachOracle instances: oPlus over the positive graph G+, oMinus over
// the anti-graph G-. It never touches the SAT trail itself; GraphTheory
// performs the actual enqueue/conflict reporting using the values this
// returns.
type ReachDetector struct {
	source      int
	edgeBase    core.EdgeVarBase
	targets     []int
	lits        map[int]lit.Lit
	targetOfVar map[lit.Var]int

	oPlus     reach.Oracle
	oMinus    reach.Oracle
	antiGraph *core.Graph
	cutAlg    mincut.Algorithm

	// reachPath defaults to walking oPlus directly; overridable so a
	// detector whose oPlus carries a random-weighted tiebreak can still
	// extract reach reasons from a plain, deterministic tree.
	reachPath PathExtractor
}

// NewReachDetector constructs a detector rooted at source. antiGraph must be
// the same *core.Graph instance backing oMinus: it supplies both the
// topology and (via EdgeEnabled) the capacities MinCutOracle needs, since
// enabled-in-G- already means exactly "value != false".
func NewReachDetector(source int, edgeBase core.EdgeVarBase, oPlus, oMinus reach.Oracle, antiGraph *core.Graph, cutAlg mincut.Algorithm) *ReachDetector {
	d := &ReachDetector{
		source:      source,
		edgeBase:    edgeBase,
		lits:        make(map[int]lit.Lit),
		targetOfVar: make(map[lit.Var]int),
		oPlus:       oPlus,
		oMinus:      oMinus,
		antiGraph:   antiGraph,
		cutAlg:      cutAlg,
	}
	d.reachPath = oraclePath{oracle: oPlus}
	return d
}

// SetPathExtractor overrides the reach-reason path extractor.
func (d *ReachDetector) SetPathExtractor(p PathExtractor) { d.reachPath = p }

// Bind registers target as reachable-from-source under literal l. Targets
// are kept sorted by id so Propagate and Decide process them in a
// deterministic, target-id order.
func (d *ReachDetector) Bind(target int, l lit.Lit) {
	d.lits[target] = l
	d.targetOfVar[l.Var()] = target
	i := sort.SearchInts(d.targets, target)
	if i < len(d.targets) && d.targets[i] == target {
		return
	}
	d.targets = append(d.targets, 0)
	copy(d.targets[i+1:], d.targets[i:])
	d.targets[i] = target
}

// Source returns the detector's fixed source node.
func (d *ReachDetector) Source() int { return d.source }

// Owns reports whether v is the variable of one of this detector's bound
// target literals, letting GraphTheory find the right detector for a
// BuildReason call without a global var->detector index.
func (d *ReachDetector) Owns(v lit.Var) bool {
	_, ok := d.targetOfVar[v]
	return ok
}

// Targets returns the bound target node ids in ascending order.
func (d *ReachDetector) Targets() []int { return d.targets }

// OraclesConnectedUnsafe reports whether either oracle currently considers
// node reachable, using the possibly-stale connected_unsafe view, without
// forcing an oracle Update. GraphTheory does not call it: its
// PropagateTheory runs every detector on every call.
func (d *ReachDetector) OraclesConnectedUnsafe(node int) bool {
	return d.oPlus.ConnectedUnsafe(node) || d.oMinus.ConnectedUnsafe(node)
}

// Propagate brings both oracles up to date and, for each bound target in id
// order, checks whether the positive or anti-graph reachability disagrees
// with the target's current literal value. The first disagreement that is
// already a firm conflict (rather than an unassigned literal to propagate)
// stops processing and is returned immediately.
func (d *ReachDetector) Propagate(value ValueFunc) ([]Propagation, *Conflict) {
	d.oPlus.Update()
	d.oMinus.Update()

	var props []Propagation
	for _, t := range d.targets {
		l := d.lits[t]
		val := value(l)

		if d.oPlus.Connected(t) && val != lit.True {
			if val == lit.Undef {
				props = append(props, Propagation{Lit: l, Marker: MarkerReach, Target: t})
				continue
			}
			reason, err := d.reachReason(t)
			if err != nil {
				reason = []lit.Lit{l}
			}
			return props, &Conflict{Reason: reason, Marker: MarkerReach, Target: t}
		}

		if !d.oMinus.Connected(t) && val != lit.False {
			if val == lit.Undef {
				props = append(props, Propagation{Lit: l.Not(), Marker: MarkerNonReach, Target: t})
				continue
			}
			reason, err := d.nonReachReason(t)
			if err != nil {
				reason = []lit.Lit{l.Not()}
			}
			return props, &Conflict{Reason: reason, Marker: MarkerNonReach, Target: t}
		}
	}
	return props, nil
}

// BuildReason reconstructs the clause explaining why l was (or would be)
// asserted, dispatching on marker. The clause is built from the oracles'
// and the anti-graph's current state; neither this method nor
// theory.GraphTheory.BuildReason replays the trail back to the point the
// propagation happened at.
func (d *ReachDetector) BuildReason(l lit.Lit, marker Marker) ([]lit.Lit, error) {
	target, ok := d.targetOfVar[l.Var()]
	if !ok {
		return nil, fmt.Errorf("detector: literal %s is not bound to any target of this detector", l)
	}
	switch marker {
	case MarkerReach:
		return d.reachReason(target)
	case MarkerNonReach:
		return d.nonReachReason(target)
	default:
		return nil, fmt.Errorf("detector: marker %s has no reach/non-reach reconstruction", marker)
	}
}

// reachReason walks the positive-graph path from source to target and
// returns the clause {¬e1,...,¬en, ℓ}: if every path edge is true, ℓ must
// be too.
func (d *ReachDetector) reachReason(target int) ([]lit.Lit, error) {
	edges, ok := d.reachPath.ExtractPath(target)
	if !ok {
		return nil, fmt.Errorf("detector: target %d has no path in the positive graph", target)
	}
	clause := make([]lit.Lit, 0, len(edges)+1)
	for _, e := range edges {
		clause = append(clause, d.edgeBase.Lit(e).Not())
	}
	clause = append(clause, d.lits[target])
	return clause, nil
}

// nonReachReason computes an s-t min cut over the anti-graph and returns the
// clause {e1,...,en, ¬ℓ}: every cut edge is currently false, emitted in
// positive polarity, so the clause reads "at least one such edge must be
// true".
func (d *ReachDetector) nonReachReason(target int) ([]lit.Lit, error) {
	cut, ok := d.cutAlg.MinCut(d.antiGraph, d.cutCapacity, d.source, target)
	if !ok {
		return nil, fmt.Errorf("detector: no s-t cut found for target %d", target)
	}
	clause := make([]lit.Lit, 0, len(cut)+1)
	for _, e := range cut {
		clause = append(clause, d.edgeBase.Lit(e))
	}
	clause = append(clause, d.lits[target].Not())
	return clause, nil
}

// cutCapacity is the weighting MinCutOracle runs against: disabled (i.e.
// value=false under G-'s own "enabled iff not false" convention) costs 1,
// anything else is effectively infinite.
func (d *ReachDetector) cutCapacity(idx core.EdgeIndex) int64 {
	if d.antiGraph.EdgeEnabled(idx) {
		return mincut.Infinite
	}
	return 1
}

// Decide optionally suggests a forced-reach decision: an unassigned edge
// literal along an anti-graph path toward a target that is not yet reached
// in G+ but could still become reachable. Returns ok=false if no target
// offers useful guidance.
func (d *ReachDetector) Decide(value ValueFunc) (lit.Lit, bool) {
	guide := oraclePath{oracle: d.oMinus}
	for _, t := range d.targets {
		if d.oPlus.Connected(t) || !d.oMinus.Connected(t) {
			continue
		}
		edges, ok := guide.ExtractPath(t)
		if !ok {
			continue
		}
		for _, e := range edges {
			l := d.edgeBase.Lit(e)
			if value(l) == lit.Undef {
				return l, true
			}
		}
	}
	return lit.Null, false
}
