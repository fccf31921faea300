package detector

import (
	"github.com/katalvlaran/theorysat/core"
	"github.com/katalvlaran/theorysat/reach"
)

// Marker tags why a literal was (or would be) enqueued or conflicted, so
// BuildReason knows which reconstruction to run. Propagate only ever
// produces MarkerReach and MarkerNonReach.
type Marker uint8

const (
	// MarkerReach tags a literal forced true because its target became
	// reachable in the positive graph.
	MarkerReach Marker = iota
	// MarkerNonReach tags a literal forced false because its target became
	// unreachable in the anti-graph.
	MarkerNonReach
	// MarkerForcedReach names the kind of decision literal Decide suggests:
	// an unassigned edge along a guidance path toward an unreached target.
	// Decide returns the literal without a marker, and BuildReason has no
	// reconstruction for this kind.
	MarkerForcedReach
)

func (m Marker) String() string {
	switch m {
	case MarkerReach:
		return "reach"
	case MarkerNonReach:
		return "non-reach"
	case MarkerForcedReach:
		return "forced-reach"
	default:
		return "unknown"
	}
}

// PathExtractor walks a reachability tree from the detector's source out to
// target and returns the tree edges on that path, nearest-to-source first.
// Split out from the oracle used for reach decisions so a detector can make
// decisions with a randomized Dijkstra tiebreak while still extracting
// reasons from a plain, deterministic BFS tree.
type PathExtractor interface {
	ExtractPath(target int) (edges []core.EdgeIndex, ok bool)
}

// oraclePath is the default PathExtractor: it walks the Previous/PreviousEdge
// chain of whichever oracle it wraps.
type oraclePath struct {
	oracle reach.Oracle
}

func (p oraclePath) ExtractPath(target int) ([]core.EdgeIndex, bool) {
	if !p.oracle.Connected(target) {
		return nil, false
	}
	var edges []core.EdgeIndex
	for t := target; ; {
		parent, ok := p.oracle.Previous(t)
		if !ok {
			break
		}
		edge, ok := p.oracle.PreviousEdge(t)
		if !ok {
			break
		}
		edges = append([]core.EdgeIndex{edge}, edges...)
		t = parent
	}
	return edges, true
}
