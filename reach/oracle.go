package reach

import (
	"github.com/katalvlaran/theorysat/core"
	"github.com/katalvlaran/theorysat/internal/xlog"
)

// Oracle is the capability set every ReachOracle variant implements.
// Distance-unaware variants (Connectivity) return ok=false from Distance.
type Oracle interface {
	// Update brings the oracle's internal state in sync with the graph's
	// current set of enabled edges. After Update returns, Connected and
	// Previous reflect the enabled-edge set exactly.
	Update()

	// Connected reports whether target t is reachable from the oracle's
	// source under the graph's current, fully-updated state.
	Connected(t int) bool

	// ConnectedUnsafe may lag behind the last Update (i.e. reflects some
	// earlier quiescent point); it exists only to let GraphTheory decide
	// whether a detector needs to re-examine t without forcing a fresh
	// Update call.
	ConnectedUnsafe(t int) bool

	// Previous returns the parent of t in the oracle's current shortest-
	// path / reachability tree, and ok=false if t is unreached or the
	// source itself.
	Previous(t int) (parent int, ok bool)

	// PreviousEdge returns the tree edge connecting Previous(t) to t, and
	// ok=false under the same conditions as Previous. Needed by detector
	// to translate a reachability tree into a sequence of edge literals.
	PreviousEdge(t int) (edge core.EdgeIndex, ok bool)

	// Distance returns the oracle's notion of distance to t (hop count for
	// BFSDistance, edge-weight sum for Dijkstra) and ok=false if the
	// variant does not track distances or t is unreached.
	Distance(t int) (dist int64, ok bool)

	// Stats returns the running fast/failed-fast/full/skipped counters
	// accumulated across every Update call, for diagnostics only.
	Stats() UpdateStats
}

// UpdateKind classifies how a single Update call refreshed an oracle.
type UpdateKind uint8

const (
	// UpdateSkipped means the change log was empty; nothing to do.
	UpdateSkipped UpdateKind = iota
	// UpdateFast means an incremental update was applied successfully.
	UpdateFast
	// UpdateFailedFast means an incremental update was attempted but a
	// deletion forced a fallback to full recompute within the same call.
	UpdateFailedFast
	// UpdateFull means a full recompute was performed, either because the
	// oracle decided deletions were unsafe to patch incrementally, or
	// because it was the oracle's first Update.
	UpdateFull
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateFast:
		return "fast"
	case UpdateFailedFast:
		return "failed-fast"
	case UpdateFull:
		return "full"
	default:
		return "skipped"
	}
}

// UpdateStats accumulates per-kind counts across every Update call an
// oracle has processed. It exists purely for the ambient observability
// stack (internal/xlog logs it at debug level); it has no effect on
// correctness and is never consulted by detector or theory logic.
type UpdateStats struct {
	Fast       int
	FailedFast int
	Full       int
	Skipped    int
}

func (s *UpdateStats) record(k UpdateKind) {
	switch k {
	case UpdateFast:
		s.Fast++
	case UpdateFailedFast:
		s.FailedFast++
	case UpdateFull:
		s.Full++
	default:
		s.Skipped++
	}
}

// base holds the fields every variant needs: the graph, source, own
// cursor into its change log, and accumulated stats.
type base struct {
	g           *core.Graph
	source      int
	cur         *core.Cursor
	stats       UpdateStats
	initialized bool
	log         *xlog.Logger
}

func newBase(name string, g *core.Graph, source int) base {
	return base{g: g, source: source, cur: g.NewCursor(), log: xlog.For("reach." + name).With("source", source)}
}

func (b *base) Stats() UpdateStats { return b.stats }

// record bumps the stats counter for kind and traces it at debug level via
// internal/xlog after every Update call.
func (b *base) record(kind UpdateKind) {
	b.stats.record(kind)
	b.log.Debugf("update kind=%v fast=%d failedFast=%d full=%d skipped=%d",
		kind, b.stats.Fast, b.stats.FailedFast, b.stats.Full, b.stats.Skipped)
}
