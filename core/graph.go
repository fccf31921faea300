package core

import "fmt"

// AddNode appends a new node and returns its id. Node ids are dense,
// zero-based, and stable for the life of the graph.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode() int {
	id := g.nodeCount
	g.nodeCount++
	g.adj = append(g.adj, nil)

	return id
}

// NodeCount returns the number of nodes added so far.
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddEdge appends a new directed edge from -> to at the given dense index.
// The edge starts disabled. idx must equal EdgeCount() (edges are appended
// in index order, matching the contiguous SAT-variable range one layer up).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, idx EdgeIndex) error {
	if from < 0 || from >= g.nodeCount || to < 0 || to >= g.nodeCount {
		return fmt.Errorf("core: AddEdge(%d, %d): %w", from, to, ErrBadNode)
	}
	if int(idx) != len(g.edges) {
		return fmt.Errorf("core: AddEdge index %d, want %d: %w", idx, len(g.edges), ErrBadEdgeIndex)
	}
	g.edges = append(g.edges, edgeRecord{from: from, to: to, enabled: false})
	g.adj[from] = append(g.adj[from], idx)

	return nil
}

// HasEdge reports whether some enabled edge from -> to exists.
//
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	if from < 0 || from >= g.nodeCount {
		return false
	}
	for _, idx := range g.adj[from] {
		e := g.edges[idx]
		if e.enabled && e.to == to {
			return true
		}
	}
	return false
}

// EdgeEnabled reports whether edge idx is currently enabled.
//
// Complexity: O(1).
func (g *Graph) EdgeEnabled(idx EdgeIndex) bool {
	return int(idx) < len(g.edges) && g.edges[idx].enabled
}

// Endpoints returns the (from, to) pair for edge idx.
func (g *Graph) Endpoints(idx EdgeIndex) (from, to int) {
	e := g.edges[idx]
	return e.from, e.to
}

// Neighbors returns the edge indices leaving node v, enabled or not; callers
// (oracles) must skip disabled entries themselves, per the DynamicGraph
// invariant that adjacency lists may contain disabled edges.
//
// Complexity: O(1), returns the backing slice — callers must not mutate it.
func (g *Graph) Neighbors(v int) []EdgeIndex { return g.adj[v] }

// HistoryVersion returns the monotonically increasing version counter,
// incremented on every actual enable/disable transition (not on no-ops).
func (g *Graph) HistoryVersion() uint64 { return g.historyVersion }

// EnableEdge marks edge idx enabled. Idempotent: enabling an already-enabled
// edge does nothing and does not append to the change log.
func (g *Graph) EnableEdge(idx EdgeIndex) error {
	if int(idx) >= len(g.edges) {
		return fmt.Errorf("core: EnableEdge(%d): %w", idx, ErrUnknownEdge)
	}
	if g.edges[idx].enabled {
		return nil
	}
	g.edges[idx].enabled = true
	g.historyVersion++
	g.log = append(g.log, LogEntry{Index: idx, Kind: LogEnable})

	return nil
}

// DisableEdge marks edge idx disabled. Idempotent: disabling an
// already-disabled edge does nothing and does not append to the change log.
func (g *Graph) DisableEdge(idx EdgeIndex) error {
	if int(idx) >= len(g.edges) {
		return fmt.Errorf("core: DisableEdge(%d): %w", idx, ErrUnknownEdge)
	}
	if !g.edges[idx].enabled {
		return nil
	}
	g.edges[idx].enabled = false
	g.historyVersion++
	g.log = append(g.log, LogEntry{Index: idx, Kind: LogDisable})

	return nil
}

// ClearHistory truncates the change log. It must only be called once every
// registered Cursor has advanced past the current log (see Cursor.Since);
// the graph itself does not track which observers exist, the caller
// (GraphTheory) is responsible for that ordering guarantee.
//
// historyVersion is left untouched: it numbers transitions, not log slots.
func (g *Graph) ClearHistory() {
	g.log = nil
	g.epoch++
}

// Cursor is a per-observer bookmark into the change log. Each oracle owns
// exactly one Cursor and must not share it with another oracle.
type Cursor struct {
	epoch int
	pos   int
}

// NewCursor returns a Cursor positioned at the start of the graph's current
// log (i.e. as if it had observed nothing yet).
func (g *Graph) NewCursor() *Cursor {
	return &Cursor{epoch: g.epoch, pos: 0}
}

// Since returns the log entries the Cursor has not yet observed. If the
// graph's log was cleared since this Cursor last advanced (epoch mismatch),
// the full current log is returned — the log is only ever cleared after
// every observer consumed it, so a mismatch means this Cursor is being
// polled for the first time after a clear it does not need to distinguish
// from "nothing happened yet".
func (g *Graph) Since(c *Cursor) []LogEntry {
	if c.epoch != g.epoch {
		return g.log
	}
	if c.pos > len(g.log) {
		return nil
	}
	return g.log[c.pos:]
}

// Advance moves the Cursor past the log as currently observed by the
// caller. Call this once the caller has fully incorporated Since's result.
func (g *Graph) Advance(c *Cursor) {
	c.epoch = g.epoch
	c.pos = len(g.log)
}
