package reach

import "github.com/katalvlaran/theorysat/core"

// needsFullRecompute implements the update-policy rule shared by every
// ReachOracle variant: a deletion forces a
// full recompute if it removes an edge currently used by the tree to reach
// a node that is presently reachable. Insertions never force a full
// recompute — relaxation only discovers new reachability, it never
// invalidates an existing tree edge.
func needsFullRecompute(entries []core.LogEntry, parentEdge []core.EdgeIndex, hasParent []bool, reachable []bool) bool {
	for _, e := range entries {
		if e.Kind != core.LogDisable {
			continue
		}
		for v, has := range hasParent {
			if has && reachable[v] && parentEdge[v] == e.Index {
				return true
			}
		}
	}
	return false
}
