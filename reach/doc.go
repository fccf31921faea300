// Package reach implements the ReachOracle family: source-rooted
// reachability and shortest-distance algorithms over a core.Graph
// (DynamicGraph), each with its own incremental/full update policy.
//
// Three concrete variants share the Oracle capability interface and are
// selected at detector-construction time (see package detector):
//
//   - Connectivity — plain DFS/BFS reachability, adapted from lvlath's
//     bfs package; no distances, cheapest full update.
//   - BFSDistance — shortest-path-by-hop-count, also adapted from lvlath's
//     bfs package, extended to track a distance map.
//   - Dijkstra — general single-source shortest paths, adapted from
//     lvlath's dijkstra package, used whenever a weight or a weighted
//     random tiebreak is needed for decision guidance.
//
// Update policy (Connectivity and BFSDistance, see needsFullRecompute in
// policy.go): given the core.LogEntry slice accumulated since the oracle's
// own core.Cursor last advanced, if any deletion touches an edge on the
// current shortest-path tree of a currently-reachable target, the oracle
// falls back to a full recompute; otherwise it applies insertions
// incrementally. Dijkstra does not apply insertions incrementally: it
// performs a full recompute on every Update whose log is non-empty. The
// decision is recorded in UpdateStats for diagnostics only — it never
// affects the result.
package reach
