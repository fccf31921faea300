// Package detector implements ReachDetector: the component that binds a
// (source, target, literal) reachability assertion to a pair of ReachOracle
// instances (one over the positive graph, one over the anti-graph) and
// produces propagations and clausal reasons for GraphTheory.
//
// A detector never touches the SAT trail directly; it only ever returns
// data (literals to enqueue, reason clauses, a decision suggestion) and lets
// the caller (theory.GraphTheory) perform the actual enqueue/conflict
// reporting against the host's SatCore interface.
package detector
