// Package theorysat implements a theory-aware satisfiability engine: a
// Boolean CDCL SAT core (external collaborator, not implemented by this
// module) cooperating with two theory solvers that reason about
// non-Boolean constraints over the same trail of literals.
//
// Packages:
//
//	core/      — DynamicGraph, the directed multigraph with enable/disable
//	             edges and a change log that the graph theory mutates.
//	reach/     — ReachOracle family: connectivity, BFS-distance and Dijkstra
//	             variants over a DynamicGraph, with incremental/full update
//	             policies.
//	mincut/    — MinCutOracle: pluggable s-t min-cut used to explain
//	             unreachability.
//	detector/  — ReachDetector: binds a (source, target, literal) triple to
//	             a positive/anti oracle pair and produces propagations and
//	             reasons.
//	lit/       — SAT variables, literals and ternary values.
//	theory/    — GraphTheory (with its trail and reason markers) and the
//	             SatCore/Theory interfaces it shares with BVSetTheory.
//	bvset/     — BVSetTheory: finite-set membership propagation over the
//	             shared bits of a bitvector.
//	satbridge/ — gini-backed entailment and satisfiability checks over
//	             plain clause sets, exercised only by its own tests.
//	internal/  — ambient plumbing: config, logging, the text-protocol
//	             parser.
//	cmd/theorysat/ — a minimal CLI wiring the parser to the theories.
//
// See DESIGN.md at the repository root for how each package's design is
// grounded in its reference implementation.
package theorysat
