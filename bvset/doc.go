// Package bvset implements BVSetTheory: for each (bitvector, value-set,
// condition) triple, propagates "bitvector X belongs / does not belong to a
// finite set of constants" over bit literals shared with an enclosing
// bitvector theory.
//
// Unlike GraphTheory, BVSetTheory carries no mutable derived state across
// propagation rounds: every Propagate call re-derives anyValsIncluded and
// allNonEquivalentBitsSet straight from the host's current bit values, so
// NewDecisionLevel/BacktrackUntil/UndecideTheory are no-ops here. The only
// state that survives across calls is the dirty set of bvIDs touched since
// the last PropagateTheory, and the preprocessing-computed per-set
// equivalentBits/lattice data, which never changes once built.
package bvset
