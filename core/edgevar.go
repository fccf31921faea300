package core

import "github.com/katalvlaran/theorysat/lit"

// EdgeVarBase is the first SAT variable allocated to an edge literal. Edge
// literals occupy a contiguous range [base, base+M), so translating between
// a variable and its edgeIndex is O(1) arithmetic instead of a map lookup
//.
type EdgeVarBase lit.Var

// Lit returns the positive literal for edge idx under this base.
func (b EdgeVarBase) Lit(idx EdgeIndex) lit.Lit {
	return lit.Of(lit.Var(b) + lit.Var(idx))
}

// EdgeIndex recovers the edge index of variable v. Callers must ensure v
// was actually allocated from this base's range; an out-of-range v is a
// programming error, not something this method guards against.
func (b EdgeVarBase) EdgeIndex(v lit.Var) EdgeIndex {
	return EdgeIndex(v - lit.Var(b))
}
