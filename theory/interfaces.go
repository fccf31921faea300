package theory

import "github.com/katalvlaran/theorysat/lit"

// ReasonMarker is an opaque token the host hands back on BuildReason calls.
// GraphTheory never inspects it beyond identity comparison against the
// handful of markers it registered for itself at construction time, rather
// than keeping a map from marker to an integer reason code.
type ReasonMarker any

// SatCore is the subset of the CDCL host's API a theory consumes. A real
// SAT core is out of this module's scope; this interface is the seam
// cmd/theorysat's stubCore and the fakeCore test doubles (fakecore_test.go,
// bvset's theory_test.go) implement.
type SatCore interface {
	NewVar() lit.Var
	NewReasonMarker(owner Theory) ReasonMarker
	SetTheoryVar(v lit.Var, theoryIndex, innerVar int)
	Value(l lit.Lit) lit.Value
	Level(v lit.Var) int
	Enqueue(l lit.Lit, marker ReasonMarker) error
	AddClause(clause []lit.Lit) error
}

// Theory is the dual interface the host drives. GraphTheory and BVSetTheory
// both implement it.
type Theory interface {
	EnqueueTheory(l lit.Lit) error
	PropagateTheory() (conflict []lit.Lit, ok bool)
	SolveTheory() (conflict []lit.Lit, ok bool)
	BuildReason(l lit.Lit, marker ReasonMarker) ([]lit.Lit, error)
	BacktrackUntil(level int)
	NewDecisionLevel()
	UndecideTheory(l lit.Lit)
	DecideTheory() (l lit.Lit, ok bool)
	CheckSolved() bool
	Preprocess() error
}
