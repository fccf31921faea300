package satbridge

import (
	"fmt"

	"github.com/katalvlaran/theorysat/lit"
)

// EntailedBy reports whether clause is logically entailed by base: base ⊨
// clause iff base ∧ ¬clause is unsatisfiable. This is exactly testable
// property 3: "every reason clause R returned by the
// theory is entailed by the other constraints already in the SAT core —
// i.e. adding R to a fresh SAT instance with the same edges does not
// remove any satisfying assignment" is the contrapositive statement of the
// same fact.
//
// ¬clause, a disjunction's negation, is the conjunction of each literal's
// negation, added here as one unit clause per literal.
func EntailedBy(base [][]lit.Lit, clause []lit.Lit) (bool, error) {
	g := newSolver(base, [][]lit.Lit{clause})
	for _, c := range base {
		addClause(g, c)
	}
	for _, l := range clause {
		addClause(g, []lit.Lit{l.Not()})
	}
	switch g.Solve() {
	case -1:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, fmt.Errorf("satbridge: gini returned an unknown result")
	}
}

// Satisfiable reports whether clauses has at least one satisfying
// assignment, used by tests as a sanity check that a scenario's base
// constraints aren't accidentally contradictory before asserting anything
// about a reason built on top of them.
func Satisfiable(clauses [][]lit.Lit) (bool, error) {
	g := newSolver(clauses)
	for _, c := range clauses {
		addClause(g, c)
	}
	switch g.Solve() {
	case 1:
		return true, nil
	case -1:
		return false, nil
	default:
		return false, fmt.Errorf("satbridge: gini returned an unknown result")
	}
}
