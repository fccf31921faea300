package satbridge

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/theorysat/lit"
)

// toZ converts l to gini's z.Lit. Safe because lit.Lit and z.Lit share the
// same Var*2+polarity bit layout (see package lit's doc comment).
func toZ(l lit.Lit) z.Lit { return z.Lit(l) }

// maxVar returns the highest variable id referenced across every clause, 0
// if clauses is empty.
func maxVar(clauseSets ...[][]lit.Lit) lit.Var {
	var max lit.Var
	for _, clauses := range clauseSets {
		for _, c := range clauses {
			for _, l := range c {
				if v := l.Var(); v > max {
					max = v
				}
			}
		}
	}
	return max
}

// newSolver builds a fresh gini instance with enough variables allocated to
// cover every literal appearing in clauseSets.
func newSolver(clauseSets ...[][]lit.Lit) *gini.Gini {
	g := gini.New()
	for i := lit.Var(0); i < maxVar(clauseSets...); i++ {
		g.NewVar()
	}
	return g
}

// addClause appends one CNF clause to g, terminated per gini's Adder
// convention (Add(z.LitNull) ends the current clause).
func addClause(g *gini.Gini, clause []lit.Lit) {
	for _, l := range clause {
		g.Add(toZ(l))
	}
	g.Add(z.LitNull)
}
