package theory_test

import (
	"github.com/katalvlaran/theorysat/lit"
	"github.com/katalvlaran/theorysat/theory"
)

// fakeCore is a minimal stand-in for the CDCL host's SatCore, just enough to
// drive GraphTheory end to end in tests: it tracks variable values/levels and
// records whatever the theory enqueues or learns, but performs no Boolean
// unit propagation or search of its own. A real SAT core is out of this
// module's scope; satbridge adapts go-air/gini for property
// tests that need genuine clause-level soundness checking instead of this.
type fakeCore struct {
	nextVar  lit.Var
	values   map[lit.Var]lit.Value
	levels   map[lit.Var]int
	curLevel int
	enqueued []enqueuedLit
	clauses  [][]lit.Lit
}

type enqueuedLit struct {
	l      lit.Lit
	marker theory.ReasonMarker
}

func newFakeCore() *fakeCore {
	return &fakeCore{values: make(map[lit.Var]lit.Value), levels: make(map[lit.Var]int)}
}

func (c *fakeCore) NewVar() lit.Var {
	v := c.nextVar
	c.nextVar++
	return v
}

func (c *fakeCore) NewReasonMarker(owner theory.Theory) theory.ReasonMarker {
	return new(int) // distinct comparable identity per call
}

func (c *fakeCore) SetTheoryVar(v lit.Var, theoryIndex, innerVar int) {}

func (c *fakeCore) Value(l lit.Lit) lit.Value {
	v := c.values[l.Var()]
	if !l.IsPos() {
		return v.Neg()
	}
	return v
}

func (c *fakeCore) Level(v lit.Var) int { return c.levels[v] }

// assign simulates the host assigning v directly (a decision or a Boolean
// unit propagation from outside this theory), at the current level.
func (c *fakeCore) assign(v lit.Var, val lit.Value) {
	c.values[v] = val
	c.levels[v] = c.curLevel
}

func (c *fakeCore) Enqueue(l lit.Lit, marker theory.ReasonMarker) error {
	val := lit.True
	if !l.IsPos() {
		val = lit.False
	}
	c.assign(l.Var(), val)
	c.enqueued = append(c.enqueued, enqueuedLit{l: l, marker: marker})
	return nil
}

func (c *fakeCore) AddClause(clause []lit.Lit) error {
	c.clauses = append(c.clauses, append([]lit.Lit(nil), clause...))
	return nil
}
