package main

import (
	"fmt"

	"github.com/katalvlaran/theorysat/lit"
	"github.com/katalvlaran/theorysat/theory"
)

// stubCore is a minimal, non-learning DPLL host: unit propagation over a
// static clause set interleaved with theory propagation, chronological
// backtracking on conflict. A real CDCL core with watched literals and
// clause learning is out of scope; this exists only to drive GraphTheory
// and BVSetTheory end to end on small inputs.
type stubCore struct {
	value []lit.Value // 1-indexed by Var; value[0] unused
	level []int

	clauses [][]lit.Lit

	trail      []lit.Lit
	levelStart []int // trail length at the start of decision level i+1

	theories []theory.Theory

	nextVar lit.Var
}

func newStubCore(numVars int) *stubCore {
	return &stubCore{
		value:   make([]lit.Value, numVars+1),
		level:   make([]int, numVars+1),
		nextVar: lit.Var(numVars + 1),
	}
}

func (c *stubCore) addTheory(t theory.Theory) { c.theories = append(c.theories, t) }

func (c *stubCore) NewVar() lit.Var {
	v := c.nextVar
	c.nextVar++
	c.value = append(c.value, lit.Undef)
	c.level = append(c.level, 0)
	return v
}

// NewReasonMarker hands out a unique token per call; this host never
// inspects it beyond the identity comparisons GraphTheory/BVSetTheory
// already do internally, since it never calls BuildReason itself (no
// clause learning to drive it).
func (c *stubCore) NewReasonMarker(owner theory.Theory) theory.ReasonMarker {
	return new(struct{})
}

func (c *stubCore) SetTheoryVar(v lit.Var, theoryIndex, innerVar int) {}

func (c *stubCore) Value(l lit.Lit) lit.Value {
	v := l.Var()
	if int(v) >= len(c.value) {
		return lit.Undef
	}
	val := c.value[v]
	if !l.IsPos() {
		return val.Neg()
	}
	return val
}

func (c *stubCore) Level(v lit.Var) int { return c.level[v] }

func (c *stubCore) Enqueue(l lit.Lit, marker theory.ReasonMarker) error {
	switch c.Value(l) {
	case lit.True:
		return nil
	case lit.False:
		return fmt.Errorf("stubcore: conflicting enqueue of %s", l)
	}
	return c.assign(l)
}

func (c *stubCore) AddClause(clause []lit.Lit) error {
	c.clauses = append(c.clauses, append([]lit.Lit(nil), clause...))
	return nil
}

// assign sets l true at the current decision level and notifies every
// theory before returning.
func (c *stubCore) assign(l lit.Lit) error {
	v := l.Var()
	if l.IsPos() {
		c.value[v] = lit.True
	} else {
		c.value[v] = lit.False
	}
	c.level[v] = len(c.levelStart)
	c.trail = append(c.trail, l)
	for _, t := range c.theories {
		if err := t.EnqueueTheory(l); err != nil {
			return fmt.Errorf("stubcore: theory rejected %s: %w", l, err)
		}
	}
	return nil
}

type clauseState int

const (
	clauseSatisfied clauseState = iota
	clauseUnit
	clauseConflict
	clauseUnresolved
)

func (c *stubCore) clauseStatus(cl []lit.Lit) (clauseState, lit.Lit) {
	var unassigned lit.Lit
	count := 0
	for _, l := range cl {
		switch c.Value(l) {
		case lit.True:
			return clauseSatisfied, lit.Null
		case lit.Undef:
			count++
			unassigned = l
		}
	}
	if count == 0 {
		return clauseConflict, lit.Null
	}
	if count == 1 {
		return clauseUnit, unassigned
	}
	return clauseUnresolved, lit.Null
}

// unitPropagate runs boolean constraint propagation over the static clause
// set to a fixpoint.
func (c *stubCore) unitPropagate() ([]lit.Lit, bool) {
	for {
		progressed := false
		for _, cl := range c.clauses {
			switch status, l := c.clauseStatus(cl); status {
			case clauseConflict:
				return cl, false
			case clauseUnit:
				if err := c.assign(l); err != nil {
					return cl, false
				}
				progressed = true
			}
		}
		if !progressed {
			return nil, true
		}
	}
}

func (c *stubCore) propagateTheories() ([]lit.Lit, bool) {
	for _, t := range c.theories {
		if conflict, ok := t.PropagateTheory(); !ok {
			return conflict, false
		}
	}
	return nil, true
}

// propagateFixpoint alternates clausal and theory propagation until neither
// makes progress, or one reports a conflict.
func (c *stubCore) propagateFixpoint() ([]lit.Lit, bool) {
	for {
		before := len(c.trail)
		if conflict, ok := c.unitPropagate(); !ok {
			return conflict, false
		}
		if conflict, ok := c.propagateTheories(); !ok {
			return conflict, false
		}
		if len(c.trail) == before {
			return nil, true
		}
	}
}

func (c *stubCore) pickUnassigned() (lit.Var, bool) {
	for v := 1; v < len(c.value); v++ {
		if c.value[v] == lit.Undef {
			return lit.Var(v), true
		}
	}
	return 0, false
}

func (c *stubCore) decideFromTheories() (lit.Lit, bool) {
	for _, t := range c.theories {
		if l, ok := t.DecideTheory(); ok {
			return l, true
		}
	}
	return lit.Null, false
}

func (c *stubCore) newDecisionLevel() {
	c.levelStart = append(c.levelStart, len(c.trail))
	for _, t := range c.theories {
		t.NewDecisionLevel()
	}
}

// backtrackTo undoes every assignment made at or after decision level
// level+1, leaving exactly `level` decisions standing.
func (c *stubCore) backtrackTo(level int) {
	if level >= len(c.levelStart) {
		return
	}
	target := c.levelStart[level]
	for i := len(c.trail) - 1; i >= target; i-- {
		v := c.trail[i].Var()
		c.value[v] = lit.Undef
		c.level[v] = 0
	}
	c.trail = c.trail[:target]
	c.levelStart = c.levelStart[:level]
	for _, t := range c.theories {
		t.BacktrackUntil(level)
	}
}

type decisionFrame struct {
	l       lit.Lit
	flipped bool
}

// solve runs chronological-backtracking DPLL with theory cooperation to a
// fixpoint: true/false/err mirror SAT/UNSAT/internal-failure.
func (c *stubCore) solve() (bool, error) {
	var decisions []decisionFrame

	for {
		conflict, ok := c.propagateFixpoint()
		if !ok {
			_ = conflict // no clause learning: the conflict clause itself drives nothing further here
			for {
				if len(decisions) == 0 {
					return false, nil
				}
				last := len(decisions) - 1
				d := decisions[last]
				c.backtrackTo(last)
				decisions = decisions[:last]
				if d.flipped {
					continue
				}
				c.newDecisionLevel()
				flipped := d.l.Not()
				if err := c.assign(flipped); err != nil {
					continue
				}
				decisions = append(decisions, decisionFrame{l: flipped, flipped: true})
				break
			}
			continue
		}

		if l, ok := c.decideFromTheories(); ok {
			c.newDecisionLevel()
			if err := c.assign(l); err != nil {
				return false, err
			}
			decisions = append(decisions, decisionFrame{l: l, flipped: false})
			continue
		}

		v, ok := c.pickUnassigned()
		if !ok {
			for _, t := range c.theories {
				if !t.CheckSolved() {
					return false, fmt.Errorf("stubcore: theory reported unsolved at a full assignment")
				}
			}
			return true, nil
		}

		c.newDecisionLevel()
		l := lit.Of(v)
		if err := c.assign(l); err != nil {
			return false, err
		}
		decisions = append(decisions, decisionFrame{l: l, flipped: false})
	}
}
