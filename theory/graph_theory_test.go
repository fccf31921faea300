package theory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/theorysat/core"
	"github.com/katalvlaran/theorysat/lit"
	"github.com/katalvlaran/theorysat/theory"
)

// buildS1Theory wires up the S1/S2 triangle graph (nodes {0,1,2}; e0:0->1 (a),
// e1:1->2 (b), e2:0->2 (c)) behind a GraphTheory with a single detector
// asserting reach(0,2) bound to a fresh var r, returning the host and
// detector's literal for r.
func buildS1Theory(t *testing.T) (*fakeCore, *theory.GraphTheory, lit.Lit) {
	t.Helper()
	host := newFakeCore()
	for i := 0; i < 3; i++ {
		host.NewVar() // vars 0,1,2 reserved for edges a,b,c
	}
	gt := theory.NewGraphTheory(3, core.EdgeVarBase(0), host)
	_, err := gt.AddEdge(0, 1)
	require.NoError(t, err)
	_, err = gt.AddEdge(1, 2)
	require.NoError(t, err)
	_, err = gt.AddEdge(0, 2)
	require.NoError(t, err)
	require.NoError(t, gt.Preprocess())

	r := lit.Of(host.NewVar()) // var 3
	d := gt.AddReachDetector(0, theory.OracleConnectivity, nil, nil)
	d.Bind(2, r)
	return host, gt, r
}

func TestGraphTheoryForcesReachFromEnabledPath(t *testing.T) {
	host, gt, r := buildS1Theory(t)

	gt.NewDecisionLevel()
	host.assign(0, lit.True) // a
	require.NoError(t, gt.EnqueueTheory(lit.Of(0)))
	host.assign(1, lit.True) // b
	require.NoError(t, gt.EnqueueTheory(lit.Of(1)))

	_, ok := gt.PropagateTheory()
	require.True(t, ok)
	require.Equal(t, lit.True, host.Value(r))
	require.Len(t, host.enqueued, 1)
	require.Equal(t, r, host.enqueued[0].l)

	reason, err := gt.BuildReason(r, host.enqueued[0].marker)
	require.NoError(t, err)
	a := core.EdgeVarBase(0).Lit(0)
	b := core.EdgeVarBase(0).Lit(1)
	require.ElementsMatch(t, []lit.Lit{a.Not(), b.Not(), r}, reason)
}

func TestGraphTheoryConflictsWhenUnreachable(t *testing.T) {
	host, gt, r := buildS1Theory(t)

	gt.NewDecisionLevel()
	host.assign(0, lit.False)
	require.NoError(t, gt.EnqueueTheory(lit.Of(0).Not()))
	host.assign(1, lit.False)
	require.NoError(t, gt.EnqueueTheory(lit.Of(1).Not()))
	host.assign(2, lit.False)
	require.NoError(t, gt.EnqueueTheory(lit.Of(2).Not()))
	host.assign(r.Var(), lit.True)
	require.NoError(t, gt.EnqueueTheory(r))

	reason, ok := gt.PropagateTheory()
	require.False(t, ok)
	a := core.EdgeVarBase(0).Lit(0)
	c := core.EdgeVarBase(0).Lit(2)
	require.ElementsMatch(t, []lit.Lit{a, c, r.Not()}, reason)
}

func TestGraphTheoryBacktrackIsIdempotent(t *testing.T) {
	host, gt, r := buildS1Theory(t)

	gt.NewDecisionLevel()
	host.assign(0, lit.True)
	require.NoError(t, gt.EnqueueTheory(lit.Of(0)))
	host.assign(1, lit.True)
	require.NoError(t, gt.EnqueueTheory(lit.Of(1)))
	_, ok := gt.PropagateTheory()
	require.True(t, ok)
	require.Equal(t, lit.True, host.Value(r))

	// simulate the host's own backtrack: clear the values it assigned above
	// level 0, then ask the theory to undo its own edge-graph toggles.
	undoHostLevel := func() {
		host.values[0] = lit.Undef
		host.values[1] = lit.Undef
		host.values[r.Var()] = lit.Undef
		host.enqueued = nil
	}

	undoHostLevel()
	gt.BacktrackUntil(0)
	_, ok = gt.PropagateTheory()
	require.True(t, ok)
	require.Equal(t, lit.Undef, host.Value(r))

	// doing it again from the same state must have no further effect
	// (testable property 7: backtrack idempotence).
	gt.BacktrackUntil(0)
	_, ok = gt.PropagateTheory()
	require.True(t, ok)
	require.Equal(t, lit.Undef, host.Value(r))
}

func TestGraphTheoryS3UnitPropagationForcesReach(t *testing.T) {
	host := newFakeCore()
	host.NewVar() // var 0: edge a
	gt := theory.NewGraphTheory(2, core.EdgeVarBase(0), host)
	_, err := gt.AddEdge(0, 1)
	require.NoError(t, err)
	require.NoError(t, gt.Preprocess())

	r := lit.Of(host.NewVar()) // var 1
	d := gt.AddReachDetector(0, theory.OracleConnectivity, nil, nil)
	d.Bind(1, r)

	gt.NewDecisionLevel()
	host.assign(0, lit.True)
	require.NoError(t, gt.EnqueueTheory(lit.Of(0)))

	_, ok := gt.PropagateTheory()
	require.True(t, ok)
	require.Equal(t, lit.True, host.Value(r))
}
