package detector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/theorysat/core"
	"github.com/katalvlaran/theorysat/detector"
	"github.com/katalvlaran/theorysat/lit"
	"github.com/katalvlaran/theorysat/mincut"
	"github.com/katalvlaran/theorysat/reach"
)

// assignment is a tiny test double for the SAT host's assignment: edge
// literals a,b,c live on vars 0,1,2; the reach literal r lives on var 3.
type assignment map[lit.Var]lit.Value

func (a assignment) value(l lit.Lit) lit.Value {
	v, ok := a[l.Var()]
	if !ok {
		return lit.Undef
	}
	if !l.IsPos() {
		return v.Neg()
	}
	return v
}

// buildTriangle builds the S1/S2 scenario graph: nodes {0,1,2}; e0:0->1 (a),
// e1:1->2 (b), e2:0->2 (c); and applies vals (true/false/undef per edge) to
// a pair of positive/anti graphs consistently with G+ ("enabled iff true")
// and G- ("enabled iff not false").
func buildTriangle(t *testing.T, vals [3]lit.Value) (gPlus, gMinus *core.Graph, idx [3]core.EdgeIndex) {
	t.Helper()
	gPlus = core.NewGraph()
	gMinus = core.NewGraph()
	for _, g := range []*core.Graph{gPlus, gMinus} {
		g.AddNode()
		g.AddNode()
		g.AddNode()
	}
	pairs := [3][2]int{{0, 1}, {1, 2}, {0, 2}}
	for i, p := range pairs {
		idx[i] = core.EdgeIndex(i)
		require.NoError(t, gPlus.AddEdge(p[0], p[1], idx[i]))
		require.NoError(t, gMinus.AddEdge(p[0], p[1], idx[i]))
		if vals[i] == lit.True {
			require.NoError(t, gPlus.EnableEdge(idx[i]))
		}
		if vals[i] != lit.False {
			require.NoError(t, gMinus.EnableEdge(idx[i]))
		}
	}
	return gPlus, gMinus, idx
}

func newTriangleDetector(gPlus, gMinus *core.Graph) *detector.ReachDetector {
	oPlus := reach.NewConnectivity(gPlus, 0)
	oMinus := reach.NewConnectivity(gMinus, 0)
	d := detector.NewReachDetector(0, core.EdgeVarBase(0), oPlus, oMinus, gMinus, mincut.EdmondsKarp{})
	d.Bind(2, lit.Of(3)) // r
	return d
}

func TestS1ConsistentAssignmentPropagatesNothing(t *testing.T) {
	vals := [3]lit.Value{lit.True, lit.True, lit.False} // a=true, b=true, c=false
	gPlus, gMinus, _ := buildTriangle(t, vals)
	d := newTriangleDetector(gPlus, gMinus)

	asg := assignment{0: lit.True, 1: lit.True, 2: lit.False, 3: lit.True}
	props, conflict := d.Propagate(asg.value)
	require.Nil(t, conflict)
	require.Empty(t, props)
}

func TestS1AllEdgesFalseConflictsReasonIsCut(t *testing.T) {
	vals := [3]lit.Value{lit.False, lit.False, lit.False}
	gPlus, gMinus, idx := buildTriangle(t, vals)
	d := newTriangleDetector(gPlus, gMinus)

	asg := assignment{0: lit.False, 1: lit.False, 2: lit.False, 3: lit.True}
	_, conflict := d.Propagate(asg.value)
	require.NotNil(t, conflict)
	require.Equal(t, detector.MarkerNonReach, conflict.Marker)
	a := core.EdgeVarBase(0).Lit(idx[0])
	c := core.EdgeVarBase(0).Lit(idx[2])
	r := lit.Of(3)
	require.ElementsMatch(t, []lit.Lit{a, c, r.Not()}, conflict.Reason)
}

func TestS2NonReachCutConflict(t *testing.T) {
	vals := [3]lit.Value{lit.False, lit.Undef, lit.False} // a=false, b unassigned, c=false
	gPlus, gMinus, idx := buildTriangle(t, vals)
	d := newTriangleDetector(gPlus, gMinus)

	asg := assignment{0: lit.False, 2: lit.False, 3: lit.True}
	_, conflict := d.Propagate(asg.value)
	require.NotNil(t, conflict)
	require.Equal(t, detector.MarkerNonReach, conflict.Marker)
	a := core.EdgeVarBase(0).Lit(idx[0])
	c := core.EdgeVarBase(0).Lit(idx[2])
	r := lit.Of(3)
	require.ElementsMatch(t, []lit.Lit{a, c, r.Not()}, conflict.Reason)
}

func TestS2WithRUnassignedForcesNonReach(t *testing.T) {
	vals := [3]lit.Value{lit.False, lit.Undef, lit.False}
	gPlus, gMinus, _ := buildTriangle(t, vals)
	d := newTriangleDetector(gPlus, gMinus)

	asg := assignment{0: lit.False, 2: lit.False} // r (var 3) left unassigned
	props, conflict := d.Propagate(asg.value)
	require.Nil(t, conflict)
	require.Len(t, props, 1)
	require.Equal(t, detector.MarkerNonReach, props[0].Marker)
	require.Equal(t, lit.Of(3).Not(), props[0].Lit)
}

func TestS1ForcesReachWhenPathAllTrue(t *testing.T) {
	vals := [3]lit.Value{lit.True, lit.True, lit.False}
	gPlus, gMinus, _ := buildTriangle(t, vals)
	d := newTriangleDetector(gPlus, gMinus)

	asg := assignment{0: lit.True, 1: lit.True, 2: lit.False} // r left unassigned
	props, conflict := d.Propagate(asg.value)
	require.Nil(t, conflict)
	require.Len(t, props, 1)
	require.Equal(t, detector.MarkerReach, props[0].Marker)
	require.Equal(t, lit.Of(3), props[0].Lit)
}

func TestBuildReasonMatchesPropagateReason(t *testing.T) {
	vals := [3]lit.Value{lit.True, lit.True, lit.False}
	gPlus, gMinus, idx := buildTriangle(t, vals)
	d := newTriangleDetector(gPlus, gMinus)
	d.Propagate(assignment{0: lit.True, 1: lit.True, 2: lit.False}.value) // sync oracles

	reason, err := d.BuildReason(lit.Of(3), detector.MarkerReach)
	require.NoError(t, err)
	a := core.EdgeVarBase(0).Lit(idx[0])
	b := core.EdgeVarBase(0).Lit(idx[1])
	r := lit.Of(3)
	require.ElementsMatch(t, []lit.Lit{a.Not(), b.Not(), r}, reason)
}

// S3 — nodes {0,1}; edge e:0->1 (a); reach(0,1)=r. Unit propagating a=true
// must force r=true with marker reach.
func TestS3UnitPropagationForcesReach(t *testing.T) {
	gPlus := core.NewGraph()
	gMinus := core.NewGraph()
	gPlus.AddNode()
	gPlus.AddNode()
	gMinus.AddNode()
	gMinus.AddNode()
	require.NoError(t, gPlus.AddEdge(0, 1, 0))
	require.NoError(t, gMinus.AddEdge(0, 1, 0))
	require.NoError(t, gPlus.EnableEdge(0))
	require.NoError(t, gMinus.EnableEdge(0))

	oPlus := reach.NewConnectivity(gPlus, 0)
	oMinus := reach.NewConnectivity(gMinus, 0)
	d := detector.NewReachDetector(0, core.EdgeVarBase(0), oPlus, oMinus, gMinus, mincut.EdmondsKarp{})
	d.Bind(1, lit.Of(1)) // r on var 1

	asg := assignment{0: lit.True}
	props, conflict := d.Propagate(asg.value)
	require.Nil(t, conflict)
	require.Len(t, props, 1)
	require.Equal(t, detector.MarkerReach, props[0].Marker)
	require.Equal(t, lit.Of(1), props[0].Lit)
}

func TestDecideSuggestsUnassignedGuidanceEdge(t *testing.T) {
	vals := [3]lit.Value{lit.Undef, lit.Undef, lit.Undef}
	gPlus, gMinus, idx := buildTriangle(t, vals)
	d := newTriangleDetector(gPlus, gMinus)
	d.Propagate(assignment{}.value)

	l, ok := d.Decide(assignment{}.value)
	require.True(t, ok)
	// the anti-graph BFS tree reaches node 2 directly via edge c, so that
	// is the only guidance edge Decide can offer here.
	require.Equal(t, core.EdgeVarBase(0).Lit(idx[2]), l)
}
