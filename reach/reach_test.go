package reach_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/theorysat/core"
	"github.com/katalvlaran/theorysat/reach"
)

// buildS1 builds a small scenario graph:
// nodes {0,1,2}; e0:0->1, e1:1->2, e2:0->2.
func buildS1(t *testing.T) (*core.Graph, [3]core.EdgeIndex) {
	t.Helper()
	g := core.NewGraph()
	g.AddNode()
	g.AddNode()
	g.AddNode()
	var idx [3]core.EdgeIndex
	pairs := [3][2]int{{0, 1}, {1, 2}, {0, 2}}
	for i, p := range pairs {
		idx[i] = core.EdgeIndex(i)
		require.NoError(t, g.AddEdge(p[0], p[1], idx[i]))
	}
	return g, idx
}

func TestConnectivityReachesThroughChain(t *testing.T) {
	g, idx := buildS1(t)
	o := reach.NewConnectivity(g, 0)
	o.Update()
	require.False(t, o.Connected(2))

	require.NoError(t, g.EnableEdge(idx[0]))
	require.NoError(t, g.EnableEdge(idx[1]))
	o.Update()
	require.True(t, o.Connected(1))
	require.True(t, o.Connected(2))
	p, ok := o.Previous(2)
	require.True(t, ok)
	require.Equal(t, 1, p)
}

func TestConnectivityFallsBackOnTreeEdgeDeletion(t *testing.T) {
	g, idx := buildS1(t)
	require.NoError(t, g.EnableEdge(idx[0]))
	require.NoError(t, g.EnableEdge(idx[1]))
	o := reach.NewConnectivity(g, 0)
	o.Update()
	require.True(t, o.Connected(2))

	require.NoError(t, g.DisableEdge(idx[1]))
	o.Update()
	require.False(t, o.Connected(2))
	stats := o.Stats()
	require.Equal(t, 1, stats.FailedFast)
}

func TestBFSDistanceHopCounts(t *testing.T) {
	g, idx := buildS1(t)
	require.NoError(t, g.EnableEdge(idx[0]))
	require.NoError(t, g.EnableEdge(idx[1]))
	o := reach.NewBFSDistance(g, 0)
	o.Update()
	d, ok := o.Distance(2)
	require.True(t, ok)
	require.Equal(t, int64(2), d)

	require.NoError(t, g.EnableEdge(idx[2]))
	o.Update()
	// the new direct edge 0->2 shortens the previously-settled distance.
	d2, ok := o.Distance(2)
	require.True(t, ok)
	require.Equal(t, int64(1), d2)
}

func TestDijkstraWeightedShortestPath(t *testing.T) {
	g, idx := buildS1(t)
	require.NoError(t, g.EnableEdge(idx[0]))
	require.NoError(t, g.EnableEdge(idx[1]))
	require.NoError(t, g.EnableEdge(idx[2]))
	weight := func(e core.EdgeIndex) int64 {
		if e == idx[2] {
			return 10
		}
		return 1
	}
	o := reach.NewDijkstra(g, 0, weight, nil)
	o.Update()
	d, ok := o.Distance(2)
	require.True(t, ok)
	require.Equal(t, int64(2), d) // via 0->1->2 (cost 2), cheaper than direct 0->2 (cost 10)
	p, _ := o.Previous(2)
	require.Equal(t, 1, p)
}

func TestUpdateStatsSkippedWhenLogEmpty(t *testing.T) {
	g, idx := buildS1(t)
	require.NoError(t, g.EnableEdge(idx[0]))
	o := reach.NewConnectivity(g, 0)
	o.Update()
	o.Update() // nothing changed
	require.Equal(t, 1, o.Stats().Skipped)
}
