package mincut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/theorysat/core"
	"github.com/katalvlaran/theorysat/mincut"
)

// buildS2 is a small scenario graph: nodes {0,1,2}; e0:0->1 (a), e1:1->2 (b),
// e2:0->2 (c), with a and c disabled and b enabled. The min s-t cut for
// s=0,t=2 under the disabled=1/enabled=Infinite capacity convention must be
// exactly {e0, e2}.
func buildS2(t *testing.T) (*core.Graph, [3]core.EdgeIndex) {
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
	require.NoError(t, g.EnableEdge(idx[1]))
	return g, idx
}

func capacityOf(g *core.Graph) mincut.CapacityFunc {
	return func(idx core.EdgeIndex) int64 {
		if g.EdgeEnabled(idx) {
			return mincut.Infinite
		}
		return 1
	}
}

func algorithms() map[string]mincut.Algorithm {
	return map[string]mincut.Algorithm{
		"EdmondsKarp":  mincut.EdmondsKarp{},
		"FordFulkerson": mincut.FordFulkerson{},
		"Dinic":        mincut.Dinic{},
	}
}

func TestMinCutFindsS2Cut(t *testing.T) {
	g, idx := buildS2(t)
	for name, alg := range algorithms() {
		t.Run(name, func(t *testing.T) {
			cut, ok := alg.MinCut(g, capacityOf(g), 0, 2)
			require.True(t, ok)
			require.ElementsMatch(t, []core.EdgeIndex{idx[0], idx[2]}, cut)
		})
	}
}

func TestMinCutEmptyWhenAlreadyConnected(t *testing.T) {
	g, idx := buildS2(t)
	require.NoError(t, g.EnableEdge(idx[0]))
	require.NoError(t, g.EnableEdge(idx[2]))
	for name, alg := range algorithms() {
		t.Run(name, func(t *testing.T) {
			cut, ok := alg.MinCut(g, capacityOf(g), 0, 2)
			require.True(t, ok)
			require.Empty(t, cut)
		})
	}
}

func TestMinCutRejectsSameSourceAndTarget(t *testing.T) {
	g, _ := buildS2(t)
	for name, alg := range algorithms() {
		t.Run(name, func(t *testing.T) {
			_, ok := alg.MinCut(g, capacityOf(g), 0, 0)
			require.False(t, ok)
		})
	}
}

// TestMinCutAlgorithmsAgree checks cross-algorithm agreement on a slightly
// larger graph: a diamond plus a bypass, with a mix of enabled/disabled
// edges, so the three implementations must all settle on cuts of equal
// total capacity even if the exact edge sets differ when several minimum
// cuts exist.
func TestMinCutAlgorithmsAgree(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddNode()
	}
	// 0->1, 0->2, 1->3, 2->3, 0->3 (bypass)
	pairs := [5][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {0, 3}}
	var idx [5]core.EdgeIndex
	for i, p := range pairs {
		idx[i] = core.EdgeIndex(i)
		require.NoError(t, g.AddEdge(p[0], p[1], idx[i]))
	}
	require.NoError(t, g.EnableEdge(idx[2])) // 1->3 enabled
	require.NoError(t, g.EnableEdge(idx[3])) // 2->3 enabled

	var totals []int64
	for _, alg := range algorithms() {
		cut, ok := alg.MinCut(g, capacityOf(g), 0, 3)
		require.True(t, ok)
		var total int64
		for _, e := range cut {
			if !g.EdgeEnabled(e) {
				total++
			}
		}
		totals = append(totals, total)
	}
	for _, total := range totals[1:] {
		require.Equal(t, totals[0], total)
	}
}
