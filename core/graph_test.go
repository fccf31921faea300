package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/theorysat/core"
)

func newTriangle(t *testing.T) (*core.Graph, []core.EdgeIndex) {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddNode()
	}
	idx := make([]core.EdgeIndex, 0, 3)
	for i, pair := range [][2]int{{0, 1}, {1, 2}, {0, 2}} {
		require.NoError(t, g.AddEdge(pair[0], pair[1], core.EdgeIndex(i)))
		idx = append(idx, core.EdgeIndex(i))
	}
	return g, idx
}

func TestAddEdgeRequiresDenseIndex(t *testing.T) {
	g := core.NewGraph()
	g.AddNode()
	g.AddNode()
	require.ErrorIs(t, g.AddEdge(0, 1, 1), core.ErrBadEdgeIndex)
	require.NoError(t, g.AddEdge(0, 1, 0))
}

func TestEnableDisableIdempotentAndLogged(t *testing.T) {
	g, idx := newTriangle(t)
	require.False(t, g.EdgeEnabled(idx[0]))

	require.NoError(t, g.EnableEdge(idx[0]))
	v1 := g.HistoryVersion()
	require.True(t, g.EdgeEnabled(idx[0]))

	// Idempotent: enabling again must not bump historyVersion or log.
	require.NoError(t, g.EnableEdge(idx[0]))
	require.Equal(t, v1, g.HistoryVersion())

	c := g.NewCursor()
	entries := g.Since(c)
	require.Len(t, entries, 1)
	require.Equal(t, core.LogEnable, entries[0].Kind)
	require.Equal(t, idx[0], entries[0].Index)
}

func TestCursorTracksOnlyNewEntries(t *testing.T) {
	g, idx := newTriangle(t)
	c := g.NewCursor()
	require.NoError(t, g.EnableEdge(idx[0]))
	g.Advance(c)
	require.Empty(t, g.Since(c))

	require.NoError(t, g.EnableEdge(idx[1]))
	entries := g.Since(c)
	require.Len(t, entries, 1)
	require.Equal(t, idx[1], entries[0].Index)
}

func TestClearHistoryResetsLogNotVersion(t *testing.T) {
	g, idx := newTriangle(t)
	require.NoError(t, g.EnableEdge(idx[0]))
	v := g.HistoryVersion()
	g.ClearHistory()
	require.Empty(t, g.Since(g.NewCursor()))
	require.Equal(t, v, g.HistoryVersion())
}

func TestHasEdgeOnlyEnabled(t *testing.T) {
	g, idx := newTriangle(t)
	require.False(t, g.HasEdge(0, 1))
	require.NoError(t, g.EnableEdge(idx[0]))
	require.True(t, g.HasEdge(0, 1))
	require.NoError(t, g.DisableEdge(idx[0]))
	require.False(t, g.HasEdge(0, 1))
}

func TestNeighborsIncludesDisabledEdges(t *testing.T) {
	g, idx := newTriangle(t)
	nbrs := g.Neighbors(0)
	require.Len(t, nbrs, 2) // edges 0 and 2 both leave node 0, enabled or not
	require.Contains(t, nbrs, idx[0])
}
