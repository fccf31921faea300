package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/theorysat/internal/config"
	"github.com/katalvlaran/theorysat/internal/parser"
)

func TestRun_PlainCNF_SAT(t *testing.T) {
	p := &parser.Problem{
		NumVars:    2,
		NumClauses: 2,
		Clauses:    [][]int{{1, 2}, {-1, -2}},
	}
	sat, assignment, err := run(p, config.New())
	require.NoError(t, err)
	require.True(t, sat)
	require.Len(t, assignment, 2)
}

func TestRun_GraphReach_EdgeEnabled_SAT(t *testing.T) {
	p := &parser.Problem{
		NumVars:    2,
		GraphNodes: 2,
		Edges:      []parser.EdgeDecl{{From: 0, To: 1, Lit: 1}},
		Reaches:    []parser.ReachDecl{{Source: 0, Target: 1, Lit: 2}},
	}
	sat, _, err := run(p, config.New())
	require.NoError(t, err)
	require.True(t, sat)
}

func TestRun_GraphReach_ForcedUnreachable_UNSAT(t *testing.T) {
	p := &parser.Problem{
		NumVars:    2,
		NumClauses: 2,
		Clauses:    [][]int{{-1}, {2}},
		GraphNodes: 2,
		Edges:      []parser.EdgeDecl{{From: 0, To: 1, Lit: 1}},
		Reaches:    []parser.ReachDecl{{Source: 0, Target: 1, Lit: 2}},
	}
	sat, _, err := run(p, config.New())
	require.NoError(t, err)
	require.False(t, sat)
}

func TestRun_BVSet_ForcedMembership_SAT(t *testing.T) {
	p := &parser.Problem{
		NumVars:    3,
		NumClauses: 1,
		Clauses:    [][]int{{3}},
		BVs:        []parser.BVDecl{{ID: 1, Bits: []int{1, 2}}},
		Sets:       []parser.SetDecl{{BV: 1, Cond: 3, Values: []uint64{0}}},
	}
	sat, _, err := run(p, config.New())
	require.NoError(t, err)
	require.True(t, sat)
}
