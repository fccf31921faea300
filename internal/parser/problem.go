package parser

import "github.com/katalvlaran/theorysat/bvset"

// EdgeDecl is one parsed "edge" directive: a graph edge from->to controlled
// by the (dimacs-coded) literal Lit.
type EdgeDecl struct {
	From, To int
	Lit      int
}

// ReachDecl is one parsed "reach" directive: Lit mirrors whether Target is
// reachable from Source.
type ReachDecl struct {
	Source, Target int
	Lit            int
}

// BVDecl is one parsed "bv" directive: bvID's bits, lowest bit first, each
// a dimacs-coded literal (normally positive, but the grammar does not
// require it).
type BVDecl struct {
	ID   bvset.BVID
	Bits []int
}

// SetDecl is one parsed "subset" directive: a bvset.Set attached to BV,
// gated by Cond, containing Values.
type SetDecl struct {
	BV     bvset.BVID
	Cond   int
	Values []uint64
}

// Problem is the fully parsed input: a base CNF plus the graph and
// bitvector-set constructs layered on top of it.
type Problem struct {
	NumVars    int
	NumClauses int
	Clauses    [][]int

	GraphNodes int
	Edges      []EdgeDecl
	Reaches    []ReachDecl

	BVs  []BVDecl
	Sets []SetDecl
}
