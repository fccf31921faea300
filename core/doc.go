// Package core implements DynamicGraph: a directed multigraph with a fixed
// node count, an append-only edge list, and per-edge enable/disable flags.
//
// Every enable/disable transition is appended to a change log tagged with a
// monotonically increasing historyVersion. Oracles elsewhere in the module
// (package reach, package mincut) read the log since their own recorded
// cursor position and decide between an incremental and a full update.
//
// DynamicGraph itself has no notion of theory, literal, or SAT variable; it
// only tracks which of its dense edge indices are currently enabled. The
// mapping from a SAT literal to an edge index lives one layer up, in package
// theory, which is why AddEdge takes the edgeIndex as an explicit argument
// instead of generating one: the caller (GraphTheory) already owns a dense,
// contiguous numbering shared with the SAT variable range.
package core
