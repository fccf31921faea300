// Package parser implements a text protocol extending a DIMACS-style
// header with a CNF header/clause body plus graph and bitvector-set
// constructs consumed by cmd/theorysat to build core.Graphs, bvset.Sets,
// and detector bindings.
//
// Grounded on lvlath's own preference for hand-rolled, dependency-free
// parsing: none of the pack's graph libraries (lvlath, gokando) pull in a
// parser-combinator or lexer-generator library for their own text formats,
// so this is a small hand-written line scanner over bufio.Scanner, not a
// grammar-generated one.
//
// Grammar (one directive per line, '#' starts a line comment, blank lines
// ignored):
//
//	p theorysat <numVars> <numClauses>
//	<lit>... 0                                  -- numClauses CNF clause lines
//	graph nodes <n>
//	edge <from> <to> <lit>
//	reach <source> <target> <lit>
//	bv <bvID> <bitLit>... 0
//	subset <bvID> <condLit> <value>... 0
//
// Variables are 1-indexed; a negative literal means the negation of that
// variable; 0 terminates a variable-length list.
package parser
