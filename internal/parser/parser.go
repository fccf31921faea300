package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/theorysat/bvset"
)

// Parse reads a theorysat problem file and returns its parsed form. Parse
// is a single forward pass over r; directives may appear in any order
// after the header line, except that the header itself must be the first
// non-comment, non-blank line.
func Parse(r io.Reader) (*Problem, error) {
	p := &Problem{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	sawHeader := false
	clausesWanted := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		if !sawHeader {
			if err := parseHeader(p, fields, lineNo); err != nil {
				return nil, err
			}
			sawHeader = true
			clausesWanted = p.NumClauses
			continue
		}

		switch fields[0] {
		case "graph":
			if err := parseGraphNodes(p, fields, lineNo); err != nil {
				return nil, err
			}
		case "edge":
			if err := parseEdge(p, fields, lineNo); err != nil {
				return nil, err
			}
		case "reach":
			if err := parseReach(p, fields, lineNo); err != nil {
				return nil, err
			}
		case "bv":
			if err := parseBV(p, fields, lineNo); err != nil {
				return nil, err
			}
		case "subset":
			if err := parseSubset(p, fields, lineNo); err != nil {
				return nil, err
			}
		default:
			clause, err := parseClause(fields, lineNo)
			if err != nil {
				return nil, err
			}
			p.Clauses = append(p.Clauses, clause)
			clausesWanted--
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	_ = clausesWanted // informational only: a mismatch is not fatal, callers may pad/trim upstream
	return p, nil
}

func parseHeader(p *Problem, fields []string, line int) error {
	if len(fields) != 4 || fields[0] != "p" || fields[1] != "theorysat" {
		return syntaxErrorf(line, "expected header \"p theorysat <numVars> <numClauses>\", got %q", strings.Join(fields, " "))
	}
	nv, err := strconv.Atoi(fields[2])
	if err != nil {
		return syntaxErrorf(line, "bad numVars %q: %v", fields[2], err)
	}
	nc, err := strconv.Atoi(fields[3])
	if err != nil {
		return syntaxErrorf(line, "bad numClauses %q: %v", fields[3], err)
	}
	p.NumVars = nv
	p.NumClauses = nc
	return nil
}

func parseGraphNodes(p *Problem, fields []string, line int) error {
	if len(fields) != 3 || fields[1] != "nodes" {
		return syntaxErrorf(line, "expected \"graph nodes <n>\", got %q", strings.Join(fields, " "))
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return syntaxErrorf(line, "bad node count %q: %v", fields[2], err)
	}
	p.GraphNodes = n
	return nil
}

func parseEdge(p *Problem, fields []string, line int) error {
	if len(fields) != 4 {
		return syntaxErrorf(line, "expected \"edge <from> <to> <lit>\", got %q", strings.Join(fields, " "))
	}
	from, err1 := strconv.Atoi(fields[1])
	to, err2 := strconv.Atoi(fields[2])
	l, err3 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return syntaxErrorf(line, "bad edge fields %q", strings.Join(fields, " "))
	}
	p.Edges = append(p.Edges, EdgeDecl{From: from, To: to, Lit: l})
	return nil
}

func parseReach(p *Problem, fields []string, line int) error {
	if len(fields) != 4 {
		return syntaxErrorf(line, "expected \"reach <source> <target> <lit>\", got %q", strings.Join(fields, " "))
	}
	s, err1 := strconv.Atoi(fields[1])
	t, err2 := strconv.Atoi(fields[2])
	l, err3 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return syntaxErrorf(line, "bad reach fields %q", strings.Join(fields, " "))
	}
	p.Reaches = append(p.Reaches, ReachDecl{Source: s, Target: t, Lit: l})
	return nil
}

func parseBV(p *Problem, fields []string, line int) error {
	if len(fields) < 3 {
		return syntaxErrorf(line, "expected \"bv <bvID> <bitLit>... 0\", got %q", strings.Join(fields, " "))
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return syntaxErrorf(line, "bad bvID %q: %v", fields[1], err)
	}
	bits, err := parseTerminatedInts(fields[2:], line)
	if err != nil {
		return err
	}
	p.BVs = append(p.BVs, BVDecl{ID: bvset.BVID(id), Bits: bits})
	return nil
}

func parseSubset(p *Problem, fields []string, line int) error {
	if len(fields) < 4 {
		return syntaxErrorf(line, "expected \"subset <bvID> <condLit> <value>... 0\", got %q", strings.Join(fields, " "))
	}
	id, err1 := strconv.Atoi(fields[1])
	cond, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil {
		return syntaxErrorf(line, "bad subset header fields %q", strings.Join(fields, " "))
	}
	rawValues, err := parseTerminatedInts(fields[3:], line)
	if err != nil {
		return err
	}
	values := make([]uint64, 0, len(rawValues))
	for _, v := range rawValues {
		if v < 0 {
			return syntaxErrorf(line, "subset value %d must be non-negative", v)
		}
		values = append(values, uint64(v))
	}
	p.Sets = append(p.Sets, SetDecl{BV: bvset.BVID(id), Cond: cond, Values: values})
	return nil
}

func parseClause(fields []string, line int) ([]int, error) {
	ints, err := parseTerminatedInts(fields, line)
	if err != nil {
		return nil, err
	}
	return ints, nil
}

// parseTerminatedInts parses a variable-length, 0-terminated list of
// integers.
func parseTerminatedInts(fields []string, line int) ([]int, error) {
	var out []int
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, syntaxErrorf(line, "bad integer %q: %v", f, err)
		}
		if v == 0 {
			return out, nil
		}
		out = append(out, v)
	}
	return nil, syntaxErrorf(line, "list not terminated with 0")
}
