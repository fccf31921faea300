// Command theorysat reads a problem file and reports whether it is
// satisfiable, driving GraphTheory and BVSetTheory from a minimal
// non-learning DPLL host (stubCore). It exists to exercise the theories
// end to end, not as a competitive SAT solver.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/theorysat/bvset"
	"github.com/katalvlaran/theorysat/core"
	"github.com/katalvlaran/theorysat/internal/config"
	"github.com/katalvlaran/theorysat/internal/parser"
	"github.com/katalvlaran/theorysat/internal/xlog"
	"github.com/katalvlaran/theorysat/lit"
	"github.com/katalvlaran/theorysat/mincut"
	"github.com/katalvlaran/theorysat/theory"
)

var mainLog = xlog.For("cmd.theorysat")

func main() {
	problemPath := flag.String("problem", "", "path to a theorysat problem file")
	mincutName := flag.String("mincut", "", "mincut algorithm: edmonds-karp, ford-fulkerson, dinic")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	if *problemPath == "" {
		fmt.Fprintln(os.Stderr, "usage: theorysat -problem <file> [-mincut <alg>] [-log-level <level>]")
		os.Exit(2)
	}

	opts := config.FromEnv()
	if *mincutName != "" {
		if alg, ok := mincutAlgByFlag(*mincutName); ok {
			opts = append(opts, config.WithMinCutAlgorithm(alg))
		} else {
			fmt.Fprintf(os.Stderr, "theorysat: unknown -mincut %q\n", *mincutName)
			os.Exit(2)
		}
	}
	if *logLevel != "" {
		if level, err := logrus.ParseLevel(*logLevel); err == nil {
			opts = append(opts, config.WithLogLevel(level))
		}
	}
	cfg := config.New(opts...)
	xlog.SetLevel(cfg.LogLevel)

	f, err := os.Open(*problemPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "theorysat: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	problem, err := parser.Parse(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "theorysat: %v\n", err)
		os.Exit(1)
	}

	mainLog.With("path", *problemPath).Debugf("parsed %d clauses, %d edges, %d bvs", len(problem.Clauses), len(problem.Edges), len(problem.BVs))

	sat, assignment, err := run(problem, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "theorysat: %v\n", err)
		os.Exit(1)
	}
	if !sat {
		fmt.Println("UNSAT")
		return
	}
	fmt.Println("SAT")
	for _, v := range assignment {
		fmt.Println(v)
	}
}

// mincutAlgByFlag maps a -mincut flag value to a mincut.Algorithm. Kept
// local to the CLI rather than in internal/config since the flag's string
// vocabulary is a CLI concern, not a config one; FromEnv uses its own
// equivalent mapping for THEORYSAT_MINCUT.
func mincutAlgByFlag(name string) (mincut.Algorithm, bool) {
	switch name {
	case "edmonds-karp", "edmondskarp":
		return mincut.EdmondsKarp{}, true
	case "ford-fulkerson", "fordfulkerson":
		return mincut.FordFulkerson{}, true
	case "dinic":
		return mincut.Dinic{}, true
	default:
		return nil, false
	}
}

// run wires problem into a GraphTheory and a BVSetTheory over a fresh
// stubCore, solves, and returns the satisfying literal assignment in
// dimacs form when sat is true.
func run(p *parser.Problem, cfg config.Config) (sat bool, assignment []int, err error) {
	host := newStubCore(p.NumVars)

	for _, cl := range p.Clauses {
		if err := host.AddClause(dimacsClause(cl)); err != nil {
			return false, nil, err
		}
	}

	var gt *theory.GraphTheory
	if p.GraphNodes > 0 || len(p.Edges) > 0 {
		gt, err = buildGraphTheory(p, host, cfg)
		if err != nil {
			return false, nil, err
		}
		if err := gt.Preprocess(); err != nil {
			return false, nil, fmt.Errorf("theorysat: graph preprocess: %w", err)
		}
		host.addTheory(gt)
	}

	var bvt *bvset.BVSetTheory
	if len(p.BVs) > 0 {
		bvt, err = buildBVSetTheory(p, host)
		if err != nil {
			return false, nil, err
		}
		if err := bvt.Preprocess(); err != nil {
			return false, nil, fmt.Errorf("theorysat: bvset preprocess: %w", err)
		}
		host.addTheory(bvt)
	}

	ok, err := host.solve()
	if err != nil {
		return false, nil, err
	}
	if !ok {
		return false, nil, nil
	}
	return true, host.dimacsAssignment(p.NumVars), nil
}

func dimacsClause(raw []int) []lit.Lit {
	out := make([]lit.Lit, len(raw))
	for i, m := range raw {
		out[i] = lit.Dimacs2Lit(m)
	}
	return out
}

func (c *stubCore) dimacsAssignment(numVars int) []int {
	out := make([]int, 0, numVars)
	for v := 1; v <= numVars && v < len(c.value); v++ {
		switch c.value[v] {
		case lit.True:
			out = append(out, v)
		case lit.False:
			out = append(out, -v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ai, aj := out[i], out[j]
		if ai < 0 {
			ai = -ai
		}
		if aj < 0 {
			aj = -aj
		}
		return ai < aj
	})
	return out
}

func buildGraphTheory(p *parser.Problem, host *stubCore, cfg config.Config) (*theory.GraphTheory, error) {
	if len(p.Edges) == 0 {
		gt := theory.NewGraphTheory(p.GraphNodes, core.EdgeVarBase(1), host)
		gt.SetCutAlgorithm(cfg.CutAlgorithm)
		return gt, nil
	}
	base := core.EdgeVarBase(lit.Dimacs2Lit(p.Edges[0].Lit).Var())
	gt := theory.NewGraphTheory(p.GraphNodes, base, host)
	gt.SetCutAlgorithm(cfg.CutAlgorithm)
	for i, e := range p.Edges {
		want := base.Lit(core.EdgeIndex(i)).Var()
		got := lit.Dimacs2Lit(e.Lit).Var()
		if want != got {
			return nil, fmt.Errorf("theorysat: edge %d literal must be variable %d (contiguous from the first edge), got %d", i, want, got)
		}
		if _, err := gt.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("theorysat: adding edge %d: %w", i, err)
		}
	}

	bySource := make(map[int][]parser.ReachDecl)
	var sources []int
	for _, r := range p.Reaches {
		if _, seen := bySource[r.Source]; !seen {
			sources = append(sources, r.Source)
		}
		bySource[r.Source] = append(bySource[r.Source], r)
	}
	sort.Ints(sources)

	kind := oracleKind(cfg.ReachVariant)
	for _, s := range sources {
		d := gt.AddReachDetector(s, kind, nil, cfg.Rand)
		for _, r := range bySource[s] {
			d.Bind(r.Target, lit.Dimacs2Lit(r.Lit))
		}
	}
	return gt, nil
}

func oracleKind(v config.ReachVariant) theory.OracleKind {
	switch v {
	case config.ReachBFSDistance:
		return theory.OracleBFSDistance
	case config.ReachDijkstra:
		return theory.OracleDijkstra
	default:
		return theory.OracleConnectivity
	}
}

func buildBVSetTheory(p *parser.Problem, host *stubCore) (*bvset.BVSetTheory, error) {
	bvt := bvset.NewBVSetTheory(host)
	for _, decl := range p.BVs {
		bits := make([]lit.Lit, len(decl.Bits))
		for i, m := range decl.Bits {
			bits[i] = lit.Dimacs2Lit(m)
		}
		if err := bvt.DeclareBV(decl.ID, bits); err != nil {
			return nil, fmt.Errorf("theorysat: declaring bv %d: %w", decl.ID, err)
		}
	}
	for _, decl := range p.Sets {
		if _, err := bvt.AddSet(decl.BV, lit.Dimacs2Lit(decl.Cond), decl.Values); err != nil {
			return nil, fmt.Errorf("theorysat: adding set over bv %d: %w", decl.BV, err)
		}
	}
	return bvt, nil
}
