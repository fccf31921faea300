package config

import (
	"strings"

	"github.com/katalvlaran/theorysat/mincut"
)

// mincutAlgorithmByName resolves THEORYSAT_MINCUT values to a concrete
// mincut.Algorithm. Unknown names return ok=false rather than erroring, per
// FromEnv's convenience-not-contract policy.
func mincutAlgorithmByName(name string) (mincut.Algorithm, bool) {
	switch strings.ToLower(name) {
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
