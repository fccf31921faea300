// Package config centralizes solver-wide configuration: which mincut
// algorithm a GraphTheory should hand its detectors, which reach.Oracle
// variant to default to, a random seed, and the log level.
//
// Grounded directly on lvlath's own builder.BuilderOption/builderConfig
// pattern (builder/config.go, builder/options.go): a private solverConfig
// struct mutated by exported Option functions, applied left-to-right with
// later options overriding earlier ones.
package config

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/theorysat/mincut"
)

// ReachVariant selects a default reach.Oracle kind for detectors that don't
// request one explicitly. Mirrors theory.OracleKind without importing
// package theory, so config stays a leaf dependency.
type ReachVariant uint8

const (
	ReachConnectivity ReachVariant = iota
	ReachBFSDistance
	ReachDijkstra
)

// Option customizes a solverConfig before construction completes.
type Option func(*solverConfig)

// solverConfig holds every tunable: seed, reach variant default, mincut
// algorithm, and log level. Not safe for concurrent mutation; build one per
// solver instance via New.
type solverConfig struct {
	seed         int64
	rng          *rand.Rand
	reachVariant ReachVariant
	cutAlgorithm mincut.Algorithm
	logLevel     logrus.Level
}

// WithRandomSeed sets the RNG seed used for Dijkstra's random-weighted
// tiebreak.
func WithRandomSeed(seed int64) Option {
	return func(c *solverConfig) {
		c.seed = seed
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithReachVariant overrides the default reach.Oracle kind.
func WithReachVariant(v ReachVariant) Option {
	return func(c *solverConfig) { c.reachVariant = v }
}

// WithMinCutAlgorithm overrides the default mincut.Algorithm used by newly
// created detectors.
func WithMinCutAlgorithm(alg mincut.Algorithm) Option {
	return func(c *solverConfig) { c.cutAlgorithm = alg }
}

// WithLogLevel overrides the package-wide xlog level.
func WithLogLevel(level logrus.Level) Option {
	return func(c *solverConfig) { c.logLevel = level }
}

// Config is the read-only view of solverConfig handed to the rest of the
// module once construction is complete.
type Config struct {
	Seed         int64
	Rand         *rand.Rand
	ReachVariant ReachVariant
	CutAlgorithm mincut.Algorithm
	LogLevel     logrus.Level
}

// New applies opts in order over sensible defaults (seed 1, Connectivity,
// EdmondsKarp, info level) and returns the resolved Config.
func New(opts ...Option) Config {
	c := &solverConfig{
		seed:         1,
		rng:          rand.New(rand.NewSource(1)),
		reachVariant: ReachConnectivity,
		cutAlgorithm: mincut.EdmondsKarp{},
		logLevel:     logrus.InfoLevel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return Config{
		Seed:         c.seed,
		Rand:         c.rng,
		ReachVariant: c.reachVariant,
		CutAlgorithm: c.cutAlgorithm,
		LogLevel:     c.logLevel,
	}
}
