package config

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Environment variable names read by FromEnv.
const (
	EnvSeed     = "THEORYSAT_SEED"
	EnvLogLevel = "THEORYSAT_LOG_LEVEL"
	EnvMinCut   = "THEORYSAT_MINCUT"
)

// FromEnv builds Options from THEORYSAT_* environment variables, read once
// at call time, applied before any explicitly passed opts so callers can
// still override the environment programmatically. Malformed values are
// ignored rather than treated as fatal: environment-derived configuration
// is a convenience, not a contract the solver depends on for correctness.
func FromEnv() []Option {
	var opts []Option
	if v, ok := os.LookupEnv(EnvSeed); ok {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			opts = append(opts, WithRandomSeed(seed))
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		if level, err := logrus.ParseLevel(v); err == nil {
			opts = append(opts, WithLogLevel(level))
		}
	}
	if v, ok := os.LookupEnv(EnvMinCut); ok {
		if alg, ok := mincutAlgorithmByName(v); ok {
			opts = append(opts, WithMinCutAlgorithm(alg))
		}
	}
	return opts
}
