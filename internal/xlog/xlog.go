// Package xlog is the solver's leveled logging facade, wrapping
// logrus.Entry the way operator-framework-operator-lifecycle-manager and
// dolthub-go-mysql-server both standardize on sirupsen/logrus for their own
// ambient logging: lvlath and gokando, the two
// domain-adjacent repos in the pack, ship with no logging dependency at
// all, so this module adopts logrus purely for the ambient stack rather
// than carrying it over from a domain-grounded source.
//
// xlog is used only for tracing/diagnostics — reach.UpdateStats counters,
// GraphTheory's conflict/backtrack trace, BVSetTheory's propagation trace —
// never for control flow: logical conflicts are ordinary return values, not
// something a log statement substitutes for.
package xlog

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	base     *logrus.Logger
	baseOnce sync.Once
)

func root() *logrus.Logger {
	baseOnce.Do(func() {
		base = logrus.New()
		base.SetOutput(os.Stderr)
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		base.SetLevel(logrus.InfoLevel)
	})
	return base
}

// SetLevel sets the package-wide minimum log level, normally driven by
// internal/config's -log-level flag/env var.
func SetLevel(level logrus.Level) {
	root().SetLevel(level)
}

// Logger is a component-scoped entry: every call site gets one via For and
// attaches further fields (detector, target, bvID, ...) as needed.
type Logger struct {
	entry *logrus.Entry
}

// For returns a Logger tagged with the given component name, e.g.
// "reach.Connectivity", "theory.GraphTheory", "bvset.BVSetTheory".
func For(component string) *Logger {
	return &Logger{entry: root().WithField("component", component)}
}

// With returns a derived Logger with an additional field attached, e.g.
// xlog.For("theory.GraphTheory").With("detector", source).
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

func (l *Logger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }
