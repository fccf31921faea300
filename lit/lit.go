// Package lit defines the Var/Lit/Value encoding shared by detector and
// theory: a literal is a variable plus a polarity bit, identical in shape to
// go-air/gini's z.Lit (vendored copy at
// operator-framework-operator-lifecycle-manager/vendor/github.com/go-air/gini/z/lit.go)
// so that satbridge can translate between the two without any remapping
// table. theory.SatCore is the only place a host's own literal encoding
// would need adapting into this one.
package lit

import "fmt"

// Var identifies a Boolean variable owned by the SAT host.
type Var uint32

// Lit is Var*2 plus a polarity bit: even values are positive literals, odd
// values are their negation. This mirrors z.Lit's Dimacs2Lit encoding.
type Lit uint32

// Null is a meaningless literal, used as a zero value / sentinel.
const Null Lit = 0

// Of builds the positive literal for v.
func Of(v Var) Lit { return Lit(v) << 1 }

// Dimacs2Lit takes a 1-indexed, sign-for-negation dimacs literal (as used by
// the internal/parser text format) and returns the corresponding Lit.
func Dimacs2Lit(m int) Lit {
	if m < 0 {
		return Lit(-2*m + 1)
	}
	return Lit(2 * m)
}

// Dimacs returns the dimacs coding of m.
func (m Lit) Dimacs() int {
	if m&1 != 0 {
		return -int(m >> 1)
	}
	return int(m >> 1)
}

func (m Lit) String() string {
	return fmt.Sprintf("%d", m.Dimacs())
}

// Var returns the variable m is built on.
func (m Lit) Var() Var { return Var(m >> 1) }

// Not returns the negation of m.
func (m Lit) Not() Lit { return m ^ 1 }

// IsPos reports whether m is the positive occurrence of its variable.
func (m Lit) IsPos() bool { return m&1 == 0 }

// Value is the ternary assignment state of a literal or variable. Kept as
// its own type rather than an int sentinel so Undef can never be silently
// confused with false (spec design note: "do not conflate Undef with a
// sentinel integer").
type Value uint8

const (
	Undef Value = iota
	True
	False
)

// Neg flips True/False and leaves Undef unchanged, useful when evaluating a
// negative-polarity literal against a variable's Value.
func (v Value) Neg() Value {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return Undef
	}
}

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undef"
	}
}
