// Package satbridge is test-only infrastructure: a thin adapter from
// lit.Lit onto github.com/go-air/gini, used to cross-check that a reason
// clause a theory returns is actually entailed by the other constraints
// already known to the SAT core, rather than merely "probably fine".
//
// It is never imported by core, reach, mincut, detector, theory, or bvset
// themselves: those packages treat the SAT core purely through the narrow
// theory.SatCore interface, which keeps the CDCL core itself an
// out-of-scope collaborator. satbridge is this module's one concrete
// instantiation of that collaborator, grounded on
// operator-framework-operator-lifecycle-manager's own
// pkg/controller/registry/resolver/solver package, which wraps the same
// go-air/gini library behind a litMapping adapter for exactly the same
// reason: translating a domain-specific literal encoding onto gini's
// z.Lit without a remapping table, because lit.Lit's Var*2+polarity
// encoding already matches z.Lit's (see package lit's doc comment).
//
// Variable ids passed through this package must start at 1: gini, like
// lit.Lit, reserves 0 as a null sentinel (z.LitNull / lit.Null).
package satbridge
