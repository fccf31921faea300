// Package theory implements GraphTheory: the theory object the SAT host
// drives directly. It owns the two coupled DynamicGraph views (G+, G-), a
// registry of detector.ReachDetector instances, and the per-decision-level
// trail that lets edge-literal toggles be undone on backtrack.
//
// theory.SatCore models the interface GraphTheory consumes from the host;
// theory.Theory is the dual interface the host drives. Neither is
// implemented here except by GraphTheory — a real CDCL core is outside
// this module's scope.
package theory
