// Package analysis runs the per-timepoint pipeline over a bipartite graph:
//
//	decompose → hub flags → biclique enumeration → split flags →
//	component categories → edge classification → dominating set
//
// Run analyzes an already built graph; Analyze builds it from records first;
// RunAll analyzes many timepoints concurrently against one shared registry.
//
// Each timepoint owns its graph exclusively, so timepoints need no locking
// among themselves. Gene IDs are fixed before any parallel work starts by
// preregistering every timepoint's symbols sequentially, in input order.
//
// A graph without edges yields a Result with StatusNoAnalysis and an Err that
// wraps ErrNoAnalysis; it is not returned as an error. An enumeration that
// exhausts its budget yields StatusPartial: the remaining stages run on the
// partial biclique set.
//
// Logging goes through a *zap.Logger supplied with WithLogger; the default
// discards everything.
package analysis
