// SPDX-License-Identifier: MIT
// Package: dmrgraph/domset
//
// types.go: options, entries, summary and sentinel errors.

package domset

import "errors"

// ErrGraphNil is returned when a nil graph is passed in.
var ErrGraphNil = errors.New("domset: graph is nil")

// Option customizes Solve.
type Option func(*config)

type config struct {
	areaWeighted bool
	minimize     bool
}

func newConfig(opts ...Option) config {
	cfg := config{minimize: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithAreaWeighting multiplies utilities by 1 + max(AreaStat, 0).
func WithAreaWeighting(on bool) Option {
	return func(c *config) { c.areaWeighted = on }
}

// WithoutMinimization keeps the raw greedy selection.
func WithoutMinimization() Option {
	return func(c *config) { c.minimize = false }
}

// Entry is one selected DMR.
type Entry struct {
	DMR int

	// Dominated is the number of genes adjacent to the DMR.
	Dominated int

	// Marginal is the number of genes it newly dominated when selected.
	Marginal int

	// Utility is the heap key at selection time.
	Utility float64
}

// Summary condenses a Result.
type Summary struct {
	Size           int
	DominatedGenes int
	TotalGenes     int

	// CoverageFraction is DominatedGenes / TotalGenes, 0 without genes.
	CoverageFraction float64

	// PerDMR maps a selected DMR to its dominated gene count.
	PerDMR map[int]int
}

// Result is the dominating set of one graph.
type Result struct {
	// Entries are sorted by DMR ID.
	Entries []Entry

	// Uncovered lists genes no DMR can dominate, ascending.
	Uncovered []int

	Summary Summary
}

// DMRs returns the selected DMR IDs, ascending.
func (r *Result) DMRs() []int {
	out := make([]int, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.DMR
	}

	return out
}
