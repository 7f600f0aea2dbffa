// SPDX-License-Identifier: MIT
// Package: dmrgraph/biclique
//
// options.go: functional options and the resolved enumeration config.
//
// Deterministic defaults:
//   • maxIterations = 0 (unbounded)
//   • timeLimit     = 0 (none)
//   • selection     = SelectCover
//   • minDMRs       = 1, minGenes = 1

package biclique

import "time"

// Option customizes Enumerate.
type Option func(*config)

type config struct {
	maxIterations int
	timeLimit     time.Duration
	selection     Selection
	minDMRs       int
	minGenes      int
}

func newConfig(opts ...Option) config {
	cfg := config{selection: SelectCover, minDMRs: 1, minGenes: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxIterations bounds the number of search-tree nodes; 0 means unbounded.
// Panics on n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("biclique: WithMaxIterations(<0)")
	}
	return func(c *config) { c.maxIterations = n }
}

// WithTimeLimit sets a soft wall-clock budget; 0 means none.
// Panics on d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("biclique: WithTimeLimit(<0)")
	}
	return func(c *config) { c.timeLimit = d }
}

// WithSelection chooses between cover selection and reporting every maximal
// biclique.
func WithSelection(s Selection) Option {
	if s != SelectCover && s != SelectAll {
		panic("biclique: WithSelection(unknown)")
	}
	return func(c *config) { c.selection = s }
}

// WithMinSize drops maximal bicliques with fewer than dmrs DMRs or genes
// genes before selection. Panics when either bound is < 1.
func WithMinSize(dmrs, genes int) Option {
	if dmrs < 1 || genes < 1 {
		panic("biclique: WithMinSize(<1)")
	}
	return func(c *config) { c.minDMRs, c.minGenes = dmrs, genes }
}
