// SPDX-License-Identifier: MIT
// Package: dmrgraph/analysis
//
// options.go: functional options; constructors panic on meaningless input.

package analysis

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/dmrgraph/biclique"
	"github.com/katalvlaran/dmrgraph/builder"
	"github.com/katalvlaran/dmrgraph/decompose"
	"github.com/katalvlaran/dmrgraph/domset"
)

// Option customizes Run, Analyze and RunAll.
type Option func(*config)

type config struct {
	logger    *zap.Logger
	hubSigma  float64
	workers   int
	bicliques []biclique.Option
	domsets   []domset.Option
	builders  []builder.Option
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:   zap.NewNop(),
		hubSigma: decompose.DefaultHubSigma,
		workers:  1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHubSigma sets the hub threshold in standard deviations.
// Panics if sigma is negative or NaN.
func WithHubSigma(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) {
		panic("analysis: WithHubSigma(<0)")
	}
	return func(c *config) { c.hubSigma = sigma }
}

// WithWorkers bounds the number of timepoints RunAll analyzes at once.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("analysis: WithWorkers(<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithBicliqueOptions forwards options to biclique.Enumerate.
func WithBicliqueOptions(opts ...biclique.Option) Option {
	return func(c *config) { c.bicliques = append(c.bicliques, opts...) }
}

// WithDominationOptions forwards options to domset.Solve.
func WithDominationOptions(opts ...domset.Option) Option {
	return func(c *config) { c.domsets = append(c.domsets, opts...) }
}

// WithBuilderOptions forwards options to builder.BuildGraph. The timepoint
// label is always taken from the Timepoint argument.
func WithBuilderOptions(opts ...builder.Option) Option {
	return func(c *config) { c.builders = append(c.builders, opts...) }
}
