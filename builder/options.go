// SPDX-License-Identifier: MIT
// Package: dmrgraph/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*buildConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     BuildGraph itself never panics.

package builder

import "strings"

// Option customizes BuildGraph by mutating a buildConfig before construction.
type Option func(*buildConfig)

// WithTimepoint labels the resulting graph.
func WithTimepoint(name string) Option {
	return func(c *buildConfig) {
		c.timepoint = name
	}
}

// WithStrict makes the first malformed row abort BuildGraph with its error.
func WithStrict() Option {
	return func(c *buildConfig) {
		c.strict = true
	}
}

// WithPlaceholders adds tokens (case-insensitive) that mean "no gene".
// Panics on an empty list.
func WithPlaceholders(tokens ...string) Option {
	if len(tokens) == 0 {
		panic("builder: WithPlaceholders()")
	}
	return func(c *buildConfig) {
		for _, t := range tokens {
			c.placeholders[strings.ToUpper(strings.TrimSpace(t))] = struct{}{}
		}
	}
}

// WithoutCoordinateCheck accepts rows whose End precedes Start.
func WithoutCoordinateCheck() Option {
	return func(c *buildConfig) {
		c.checkCoords = false
	}
}
