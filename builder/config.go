// SPDX-License-Identifier: MIT
// Package: dmrgraph/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • buildConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuildConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • timepoint     = ""       (graph label only)
//   • strict        = false    (malformed rows are collected, not fatal)
//   • placeholders  = "", ".", "NA", "N/A", "NONE", "-"
//   • checkCoords   = true     (End < Start is malformed)

package builder

import "strings"

// Default placeholder tokens meaning "no gene".
var defaultPlaceholders = []string{"", ".", "NA", "N/A", "NONE", "-"}

// buildConfig aggregates all knobs used by BuildGraph.
// It is passed by VALUE (immutable to callers).
type buildConfig struct {
	timepoint    string
	strict       bool
	placeholders map[string]struct{}
	checkCoords  bool
}

// newBuildConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		placeholders: make(map[string]struct{}, len(defaultPlaceholders)),
		checkCoords:  true,
	}
	for _, p := range defaultPlaceholders {
		cfg.placeholders[p] = struct{}{}
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// isPlaceholder reports whether token means "no gene".
func (c buildConfig) isPlaceholder(token string) bool {
	_, ok := c.placeholders[strings.ToUpper(strings.TrimSpace(token))]

	return ok
}
