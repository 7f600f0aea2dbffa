// SPDX-License-Identifier: MIT
// Package: dmrgraph/builder
//
// legacy.go: conversion of untyped edge representations into core.Edge.
//
// Older exports describe edges either as positional tuples
//   (dmr, gene) | (dmr, gene, label)
// or as string-keyed maps
//   {"dmr_id": .., "gene_id": .., "edge_type"|"source": .., "classification": ..}.
// These shapes are accepted here and nowhere else.

package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/dmrgraph/core"
)

// FromLegacyTuple converts a positional tuple into a tagged edge.
// The optional third field is either a source label ("closest_gene",
// "enhancer_mapping") or a classification label ("permanent",
// "false_positive", "false_negative"); unknown labels are rejected.
// A single map[string]any argument is forwarded to FromLegacyMap.
func FromLegacyTuple(fields ...any) (core.Edge, error) {
	if len(fields) == 1 {
		if m, ok := fields[0].(map[string]any); ok {
			return FromLegacyMap(m)
		}
		if s, ok := fields[0].([]any); ok {
			return FromLegacyTuple(s...)
		}
	}
	if len(fields) < 2 || len(fields) > 3 {
		return core.Edge{}, fmt.Errorf("FromLegacyTuple: %d fields: %w", len(fields), ErrLegacyTuple)
	}
	dmr, err := legacyInt(fields[0])
	if err != nil {
		return core.Edge{}, fmt.Errorf("FromLegacyTuple: dmr: %w", err)
	}
	gene, err := legacyInt(fields[1])
	if err != nil {
		return core.Edge{}, fmt.Errorf("FromLegacyTuple: gene: %w", err)
	}
	e := core.Edge{DMR: dmr, Gene: gene}
	if len(fields) == 3 {
		label, ok := fields[2].(string)
		if !ok {
			return core.Edge{}, fmt.Errorf("FromLegacyTuple: label %T: %w", fields[2], ErrLegacyTuple)
		}
		if err = applyLabel(&e, label); err != nil {
			return core.Edge{}, fmt.Errorf("FromLegacyTuple: %w", err)
		}
	}

	return e, nil
}

// FromLegacyMap converts a dict-style edge record into a tagged edge.
// "dmr_id" and "gene_id" are required; "edge_type" (or "source") and
// "classification" are optional labels.
func FromLegacyMap(m map[string]any) (core.Edge, error) {
	rawDMR, ok := m["dmr_id"]
	if !ok {
		return core.Edge{}, fmt.Errorf("FromLegacyMap: missing dmr_id: %w", ErrLegacyTuple)
	}
	rawGene, ok := m["gene_id"]
	if !ok {
		return core.Edge{}, fmt.Errorf("FromLegacyMap: missing gene_id: %w", ErrLegacyTuple)
	}
	dmr, err := legacyInt(rawDMR)
	if err != nil {
		return core.Edge{}, fmt.Errorf("FromLegacyMap: dmr_id: %w", err)
	}
	gene, err := legacyInt(rawGene)
	if err != nil {
		return core.Edge{}, fmt.Errorf("FromLegacyMap: gene_id: %w", err)
	}
	e := core.Edge{DMR: dmr, Gene: gene}
	for _, key := range []string{"edge_type", "source", "classification"} {
		v, present := m[key]
		if !present || v == nil {
			continue
		}
		label, isStr := v.(string)
		if !isStr {
			return core.Edge{}, fmt.Errorf("FromLegacyMap: %s %T: %w", key, v, ErrLegacyTuple)
		}
		if err = applyLabel(&e, label); err != nil {
			return core.Edge{}, fmt.Errorf("FromLegacyMap: %s: %w", key, err)
		}
	}

	return e, nil
}

var (
	legacySources = map[string]core.EdgeSource{
		"closest_gene":     core.SourceClosestGene,
		"closest":          core.SourceClosestGene,
		"enhancer_mapping": core.SourceEnhancer,
		"enhancer":         core.SourceEnhancer,
	}
	legacyClasses = map[string]core.EdgeClass{
		"permanent":      core.ClassPermanent,
		"false_positive": core.ClassFalsePositive,
		"false_negative": core.ClassFalseNegative,
	}
)

// applyLabel sets Source or Class on e from a legacy label.
func applyLabel(e *core.Edge, label string) error {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return nil
	}
	if s, ok := legacySources[key]; ok {
		e.Source = s
		return nil
	}
	if c, ok := legacyClasses[key]; ok {
		e.Class = c
		return nil
	}

	return fmt.Errorf("label %q: %w", label, ErrLegacyTuple)
}

// legacyInt accepts the numeric encodings found in legacy exports.
func legacyInt(v any) (int, error) {
	var n int
	switch x := v.(type) {
	case int:
		n = x
	case int32:
		n = int(x)
	case int64:
		n = int(x)
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("non-integral %v: %w", x, ErrLegacyTuple)
		}
		n = int(x)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, fmt.Errorf("%q: %w", x, ErrLegacyTuple)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("type %T: %w", v, ErrLegacyTuple)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d: %w", n, core.ErrNegativeID)
	}

	return n, nil
}
