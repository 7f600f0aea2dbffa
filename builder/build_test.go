// SPDX-License-Identifier: MIT
// Package builder_test verifies BuildGraph, Preregister and legacy conversion.

package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmrgraph/builder"
	"github.com/katalvlaran/dmrgraph/core"
	"github.com/katalvlaran/dmrgraph/registry"
)

func TestSplitEnhancerToken(t *testing.T) {
	sym, suf := builder.SplitEnhancerToken(" NPPA/e3 ")
	assert.Equal(t, "NPPA", sym)
	assert.Equal(t, "e3", suf)

	sym, suf = builder.SplitEnhancerToken("TBX5")
	assert.Equal(t, "TBX5", sym)
	assert.Empty(t, suf)

	assert.Equal(t, "GATA4", builder.StripEnhancerSuffix("GATA4/e12"))
}

func TestBuildGraph_Basic(t *testing.T) {
	reg := registry.New()
	recs := []builder.Record{
		{DMRRawID: 0, ClosestGene: "nppa", AdditionalGenes: []string{"NPPB/e1", "NPPA/e2"}, AreaStat: 3.2},
		{DMRRawID: 1, ClosestGene: "NPPB", AreaStat: 1.1},
		{DMRRawID: 0, ClosestGene: "TBX5", AreaStat: 99},
	}
	g, rep, err := builder.BuildGraph(recs, reg, builder.WithTimepoint("P21"))
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.Equal(t, "P21", g.Timepoint())
	assert.Equal(t, 2, g.DMRCount())
	assert.Equal(t, 3, g.GeneCount())
	assert.Equal(t, 4, g.EdgeCount())

	// Case-insensitive: "nppa" and "NPPA/e2" are the same gene; the closest-gene
	// edge came first so its source is kept.
	nppa, ok := reg.Lookup("NPPA")
	require.True(t, ok)
	e, err := g.EdgeBetween(0, nppa)
	require.NoError(t, err)
	assert.Equal(t, core.SourceClosestGene, e.Source)

	nppb, _ := reg.Lookup("NPPB")
	e, err = g.EdgeBetween(0, nppb)
	require.NoError(t, err)
	assert.Equal(t, core.SourceEnhancer, e.Source)

	// First record for DMR 0 wins.
	d, err := g.DMR(0)
	require.NoError(t, err)
	assert.Equal(t, 3.2, d.AreaStat)

	assert.Equal(t, 3, rep.Rows)
	assert.Equal(t, 2, rep.DMRs)
	assert.Equal(t, 1, rep.DuplicateRows)
	assert.Equal(t, 3, rep.ClosestEdges)
	assert.Equal(t, 1, rep.EnhancerEdges)
	assert.Equal(t, 1, rep.ParallelEdges)
	assert.Empty(t, rep.Malformed)
	assert.NoError(t, rep.Err())
}

func TestBuildGraph_MalformedRowsCollected(t *testing.T) {
	reg := registry.New()
	recs := []builder.Record{
		{DMRRawID: 0, ClosestGene: "GATA4"},
		{DMRRawID: 1, ClosestGene: "NA", AdditionalGenes: []string{"."}},
		{DMRRawID: -4, ClosestGene: "GATA4"},
		{DMRRawID: 2, ClosestGene: "HAND2", Strand: "x"},
		{DMRRawID: 3, ClosestGene: "HAND2", Start: 200, End: 100},
	}
	g, rep, err := builder.BuildGraph(recs, reg)
	require.NoError(t, err)
	assert.Equal(t, 1, g.DMRCount())
	require.Len(t, rep.Malformed, 4)

	reasons := make([]string, 0, len(rep.Malformed))
	for _, m := range rep.Malformed {
		reasons = append(reasons, m.Reason)
		assert.ErrorIs(t, m, builder.ErrMalformedRow)
	}
	assert.Equal(t, []string{
		builder.ReasonNoGene, builder.ReasonNegativeID, builder.ReasonBadStrand, builder.ReasonBadInterval,
	}, reasons)
	assert.Equal(t, 2, rep.Malformed[0].Row)
	assert.ErrorIs(t, rep.Err(), builder.ErrMalformedRow)

	// Rejected rows never create genes: HAND2 was only named by bad rows.
	_, ok := reg.Lookup("HAND2")
	assert.False(t, ok)
}

func TestBuildGraph_Strict(t *testing.T) {
	recs := []builder.Record{
		{Row: 10, DMRRawID: 0, ClosestGene: "A"},
		{Row: 11, DMRRawID: 1},
	}
	g, rep, err := builder.BuildGraph(recs, registry.New(), builder.WithStrict())
	require.Error(t, err)
	assert.Nil(t, g)
	require.NotNil(t, rep)

	var mre *builder.MalformedRowError
	require.True(t, errors.As(err, &mre))
	assert.Equal(t, 11, mre.Row)
	assert.Equal(t, builder.ReasonNoGene, mre.Reason)
}

func TestBuildGraph_FrozenRegistry(t *testing.T) {
	reg := registry.New()
	_, _, err := reg.Resolve("KNOWN")
	require.NoError(t, err)
	reg.Freeze()

	recs := []builder.Record{
		{DMRRawID: 0, ClosestGene: "KNOWN", AdditionalGenes: []string{"TYPO1"}},
		{DMRRawID: 1, ClosestGene: "TYPO2"},
	}
	g, rep, err := builder.BuildGraph(recs, reg)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []string{"TYPO1", "TYPO2"}, rep.UnresolvedSymbols)
	require.Len(t, rep.Malformed, 1)
	assert.ErrorIs(t, rep.Malformed[0], registry.ErrFrozen)
}

func TestBuildGraph_CustomPlaceholdersAndCoords(t *testing.T) {
	recs := []builder.Record{
		{DMRRawID: 0, ClosestGene: "none_found", AdditionalGenes: []string{"MYH6"}, Start: 10, End: 5},
	}
	g, rep, err := builder.BuildGraph(recs, registry.New(),
		builder.WithPlaceholders("none_found"), builder.WithoutCoordinateCheck())
	require.NoError(t, err)
	assert.Empty(t, rep.Malformed)
	assert.Equal(t, 1, g.GeneCount())
	assert.Equal(t, 1, rep.EnhancerEdges)

	assert.Panics(t, func() { builder.WithPlaceholders() })
}

func TestBuildGraph_NilRegistry(t *testing.T) {
	_, _, err := builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrNilRegistry)
	_, err = builder.Preregister(nil)
	assert.ErrorIs(t, err, builder.ErrNilRegistry)
}

// TestPreregister_StableIDs shows that gene IDs depend only on the
// preregistration order, not on which timepoint is built first.
func TestPreregister_StableIDs(t *testing.T) {
	tp1 := []builder.Record{{DMRRawID: 0, ClosestGene: "B", AdditionalGenes: []string{"A/e1"}}}
	tp2 := []builder.Record{{DMRRawID: 0, ClosestGene: "C"}, {DMRRawID: 1, ClosestGene: "a"}}

	reg := registry.New()
	n, err := builder.Preregister(reg, tp1...)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = builder.Preregister(reg, tp2...)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	g2, _, err := builder.BuildGraph(tp2, reg)
	require.NoError(t, err)
	g1, _, err := builder.BuildGraph(tp1, reg)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, g1.GeneIDs())
	assert.Equal(t, []int{1, 2}, g2.GeneIDs())
	assert.Equal(t, 3, reg.Len())
}

func TestPreregisterWith_Placeholders(t *testing.T) {
	recs := []builder.Record{{DMRRawID: 0, ClosestGene: "none_found", AdditionalGenes: []string{"MYH6"}}}
	reg := registry.New()
	n, err := builder.PreregisterWith(reg, []builder.Option{builder.WithPlaceholders("none_found")}, recs...)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, ok := reg.Lookup("none_found")
	assert.False(t, ok)

	_, err = builder.PreregisterWith(nil, nil)
	assert.ErrorIs(t, err, builder.ErrNilRegistry)
}

func TestFromLegacyTuple(t *testing.T) {
	e, err := builder.FromLegacyTuple(3, 7)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{DMR: 3, Gene: 7}, e)

	e, err = builder.FromLegacyTuple(int64(3), "7", "enhancer_mapping")
	require.NoError(t, err)
	assert.Equal(t, core.SourceEnhancer, e.Source)

	e, err = builder.FromLegacyTuple([]any{float64(1), 2, "false_positive"})
	require.NoError(t, err)
	assert.Equal(t, core.ClassFalsePositive, e.Class)

	e, err = builder.FromLegacyTuple(map[string]any{
		"dmr_id": 4, "gene_id": 5, "edge_type": "closest_gene", "classification": "permanent",
	})
	require.NoError(t, err)
	assert.Equal(t, core.Edge{DMR: 4, Gene: 5, Source: core.SourceClosestGene, Class: core.ClassPermanent}, e)

	bad := [][]any{
		{1},
		{1, 2, 3, 4},
		{1.5, 2},
		{1, "x"},
		{1, 2, "weird"},
		{1, 2, 42},
		{struct{}{}, 2},
	}
	for _, b := range bad {
		_, err = builder.FromLegacyTuple(b...)
		assert.ErrorIs(t, err, builder.ErrLegacyTuple, "%v", b)
	}
	_, err = builder.FromLegacyTuple(-1, 2)
	assert.ErrorIs(t, err, core.ErrNegativeID)
	_, err = builder.FromLegacyMap(map[string]any{"dmr_id": 1})
	assert.ErrorIs(t, err, builder.ErrLegacyTuple)
}
