// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmrgraph/core"
)

// buildSmall creates D0–G10, D0–G11, D1–G10.
func buildSmall(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithTimepoint("P21"))
	require.NoError(t, g.AddDMR(core.DMR{ID: 0, AreaStat: 4.5}))
	require.NoError(t, g.AddDMR(core.DMR{ID: 1, AreaStat: 1.0}))
	require.NoError(t, g.AddGene(core.Gene{ID: 10, Symbol: "GATA4"}))
	require.NoError(t, g.AddGene(core.Gene{ID: 11, Symbol: "NKX2-5"}))
	for _, p := range [][2]int{{0, 10}, {0, 11}, {1, 10}} {
		added, err := g.AddEdge(p[0], p[1], core.SourceClosestGene)
		require.NoError(t, err)
		require.True(t, added)
	}

	return g
}

func TestGraph_AddVertexValidation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddDMR(core.DMR{ID: -1}), core.ErrNegativeID)
	assert.ErrorIs(t, g.AddGene(core.Gene{ID: -3, Symbol: "X"}), core.ErrNegativeID)
	assert.ErrorIs(t, g.AddGene(core.Gene{ID: 3}), core.ErrEmptySymbol)

	// First record wins on duplicate IDs.
	require.NoError(t, g.AddDMR(core.DMR{ID: 2, AreaStat: 7}))
	require.NoError(t, g.AddDMR(core.DMR{ID: 2, AreaStat: 99}))
	d, err := g.DMR(2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, d.AreaStat)
	assert.Equal(t, 1, g.DMRCount())
}

func TestGraph_AddEdge(t *testing.T) {
	g := buildSmall(t)

	// Parallel edges collapse; the first source is kept.
	added, err := g.AddEdge(0, 10, core.SourceEnhancer)
	require.NoError(t, err)
	assert.False(t, added)
	e, err := g.EdgeBetween(0, 10)
	require.NoError(t, err)
	assert.Equal(t, core.SourceClosestGene, e.Source)
	assert.Equal(t, 3, g.EdgeCount())

	_, err = g.AddEdge(5, 10, core.SourceClosestGene)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge(0, 99, core.SourceClosestGene)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.True(t, g.HasEdge(1, 10))
	assert.False(t, g.HasEdge(1, 11))
}

func TestGraph_NeighborsAndDegree(t *testing.T) {
	g := buildSmall(t)

	genes, err := g.GeneNeighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11}, genes)

	dmrs, err := g.DMRNeighbors(10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, dmrs)

	deg, err := g.Degree(core.SideGene, 11)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	_, err = g.GeneNeighbors(42)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_EdgesSortedAndClassified(t *testing.T) {
	g := buildSmall(t)
	require.NoError(t, g.SetEdgeClass(1, 10, core.ClassFalseNegative))
	assert.ErrorIs(t, g.SetEdgeClass(1, 11, core.ClassPermanent), core.ErrEdgeNotFound)

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, core.Edge{DMR: 0, Gene: 10, Source: core.SourceClosestGene}, edges[0])
	assert.Equal(t, core.Edge{DMR: 0, Gene: 11, Source: core.SourceClosestGene}, edges[1])
	assert.Equal(t, core.ClassFalseNegative, edges[2].Class)

	// The mirror side observes the same edge record.
	e, err := g.EdgeBetween(1, 10)
	require.NoError(t, err)
	assert.Equal(t, "false_negative", e.Class.String())
}

func TestGraph_StatsAndDensity(t *testing.T) {
	g := buildSmall(t)
	st := g.Stats()
	assert.Equal(t, "P21", st.Timepoint)
	assert.Equal(t, 2, st.DMRCount)
	assert.Equal(t, 2, st.GeneCount)
	assert.Equal(t, 3, st.EdgeCount)
	assert.InDelta(t, 0.75, st.Density, 1e-12)

	assert.Equal(t, 0.0, core.Density(0, 0, 0))
	assert.Equal(t, 0.0, core.Density(0, 3, 0))
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := buildSmall(t)
	c := g.Clone()
	require.NoError(t, c.SetGeneSplit(10, true))
	require.NoError(t, c.SetEdgeClass(0, 10, core.ClassPermanent))

	orig, err := g.Gene(10)
	require.NoError(t, err)
	assert.False(t, orig.Split)
	e, err := g.EdgeBetween(0, 10)
	require.NoError(t, err)
	assert.Equal(t, core.ClassUnclassified, e.Class)
	assert.Equal(t, g.Edges()[1], c.Edges()[1])
}

func TestGraph_Indexed(t *testing.T) {
	g := buildSmall(t)
	require.NoError(t, g.AddGene(core.Gene{ID: 3, Symbol: "ISOLATED"}))
	ix := g.Indexed()

	assert.Equal(t, 5, ix.Len())
	assert.Equal(t, 2, ix.NumDMR)
	assert.Equal(t, 3, ix.EdgeCount())
	assert.Equal(t, core.NodeRef{Side: core.SideGene, ID: 3}, ix.Nodes[2])

	i10, ok := ix.Index(core.NodeRef{Side: core.SideGene, ID: 10})
	require.True(t, ok)
	assert.Equal(t, 3, i10)
	assert.Equal(t, []int{3, 4}, ix.Adj[0])
	assert.Equal(t, []int{0, 1}, ix.Adj[i10])
	assert.Empty(t, ix.Adj[2])
	assert.True(t, ix.IsDMR(1))
	assert.False(t, ix.IsDMR(2))
}
