package domset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmrgraph/core"
	"github.com/katalvlaran/dmrgraph/domset"
)

// buildGraph creates a graph from (dmr, gene) pairs; stats sets AreaStat per DMR.
func buildGraph(t testing.TB, pairs [][2]int, stats map[int]float64, isolatedGenes ...int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		require.NoError(t, g.AddDMR(core.DMR{ID: p[0], AreaStat: stats[p[0]]}))
		require.NoError(t, g.AddGene(core.Gene{ID: p[1], Symbol: "G"}))
		_, err := g.AddEdge(p[0], p[1], core.SourceClosestGene)
		require.NoError(t, err)
	}
	for _, id := range isolatedGenes {
		require.NoError(t, g.AddGene(core.Gene{ID: id, Symbol: "G"}))
	}

	return g
}

var scenario = [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}}

// dominates reports whether every gene with a DMR neighbour touches sel.
func dominates(t *testing.T, g *core.Graph, sel []int) bool {
	t.Helper()
	in := make(map[int]bool, len(sel))
	for _, d := range sel {
		in[d] = true
	}
	for _, gid := range g.GeneIDs() {
		nbs, err := g.DMRNeighbors(gid)
		require.NoError(t, err)
		if len(nbs) == 0 {
			continue
		}
		ok := false
		for _, d := range nbs {
			ok = ok || in[d]
		}
		if !ok {
			return false
		}
	}

	return true
}

func TestSolve_Scenario(t *testing.T) {
	g := buildGraph(t, scenario, nil)
	res, err := domset.Solve(g)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, res.DMRs())
	assert.Equal(t, 2, res.Summary.Size)
	assert.Equal(t, 1.0, res.Summary.CoverageFraction)
	assert.Equal(t, 3, res.Summary.DominatedGenes)
	assert.Equal(t, map[int]int{1: 2, 3: 1}, res.Summary.PerDMR)
	assert.Empty(t, res.Uncovered)
	assert.True(t, dominates(t, g, res.DMRs()))
}

func TestSolve_AreaStatBreaksTies(t *testing.T) {
	g := buildGraph(t, scenario, map[int]float64{1: 1, 2: 5})
	res, err := domset.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, res.DMRs())
}

func TestSolve_AreaWeighting(t *testing.T) {
	// D0 covers three genes with a weak statistic; D1 and D2 split them
	// with strong ones.
	pairs := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 2}}
	stats := map[int]float64{0: 0.1, 1: 9, 2: 9}

	plain, err := domset.Solve(buildGraph(t, pairs, stats))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, plain.DMRs())

	weighted, err := domset.Solve(buildGraph(t, pairs, stats), domset.WithAreaWeighting(true))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, weighted.DMRs())
	assert.Equal(t, 20.0, weighted.Entries[0].Utility)
}

// TestSolve_Minimization: the greedy phase picks D0 first, then D1 and D2
// for the remaining genes, after which D0 is redundant.
func TestSolve_Minimization(t *testing.T) {
	pairs := [][2]int{
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 1}, {1, 4},
		{2, 2}, {2, 3}, {2, 5},
	}
	g := buildGraph(t, pairs, nil)

	raw, err := domset.Solve(g, domset.WithoutMinimization())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, raw.DMRs())

	res, err := domset.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.DMRs())
	assert.True(t, dominates(t, g, res.DMRs()))

	// Irredundant: removing any member breaks domination.
	sel := res.DMRs()
	for i := range sel {
		rest := append(append([]int{}, sel[:i]...), sel[i+1:]...)
		assert.False(t, dominates(t, g, rest), "drop %d", sel[i])
	}
}

func TestSolve_UncoveredGenes(t *testing.T) {
	g := buildGraph(t, scenario, nil, 7, 8)
	res, err := domset.Solve(g)
	require.NoError(t, err)

	assert.Equal(t, []int{7, 8}, res.Uncovered)
	assert.Equal(t, 3, res.Summary.DominatedGenes)
	assert.Equal(t, 5, res.Summary.TotalGenes)
	assert.InDelta(t, 0.6, res.Summary.CoverageFraction, 1e-12)
}

func TestSolve_EmptyAndNil(t *testing.T) {
	_, err := domset.Solve(nil)
	assert.ErrorIs(t, err, domset.ErrGraphNil)

	res, err := domset.Solve(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, res.Entries)
	assert.Equal(t, 0.0, res.Summary.CoverageFraction)
}
