package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmrgraph/core"
	"github.com/katalvlaran/dmrgraph/dfs"
)

// buildIndexed creates a graph from (dmr, gene) pairs plus isolated genes.
func buildIndexed(t testing.TB, pairs [][2]int, isolatedGenes ...int) *core.Indexed {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		require.NoError(t, g.AddDMR(core.DMR{ID: p[0]}))
		require.NoError(t, g.AddGene(core.Gene{ID: p[1], Symbol: "G"}))
		_, err := g.AddEdge(p[0], p[1], core.SourceClosestGene)
		require.NoError(t, err)
	}
	for _, id := range isolatedGenes {
		require.NoError(t, g.AddGene(core.Gene{ID: id, Symbol: "G"}))
	}

	return g.Indexed()
}

func TestDFS_NilIndexed(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrIndexedNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	ix := buildIndexed(t, [][2]int{{0, 0}})
	_, err := dfs.DFS(ix, 5)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	_, err = dfs.DFS(ix, -1)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

// Path D0–G0–D1–G1; indices D0=0, D1=1, G0=2, G1=3.
func TestDFS_PathOrdersDepthSize(t *testing.T) {
	ix := buildIndexed(t, [][2]int{{0, 0}, {1, 0}, {1, 1}})
	res, err := dfs.DFS(ix, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 1, 3}, res.Pre)
	assert.Equal(t, []int{3, 1, 2, 0}, res.Order)
	assert.Equal(t, []int{dfs.NoParent, 2, 0, 1}, res.Parent)
	assert.Equal(t, 3, res.Depth[3])
	assert.Equal(t, []int{4, 2, 3, 1}, res.Size)
	assert.Equal(t, []int{0}, res.Roots)
	assert.True(t, res.IsAncestor(2, 3))
	assert.False(t, res.IsAncestor(3, 2))
}

// Every undirected edge is reported exactly once as tree or back edge; each
// back edge is mirrored by exactly one forward edge.
func TestDFS_EdgeEvents_Cycle(t *testing.T) {
	ix := buildIndexed(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}})

	var tree, back, fwd [][2]int
	res, err := dfs.DFS(ix, 0,
		dfs.WithOnTreeEdge(func(p, c int) error { tree = append(tree, [2]int{p, c}); return nil }),
		dfs.WithOnBackEdge(func(v, a int) error { back = append(back, [2]int{v, a}); return nil }),
		dfs.WithOnForwardEdge(func(v, d int) error { fwd = append(fwd, [2]int{v, d}); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 2}, {2, 1}, {1, 3}}, tree)
	assert.Equal(t, [][2]int{{3, 0}}, back)
	assert.Equal(t, [][2]int{{0, 3}}, fwd)
	assert.Equal(t, ix.EdgeCount(), len(tree)+len(back))
	assert.Equal(t, []int{3, 1, 2, 0}, res.Order)
}

func TestDFS_OnExitParent(t *testing.T) {
	ix := buildIndexed(t, [][2]int{{0, 0}, {1, 0}})
	var exits [][2]int
	_, err := dfs.DFS(ix, 0, dfs.WithOnExit(func(v, p int) error {
		exits = append(exits, [2]int{v, p})
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}, {2, 0}, {0, dfs.NoParent}}, exits)
}

func TestDFS_FullTraversal(t *testing.T) {
	// Two components plus an isolated gene.
	ix := buildIndexed(t, [][2]int{{0, 0}, {1, 1}}, 7)
	res, err := dfs.DFS(ix, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, 2)
	assert.False(t, res.Visited(1))

	res, err = dfs.DFS(ix, -1, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Len(t, res.Order, ix.Len())
	assert.Equal(t, []int{0, 1, 4}, res.Roots)
	for v := 0; v < ix.Len(); v++ {
		assert.True(t, res.Visited(v))
	}
}

func TestDFS_MaxDepth(t *testing.T) {
	ix := buildIndexed(t, [][2]int{{0, 0}, {1, 0}, {1, 1}})
	res, err := dfs.DFS(ix, 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, res.Order)
	assert.False(t, res.Visited(1))

	assert.Panics(t, func() { dfs.WithMaxDepth(-1) })
}

// D0=0, G0=1, G1=2; the edge D0–G1 is filtered out.
func TestDFS_FilterNeighbor(t *testing.T) {
	ix := buildIndexed(t, [][2]int{{0, 0}, {0, 1}})
	res, err := dfs.DFS(ix, 0, dfs.WithFilterNeighbor(func(v, u int) bool {
		return u != 2 && v != 2
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_HookErrors(t *testing.T) {
	ix := buildIndexed(t, [][2]int{{0, 0}, {1, 0}})
	halt := errors.New("halt")

	res, err := dfs.DFS(ix, 0, dfs.WithOnExit(func(v, _ int) error {
		if v == 1 {
			return halt
		}
		return nil
	}))
	require.NotNil(t, res)
	assert.ErrorIs(t, err, halt)
	assert.ErrorContains(t, err, "OnExit hook for 1")
	assert.Empty(t, res.Order, "no post-order on hook error")

	_, err = dfs.DFS(ix, 0, dfs.WithOnVisit(func(v int) error {
		if v == 2 {
			return halt
		}
		return nil
	}))
	assert.ErrorIs(t, err, halt)

	_, err = dfs.DFS(ix, 0, dfs.WithOnTreeEdge(func(int, int) error { return halt }))
	assert.ErrorIs(t, err, halt)
}

func TestDFS_Cancellation(t *testing.T) {
	pairs := make([][2]int, 0, 2000)
	for i := 0; i < 1000; i++ {
		pairs = append(pairs, [2]int{i, i}, [2]int{i + 1, i})
	}
	ix := buildIndexed(t, pairs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := dfs.DFS(ix, 0, dfs.WithContext(ctx))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
}

// A long path must not overflow: the walker keeps its own stack.
func TestDFS_DeepPath(t *testing.T) {
	const n = 50000
	pairs := make([][2]int, 0, 2*n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]int{i, i}, [2]int{i + 1, i})
	}
	ix := buildIndexed(t, pairs)
	res, err := dfs.DFS(ix, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, ix.Len())
	assert.Equal(t, ix.Len(), res.Size[0])
}
