package dfs_test

import (
	"testing"

	"github.com/katalvlaran/dmrgraph/dfs"
)

// BenchmarkDFS_Path20000 measures DFS on a DMR–gene path of 40,001 vertices.
// The graph is built once; each iteration is O(V+E).
func BenchmarkDFS_Path20000(b *testing.B) {
	pairs := make([][2]int, 0, 40000)
	for i := 0; i < 20000; i++ {
		pairs = append(pairs, [2]int{i, i}, [2]int{i + 1, i})
	}
	ix := buildIndexed(b, pairs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(ix, 0)
	}
}
