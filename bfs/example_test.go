package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dmrgraph/bfs"
	"github.com/katalvlaran/dmrgraph/core"
)

// ExampleBFS layers a small DMR–gene chain by hop distance from D0.
func ExampleBFS() {
	g := core.NewGraph()
	for _, p := range [][2]int{{0, 0}, {1, 0}, {1, 1}} {
		_ = g.AddDMR(core.DMR{ID: p[0]})
		_ = g.AddGene(core.Gene{ID: p[1], Symbol: fmt.Sprintf("G%d", p[1])})
		_, _ = g.AddEdge(p[0], p[1], core.SourceClosestGene)
	}
	ix := g.Indexed()
	start, _ := ix.Index(core.NodeRef{Side: core.SideDMR, ID: 0})

	res, err := bfs.BFS(ix, start)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	parts := make([]string, 0, len(res.Order))
	for _, v := range res.Order {
		n := ix.Nodes[v]
		parts = append(parts, fmt.Sprintf("%s%d@%d", n.Side, n.ID, res.Depth[v]))
	}
	fmt.Println(strings.Join(parts, " "))
	// Output:
	// dmr0@0 gene0@1 dmr1@2 gene1@3
}
