package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dmrgraph/core"
	"github.com/katalvlaran/dmrgraph/dfs"
)

// ExampleDFS walks a 4-cycle D0–G5–D1–G6–D0 and prints the discovery order,
// the post-order and the single back edge closing the cycle.
func ExampleDFS() {
	g := core.NewGraph()
	_ = g.AddDMR(core.DMR{ID: 0})
	_ = g.AddDMR(core.DMR{ID: 1})
	_ = g.AddGene(core.Gene{ID: 5, Symbol: "MYL7"})
	_ = g.AddGene(core.Gene{ID: 6, Symbol: "MYL4"})
	for _, p := range [][2]int{{0, 5}, {0, 6}, {1, 5}, {1, 6}} {
		_, _ = g.AddEdge(p[0], p[1], core.SourceClosestGene)
	}
	ix := g.Indexed()

	name := func(i int) string {
		n := ix.Nodes[i]
		if n.Side == core.SideDMR {
			return fmt.Sprintf("D%d", n.ID)
		}
		return fmt.Sprintf("G%d", n.ID)
	}

	res, err := dfs.DFS(ix, 0, dfs.WithOnBackEdge(func(v, a int) error {
		fmt.Println("back edge:", name(v), "->", name(a))
		return nil
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	names := func(vs []int) string {
		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = name(v)
		}
		return strings.Join(out, " ")
	}
	fmt.Println("pre: ", names(res.Pre))
	fmt.Println("post:", names(res.Order))

	// Output:
	// back edge: G6 -> D0
	// pre:  D0 G5 D1 G6
	// post: G6 D1 G5 D0
}
