package biclique_test

import (
	"fmt"

	"github.com/katalvlaran/dmrgraph/biclique"
	"github.com/katalvlaran/dmrgraph/core"
)

// ExampleEnumerate finds the two bicliques of a small timepoint graph:
// D1,D2 share genes G1,G2 and D3 is the only DMR near G3.
func ExampleEnumerate() {
	g := core.NewGraph()
	for _, d := range []int{1, 2, 3} {
		_ = g.AddDMR(core.DMR{ID: d})
	}
	for id, sym := range map[int]string{1: "NPPA", 2: "NPPB", 3: "MYH6"} {
		_ = g.AddGene(core.Gene{ID: id, Symbol: sym})
	}
	for _, p := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}} {
		_, _ = g.AddEdge(p[0], p[1], core.SourceClosestGene)
	}

	res, err := biclique.Enumerate(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, b := range res.Bicliques {
		fmt.Printf("%v x %v %s\n", b.DMRs, b.Genes, b.Category)
	}
	fmt.Printf("single=%d multi=%d uncovered=%d\n",
		res.Coverage.Single, res.Coverage.Multi, res.Coverage.Uncovered)

	// Output:
	// [1 2] x [1 2] small
	// [3] x [3] trivial
	// single=5 multi=0 uncovered=0
}
