// SPDX-License-Identifier: MIT
// Package: dmrgraph/biclique
//
// coverage.go: edge coverage partition, split genes and reconstruction.

package biclique

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dmrgraph/core"
)

// pairCounts counts, for every DMR×gene pair, the bicliques containing it.
func pairCounts(bicliques []Biclique) map[[2]int]int {
	counts := make(map[[2]int]int)
	for _, b := range bicliques {
		for _, d := range b.DMRs {
			for _, gid := range b.Genes {
				counts[[2]int{d, gid}]++
			}
		}
	}

	return counts
}

// Coverage partitions the edges of g into those inside exactly one biclique,
// inside several and inside none. Pairs of a biclique that are not edges of g
// are ignored here; they are false positives for the edge classifier.
// Complexity: O(E + Σ|B.DMRs|·|B.Genes|).
func Coverage(g *core.Graph, bicliques []Biclique) CoverageStats {
	counts := pairCounts(bicliques)
	var st CoverageStats
	for _, e := range g.Edges() {
		st.Total++
		switch counts[[2]int{e.DMR, e.Gene}] {
		case 0:
			st.Uncovered++
		case 1:
			st.Single++
		default:
			st.Multi++
		}
	}

	return st
}

// SplitGenes returns the genes occurring in more than one biclique, ascending.
func SplitGenes(bicliques []Biclique) []int {
	uses := make(map[int]int)
	for _, b := range bicliques {
		for _, gid := range b.Genes {
			uses[gid]++
		}
	}
	var out []int
	for gid, n := range uses {
		if n > 1 {
			out = append(out, gid)
		}
	}
	sort.Ints(out)

	return out
}

// ApplySplitFlags sets the Split flag on g for every split gene.
func ApplySplitFlags(g *core.Graph, bicliques []Biclique) error {
	for _, gid := range SplitGenes(bicliques) {
		if err := g.SetGeneSplit(gid, true); err != nil {
			return fmt.Errorf("ApplySplitFlags: %w", err)
		}
	}

	return nil
}

// Reconstruct returns the edge set G′ spanned by the bicliques: the union of
// their DMR×gene pairs, sorted by (DMR, Gene).
func Reconstruct(bicliques []Biclique) []core.Edge {
	counts := pairCounts(bicliques)
	out := make([]core.Edge, 0, len(counts))
	for p := range counts {
		out = append(out, core.Edge{DMR: p[0], Gene: p[1]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DMR != out[j].DMR {
			return out[i].DMR < out[j].DMR
		}
		return out[i].Gene < out[j].Gene
	})

	return out
}

// Verify checks that every DMR×gene pair of b is an edge of g.
// Returns core.ErrEdgeNotFound wrapped with the first missing pair.
func Verify(g *core.Graph, b Biclique) error {
	for _, d := range b.DMRs {
		for _, gid := range b.Genes {
			if !g.HasEdge(d, gid) {
				return fmt.Errorf("Verify: biclique %d pair %d-%d: %w", b.ID, d, gid, core.ErrEdgeNotFound)
			}
		}
	}

	return nil
}

func containsSorted(ids []int, x int) bool {
	i := sort.SearchInts(ids, x)

	return i < len(ids) && ids[i] == x
}
