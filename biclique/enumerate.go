// SPDX-License-Identifier: MIT
// Package: dmrgraph/biclique
//
// enumerate.go: Enumerate: components → MBEA → selection → classification.

package biclique

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dmrgraph/core"
	"github.com/katalvlaran/dmrgraph/dfs"
)

// Enumerate finds the maximal bicliques of every connected component of g,
// applies the configured selection and classifies the result.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - core.ErrEmptyGraph when g has no edges.
//   - ErrEnumerationBudgetExceeded (wrapped) with a non-nil partial Result.
//
// Determinism: component order, gene order inside MBEA and the selection rank
// depend only on graph IDs.
func Enumerate(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.EdgeCount() == 0 {
		return nil, fmt.Errorf("Enumerate: %w", core.ErrEmptyGraph)
	}
	cfg := newConfig(opts...)
	ix := g.Indexed()

	comps, err := components(ix)
	if err != nil {
		return nil, fmt.Errorf("Enumerate: %w", err)
	}

	bud := newBudget(cfg)
	var found []candidate
	for _, c := range comps {
		e := &engine{comp: c, budget: bud}
		e.run()
		found = append(found, e.out...)
		if bud.exceeded {
			break
		}
	}

	res := &Result{
		Maximal:    len(found),
		Iterations: bud.steps,
		Partial:    bud.exceeded,
	}
	res.Bicliques = selectBicliques(found, cfg)
	res.Coverage = Coverage(g, res.Bicliques)
	res.SplitGenes = SplitGenes(res.Bicliques)

	if bud.exceeded {
		return res, fmt.Errorf("Enumerate: after %d iterations: %w", bud.steps, ErrEnumerationBudgetExceeded)
	}

	return res, nil
}

// components splits ix into connected components with at least one edge and
// builds the per-gene DMR bitsets. Components appear in ascending order of
// their smallest dense index.
func components(ix *core.Indexed) ([]*component, error) {
	res, err := dfs.DFS(ix, 0, dfs.WithFullTraversal())
	if err != nil {
		return nil, err
	}

	// Label in discovery order: a parent is always labelled before its child.
	label := make([]int, ix.Len())
	count := 0
	for _, v := range res.Pre {
		if p := res.Parent[v]; p != dfs.NoParent {
			label[v] = label[p]
		} else {
			label[v] = count
			count++
		}
	}

	members := make([][]int, count)
	for v := 0; v < ix.Len(); v++ {
		members[label[v]] = append(members[label[v]], v)
	}

	out := make([]*component, 0, count)
	local := make([]int, ix.Len())
	for _, mem := range members {
		if len(mem) < 2 {
			continue
		}
		c := &component{}
		for _, v := range mem {
			if ix.IsDMR(v) {
				local[v] = len(c.dmrIDs)
				c.dmrIDs = append(c.dmrIDs, ix.Nodes[v].ID)
			} else {
				local[v] = len(c.geneIDs)
				c.geneIDs = append(c.geneIDs, ix.Nodes[v].ID)
			}
		}
		c.mask = make([]bitset, len(c.geneIDs))
		for _, v := range mem {
			if ix.IsDMR(v) {
				continue
			}
			m := newBitset(len(c.dmrIDs))
			for _, u := range ix.Adj[v] {
				m.set(local[u])
			}
			c.mask[local[v]] = m
		}
		out = append(out, c)
	}

	return out, nil
}

// compareInts orders int slices lexicographically, a proper prefix first.
func compareInts(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}

	return len(a) - len(b)
}

// selectBicliques filters, ranks and selects candidates, then numbers and
// classifies the survivors.
func selectBicliques(found []candidate, cfg config) []Biclique {
	kept := make([]candidate, 0, len(found))
	for _, c := range found {
		if len(c.dmrs) >= cfg.minDMRs && len(c.genes) >= cfg.minGenes {
			kept = append(kept, c)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		si, sj := len(kept[i].dmrs)+len(kept[i].genes), len(kept[j].dmrs)+len(kept[j].genes)
		if si != sj {
			return si > sj
		}
		if c := compareInts(kept[i].dmrs, kept[j].dmrs); c != 0 {
			return c < 0
		}
		return compareInts(kept[i].genes, kept[j].genes) < 0
	})

	var chosen []candidate
	if cfg.selection == SelectAll {
		chosen = kept
	} else {
		covered := make(map[[2]int]struct{})
		for _, c := range kept {
			fresh := false
			for _, d := range c.dmrs {
				for _, gid := range c.genes {
					if _, ok := covered[[2]int{d, gid}]; !ok {
						fresh = true
						covered[[2]int{d, gid}] = struct{}{}
					}
				}
			}
			if fresh {
				chosen = append(chosen, c)
			}
		}
	}

	out := make([]Biclique, len(chosen))
	for i, c := range chosen {
		out[i] = Biclique{
			ID:       i,
			DMRs:     c.dmrs,
			Genes:    c.genes,
			Category: Classify(len(c.dmrs), len(c.genes)),
		}
	}

	return out
}
