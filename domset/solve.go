// SPDX-License-Identifier: MIT
// Package: dmrgraph/domset
//
// solve.go: lazy greedy selection and redundancy elimination.

package domset

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/dmrgraph/core"
)

// Solve computes a minimal dominating set of DMRs over the genes of g.
//
// Complexity: O((D + E) log D) for D DMRs and E edges.
// Errors: ErrGraphNil, or a wrapped core error if g changes concurrently.
// Determinism: the heap order is total (key, AreaStat, ID).
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := newConfig(opts...)

	dmrIDs := g.DMRIDs()
	geneIDs := g.GeneIDs()

	genesOf := make(map[int][]int, len(dmrIDs))
	stats := make(map[int]float64, len(dmrIDs))
	for _, id := range dmrIDs {
		nbs, err := g.GeneNeighbors(id)
		if err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
		d, err := g.DMR(id)
		if err != nil {
			return nil, fmt.Errorf("Solve: %w", err)
		}
		genesOf[id] = nbs
		stats[id] = d.AreaStat
	}

	weight := func(dmr int) float64 {
		if !cfg.areaWeighted {
			return 1
		}
		s := stats[dmr]
		if s <= 0 || math.IsNaN(s) {
			return 1
		}
		return 1 + s
	}

	dominated := make(map[int]bool, len(geneIDs))
	undominated := func(dmr int) int {
		n := 0
		for _, gid := range genesOf[dmr] {
			if !dominated[gid] {
				n++
			}
		}
		return n
	}

	// 1. Greedy with a lazy max-heap.
	pq := make(utilityPQ, 0, len(dmrIDs))
	for _, id := range dmrIDs {
		if n := len(genesOf[id]); n > 0 {
			pq = append(pq, item{dmr: id, key: float64(n) * weight(id), stat: stats[id]})
		}
	}
	heap.Init(&pq)

	var chosen []Entry
	for pq.Len() > 0 {
		top := heap.Pop(&pq).(item)
		n := undominated(top.dmr)
		if n == 0 {
			continue
		}
		key := float64(n) * weight(top.dmr)
		if key < top.key {
			top.key = key
			heap.Push(&pq, top)
			continue
		}
		for _, gid := range genesOf[top.dmr] {
			dominated[gid] = true
		}
		chosen = append(chosen, Entry{
			DMR:       top.dmr,
			Dominated: len(genesOf[top.dmr]),
			Marginal:  n,
			Utility:   key,
		})
	}

	// 2. Drop DMRs whose genes are all dominated twice.
	if cfg.minimize {
		chosen = minimize(chosen, genesOf)
	}

	sort.Slice(chosen, func(i, j int) bool { return chosen[i].DMR < chosen[j].DMR })

	res := &Result{Entries: chosen}
	for _, gid := range geneIDs {
		if !dominated[gid] {
			res.Uncovered = append(res.Uncovered, gid)
		}
	}
	res.Summary = summarize(chosen, len(geneIDs), len(geneIDs)-len(res.Uncovered))

	return res, nil
}

// minimize removes redundant DMRs in ascending marginal order.
func minimize(chosen []Entry, genesOf map[int][]int) []Entry {
	cover := make(map[int]int)
	for _, e := range chosen {
		for _, gid := range genesOf[e.DMR] {
			cover[gid]++
		}
	}

	order := make([]Entry, len(chosen))
	copy(order, chosen)
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].Marginal != order[j].Marginal {
			return order[i].Marginal < order[j].Marginal
		}
		return order[i].DMR < order[j].DMR
	})

	drop := make(map[int]bool)
	for _, e := range order {
		redundant := true
		for _, gid := range genesOf[e.DMR] {
			if cover[gid] < 2 {
				redundant = false
				break
			}
		}
		if !redundant {
			continue
		}
		drop[e.DMR] = true
		for _, gid := range genesOf[e.DMR] {
			cover[gid]--
		}
	}

	kept := chosen[:0]
	for _, e := range chosen {
		if !drop[e.DMR] {
			kept = append(kept, e)
		}
	}

	return kept
}

func summarize(entries []Entry, totalGenes, dominated int) Summary {
	s := Summary{
		Size:           len(entries),
		DominatedGenes: dominated,
		TotalGenes:     totalGenes,
		PerDMR:         make(map[int]int, len(entries)),
	}
	if totalGenes > 0 {
		s.CoverageFraction = float64(dominated) / float64(totalGenes)
	}
	for _, e := range entries {
		s.PerDMR[e.DMR] = e.Dominated
	}

	return s
}
