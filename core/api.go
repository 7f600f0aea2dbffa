// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade: read-only getters, snapshots, cloning.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// Timepoint returns the label given via WithTimepoint.
func (g *Graph) Timepoint() string {
	return g.timepoint
}

// Stats produces a read-only snapshot of catalog sizes and bipartite density.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot vertex counts, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge count, then release.
//
// Both locks are never held at once here, so Stats cannot deadlock against a writer.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Timepoint: g.timepoint,
		DMRCount:  len(g.dmrs),
		GeneCount: len(g.genes),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = g.edgeCount
	g.muEdgeAdj.RUnlock()

	stats.Density = Density(stats.EdgeCount, stats.DMRCount, stats.GeneCount)

	return &stats
}

// Density returns edges / (dmrs × genes), defined as 0 when either side is empty.
func Density(edges, dmrs, genes int) float64 {
	if dmrs == 0 || genes == 0 {
		return 0
	}

	return float64(edges) / float64(dmrs*genes)
}

// Clone returns a deep copy of vertices, flags and edges (including Class).
// The copy shares no memory with g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := NewGraph(WithTimepoint(g.timepoint))

	g.muVert.RLock()
	for id, d := range g.dmrs {
		rec := *d
		out.dmrs[id] = &rec
		out.dmrAdj[id] = make(map[int]*Edge)
	}
	for id, gene := range g.genes {
		rec := *gene
		out.genes[id] = &rec
		out.geneAdj[id] = make(map[int]*Edge)
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for dID, nbrs := range g.dmrAdj {
		for gID, e := range nbrs {
			ne := *e
			out.dmrAdj[dID][gID] = &ne
			out.geneAdj[gID][dID] = &ne
		}
	}
	out.edgeCount = g.edgeCount
	g.muEdgeAdj.RUnlock()

	return out
}
