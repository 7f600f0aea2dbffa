// Package core: edge and adjacency methods.
//
// Adjacency is mirrored: dmrAdj[d][g] and geneAdj[g][d] point at the same
// *Edge, so a classification written through one side is visible from the other.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects DMR dmrID to gene geneID. Both vertices must already exist.
// A second insert of the same pair is a no-op and reports added=false; the
// first edge's Source is kept.
//
// Returns ErrVertexNotFound if either endpoint is missing.
// Complexity: O(1).
func (g *Graph) AddEdge(dmrID, geneID int, src EdgeSource) (bool, error) {
	g.muVert.RLock()
	_, okD := g.dmrs[dmrID]
	_, okG := g.genes[geneID]
	g.muVert.RUnlock()
	if !okD {
		return false, fmt.Errorf("AddEdge(d%d,g%d): dmr: %w", dmrID, geneID, ErrVertexNotFound)
	}
	if !okG {
		return false, fmt.Errorf("AddEdge(d%d,g%d): gene: %w", dmrID, geneID, ErrVertexNotFound)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.dmrAdj[dmrID][geneID]; exists {
		return false, nil
	}
	e := &Edge{DMR: dmrID, Gene: geneID, Source: src}
	g.dmrAdj[dmrID][geneID] = e
	g.geneAdj[geneID][dmrID] = e
	g.edgeCount++

	return true, nil
}

// HasEdge reports whether DMR dmrID is adjacent to gene geneID.
// Complexity: O(1).
func (g *Graph) HasEdge(dmrID, geneID int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.dmrAdj[dmrID][geneID]

	return ok
}

// EdgeBetween returns a copy of the edge record for the pair.
func (g *Graph) EdgeBetween(dmrID, geneID int) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.dmrAdj[dmrID][geneID]
	if !ok {
		return Edge{}, fmt.Errorf("EdgeBetween(d%d,g%d): %w", dmrID, geneID, ErrEdgeNotFound)
	}

	return *e, nil
}

// SetEdgeClass records the derived classification of an existing edge.
func (g *Graph) SetEdgeClass(dmrID, geneID int, class EdgeClass) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.dmrAdj[dmrID][geneID]
	if !ok {
		return fmt.Errorf("SetEdgeClass(d%d,g%d): %w", dmrID, geneID, ErrEdgeNotFound)
	}
	e.Class = class

	return nil
}

// GeneNeighbors returns the genes adjacent to a DMR, ascending.
// Complexity: O(d log d).
func (g *Graph) GeneNeighbors(dmrID int) ([]int, error) {
	g.muEdgeAdj.RLock()
	nbrs, ok := g.dmrAdj[dmrID]
	if !ok {
		g.muEdgeAdj.RUnlock()
		return nil, fmt.Errorf("GeneNeighbors(%d): %w", dmrID, ErrVertexNotFound)
	}
	out := make([]int, 0, len(nbrs))
	for id := range nbrs {
		out = append(out, id)
	}
	g.muEdgeAdj.RUnlock()
	sort.Ints(out)

	return out, nil
}

// DMRNeighbors returns the DMRs adjacent to a gene, ascending.
// Complexity: O(d log d).
func (g *Graph) DMRNeighbors(geneID int) ([]int, error) {
	g.muEdgeAdj.RLock()
	nbrs, ok := g.geneAdj[geneID]
	if !ok {
		g.muEdgeAdj.RUnlock()
		return nil, fmt.Errorf("DMRNeighbors(%d): %w", geneID, ErrVertexNotFound)
	}
	out := make([]int, 0, len(nbrs))
	for id := range nbrs {
		out = append(out, id)
	}
	g.muEdgeAdj.RUnlock()
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbors of the vertex on the given side.
func (g *Graph) Degree(side Side, id int) (int, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	adj := g.dmrAdj
	if side == SideGene {
		adj = g.geneAdj
	}
	nbrs, ok := adj[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%s %d): %w", side, id, ErrVertexNotFound)
	}

	return len(nbrs), nil
}

// EdgeCount returns the number of DMR–gene edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// Edges returns copies of all edges sorted by (DMR, Gene).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for _, nbrs := range g.dmrAdj {
		for _, e := range nbrs {
			out = append(out, *e)
		}
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].DMR != out[j].DMR {
			return out[i].DMR < out[j].DMR
		}
		return out[i].Gene < out[j].Gene
	})

	return out
}
