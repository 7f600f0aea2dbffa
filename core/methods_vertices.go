// Package core: vertex catalog methods.
//
// Vertex records are stored by value-copy: callers hand in a DMR/Gene value and
// receive copies back, so nothing outside the Graph can mutate a stored record
// except through the explicit flag setters below.

package core

import (
	"fmt"
	"sort"
)

// AddDMR inserts a DMR vertex. If a DMR with the same ID already exists the
// call is a no-op (first record wins).
// Returns ErrNegativeID for d.ID < 0.
// Complexity: O(1) amortized.
func (g *Graph) AddDMR(d DMR) error {
	if d.ID < 0 {
		return fmt.Errorf("AddDMR(%d): %w", d.ID, ErrNegativeID)
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.dmrs[d.ID]; exists {
		return nil
	}
	rec := d
	g.dmrs[d.ID] = &rec

	g.muEdgeAdj.Lock()
	if g.dmrAdj[d.ID] == nil {
		g.dmrAdj[d.ID] = make(map[int]*Edge)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// AddGene inserts a gene vertex. Existing IDs are a no-op.
// Returns ErrNegativeID or ErrEmptySymbol on invalid input.
// Complexity: O(1) amortized.
func (g *Graph) AddGene(gene Gene) error {
	if gene.ID < 0 {
		return fmt.Errorf("AddGene(%d): %w", gene.ID, ErrNegativeID)
	}
	if gene.Symbol == "" {
		return fmt.Errorf("AddGene(%d): %w", gene.ID, ErrEmptySymbol)
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.genes[gene.ID]; exists {
		return nil
	}
	rec := gene
	g.genes[gene.ID] = &rec

	g.muEdgeAdj.Lock()
	if g.geneAdj[gene.ID] == nil {
		g.geneAdj[gene.ID] = make(map[int]*Edge)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasDMR reports whether the DMR vertex exists.
// Complexity: O(1).
func (g *Graph) HasDMR(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.dmrs[id]

	return ok
}

// HasGene reports whether the gene vertex exists.
// Complexity: O(1).
func (g *Graph) HasGene(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.genes[id]

	return ok
}

// DMR returns a copy of the DMR record.
func (g *Graph) DMR(id int) (DMR, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	d, ok := g.dmrs[id]
	if !ok {
		return DMR{}, fmt.Errorf("DMR(%d): %w", id, ErrVertexNotFound)
	}

	return *d, nil
}

// Gene returns a copy of the gene record.
func (g *Graph) Gene(id int) (Gene, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	gene, ok := g.genes[id]
	if !ok {
		return Gene{}, fmt.Errorf("Gene(%d): %w", id, ErrVertexNotFound)
	}

	return *gene, nil
}

// DMRIDs returns all DMR IDs in ascending order.
// Complexity: O(D log D).
func (g *Graph) DMRIDs() []int {
	g.muVert.RLock()
	out := make([]int, 0, len(g.dmrs))
	for id := range g.dmrs {
		out = append(out, id)
	}
	g.muVert.RUnlock()
	sort.Ints(out)

	return out
}

// GeneIDs returns all gene IDs in ascending order.
// Complexity: O(S log S).
func (g *Graph) GeneIDs() []int {
	g.muVert.RLock()
	out := make([]int, 0, len(g.genes))
	for id := range g.genes {
		out = append(out, id)
	}
	g.muVert.RUnlock()
	sort.Ints(out)

	return out
}

// DMRCount returns the number of DMR vertices.
func (g *Graph) DMRCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.dmrs)
}

// GeneCount returns the number of gene vertices.
func (g *Graph) GeneCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.genes)
}

// SetDMRHub sets the hub annotation of a DMR.
func (g *Graph) SetDMRHub(id int, hub bool) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	d, ok := g.dmrs[id]
	if !ok {
		return fmt.Errorf("SetDMRHub(%d): %w", id, ErrVertexNotFound)
	}
	d.Hub = hub

	return nil
}

// SetGeneHub sets the hub annotation of a gene.
func (g *Graph) SetGeneHub(id int, hub bool) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	gene, ok := g.genes[id]
	if !ok {
		return fmt.Errorf("SetGeneHub(%d): %w", id, ErrVertexNotFound)
	}
	gene.Hub = hub

	return nil
}

// SetGeneSplit sets the split annotation of a gene.
func (g *Graph) SetGeneSplit(id int, split bool) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	gene, ok := g.genes[id]
	if !ok {
		return fmt.Errorf("SetGeneSplit(%d): %w", id, ErrVertexNotFound)
	}
	gene.Split = split

	return nil
}
