// File: indexed.go
// Role: Non-mutating compact view of a Graph for index-based algorithms.
// Determinism:
//   - DMRs occupy [0, NumDMR) in ascending ID order, genes follow in ascending ID order.
//   - Every adjacency row is sorted ascending.
// Concurrency:
//   - Built under read locks; the returned Indexed is an independent value.

package core

// NodeRef names a vertex by side and graph ID.
type NodeRef struct {
	Side Side
	ID   int
}

// Indexed is an arena snapshot of a Graph: nodes are addressed by dense
// integer index and adjacency is an owned slice-of-slices.
type Indexed struct {
	// Nodes maps dense index → (side, graph ID).
	Nodes []NodeRef
	// Adj holds sorted neighbor indices per node.
	Adj [][]int
	// NumDMR is the count of DMR nodes; indices ≥ NumDMR are genes.
	NumDMR int

	index map[NodeRef]int
	edges int
}

// Indexed builds the compact view.
// Complexity: O(V log V + E).
func (g *Graph) Indexed() *Indexed {
	dmrIDs := g.DMRIDs()
	geneIDs := g.GeneIDs()

	n := len(dmrIDs) + len(geneIDs)
	ix := &Indexed{
		Nodes:  make([]NodeRef, 0, n),
		Adj:    make([][]int, n),
		NumDMR: len(dmrIDs),
		index:  make(map[NodeRef]int, n),
	}
	for _, id := range dmrIDs {
		ref := NodeRef{Side: SideDMR, ID: id}
		ix.index[ref] = len(ix.Nodes)
		ix.Nodes = append(ix.Nodes, ref)
	}
	for _, id := range geneIDs {
		ref := NodeRef{Side: SideGene, ID: id}
		ix.index[ref] = len(ix.Nodes)
		ix.Nodes = append(ix.Nodes, ref)
	}

	// DMR rows first: gene IDs ascending map to ascending indices, so the rows
	// stay sorted without an explicit sort.
	for i, id := range dmrIDs {
		genes, _ := g.GeneNeighbors(id)
		row := make([]int, len(genes))
		for k, gid := range genes {
			row[k] = ix.index[NodeRef{Side: SideGene, ID: gid}]
		}
		ix.Adj[i] = row
		ix.edges += len(row)
	}
	for k, id := range geneIDs {
		dmrs, _ := g.DMRNeighbors(id)
		row := make([]int, len(dmrs))
		for j, did := range dmrs {
			row[j] = ix.index[NodeRef{Side: SideDMR, ID: did}]
		}
		ix.Adj[ix.NumDMR+k] = row
	}

	return ix
}

// Len returns the number of nodes.
func (ix *Indexed) Len() int { return len(ix.Nodes) }

// EdgeCount returns the number of undirected edges.
func (ix *Indexed) EdgeCount() int { return ix.edges }

// Index returns the dense index of a vertex.
func (ix *Indexed) Index(ref NodeRef) (int, bool) {
	i, ok := ix.index[ref]

	return i, ok
}

// IsDMR reports whether dense index i is a DMR node.
func (ix *Indexed) IsDMR(i int) bool { return i < ix.NumDMR }
