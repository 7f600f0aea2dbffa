// Package core provides the thread-safe, in-memory bipartite Graph that every
// other dmrgraph package reads from.
//
// The Graph G = (D ∪ S, E) has two vertex sides:
//
//   - DMR vertices (side D): one per differentially methylated region of a
//     single timepoint. IDs are 0-indexed and timepoint-local.
//   - Gene vertices (side S): IDs come from the process-wide gene registry and
//     are therefore global and stable across every timepoint graph.
//
// Edges always join a DMR to a gene. Parallel edges are collapsed on insert and
// self-loops cannot be expressed, so the graph is simple by construction.
//
// Storage is arena-style: vertices live in flat maps keyed by integer ID and
// adjacency is stored twice (dmrAdj[d][g] and geneAdj[g][d]) so that both sides
// answer neighbor queries in O(deg). No vertex or edge holds a pointer to
// another record; cross references are integer IDs only.
//
// Concurrency:
//
//	muVert    guards the DMR and gene catalogs.
//	muEdgeAdj guards both adjacency maps and the edge catalog.
//	Lock order is always muVert → muEdgeAdj.
//
// Determinism:
//
//	DMRIDs, GeneIDs, GeneNeighbors, DMRNeighbors and Edges return results sorted
//	ascending, so algorithms layered on top are reproducible run to run.
//
// Algorithms that want a uniform node space (DFS, decompositions) use Indexed,
// a compact snapshot in which DMRs occupy indices [0, NumDMR) and genes follow.
//
// Errors:
//
//	ErrNegativeID      - vertex ID below zero.
//	ErrEmptySymbol     - gene vertex without a symbol.
//	ErrVertexNotFound  - referenced DMR or gene is absent.
//	ErrEdgeNotFound    - referenced DMR–gene pair is not adjacent.
//	ErrEmptyGraph      - operation requires at least one edge.
package core
