// Package bfs provides breadth-first search over a core.Indexed snapshot,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start index.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: index → distance from start, -1 when unreached
//   - Parent: index → predecessor in the BFS tree, -1 for the start
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// In a bipartite graph depths alternate sides: from a DMR, odd depths are
// genes and even depths are DMRs. The export package uses this to cut hop
// neighbourhoods around a vertex.
//
// Determinism
//
//	core.Indexed lists neighbours in ascending index order, and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	ix := g.Indexed()
//	start, _ := ix.Index(core.NodeRef{Side: core.SideDMR, ID: 7})
//	res, err := bfs.BFS(ix, start, bfs.WithMaxDepth(2))
//
// Errors
//
//   - ErrIndexedNil           if the snapshot pointer is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
