// Package dfs implements an iterative depth‑first search over a core.Indexed
// arena view of a bipartite graph.
//
// What:
//
//   - DFS(ix, start, opts...): explores from one root, or every root in index
//     order with WithFullTraversal, using an explicit stack so deep chains do
//     not grow the goroutine stack.
//   - Edge events: every undirected edge is reported exactly once, either as a
//     tree edge (parent → child, before descending), a back edge (descendant →
//     ancestor, seen from the descendant) or a forward edge (ancestor → already
//     finished descendant, seen from the ancestor).
//   - Hooks: OnVisit (pre‑order), OnExit (post‑order with the parent index),
//     OnTreeEdge, OnBackEdge and OnForwardEdge; an error aborts traversal.
//   - Result: discovery numbers, parents, depths, subtree sizes and the
//     post‑order, all indexed by dense node index.
//
// Why:
//   - Low‑point based decompositions (biconnected components, bridges,
//     3‑edge‑connected classes) are written as hook sets on top of one
//     traversal instead of each carrying its own recursion.
//
// Determinism:
//
//   - Neighbors are scanned in the sorted order of ix.Adj, roots in ascending
//     index order, so every hook sequence is reproducible.
//
// Complexity:
//
//   - Time O(V+E) plus hook cost, Memory O(V).
//
// Errors:
//
//   - ErrIndexedNil           ix is nil
//   - ErrStartVertexNotFound  start index out of range (single‑source mode)
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from any hook
package dfs
