// Package decompose partitions a per-timepoint bipartite graph into
// connected, biconnected and triconnected components, treating DMR and gene
// vertices uniformly, and tags every component after biclique enumeration.
//
// Levels:
//
//   - Connected:    reachability classes (gonum graph/topo).
//   - Biconnected:  blocks of the iterative Tarjan low-point pass; each block is
//     an edge class. Bridges and isolated vertices are kept as degenerate
//     (size ≤ 2) blocks. Articulation points and bridges are reported too.
//   - Triconnected: 3-edge-connected vertex classes computed by the
//     absorb/eject path method on one DFS; every vertex lands in exactly one
//     class and singletons are degenerate classes.
//
// All three passes run on core.Indexed through the dfs package hooks, so no
// recursion depth grows with the graph.
//
// Categories (set by Classify once bicliques are known):
//
//   - empty:       the component has no edges.
//   - simple:      at most one biclique lies inside it, or none of the rules below apply.
//   - complex:     two or more bicliques and at least one split gene among them.
//   - interesting: two or more bicliques, no split gene, at least one interesting biclique.
//
// Determinism: components of each level are sorted by their member index
// lists and numbered from 0; member IDs inside a component are ascending.
package decompose
