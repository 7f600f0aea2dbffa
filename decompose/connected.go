// SPDX-License-Identifier: MIT
// Package: dmrgraph/decompose
//
// connected.go: reachability classes via gonum graph/topo.

package decompose

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/dmrgraph/core"
)

// Connected partitions g into connected components.
// Isolated vertices form single-vertex components with category empty.
//
// Complexity: O(V + E) plus O(k log k) canonical sorting.
// Errors: ErrGraphNil.
func Connected(g *core.Graph) ([]Component, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return connectedIndexed(g.Indexed()), nil
}

// connectedIndexed mirrors ix into a gonum undirected graph keyed by dense
// index and collects its components.
func connectedIndexed(ix *core.Indexed) []Component {
	ug := simple.NewUndirectedGraph()
	for v := 0; v < ix.Len(); v++ {
		ug.AddNode(simple.Node(v))
	}
	for v := 0; v < ix.NumDMR; v++ {
		for _, u := range ix.Adj[v] {
			ug.SetEdge(simple.Edge{F: simple.Node(v), T: simple.Node(u)})
		}
	}

	ccs := topo.ConnectedComponents(ug)
	groups := make([]group, len(ccs))
	for i, cc := range ccs {
		members := make([]int, len(cc))
		for j, n := range cc {
			members[j] = int(n.ID())
		}
		groups[i] = group{members: members, edges: -1}
	}

	return materialize(ix, LevelConnected, groups)
}
