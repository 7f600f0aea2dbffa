// SPDX-License-Identifier: MIT
// Package: dmrgraph/decompose
//
// biconnected.go: blocks, articulation points and bridges.
//
// Tarjan's low-point method expressed as dfs hooks:
//   • tree and back edges are pushed on an edge stack;
//   • low(v) = min(pre(v), pre(a) for back edges v→a, low(c) for children c);
//   • when a child c of p finishes with low(c) ≥ pre(p), the edges above and
//     including (p,c) form one block and p separates it (unless p is a root
//     with a single child);
//   • low(c) > pre(p) additionally makes (p,c) a bridge.
// Every edge belongs to exactly one block; a vertex may belong to several.

package decompose

import (
	"sort"

	"github.com/katalvlaran/dmrgraph/core"
	"github.com/katalvlaran/dmrgraph/dfs"
)

// Blocks is the result of Biconnected.
type Blocks struct {
	Components         []Component
	ArticulationPoints []core.NodeRef
	Bridges            []core.Edge
}

// Biconnected partitions the edges of g into biconnected blocks.
// Isolated vertices and bridges are returned as degenerate blocks.
//
// Complexity: O(V + E).
// Errors: ErrGraphNil.
func Biconnected(g *core.Graph) (*Blocks, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return biconnectedIndexed(g.Indexed())
}

func biconnectedIndexed(ix *core.Indexed) (*Blocks, error) {
	n := ix.Len()
	pre := make([]int, n)
	low := make([]int, n)
	children := make([]int, n)
	parent := make([]int, n)
	cut := make([]bool, n)
	counter := 0

	var (
		stack   [][2]int
		groups  []group
		bridges [][2]int
	)

	seenAt := make([]int, n) // block stamp per vertex while collecting
	for i := range seenAt {
		seenAt[i], parent[i] = -1, dfs.NoParent
	}

	popBlock := func(p, c int) {
		stamp := len(groups)
		var grp group
		for {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			grp.edges++
			for _, v := range e {
				if seenAt[v] != stamp {
					seenAt[v] = stamp
					grp.members = append(grp.members, v)
				}
			}
			if e[0] == p && e[1] == c {
				break
			}
		}
		groups = append(groups, grp)
	}

	_, err := dfs.DFS(ix, 0,
		dfs.WithFullTraversal(),
		dfs.WithOnVisit(func(v int) error {
			pre[v], low[v] = counter, counter
			counter++
			return nil
		}),
		dfs.WithOnTreeEdge(func(p, c int) error {
			children[p]++
			parent[c] = p
			stack = append(stack, [2]int{p, c})
			return nil
		}),
		dfs.WithOnBackEdge(func(v, a int) error {
			stack = append(stack, [2]int{v, a})
			if pre[a] < low[v] {
				low[v] = pre[a]
			}
			return nil
		}),
		dfs.WithOnExit(func(v, p int) error {
			if p == dfs.NoParent {
				if len(ix.Adj[v]) == 0 {
					groups = append(groups, group{members: []int{v}})
				}
				if children[v] >= 2 {
					cut[v] = true
				}
				return nil
			}
			if low[v] < low[p] {
				low[p] = low[v]
			}
			if low[v] >= pre[p] {
				popBlock(p, v)
				if parent[p] != dfs.NoParent {
					cut[p] = true
				}
			}
			if low[v] > pre[p] {
				bridges = append(bridges, [2]int{p, v})
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	out := &Blocks{Components: materialize(ix, LevelBiconnected, groups)}
	for v := 0; v < n; v++ {
		if cut[v] {
			out.ArticulationPoints = append(out.ArticulationPoints, ix.Nodes[v])
		}
	}
	for _, b := range bridges {
		d, gn := b[0], b[1]
		if !ix.IsDMR(d) {
			d, gn = gn, d
		}
		out.Bridges = append(out.Bridges, core.Edge{DMR: ix.Nodes[d].ID, Gene: ix.Nodes[gn].ID})
	}
	sort.Slice(out.Bridges, func(i, j int) bool {
		if out.Bridges[i].DMR != out.Bridges[j].DMR {
			return out.Bridges[i].DMR < out.Bridges[j].DMR
		}
		return out.Bridges[i].Gene < out.Bridges[j].Gene
	})

	return out, nil
}
