// SPDX-License-Identifier: MIT
// Package: dmrgraph/decompose
//
// triconnected.go: 3-edge-connected vertex classes by path absorption.
//
// One DFS maintains, per vertex w:
//   • pre(w), lowpt(w)  discovery number and lowest pre reachable by one back
//                       edge from the subtree of w;
//   • nd(w)             subtree size, giving the O(1) "u below x" test;
//   • deg(w)            edges incident to the class currently led by w;
//   • P(w)              the tree path w→… whose classes may still merge with w.
//
// Absorbing x into w merges their classes (a union-find set) and adds
// deg(x)−2 to deg(w). A finished child u whose class has deg(u) = 2 is
// separated by a cut pair and is dropped from its path (ejected); deg(u) = 1
// means the tree edge is a bridge. Ejected classes are never merged again, so
// the final union-find sets are exactly the 3-edge-connected classes.

package decompose

import (
	"github.com/katalvlaran/dmrgraph/core"
	"github.com/katalvlaran/dmrgraph/dfs"
)

// Triconnected partitions the vertices of g into 3-edge-connected classes.
// Every vertex belongs to exactly one class; classes of one vertex are
// degenerate components.
//
// Complexity: O((V + E)·α(V)).
// Errors: ErrGraphNil.
func Triconnected(g *core.Graph) ([]Component, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return triconnectedIndexed(g.Indexed())
}

// absorber holds the per-vertex state of the path-absorption pass.
type absorber struct {
	pre, lowpt, nd, deg []int
	path                [][]int // P(w) without w itself
	uf                  []int   // union-find parent
	size                []int
}

func newAbsorber(n int) *absorber {
	a := &absorber{
		pre:   make([]int, n),
		lowpt: make([]int, n),
		nd:    make([]int, n),
		deg:   make([]int, n),
		path:  make([][]int, n),
		uf:    make([]int, n),
		size:  make([]int, n),
	}
	for i := range a.uf {
		a.uf[i], a.size[i] = i, 1
	}

	return a
}

func (a *absorber) find(x int) int {
	for a.uf[x] != x {
		a.uf[x] = a.uf[a.uf[x]]
		x = a.uf[x]
	}

	return x
}

// absorb merges the class of x into the class led by w.
func (a *absorber) absorb(w, x int) {
	a.deg[w] += a.deg[x] - 2
	rw, rx := a.find(w), a.find(x)
	if rw == rx {
		return
	}
	if a.size[rw] < a.size[rx] {
		rw, rx = rx, rw
	}
	a.uf[rx] = rw
	a.size[rw] += a.size[rx]
}

func (a *absorber) absorbAll(w int, p []int) {
	for _, x := range p {
		a.absorb(w, x)
	}
}

// below reports whether u lies in the DFS subtree of x.
func (a *absorber) below(u, x int) bool {
	return a.pre[x] <= a.pre[u] && a.pre[u] < a.pre[x]+a.nd[x]
}

func triconnectedIndexed(ix *core.Indexed) ([]Component, error) {
	n := ix.Len()
	a := newAbsorber(n)
	counter := 0

	_, err := dfs.DFS(ix, 0,
		dfs.WithFullTraversal(),
		dfs.WithOnVisit(func(w int) error {
			a.pre[w], a.lowpt[w] = counter, counter
			counter++
			a.nd[w] = 1
			a.deg[w] = len(ix.Adj[w])
			return nil
		}),
		// Outgoing back edge w→u to an ancestor.
		dfs.WithOnBackEdge(func(w, u int) error {
			if a.pre[u] < a.lowpt[w] {
				a.absorbAll(w, a.path[w])
				a.path[w] = nil
				a.lowpt[w] = a.pre[u]
			}
			return nil
		}),
		// Incoming back edge w←u from a finished descendant.
		dfs.WithOnForwardEdge(func(w, u int) error {
			a.deg[w] -= 2
			k := 0
			for k < len(a.path[w]) && a.below(u, a.path[w][k]) {
				a.absorb(w, a.path[w][k])
				k++
			}
			a.path[w] = a.path[w][k:]
			return nil
		}),
		dfs.WithOnExit(func(u, w int) error {
			if w == dfs.NoParent {
				return nil
			}
			a.nd[w] += a.nd[u]

			if a.deg[u] == 1 {
				a.deg[w]--
				return nil
			}
			var pu []int
			if a.deg[u] == 2 {
				pu = a.path[u]
			} else {
				pu = append([]int{u}, a.path[u]...)
			}
			if a.lowpt[w] <= a.lowpt[u] {
				a.absorbAll(w, pu)
			} else {
				a.lowpt[w] = a.lowpt[u]
				a.absorbAll(w, a.path[w])
				a.path[w] = pu
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	byRoot := make(map[int]int, n)
	var groups []group
	for v := 0; v < n; v++ {
		r := a.find(v)
		k, ok := byRoot[r]
		if !ok {
			k = len(groups)
			byRoot[r] = k
			groups = append(groups, group{edges: -1})
		}
		groups[k].members = append(groups[k].members, v)
	}

	return materialize(ix, LevelTriconnected, groups), nil
}
