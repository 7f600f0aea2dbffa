package decompose

import (
	"sort"

	"github.com/katalvlaran/dmrgraph/core"
)

// containsSorted reports whether x occurs in the ascending slice ids.
func containsSorted(ids []int, x int) bool {
	i := sort.SearchInts(ids, x)

	return i < len(ids) && ids[i] == x
}

// group is a member list of dense indices plus its owned edge count.
// edges < 0 means "count induced edges".
type group struct {
	members []int
	edges   int
}

// lessIndexList orders ascending index lists lexicographically.
func lessIndexList(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// materialize turns index groups into numbered components in canonical order.
// Complexity: O(V + E + k log k) for k groups.
func materialize(ix *core.Indexed, level Level, groups []group) []Component {
	for i := range groups {
		sort.Ints(groups[i].members)
	}
	sort.Slice(groups, func(i, j int) bool {
		return lessIndexList(groups[i].members, groups[j].members)
	})

	label := make([]int, ix.Len())
	for i := range label {
		label[i] = -1
	}

	out := make([]Component, len(groups))
	for k, grp := range groups {
		c := Component{ID: k, Level: level, EdgeCount: grp.edges}
		for _, v := range grp.members {
			ref := ix.Nodes[v]
			if ref.Side == core.SideDMR {
				c.DMRs = append(c.DMRs, ref.ID)
			} else {
				c.Genes = append(c.Genes, ref.ID)
			}
		}
		if c.EdgeCount < 0 {
			// Induced edges: scan DMR rows only so each edge counts once.
			for _, v := range grp.members {
				label[v] = k
			}
			c.EdgeCount = 0
			for _, v := range grp.members {
				if !ix.IsDMR(v) {
					continue
				}
				for _, u := range ix.Adj[v] {
					if label[u] == k {
						c.EdgeCount++
					}
				}
			}
		}
		c.Density = Density(c.EdgeCount, len(c.DMRs), len(c.Genes))
		c.Degenerate = c.Size() <= 2
		if c.EdgeCount == 0 {
			c.Category = CategoryEmpty
		}
		out[k] = c
	}

	return out
}

// uniqueSorted sorts ids and drops repeats in place.
func uniqueSorted(ids []int) []int {
	if len(ids) == 0 {
		return ids
	}
	sort.Ints(ids)
	out := ids[:1]
	for _, x := range ids[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return out
}
