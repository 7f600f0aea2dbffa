// SPDX-License-Identifier: MIT
// Package: dmrgraph/biclique
//
// mbea.go: maximal biclique enumeration on one connected component.
//
// Search state (per call of find):
//   • L  DMRs adjacent to every gene of R (bitset over local DMR indices);
//   • R  genes of the current biclique;
//   • P  candidate genes that may still extend R, in the fixed gene order;
//   • Q  genes already branched on; if one is adjacent to all of L′ the
//        branch cannot be maximal and is cut.
// Genes adjacent to all of L′ and to nothing else in L are folded into the
// current branch (set C) and never branched on separately.

package biclique

import (
	"sort"
	"time"
)

// candidate is one maximal biclique in graph IDs.
type candidate struct {
	dmrs  []int
	genes []int
}

// budget is shared by every component of one Enumerate call.
type budget struct {
	maxIterations int
	useDeadline   bool
	deadline      time.Time
	steps         int
	exceeded      bool
}

func newBudget(cfg config) *budget {
	b := &budget{maxIterations: cfg.maxIterations}
	if cfg.timeLimit > 0 {
		b.useDeadline = true
		b.deadline = time.Now().Add(cfg.timeLimit)
	}

	return b
}

// tick accounts one search node and reports whether the budget is spent.
// The clock is read on every 4096th node only.
func (b *budget) tick() bool {
	if b.exceeded {
		return true
	}
	b.steps++
	if b.maxIterations > 0 && b.steps > b.maxIterations {
		b.exceeded = true
	} else if b.useDeadline && (b.steps&4095) == 0 && time.Now().After(b.deadline) {
		b.exceeded = true
	}

	return b.exceeded
}

// component is the local view MBEA works on.
type component struct {
	dmrIDs  []int    // local DMR index → graph ID (ascending)
	geneIDs []int    // local gene index → graph ID
	mask    []bitset // local gene index → adjacent local DMRs
}

// engine runs MBEA over one component and appends to out.
type engine struct {
	comp   *component
	budget *budget
	out    []candidate
}

// run enumerates every maximal biclique of the component.
func (e *engine) run() {
	n := len(e.comp.dmrIDs)
	all := newBitset(n)
	for i := 0; i < n; i++ {
		all.set(i)
	}

	p := make([]int, len(e.comp.geneIDs))
	for i := range p {
		p[i] = i
	}
	deg := make([]int, len(p))
	for i, m := range e.comp.mask {
		deg[i] = m.count()
	}
	sort.SliceStable(p, func(a, b int) bool {
		if deg[p[a]] != deg[p[b]] {
			return deg[p[a]] < deg[p[b]]
		}
		return e.comp.geneIDs[p[a]] < e.comp.geneIDs[p[b]]
	})

	e.find(all, nil, p, nil)
}

func (e *engine) find(l bitset, r, p, q []int) {
	mask := e.comp.mask
	for len(p) > 0 {
		if e.budget.tick() {
			return
		}
		x := p[0]

		// 1. Extend R by x and shrink L to the common neighbours.
		lp := l.and(mask[x])
		lpCount := lp.count()
		rp := make([]int, 0, len(r)+len(p))
		rp = append(append(rp, r...), x)
		c := []int{x}

		// 2. Maximality check against already explored genes.
		maximal := true
		var qp []int
		for _, v := range q {
			k := lp.andCount(mask[v])
			if k == lpCount {
				maximal = false
				break
			}
			if k > 0 {
				qp = append(qp, v)
			}
		}

		if maximal {
			// 3. Absorb fully adjacent candidates, keep the partial ones.
			lc := l.andNot(lp)
			var pp []int
			for _, v := range p[1:] {
				k := lp.andCount(mask[v])
				switch {
				case k == lpCount:
					rp = append(rp, v)
					if lc.andCount(mask[v]) == 0 {
						c = append(c, v)
					}
				case k > 0:
					pp = append(pp, v)
				}
			}
			e.report(lp, rp)
			if len(pp) > 0 {
				e.find(lp, rp, pp, qp)
			}
		}

		// 4. Move C from P to Q.
		q = append(q[:len(q):len(q)], c...)
		p = without(p, c)
	}
}

// report converts a local biclique to sorted graph IDs.
func (e *engine) report(l bitset, r []int) {
	local := l.indices(nil)
	dmrs := make([]int, len(local))
	for i, li := range local {
		dmrs[i] = e.comp.dmrIDs[li]
	}
	genes := make([]int, len(r))
	for i, gi := range r {
		genes[i] = e.comp.geneIDs[gi]
	}
	sort.Ints(genes)
	e.out = append(e.out, candidate{dmrs: dmrs, genes: genes})
}

// without returns p minus the elements of c, preserving order.
func without(p, c []int) []int {
	drop := make(map[int]struct{}, len(c))
	for _, v := range c {
		drop[v] = struct{}{}
	}
	out := make([]int, 0, len(p))
	for _, v := range p {
		if _, ok := drop[v]; !ok {
			out = append(out, v)
		}
	}

	return out
}
