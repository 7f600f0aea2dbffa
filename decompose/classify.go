// SPDX-License-Identifier: MIT
// Package: dmrgraph/decompose
//
// classify.go: component categories from biclique participation.

package decompose

import (
	"github.com/katalvlaran/dmrgraph/biclique"
)

// Classify tags every component in place with its Category, the indices of
// the bicliques lying entirely inside it and the split genes among those
// bicliques.
//
// Rules, first match wins:
//  1. no edges                                   → empty
//  2. at most one contained biclique              → simple
//  3. a gene shared by two contained bicliques    → complex
//  4. an interesting contained biclique           → interesting
//  5. otherwise                                   → simple
//
// Complexity: O(|components| · Σ|B|·log|C|).
func Classify(components []Component, bicliques []biclique.Biclique) {
	for i := range components {
		c := &components[i]
		c.Bicliques, c.SplitGenes = nil, nil

		useCount := make(map[int]int)
		hasInteresting := false
		for bi, b := range bicliques {
			if !containsAll(c.DMRs, b.DMRs) || !containsAll(c.Genes, b.Genes) {
				continue
			}
			c.Bicliques = append(c.Bicliques, bi)
			if b.Category == biclique.CategoryInteresting {
				hasInteresting = true
			}
			for _, gid := range b.Genes {
				useCount[gid]++
			}
		}
		for gid, n := range useCount {
			if n > 1 {
				c.SplitGenes = append(c.SplitGenes, gid)
			}
		}
		c.SplitGenes = uniqueSorted(c.SplitGenes)

		switch {
		case c.EdgeCount == 0:
			c.Category = CategoryEmpty
		case len(c.Bicliques) <= 1:
			c.Category = CategorySimple
		case len(c.SplitGenes) > 0:
			c.Category = CategoryComplex
		case hasInteresting:
			c.Category = CategoryInteresting
		default:
			c.Category = CategorySimple
		}
	}
}

// containsAll reports whether every element of sub occurs in the ascending set.
func containsAll(set, sub []int) bool {
	for _, x := range sub {
		if !containsSorted(set, x) {
			return false
		}
	}

	return true
}
