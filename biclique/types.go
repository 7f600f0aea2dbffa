// SPDX-License-Identifier: MIT
// Package: dmrgraph/biclique
//
// types.go: biclique record, categories, selection modes, results, errors.

package biclique

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = errors.New("biclique: graph is nil")

	// ErrEnumerationBudgetExceeded is returned together with a partial Result
	// when the iteration or time budget runs out.
	ErrEnumerationBudgetExceeded = errors.New("biclique: enumeration budget exceeded")

	// ErrUnknownSelection is returned by ParseSelection.
	ErrUnknownSelection = errors.New("biclique: unknown selection")
)

// Category classifies a biclique by side sizes.
type Category int

const (
	CategoryTrivial Category = iota
	CategorySmall
	CategoryInteresting
)

func (c Category) String() string {
	switch c {
	case CategoryTrivial:
		return "trivial"
	case CategorySmall:
		return "small"
	case CategoryInteresting:
		return "interesting"
	default:
		return "unknown"
	}
}

// Classify returns the category of a dmrs × genes biclique.
// Every shape with both sides ≥ 1 maps to exactly one category.
func Classify(dmrs, genes int) Category {
	switch {
	case dmrs == 1 && genes == 1:
		return CategoryTrivial
	case dmrs >= 3 && genes >= 3:
		return CategoryInteresting
	default:
		return CategorySmall
	}
}

// Selection controls which maximal bicliques are reported.
type Selection int

const (
	SelectCover Selection = iota
	SelectAll
)

func (s Selection) String() string {
	switch s {
	case SelectCover:
		return "cover"
	case SelectAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseSelection maps "cover" / "all" to a Selection.
func ParseSelection(s string) (Selection, error) {
	switch s {
	case "", "cover":
		return SelectCover, nil
	case "all":
		return SelectAll, nil
	default:
		return SelectCover, fmt.Errorf("ParseSelection(%q): %w", s, ErrUnknownSelection)
	}
}

// Biclique is a complete bipartite subgraph: every DMR is adjacent to every
// gene. IDs are graph IDs in ascending order.
type Biclique struct {
	ID       int
	DMRs     []int
	Genes    []int
	Category Category
}

// Size returns the total node count.
func (b Biclique) Size() int { return len(b.DMRs) + len(b.Genes) }

// EdgeCount returns |DMRs|·|Genes|.
func (b Biclique) EdgeCount() int { return len(b.DMRs) * len(b.Genes) }

// HasEdge reports whether (dmr, gene) lies inside the biclique.
func (b Biclique) HasEdge(dmr, gene int) bool {
	return containsSorted(b.DMRs, dmr) && containsSorted(b.Genes, gene)
}

// CoverageStats partitions the edges of a graph by how many bicliques
// contain them. Single + Multi + Uncovered == Total.
type CoverageStats struct {
	Single    int
	Multi     int
	Uncovered int
	Total     int
}

// Result is the outcome of Enumerate.
type Result struct {
	// Bicliques are the selected bicliques with IDs 0..n-1.
	Bicliques []Biclique

	// Maximal is the number of maximal bicliques found before selection.
	Maximal int

	// Iterations counts search-tree nodes expanded.
	Iterations int

	// Partial is set when the budget stopped the search early.
	Partial bool

	Coverage   CoverageStats
	SplitGenes []int
}

// CategoryCounts returns how many selected bicliques fall in each category.
func (r *Result) CategoryCounts() map[Category]int {
	out := map[Category]int{CategoryTrivial: 0, CategorySmall: 0, CategoryInteresting: 0}
	for _, b := range r.Bicliques {
		out[b.Category]++
	}

	return out
}
