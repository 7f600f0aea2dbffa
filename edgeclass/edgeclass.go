// SPDX-License-Identifier: MIT
// Package: dmrgraph/edgeclass
//
// edgeclass.go: G vs G′ edge labels and aggregate rates.

package edgeclass

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/dmrgraph/biclique"
	"github.com/katalvlaran/dmrgraph/core"
	"github.com/katalvlaran/dmrgraph/decompose"
)

// ErrGraphNil is returned when a nil graph is passed in.
var ErrGraphNil = errors.New("edgeclass: graph is nil")

// Counts tallies labels. Permanent + FalsePositive + FalseNegative == Total().
type Counts struct {
	Permanent     int
	FalsePositive int
	FalseNegative int
}

// Total returns |G ∪ G′| for the counted scope.
func (c Counts) Total() int { return c.Permanent + c.FalsePositive + c.FalseNegative }

func (c *Counts) add(class core.EdgeClass) {
	switch class {
	case core.ClassPermanent:
		c.Permanent++
	case core.ClassFalsePositive:
		c.FalsePositive++
	case core.ClassFalseNegative:
		c.FalseNegative++
	}
}

// Rates are the derived ratios of a Counts value.
type Rates struct {
	Accuracy          float64
	Noise             float64 // percent
	FalsePositiveRate float64
	FalseNegativeRate float64
}

// Rates derives the ratios; an empty scope yields all zeros.
func (c Counts) Rates() Rates {
	total := c.Total()
	if total == 0 {
		return Rates{}
	}
	t := float64(total)

	return Rates{
		Accuracy:          float64(c.Permanent) / t,
		Noise:             100 * float64(c.FalsePositive+c.FalseNegative) / t,
		FalsePositiveRate: float64(c.FalsePositive) / t,
		FalseNegativeRate: float64(c.FalseNegative) / t,
	}
}

// Entry is one labelled edge of G ∪ G′.
type Entry struct {
	DMR   int
	Gene  int
	Class core.EdgeClass
}

// Group is an aggregate over a biclique or a component.
type Group struct {
	ID     int
	Counts Counts
	Rates  Rates
}

// Result holds every labelled edge and the aggregates.
type Result struct {
	// Edges is G ∪ G′ sorted by (DMR, Gene).
	Edges []Entry

	Counts Counts
	Rates  Rates

	// PerBiclique is indexed like the bicliques passed to Classify.
	PerBiclique []Group
}

// Classify labels G ∪ G′ where G′ is the union of the bicliques' DMR×gene pairs.
//
// Complexity: O((E + |G′|)·log(E + |G′|) + Σ_B |Edges|·log|B|).
// Errors: ErrGraphNil.
func Classify(g *core.Graph, bicliques []biclique.Biclique) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	inPrime := make(map[[2]int]struct{})
	for _, e := range biclique.Reconstruct(bicliques) {
		inPrime[[2]int{e.DMR, e.Gene}] = struct{}{}
	}

	res := &Result{}
	for _, e := range g.Edges() {
		key := [2]int{e.DMR, e.Gene}
		class := core.ClassFalseNegative
		if _, ok := inPrime[key]; ok {
			class = core.ClassPermanent
			delete(inPrime, key)
		}
		res.Edges = append(res.Edges, Entry{DMR: e.DMR, Gene: e.Gene, Class: class})
	}
	for key := range inPrime {
		res.Edges = append(res.Edges, Entry{DMR: key[0], Gene: key[1], Class: core.ClassFalsePositive})
	}
	sort.Slice(res.Edges, func(i, j int) bool {
		if res.Edges[i].DMR != res.Edges[j].DMR {
			return res.Edges[i].DMR < res.Edges[j].DMR
		}
		return res.Edges[i].Gene < res.Edges[j].Gene
	})

	for _, en := range res.Edges {
		res.Counts.add(en.Class)
	}
	res.Rates = res.Counts.Rates()

	res.PerBiclique = make([]Group, len(bicliques))
	for i, b := range bicliques {
		var c Counts
		for _, en := range res.Edges {
			if containsSorted(b.DMRs, en.DMR) || containsSorted(b.Genes, en.Gene) {
				c.add(en.Class)
			}
		}
		res.PerBiclique[i] = Group{ID: b.ID, Counts: c, Rates: c.Rates()}
	}

	return res, nil
}

// ByComponent aggregates the labelled edges with both ends inside each
// component, in component order.
func (r *Result) ByComponent(components []decompose.Component) []Group {
	out := make([]Group, len(components))
	for i, comp := range components {
		var c Counts
		for _, en := range r.Edges {
			if containsSorted(comp.DMRs, en.DMR) && containsSorted(comp.Genes, en.Gene) {
				c.add(en.Class)
			}
		}
		out[i] = Group{ID: comp.ID, Counts: c, Rates: c.Rates()}
	}

	return out
}

// Apply writes permanent / false-negative labels onto the edges of g.
// False positives are not edges of g and are left to the Result.
func (r *Result) Apply(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	for _, en := range r.Edges {
		if en.Class == core.ClassFalsePositive {
			continue
		}
		if err := g.SetEdgeClass(en.DMR, en.Gene, en.Class); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

func containsSorted(ids []int, x int) bool {
	i := sort.SearchInts(ids, x)

	return i < len(ids) && ids[i] == x
}
