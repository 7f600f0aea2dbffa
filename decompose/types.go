// SPDX-License-Identifier: MIT
// Package: dmrgraph/decompose
//
// types.go: component record, levels, categories and sentinel errors.

package decompose

import (
	"errors"

	"github.com/katalvlaran/dmrgraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed in.
var ErrGraphNil = errors.New("decompose: graph is nil")

// ErrBadSigma is returned by HubFlags for a negative or NaN sigma.
var ErrBadSigma = errors.New("decompose: hub sigma must be >= 0")

// Level names the decomposition a component belongs to.
type Level int

const (
	LevelConnected Level = iota
	LevelBiconnected
	LevelTriconnected
)

func (l Level) String() string {
	switch l {
	case LevelConnected:
		return "connected"
	case LevelBiconnected:
		return "biconnected"
	case LevelTriconnected:
		return "triconnected"
	default:
		return "unknown"
	}
}

// Category is the structural tag assigned by Classify.
type Category int

const (
	// CategoryUnset marks a component not yet classified.
	CategoryUnset Category = iota
	CategoryEmpty
	CategorySimple
	CategoryInteresting
	CategoryComplex
)

func (c Category) String() string {
	switch c {
	case CategoryEmpty:
		return "empty"
	case CategorySimple:
		return "simple"
	case CategoryInteresting:
		return "interesting"
	case CategoryComplex:
		return "complex"
	default:
		return "unset"
	}
}

// Component is one class of a decomposition. Members are referenced by graph
// ID only; bicliques are referenced by their index in the enumerator output.
type Component struct {
	ID    int
	Level Level

	// DMRs and Genes hold ascending graph IDs.
	DMRs  []int
	Genes []int

	// EdgeCount counts the edges owned by the component: induced edges for the
	// connected and triconnected levels, the block's own edges for blocks.
	EdgeCount int

	// Density is EdgeCount / (len(DMRs) × len(Genes)), 0 when a side is empty.
	Density float64

	// Degenerate marks an isolated vertex, a bridge block or a singleton class.
	Degenerate bool

	// Set by Classify.
	Category   Category
	Bicliques  []int
	SplitGenes []int
}

// Size returns the number of member vertices.
func (c Component) Size() int { return len(c.DMRs) + len(c.Genes) }

// Contains reports whether ref is a member. Complexity: O(log n).
func (c Component) Contains(ref core.NodeRef) bool {
	ids := c.Genes
	if ref.Side == core.SideDMR {
		ids = c.DMRs
	}

	return containsSorted(ids, ref.ID)
}

// Density is the bipartite density edges / (dmrs × genes), 0 when either side is empty.
func Density(edges, dmrs, genes int) float64 {
	return core.Density(edges, dmrs, genes)
}

// Decomposition bundles the three levels plus the cut structure.
type Decomposition struct {
	Connected    []Component
	Biconnected  []Component
	Triconnected []Component

	// ArticulationPoints lists cut vertices, DMRs first, ascending IDs.
	ArticulationPoints []core.NodeRef
	// Bridges lists bridge edges sorted by (DMR, Gene).
	Bridges []core.Edge
}

// All returns every component of every level in level order.
func (d *Decomposition) All() []Component {
	out := make([]Component, 0, len(d.Connected)+len(d.Biconnected)+len(d.Triconnected))
	out = append(out, d.Connected...)
	out = append(out, d.Biconnected...)

	return append(out, d.Triconnected...)
}
