// Package core defines the DMR, Gene, Edge and Graph types together with the
// sentinel errors and the NewGraph constructor.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be read from many goroutines
// while a single builder goroutine populates them.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeID indicates that a vertex ID below zero was supplied.
	ErrNegativeID = errors.New("core: negative vertex ID")

	// ErrEmptySymbol indicates a gene vertex was added without a symbol.
	ErrEmptySymbol = errors.New("core: gene symbol is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyGraph indicates the graph has no edges to analyze.
	ErrEmptyGraph = errors.New("core: graph has no edges")
)

// Side tags which partition a vertex belongs to.
type Side uint8

const (
	// SideDMR marks differentially methylated regions (the "red" side).
	SideDMR Side = iota
	// SideGene marks genes (the "blue" side).
	SideGene
)

// String returns "dmr" or "gene".
func (s Side) String() string {
	if s == SideDMR {
		return "dmr"
	}

	return "gene"
}

// EdgeSource records how a DMR–gene association was discovered.
type EdgeSource uint8

const (
	// SourceUnknown is used for edges coming from legacy tuples without metadata.
	SourceUnknown EdgeSource = iota
	// SourceClosestGene marks the DMR's closest-gene annotation.
	SourceClosestGene
	// SourceEnhancer marks an additional gene reached through enhancer mapping.
	SourceEnhancer
)

// String returns the persisted token for the source.
func (s EdgeSource) String() string {
	switch s {
	case SourceClosestGene:
		return "closest_gene"
	case SourceEnhancer:
		return "enhancer_mapping"
	default:
		return "unknown"
	}
}

// EdgeClass is the derived classification assigned by the edge classifier.
type EdgeClass uint8

const (
	// ClassUnclassified is the zero value before classification runs.
	ClassUnclassified EdgeClass = iota
	// ClassPermanent marks an edge present in both the original and reconstructed graph.
	ClassPermanent
	// ClassFalsePositive marks an edge present only in the reconstruction.
	ClassFalsePositive
	// ClassFalseNegative marks an edge present only in the original graph.
	ClassFalseNegative
)

// String returns the persisted token for the classification.
func (c EdgeClass) String() string {
	switch c {
	case ClassPermanent:
		return "permanent"
	case ClassFalsePositive:
		return "false_positive"
	case ClassFalseNegative:
		return "false_negative"
	default:
		return "unclassified"
	}
}

// DMR is a differentially methylated region vertex.
// ID is the 0-indexed, timepoint-local graph identifier.
type DMR struct {
	ID int

	// AreaStat is the per-DMR numeric statistic (area or confidence score).
	AreaStat float64

	Chromosome string
	Start      int64
	End        int64
	Strand     string
	PValue     float64
	QValue     float64

	// Hub is set by the decomposer when the vertex degree is unusually high.
	Hub bool
}

// Gene is a gene vertex. ID is the global registry identifier.
type Gene struct {
	ID          int
	Symbol      string
	Description string

	// Split is set when the gene participates in more than one biclique.
	Split bool
	// Hub is set by the decomposer when the vertex degree is unusually high.
	Hub bool
}

// Edge joins a DMR to a gene. Class is derived; existence is primary.
type Edge struct {
	DMR    int
	Gene   int
	Source EdgeSource
	Class  EdgeClass
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithTimepoint labels the graph with the timepoint it was built for.
func WithTimepoint(name string) GraphOption {
	return func(g *Graph) { g.timepoint = name }
}

// Graph is the per-timepoint bipartite graph.
//
// muVert protects the vertex catalogs; muEdgeAdj protects edges and adjacency.
type Graph struct {
	muVert    sync.RWMutex // guards dmrs, genes
	muEdgeAdj sync.RWMutex // guards dmrAdj, geneAdj, edgeCount

	timepoint string

	// Storage
	dmrs  map[int]*DMR  // DMR ID → DMR
	genes map[int]*Gene // gene ID → Gene

	// dmrAdj[dmrID][geneID] and geneAdj[geneID][dmrID] share the same *Edge.
	dmrAdj    map[int]map[int]*Edge
	geneAdj   map[int]map[int]*Edge
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		dmrs:    make(map[int]*DMR),
		genes:   make(map[int]*Gene),
		dmrAdj:  make(map[int]map[int]*Edge),
		geneAdj: make(map[int]map[int]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	Timepoint string
	DMRCount  int
	GeneCount int
	EdgeCount int
	// Density is EdgeCount / (DMRCount × GeneCount), or 0 when either side is empty.
	Density float64
}
