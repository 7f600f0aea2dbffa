// Package dmrgraph analyzes the bipartite graph between differentially
// methylated regions (DMRs) and the genes they are associated with, one graph
// per timepoint.
//
// What is in the box?
//
//	• Gene registry: one global, append-only symbol → ID map per run
//	• Identifier mapping: 1-indexed, offset DMR IDs for shared tables
//	• Graph building: association rows → tagged DMR–gene edges
//	• Decomposition: connected, biconnected and 3-edge-connected components
//	• Bicliques: maximal biclique enumeration, cover selection, categories
//	• Edge classification: permanent / false positive / false negative
//	• Domination: minimal set of DMRs reaching every gene
//
// Packages, bottom-up:
//
//	core/       thread-safe bipartite Graph and its Indexed snapshot
//	registry/   master gene-ID registry
//	idmap/      persisted ↔ graph DMR IDs
//	builder/    BuildGraph, Preregister, legacy tuple conversion
//	ingest/     delimited tables → builder.Record
//	dfs/, bfs/  traversals over core.Indexed with hooks
//	decompose/  component levels, hubs, categories
//	biclique/   enumeration, selection, coverage, split genes
//	edgeclass/  G vs G′ edge labels and rates
//	domset/     greedy dominating set with minimization
//	analysis/   per-timepoint pipeline and parallel runs
//	export/     persistence rows and visualization payloads
//	store/      SQLite sink
//	config/     YAML run configuration
//	cmd/dmrgraph  the command-line driver
//
// Quick ASCII example (one timepoint):
//
//	D1───G1      D3───G3
//	 │ ╲ ╱│
//	 │  ╳ │
//	 │ ╱ ╲│
//	D2───G2
//
// yields the bicliques {D1,D2}×{G1,G2} (small) and {D3}×{G3} (trivial), and
// the dominating set {D1, D3}.
//
//	go install github.com/katalvlaran/dmrgraph/cmd/dmrgraph@latest
package dmrgraph
