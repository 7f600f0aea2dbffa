// Package edgeclass compares a timepoint graph G with the graph G′ rebuilt
// from its bicliques and labels every edge of G ∪ G′:
//
//   - permanent:      in G and in G′
//   - false_positive: in G′ only (introduced by the reconstruction)
//   - false_negative: in G only (not covered by any biclique)
//
// Aggregates are plain ratios over |G ∪ G′| and are 0 when there is nothing
// to count, never an error:
//
//   - Accuracy          = permanent / total
//   - Noise             = 100 · (false_positive + false_negative) / total
//   - FalsePositiveRate = false_positive / total
//   - FalseNegativeRate = false_negative / total
//
// Per-biclique aggregates use the classified edges touching the biclique's
// vertices; per-component aggregates use those with both ends inside.
package edgeclass
