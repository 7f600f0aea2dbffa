// Package biclique enumerates maximal complete bipartite subgraphs of a
// DMR/gene graph, selects a deterministic subset and classifies it.
//
// Enumeration is MBEA (Zhang et al., 2014) run separately on every connected
// component: L holds the component's DMRs, P the candidate genes in ascending
// degree order (ID tiebreak) and Q the genes already tried, which prunes
// non-maximal branches. Neighborhood tests are popcounts over per-gene DMR
// bitsets local to the component.
//
// Selection:
//
//   - SelectCover (default): candidates are ranked by total node count
//     (descending), then by the lexicographically smallest DMR-ID list, then by
//     the gene-ID list; a candidate is kept only if it covers at least one edge
//     not covered by an earlier kept biclique. Fewer, larger bicliques win.
//   - SelectAll: every maximal biclique, in the same rank order.
//
// Classification is total and exclusive:
//
//   - trivial:     1 DMR × 1 gene
//   - interesting: at least 3 DMRs × at least 3 genes
//   - small:       every other shape (a side of exactly 2, or a 1×n star)
//
// Budget: WithMaxIterations and WithTimeLimit bound the search. Exceeding
// either returns the partial Result together with ErrEnumerationBudgetExceeded;
// callers may accept the partial result or retry with a relaxed bound.
package biclique
