// Package domset computes a minimal red-blue dominating set: a small set of
// DMRs (red) such that every gene (blue) with at least one DMR neighbour is
// adjacent to a selected DMR.
//
// Algorithm:
//
//  1. Greedy: a lazy max-heap keyed by utility = number of still undominated
//     neighbour genes, optionally multiplied by 1 + max(AreaStat, 0)
//     (WithAreaWeighting). Ties prefer the higher AreaStat, then the lower ID.
//     A popped DMR whose stored key is stale is re-scored and pushed back;
//     keys only decrease, so a fresh key on top is the true maximum.
//  2. Minimization: selected DMRs are visited in ascending order of the
//     number of genes they newly dominated during the greedy phase (ID
//     tiebreak); a DMR whose every gene is dominated at least twice is dropped.
//
// Genes without any DMR neighbour cannot be dominated; they are listed in
// Result.Uncovered. Incomplete coverage is data, not an error.
package domset
