// Package builder turns one timepoint's association records into a
// core.Graph, resolving gene symbols through the shared registry.
//
// The package offers the following key components:
//
//   - Record:          one input row (DMR raw ID, closest gene, additional genes,
//     per-DMR statistic and genomic coordinates).
//   - BuildGraph:      the single entry point; applies Option values to an
//     immutable buildConfig and returns the graph plus a Report.
//   - Preregister:     resolves every symbol of a record set in row order, used
//     to fix gene IDs deterministically before parallel builds.
//   - Report:          aggregated row-level failures and counters. Row failures
//     never abort the timepoint unless WithStrict is set.
//   - FromLegacyTuple: converts untyped (dmr, gene[, label]) tuples into a
//     tagged core.Edge; only ingestion adapters should call it.
//
// Algorithm (per record):
//
//  1. Strip the enhancer suffix (text after "/") from every gene token.
//  2. Resolve each symbol through the registry (created on first sight).
//  3. Add the DMR once per distinct raw ID, then an edge to the closest gene
//     and to every additional gene; parallel edges collapse in core.
//
// Guarantees:
//
//   - Deterministic: the same records against the same registry state yield the
//     same graph.
//   - A row with no resolvable gene becomes a *MalformedRowError in the Report.
//   - Option constructors panic on programmer error; BuildGraph never panics.
package builder
