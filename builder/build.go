// SPDX-License-Identifier: MIT
// Package: dmrgraph/builder
//
// build.go: BuildGraph: association records → per-timepoint bipartite graph.
//
// Contract:
//   • Registry must be non-nil; gene symbols are resolved (and created on first
//     sight) through it, so the same symbol maps to the same ID in every graph.
//   • Rows are processed in input order. A rejected row is recorded in the
//     Report and skipped; it never aborts the build unless WithStrict is set.
//   • Within one graph the first record for a DMR fixes its attributes; the
//     first edge between a pair fixes its source (closest gene before enhancer).
//
// Complexity:
//   • O(R·k) registry operations and O(R·k) edge inserts for R rows of k genes.

package builder

import (
	"errors"
	"strings"

	"github.com/katalvlaran/dmrgraph/core"
	"github.com/katalvlaran/dmrgraph/registry"
)

// EnhancerSeparator separates a gene symbol from its enhancer annotation
// ("NPPA/e3").
const EnhancerSeparator = "/"

// Record is one association row for a timepoint.
type Record struct {
	// Row is the 1-based source row; 0 means "use the slice position".
	Row int

	// DMRRawID is the 0-indexed, timepoint-local DMR identifier.
	DMRRawID int

	ClosestGene     string
	AdditionalGenes []string

	AreaStat   float64
	Chromosome string
	Start      int64
	End        int64
	Strand     string
	PValue     float64
	QValue     float64
}

// Report aggregates row-level outcomes of one BuildGraph call.
type Report struct {
	Rows          int // rows seen
	DMRs          int // distinct DMR vertices added
	DuplicateRows int // accepted rows whose DMR was already present
	ClosestEdges  int // edges added with SourceClosestGene
	EnhancerEdges int // edges added with SourceEnhancer
	ParallelEdges int // (dmr, gene) pairs seen again and collapsed

	// UnresolvedSymbols lists symbols the registry refused, in first-seen order.
	UnresolvedSymbols []string

	// Malformed holds every rejected row in input order.
	Malformed []*MalformedRowError
}

// Err joins all malformed-row errors, or returns nil when every row was accepted.
func (r *Report) Err() error {
	if r == nil || len(r.Malformed) == 0 {
		return nil
	}
	errs := make([]error, len(r.Malformed))
	for i, m := range r.Malformed {
		errs[i] = m
	}

	return errors.Join(errs...)
}

// SplitEnhancerToken splits "SYMBOL/eN" into its symbol and suffix parts.
// A token without a separator returns an empty suffix.
func SplitEnhancerToken(token string) (symbol, suffix string) {
	token = strings.TrimSpace(token)
	if i := strings.Index(token, EnhancerSeparator); i >= 0 {
		return strings.TrimSpace(token[:i]), strings.TrimSpace(token[i+1:])
	}

	return token, ""
}

// StripEnhancerSuffix returns the join key of a gene token.
func StripEnhancerSuffix(token string) string {
	symbol, _ := SplitEnhancerToken(token)

	return symbol
}

// geneToken is one gene reference of a row with its edge provenance.
type geneToken struct {
	symbol string
	source core.EdgeSource
}

// tokens returns the row's gene references after suffix stripping and
// placeholder removal; the closest gene comes first.
func (c buildConfig) tokens(rec Record) []geneToken {
	out := make([]geneToken, 0, 1+len(rec.AdditionalGenes))
	if s := StripEnhancerSuffix(rec.ClosestGene); !c.isPlaceholder(s) {
		out = append(out, geneToken{symbol: s, source: core.SourceClosestGene})
	}
	for _, raw := range rec.AdditionalGenes {
		if s := StripEnhancerSuffix(raw); !c.isPlaceholder(s) {
			out = append(out, geneToken{symbol: s, source: core.SourceEnhancer})
		}
	}

	return out
}

// validate checks the row fields that do not depend on the registry.
func (c buildConfig) validate(row int, rec Record) *MalformedRowError {
	if rec.DMRRawID < 0 {
		return &MalformedRowError{Row: row, DMR: rec.DMRRawID, Reason: ReasonNegativeID, Err: core.ErrNegativeID}
	}
	switch strings.TrimSpace(rec.Strand) {
	case "", "+", "-", ".":
	default:
		return &MalformedRowError{Row: row, DMR: rec.DMRRawID, Reason: ReasonBadStrand}
	}
	if c.checkCoords && rec.End < rec.Start {
		return &MalformedRowError{Row: row, DMR: rec.DMRRawID, Reason: ReasonBadInterval}
	}

	return nil
}

// BuildGraph constructs the bipartite graph of one timepoint.
//
// Steps per row:
//  1. Validate ID, strand and coordinates.
//  2. Strip enhancer suffixes and resolve every symbol through reg.
//  3. Add the DMR (first record wins), then one edge per resolved gene.
//
// Errors:
//   - ErrNilRegistry if reg is nil.
//   - With WithStrict, the first *MalformedRowError (wrapping ErrMalformedRow).
//   - Without it, row failures are only reported through Report.Malformed.
//
// Determinism: identical records against identical registry state produce
// identical graphs and reports.
func BuildGraph(records []Record, reg *registry.Registry, opts ...Option) (*core.Graph, *Report, error) {
	if reg == nil {
		return nil, nil, ErrNilRegistry
	}
	cfg := newBuildConfig(opts...)

	g := core.NewGraph(core.WithTimepoint(cfg.timepoint))
	rep := &Report{}
	seenUnresolved := make(map[string]struct{})

	reject := func(m *MalformedRowError) error {
		rep.Malformed = append(rep.Malformed, m)
		if cfg.strict {
			return m
		}

		return nil
	}

	for i, rec := range records {
		rep.Rows++
		row := rec.Row
		if row <= 0 {
			row = i + 1
		}

		if m := cfg.validate(row, rec); m != nil {
			if err := reject(m); err != nil {
				return nil, rep, err
			}
			continue
		}

		// Resolve before touching the graph so a rejected row leaves no trace.
		type resolved struct {
			gene   registry.Gene
			source core.EdgeSource
		}
		var (
			genes   []resolved
			lastErr error
		)
		for _, tok := range cfg.tokens(rec) {
			id, _, err := reg.Resolve(tok.symbol)
			if err != nil {
				lastErr = err
				if _, dup := seenUnresolved[tok.symbol]; !dup {
					seenUnresolved[tok.symbol] = struct{}{}
					rep.UnresolvedSymbols = append(rep.UnresolvedSymbols, tok.symbol)
				}
				continue
			}
			entry, err := reg.Gene(id)
			if err != nil {
				lastErr = err
				continue
			}
			genes = append(genes, resolved{gene: entry, source: tok.source})
		}
		if len(genes) == 0 {
			m := &MalformedRowError{Row: row, DMR: rec.DMRRawID, Reason: ReasonNoGene, Err: lastErr}
			if err := reject(m); err != nil {
				return nil, rep, err
			}
			continue
		}

		if g.HasDMR(rec.DMRRawID) {
			rep.DuplicateRows++
		} else {
			rep.DMRs++
		}
		if err := g.AddDMR(core.DMR{
			ID:         rec.DMRRawID,
			AreaStat:   rec.AreaStat,
			Chromosome: rec.Chromosome,
			Start:      rec.Start,
			End:        rec.End,
			Strand:     strings.TrimSpace(rec.Strand),
			PValue:     rec.PValue,
			QValue:     rec.QValue,
		}); err != nil {
			return nil, rep, builderErrorf("BuildGraph", "row %d", err, row)
		}

		for _, r := range genes {
			if err := g.AddGene(core.Gene{ID: r.gene.ID, Symbol: r.gene.Symbol, Description: r.gene.Description}); err != nil {
				return nil, rep, builderErrorf("BuildGraph", "row %d gene %q", err, row, r.gene.Symbol)
			}
			added, err := g.AddEdge(rec.DMRRawID, r.gene.ID, r.source)
			if err != nil {
				return nil, rep, builderErrorf("BuildGraph", "row %d edge %d-%d", err, row, rec.DMRRawID, r.gene.ID)
			}
			switch {
			case !added:
				rep.ParallelEdges++
			case r.source == core.SourceClosestGene:
				rep.ClosestEdges++
			default:
				rep.EnhancerEdges++
			}
		}
	}

	return g, rep, nil
}

// Preregister resolves every gene symbol of records in row order, closest gene
// first. Running it sequentially over all timepoints before parallel builds
// fixes gene IDs independently of scheduling.
// Returns the number of newly created registry entries.
func Preregister(reg *registry.Registry, records ...Record) (int, error) {
	return PreregisterWith(reg, nil, records...)
}

// PreregisterWith is Preregister with the token rules (placeholders) of opts,
// so symbols BuildGraph would skip are never registered.
func PreregisterWith(reg *registry.Registry, opts []Option, records ...Record) (int, error) {
	if reg == nil {
		return 0, ErrNilRegistry
	}
	cfg := newBuildConfig(opts...)
	created := 0
	for _, rec := range records {
		for _, tok := range cfg.tokens(rec) {
			_, isNew, err := reg.Resolve(tok.symbol)
			if err != nil {
				return created, builderErrorf("Preregister", "symbol %q", err, tok.symbol)
			}
			if isNew {
				created++
			}
		}
	}

	return created, nil
}
