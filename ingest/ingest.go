// SPDX-License-Identifier: MIT
// Package: dmrgraph/ingest

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/dmrgraph/builder"
)

// ErrMissingColumn is returned when a required column has no header match.
var ErrMissingColumn = errors.New("ingest: missing required column")

// Column names one field of builder.Record.
type Column int

const (
	ColDMR Column = iota
	ColClosestGene
	ColAdditionalGenes
	ColAreaStat
	ColChromosome
	ColStart
	ColEnd
	ColStrand
	ColPValue
	ColQValue
	numColumns
)

var columnNames = [...]string{
	"dmr", "closest_gene", "additional_genes", "area_stat", "chromosome",
	"start", "end", "strand", "p_value", "q_value",
}

// String returns the canonical column name.
func (c Column) String() string {
	if c < 0 || c >= numColumns {
		return "unknown"
	}

	return columnNames[c]
}

var defaultAliases = map[Column][]string{
	ColDMR:             {"dmr_id", "dmr", "dmr_no.", "dmr_no", "dmr_number"},
	ColClosestGene:     {"closest_gene", "gene_symbol_nearby", "nearest_gene", "gene"},
	ColAdditionalGenes: {"additional_genes", "enhancer_genes", "encode_enhancer_interaction(bingren_lab)", "processed_enhancer_info"},
	ColAreaStat:        {"area_stat", "area", "confidence"},
	ColChromosome:      {"chromosome", "chr", "chrom"},
	ColStart:           {"start", "chromstart"},
	ColEnd:             {"end", "chromend"},
	ColStrand:          {"strand"},
	ColPValue:          {"p_value", "p-value", "pvalue"},
	ColQValue:          {"q_value", "q-value", "qvalue"},
}

// Option customizes ReadRecords.
type Option func(*config)

type config struct {
	comma      rune
	separators string
	idBase     int
	aliases    map[Column][]string
}

func newConfig(opts ...Option) config {
	cfg := config{comma: '\t', separators: ";,", aliases: make(map[Column][]string, len(defaultAliases))}
	for col, names := range defaultAliases {
		cfg.aliases[col] = append([]string(nil), names...)
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithComma sets the field delimiter (default tab).
func WithComma(r rune) Option {
	if r == '\n' || r == '\r' || r == '"' {
		panic("ingest: WithComma(invalid delimiter)")
	}
	return func(c *config) { c.comma = r }
}

// WithGeneSeparators sets the characters separating additional gene tokens.
// Panics on an empty set.
func WithGeneSeparators(seps string) Option {
	if seps == "" {
		panic("ingest: WithGeneSeparators(\"\")")
	}
	return func(c *config) { c.separators = seps }
}

// WithIDBase declares the numbering of the DMR column: 0 (default) or 1.
// 1-based IDs are shifted down to the builder's 0-indexed raw IDs.
func WithIDBase(base int) Option {
	if base != 0 && base != 1 {
		panic("ingest: WithIDBase(not 0 or 1)")
	}
	return func(c *config) { c.idBase = base }
}

// WithAlias adds a header name for col.
func WithAlias(col Column, header string) Option {
	if col < 0 || col >= numColumns || strings.TrimSpace(header) == "" {
		panic("ingest: WithAlias(invalid)")
	}
	return func(c *config) { c.aliases[col] = append(c.aliases[col], header) }
}

// ReadRecords parses a header line and every following row.
//
// Returns the accepted records in input order, one *builder.MalformedRowError
// per rejected row, and a fatal error for I/O failures or a missing required
// column. Record.Row is the 1-based line number of the row.
func ReadRecords(r io.Reader, opts ...Option) ([]builder.Record, []error, error) {
	cfg := newConfig(opts...)
	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("ReadRecords: empty input: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("ReadRecords: header: %w", err)
	}
	index, err := cfg.columns(header)
	if err != nil {
		return nil, nil, fmt.Errorf("ReadRecords: %w", err)
	}

	var (
		records []builder.Record
		rowErrs []error
	)
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			rowErrs = append(rowErrs, &builder.MalformedRowError{
				Row: pe.Line, DMR: -1, Reason: builder.ReasonUnparsable, Err: pe.Err,
			})
			continue
		}
		if err != nil {
			return records, rowErrs, fmt.Errorf("ReadRecords: %w", err)
		}
		line, _ := cr.FieldPos(0)

		rec, perr := cfg.parse(fields, index)
		if perr != nil {
			rowErrs = append(rowErrs, &builder.MalformedRowError{
				Row: line, DMR: rec.DMRRawID, Reason: builder.ReasonUnparsable, Err: perr,
			})
			continue
		}
		rec.Row = line
		records = append(records, rec)
	}

	return records, rowErrs, nil
}

// columns maps each Column to its header position, -1 when absent.
func (c config) columns(header []string) ([numColumns]int, error) {
	var idx [numColumns]int
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}
	for col := Column(0); col < numColumns; col++ {
		idx[col] = -1
		for _, alias := range c.aliases[col] {
			if i, ok := pos[strings.ToLower(alias)]; ok {
				idx[col] = i
				break
			}
		}
	}
	for _, col := range []Column{ColDMR, ColClosestGene} {
		if idx[col] < 0 {
			return idx, fmt.Errorf("%s: %w", col, ErrMissingColumn)
		}
	}

	return idx, nil
}

// parse converts one row. On error rec.DMRRawID holds the ID if it parsed,
// -1 otherwise.
func (c config) parse(fields []string, idx [numColumns]int) (builder.Record, error) {
	cell := func(col Column) string {
		i := idx[col]
		if i < 0 || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	rec := builder.Record{DMRRawID: -1}
	id, err := strconv.Atoi(cell(ColDMR))
	if err != nil {
		return rec, fmt.Errorf("%s: %w", ColDMR, err)
	}
	rec.DMRRawID = id - c.idBase

	rec.ClosestGene = cell(ColClosestGene)
	if extra := cell(ColAdditionalGenes); extra != "" {
		for _, tok := range strings.FieldsFunc(extra, func(r rune) bool {
			return strings.ContainsRune(c.separators, r)
		}) {
			if tok = strings.TrimSpace(tok); tok != "" {
				rec.AdditionalGenes = append(rec.AdditionalGenes, tok)
			}
		}
	}
	rec.Chromosome = cell(ColChromosome)
	rec.Strand = cell(ColStrand)

	floats := []struct {
		col Column
		dst *float64
	}{{ColAreaStat, &rec.AreaStat}, {ColPValue, &rec.PValue}, {ColQValue, &rec.QValue}}
	for _, f := range floats {
		if *f.dst, err = parseFloat(cell(f.col)); err != nil {
			return rec, fmt.Errorf("%s: %w", f.col, err)
		}
	}
	ints := []struct {
		col Column
		dst *int64
	}{{ColStart, &rec.Start}, {ColEnd, &rec.End}}
	for _, f := range ints {
		if *f.dst, err = parseInt(cell(f.col)); err != nil {
			return rec, fmt.Errorf("%s: %w", f.col, err)
		}
	}

	return rec, nil
}

// parseFloat treats empty and NA cells as 0.
func parseFloat(s string) (float64, error) {
	if s == "" || strings.EqualFold(s, "NA") {
		return 0, nil
	}

	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int64, error) {
	if s == "" || strings.EqualFold(s, "NA") {
		return 0, nil
	}

	return strconv.ParseInt(s, 10, 64)
}
