// Package ingest reads delimited association tables into builder.Record
// values.
//
// The first non-comment line is a header. Columns are matched by name,
// case-insensitively, against a list of aliases per field (see Column); the
// DMR and closest-gene columns are required, the rest are optional. The
// additional-genes cell holds gene tokens separated by ';' or ',' and may
// carry enhancer suffixes ("NPPA/e3"), which are left for the builder to
// strip.
//
// A row that cannot be parsed becomes a *builder.MalformedRowError with
// Reason builder.ReasonUnparsable and is returned in the row-error slice; it
// never stops the read. Only I/O failures and a missing required column are
// fatal.
package ingest
