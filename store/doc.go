// Package store persists export.Rows into SQLite through the pure-Go
// modernc.org/sqlite driver.
//
// Every SaveRun call is one transaction tagged with a fresh run UUID. DMR rows
// are keyed by (run, persisted DMR ID); the timepoint offset baked into those
// IDs keeps timepoints of one run from colliding. Genes are keyed by their
// global registry ID and shared by all timepoints of the run; per-timepoint
// hub and split flags live in gene_flags.
package store
