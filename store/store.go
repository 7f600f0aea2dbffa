// SPDX-License-Identifier: MIT
// Package: dmrgraph/store

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/dmrgraph/export"
)

var (
	// ErrClosed is returned by operations on a closed Store.
	ErrClosed = errors.New("store: closed")

	// ErrNoRows is returned by SaveRun without any rows.
	ErrNoRows = errors.New("store: nothing to save")
)

// Store writes analysis rows into one SQLite database.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Option customizes Open.
type Option func(*Store)

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open opens (or creates) the database at path and applies the schema.
// ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	// A ":memory:" database lives only as long as its connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping %q: %w", path, err)
	}
	for _, stmt := range schema {
		if _, err = db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("store: schema: %w", err)
		}
	}
	s.log.Debug("store opened", zap.String("path", path))

	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil

	return err
}

// SaveRun writes rows of one or more timepoints in a single transaction and
// returns the new run ID.
//
// Errors: ErrClosed, ErrNoRows, or a wrapped driver error; the transaction is
// rolled back on any failure.
func (s *Store) SaveRun(ctx context.Context, rows ...*export.Rows) (uuid.UUID, error) {
	if s == nil || s.db == nil {
		return uuid.Nil, ErrClosed
	}
	if len(rows) == 0 {
		return uuid.Nil, ErrNoRows
	}
	runID := uuid.New()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("SaveRun: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, `INSERT INTO runs (id, created_at) VALUES (?, ?)`,
		runID.String(), time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return uuid.Nil, fmt.Errorf("SaveRun: run: %w", err)
	}
	for _, r := range rows {
		if r == nil {
			continue
		}
		if err = saveTimepoint(ctx, tx, runID.String(), r); err != nil {
			return uuid.Nil, fmt.Errorf("SaveRun %q: %w", r.Timepoint, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("SaveRun: commit: %w", err)
	}
	s.log.Info("run saved", zap.String("run_id", runID.String()), zap.Int("timepoints", len(rows)))

	return runID, nil
}

func saveTimepoint(ctx context.Context, tx *sql.Tx, run string, r *export.Rows) error {
	exec := func(query string, args ...any) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	}

	if err := exec(`INSERT INTO timepoints (run_id, name, id_offset, status) VALUES (?, ?, ?, ?)`,
		run, r.Timepoint, r.Offset, r.Status); err != nil {
		return fmt.Errorf("timepoint: %w", err)
	}
	for _, d := range r.DMRs {
		if err := exec(`INSERT INTO dmrs (run_id, id, raw_id, timepoint, area_stat, chromosome,
			start_pos, end_pos, strand, p_value, q_value, degree, hub)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run, d.ID, d.RawID, d.Timepoint, d.AreaStat, d.Chromosome,
			d.Start, d.End, d.Strand, d.PValue, d.QValue, d.Degree, d.Hub); err != nil {
			return fmt.Errorf("dmr %d: %w", d.ID, err)
		}
	}
	for _, g := range r.Genes {
		if err := exec(`INSERT OR IGNORE INTO genes (run_id, id, symbol, description) VALUES (?, ?, ?, ?)`,
			run, g.ID, g.Symbol, g.Description); err != nil {
			return fmt.Errorf("gene %d: %w", g.ID, err)
		}
		if err := exec(`INSERT INTO gene_flags (run_id, gene_id, timepoint, degree, hub, split)
			VALUES (?, ?, ?, ?, ?, ?)`,
			run, g.ID, r.Timepoint, g.Degree, g.Hub, g.Split); err != nil {
			return fmt.Errorf("gene flags %d: %w", g.ID, err)
		}
	}
	for _, c := range r.Components {
		dmrs, genes, err := encodeIDs(c.DMRs, c.Genes)
		if err != nil {
			return err
		}
		if err = exec(`INSERT INTO components (run_id, timepoint, level, local_id, dmrs, genes,
			size, edge_count, density, category) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run, r.Timepoint, c.Level, c.LocalID, dmrs, genes,
			c.Size, c.EdgeCount, c.Density, c.Category); err != nil {
			return fmt.Errorf("component %s/%d: %w", c.Level, c.LocalID, err)
		}
	}
	for _, b := range r.Bicliques {
		dmrs, genes, err := encodeIDs(b.DMRs, b.Genes)
		if err != nil {
			return err
		}
		if err = exec(`INSERT INTO bicliques (run_id, timepoint, local_id, component_id, dmrs, genes, category)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run, r.Timepoint, b.LocalID, b.ComponentID, dmrs, genes, b.Category); err != nil {
			return fmt.Errorf("biclique %d: %w", b.LocalID, err)
		}
	}
	for _, d := range r.Dominating {
		if err := exec(`INSERT INTO dominating_set (run_id, timepoint, dmr_id, dominated, utility)
			VALUES (?, ?, ?, ?, ?)`,
			run, r.Timepoint, d.DMR, d.Dominated, d.Utility); err != nil {
			return fmt.Errorf("dominating dmr %d: %w", d.DMR, err)
		}
	}
	for _, e := range r.EdgeStats {
		if err := exec(`INSERT INTO edge_stats (run_id, timepoint, scope, scope_id, permanent,
			false_positive, false_negative, accuracy, noise) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run, r.Timepoint, e.Scope, e.ScopeID, e.Permanent,
			e.FalsePositive, e.FalseNegative, e.Accuracy, e.Noise); err != nil {
			return fmt.Errorf("edge stats %s/%d: %w", e.Scope, e.ScopeID, err)
		}
	}

	return nil
}

// encodeIDs stores ID lists as JSON arrays.
func encodeIDs(dmrs, genes []int) (string, string, error) {
	if dmrs == nil {
		dmrs = []int{}
	}
	if genes == nil {
		genes = []int{}
	}
	d, err := json.Marshal(dmrs)
	if err != nil {
		return "", "", err
	}
	g, err := json.Marshal(genes)
	if err != nil {
		return "", "", err
	}

	return string(d), string(g), nil
}

// Counts reports the number of rows a run wrote per table.
func (s *Store) Counts(ctx context.Context, runID uuid.UUID) (map[string]int, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	tables := []string{"timepoints", "dmrs", "gene_flags", "components", "bicliques", "dominating_set", "edge_stats"}
	out := make(map[string]int, len(tables)+1)
	for _, t := range tables {
		var n int
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+t+` WHERE run_id = ?`, runID.String()).Scan(&n); err != nil {
			return nil, fmt.Errorf("Counts %s: %w", t, err)
		}
		out[t] = n
	}
	var genes int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM genes WHERE run_id = ?`, runID.String()).Scan(&genes); err != nil {
		return nil, fmt.Errorf("Counts genes: %w", err)
	}
	out["genes"] = genes

	return out, nil
}

// DominatingSet returns the persisted DMR IDs of a timepoint's dominating
// set, ascending.
func (s *Store) DominatingSet(ctx context.Context, runID uuid.UUID, timepoint string) ([]int, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT dmr_id FROM dominating_set WHERE run_id = ? AND timepoint = ? ORDER BY dmr_id`,
		runID.String(), timepoint)
	if err != nil {
		return nil, fmt.Errorf("DominatingSet: %w", err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var id int
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("DominatingSet: %w", err)
		}
		out = append(out, id)
	}

	return out, rows.Err()
}
