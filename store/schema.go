package store

// schema is applied on Open; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id         TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS timepoints (
		run_id  TEXT NOT NULL REFERENCES runs(id),
		name    TEXT NOT NULL,
		id_offset INTEGER NOT NULL,
		status  TEXT NOT NULL,
		PRIMARY KEY (run_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS dmrs (
		run_id     TEXT NOT NULL,
		id         INTEGER NOT NULL,
		raw_id     INTEGER NOT NULL,
		timepoint  TEXT NOT NULL,
		area_stat  REAL,
		chromosome TEXT,
		start_pos  INTEGER,
		end_pos    INTEGER,
		strand     TEXT,
		p_value    REAL,
		q_value    REAL,
		degree     INTEGER NOT NULL,
		hub        INTEGER NOT NULL,
		PRIMARY KEY (run_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS genes (
		run_id      TEXT NOT NULL,
		id          INTEGER NOT NULL,
		symbol      TEXT NOT NULL,
		description TEXT,
		PRIMARY KEY (run_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS gene_flags (
		run_id    TEXT NOT NULL,
		gene_id   INTEGER NOT NULL,
		timepoint TEXT NOT NULL,
		degree    INTEGER NOT NULL,
		hub       INTEGER NOT NULL,
		split     INTEGER NOT NULL,
		PRIMARY KEY (run_id, gene_id, timepoint)
	)`,
	`CREATE TABLE IF NOT EXISTS components (
		run_id     TEXT NOT NULL,
		timepoint  TEXT NOT NULL,
		level      TEXT NOT NULL,
		local_id   INTEGER NOT NULL,
		dmrs       TEXT NOT NULL,
		genes      TEXT NOT NULL,
		size       INTEGER NOT NULL,
		edge_count INTEGER NOT NULL,
		density    REAL NOT NULL,
		category   TEXT NOT NULL,
		PRIMARY KEY (run_id, timepoint, level, local_id)
	)`,
	`CREATE TABLE IF NOT EXISTS bicliques (
		run_id       TEXT NOT NULL,
		timepoint    TEXT NOT NULL,
		local_id     INTEGER NOT NULL,
		component_id INTEGER NOT NULL,
		dmrs         TEXT NOT NULL,
		genes        TEXT NOT NULL,
		category     TEXT NOT NULL,
		PRIMARY KEY (run_id, timepoint, local_id)
	)`,
	`CREATE TABLE IF NOT EXISTS dominating_set (
		run_id    TEXT NOT NULL,
		timepoint TEXT NOT NULL,
		dmr_id    INTEGER NOT NULL,
		dominated INTEGER NOT NULL,
		utility   REAL NOT NULL,
		PRIMARY KEY (run_id, dmr_id)
	)`,
	`CREATE TABLE IF NOT EXISTS edge_stats (
		run_id         TEXT NOT NULL,
		timepoint      TEXT NOT NULL,
		scope          TEXT NOT NULL,
		scope_id       INTEGER NOT NULL,
		permanent      INTEGER NOT NULL,
		false_positive INTEGER NOT NULL,
		false_negative INTEGER NOT NULL,
		accuracy       REAL NOT NULL,
		noise          REAL NOT NULL,
		PRIMARY KEY (run_id, timepoint, scope, scope_id)
	)`,
}
