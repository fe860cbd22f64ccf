// Package store persists processing runs and region valuation tables to
// SQLite, so prior runs can be listed and compared without re-reading the
// source extracts.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/timber-cli/internal/model"
)

// Store wraps the SQLite database holding runs and valuation tables.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at the given DSN and configures WAL mode.
// Use ":memory:" for an ephemeral store.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS runs (
	id              TEXT PRIMARY KEY,
	region          TEXT NOT NULL,
	status          TEXT NOT NULL DEFAULT 'running',
	input_rows      INTEGER NOT NULL DEFAULT 0,
	matched         INTEGER NOT NULL DEFAULT 0,
	fallback        INTEGER NOT NULL DEFAULT 0,
	unpriced        INTEGER NOT NULL DEFAULT 0,
	unmapped_region INTEGER NOT NULL DEFAULT 0,
	output_path     TEXT,
	error           TEXT,
	started_at      DATETIME NOT NULL,
	completed_at    DATETIME
);

CREATE TABLE IF NOT EXISTS valuations (
	region       TEXT NOT NULL,
	statecd      TEXT NOT NULL,
	unitcd       TEXT NOT NULL,
	fips         TEXT NOT NULL,
	price_region TEXT NOT NULL,
	spcd         INTEGER NOT NULL,
	spgrpcd      INTEGER NOT NULL,
	species_name TEXT NOT NULL,
	spclass      TEXT NOT NULL,
	product      TEXT NOT NULL,
	size_class   TEXT NOT NULL,
	size_range   TEXT NOT NULL,
	volume       REAL NOT NULL,
	cuft_price   REAL,
	value        REAL,
	price_source TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_region ON runs(region);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
CREATE INDEX IF NOT EXISTS idx_valuations_region ON valuations(region);
CREATE INDEX IF NOT EXISTS idx_valuations_state ON valuations(region, statecd);
`

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "sqlite: migrate")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateRun records the start of a region processing run.
func (s *Store) CreateRun(ctx context.Context, region model.Region) (*model.Run, error) {
	run := &model.Run{
		ID:        uuid.New().String(),
		Region:    region,
		Status:    model.RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, region, status, started_at) VALUES (?, ?, ?, ?)`,
		run.ID, string(region), string(run.Status), run.StartedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
	}
	return run, nil
}

// CompleteRun marks a run completed and stores its join accounting.
func (s *Store) CompleteRun(ctx context.Context, runID string, inputRows, matched, fallback, unpriced, unmappedRegion int, outputPath string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, input_rows = ?, matched = ?, fallback = ?,
			unpriced = ?, unmapped_region = ?, output_path = ?, completed_at = ?
		WHERE id = ?`,
		string(model.RunStatusCompleted), inputRows, matched, fallback,
		unpriced, unmappedRegion, outputPath, time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: complete run %s", runID)
	}
	return checkRowsAffected(res, runID)
}

// FailRun marks a run failed with its error message.
func (s *Store) FailRun(ctx context.Context, runID, message string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, error = ?, completed_at = ? WHERE id = ?`,
		string(model.RunStatusFailed), message, time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: fail run %s", runID)
	}
	return checkRowsAffected(res, runID)
}

// SaveValuation replaces the stored valuation table for a region. The
// delete and inserts run in one transaction so readers never observe a
// partially replaced table.
func (s *Store) SaveValuation(ctx context.Context, region model.Region, rows []model.ValuationRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM valuations WHERE region = ?`, string(region)); err != nil {
		return eris.Wrapf(err, "sqlite: clear valuations %s", region)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO valuations (region, statecd, unitcd, fips, price_region,
			spcd, spgrpcd, species_name, spclass, product, size_class,
			size_range, volume, cuft_price, value, price_source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare insert")
	}
	defer stmt.Close()

	for _, r := range rows {
		var price, value sql.NullFloat64
		if r.CuftPrice != nil {
			price = sql.NullFloat64{Float64: *r.CuftPrice, Valid: true}
		}
		if r.Value != nil {
			value = sql.NullFloat64{Float64: *r.Value, Valid: true}
		}
		_, err := stmt.ExecContext(ctx,
			string(region), r.StateFIPS, r.SurveyUnit, r.FIPS, r.PriceRegion,
			r.SpeciesCode, r.SpeciesGroup, r.SpeciesName, string(r.SpeciesClass),
			string(r.Product), r.SizeClass, r.SizeRange, r.Volume,
			price, value, string(r.PriceSource),
		)
		if err != nil {
			return eris.Wrap(err, "sqlite: insert valuation row")
		}
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit valuations")
}

// ValuationCount returns the stored row count for a region.
func (s *Store) ValuationCount(ctx context.Context, region model.Region) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM valuations WHERE region = ?`, string(region)).Scan(&n)
	return n, eris.Wrapf(err, "sqlite: count valuations %s", region)
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]model.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, region, status, input_rows, matched, fallback, unpriced,
			unmapped_region, COALESCE(output_path, ''), COALESCE(error, ''),
			started_at, completed_at
		FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var out []model.Run
	for rows.Next() {
		var r model.Run
		var region, status string
		var completed sql.NullTime
		if err := rows.Scan(&r.ID, &region, &status, &r.InputRows, &r.Matched,
			&r.Fallback, &r.Unpriced, &r.UnmappedRegion, &r.OutputPath,
			&r.Error, &r.StartedAt, &completed); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan run")
		}
		r.Region = model.Region(region)
		r.Status = model.RunStatus(status)
		if completed.Valid {
			t := completed.Time
			r.CompletedAt = &t
		}
		out = append(out, r)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate runs")
}

func checkRowsAffected(res sql.Result, runID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Errorf("sqlite: run %s not found", runID)
	}
	return nil
}
