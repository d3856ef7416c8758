package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"liftreport/internal/core"
	"liftreport/internal/source"

	_ "modernc.org/sqlite"
)

const dateLayout = "2006-01-02 15:04:05"

// SQLiteRepository is the local cache of imported workout sets.
type SQLiteRepository struct {
	db *sql.DB
}

// Ensure interface conformance
var _ source.SetReader = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReplaceSets replaces the whole cache with the given sets in one
// transaction. Either every row lands or none does.
func (r *SQLiteRepository) ReplaceSets(ctx context.Context, sets []core.Set) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sets`); err != nil {
		return 0, fmt.Errorf("clear sets: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sets (logged_at, exercise_name, weight_lbs, reps) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range sets {
		if err := s.Validate(); err != nil {
			return 0, fmt.Errorf("invalid set (%s %q): %w", s.Date.DayKey(), s.Exercise, err)
		}
		if _, err := stmt.ExecContext(ctx, s.Date.Format(dateLayout), s.Exercise, s.Weight, s.Reps); err != nil {
			return 0, fmt.Errorf("insert set: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	slog.InfoContext(ctx, "Replaced cached sets", "count", len(sets))
	return len(sets), nil
}

// ListSets implements source.SetReader.
func (r *SQLiteRepository) ListSets(ctx context.Context) ([]core.Set, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT logged_at, exercise_name, weight_lbs, reps FROM sets ORDER BY logged_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	var sets []core.Set
	for rows.Next() {
		var (
			loggedAt string
			s        core.Set
		)
		if err := rows.Scan(&loggedAt, &s.Exercise, &s.Weight, &s.Reps); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		t, err := time.Parse(dateLayout, loggedAt)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at %q: %w", loggedAt, err)
		}
		s.Date = core.Date{Time: t}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sets: %w", err)
	}
	return sets, nil
}

// CountSets returns the number of cached sets.
func (r *SQLiteRepository) CountSets(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sets: %w", err)
	}
	return n, nil
}
