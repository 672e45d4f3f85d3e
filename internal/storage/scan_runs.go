package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Veraticus/deslop/internal/model"
	"github.com/google/uuid"
)

const defaultScanRunLimit = 20

const scanRunColumns = `id, source, context, sensitivity, elements, clean, borderline, blocked, skipped, started_at, finished_at`

// SaveScanRun stores a scan summary, assigning an ID when the run has none.
func (s *SQLiteStorage) SaveScanRun(ctx context.Context, run *model.ScanRun) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateScanRun(run); err != nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scan_runs (`+scanRunColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Source, string(run.Context), run.Sensitivity,
		run.Elements, run.Clean, run.Borderline, run.Blocked, run.Skipped,
		run.StartedAt.UTC(), run.FinishedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to save scan run: %w", err)
	}
	return nil
}

// GetScanRuns returns the most recent runs, newest first.
// A non-positive limit uses the default.
func (s *SQLiteStorage) GetScanRuns(ctx context.Context, limit int) ([]model.ScanRun, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultScanRunLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+scanRunColumns+`
		FROM scan_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.ScanRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scan runs: %w", err)
	}

	return runs, nil
}

// GetScanRun returns a single run by ID.
func (s *SQLiteStorage) GetScanRun(ctx context.Context, id string) (*model.ScanRun, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+scanRunColumns+` FROM scan_runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("scan run", id)
	}
	return run, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*model.ScanRun, error) {
	var run model.ScanRun
	var scanContext string
	err := row.Scan(&run.ID, &run.Source, &scanContext, &run.Sensitivity,
		&run.Elements, &run.Clean, &run.Borderline, &run.Blocked, &run.Skipped,
		&run.StartedAt, &run.FinishedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan scan run: %w", err)
	}
	run.Context = model.ScanContext(scanContext)
	return &run, nil
}
