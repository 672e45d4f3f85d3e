package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/deslop/internal/model"
)

// RecordSpin counts one phrasebook spin and, when learned is set, marks slop
// as learned. Marking the same phrase twice keeps the first timestamp.
func (s *SQLiteStorage) RecordSpin(ctx context.Context, slop string, learned bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if learned {
		if err := validateString(slop, "slop"); err != nil {
			return err
		}
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE phrasebook_stats
			SET spins = spins + 1, updated_at = CURRENT_TIMESTAMP
			WHERE id = 1
		`); err != nil {
			return fmt.Errorf("failed to update spin count: %w", err)
		}

		if !learned {
			return nil
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO phrasebook_learned (slop) VALUES (?)`, slop,
		); err != nil {
			return fmt.Errorf("failed to mark phrase learned: %w", err)
		}
		return nil
	})
}

// GetPhrasebookStats returns the spin and learned counters.
func (s *SQLiteStorage) GetPhrasebookStats(ctx context.Context) (*model.PhrasebookStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var stats model.PhrasebookStats
	err := s.db.QueryRowContext(ctx, `
		SELECT spins, updated_at, (SELECT COUNT(*) FROM phrasebook_learned)
		FROM phrasebook_stats
		WHERE id = 1
	`).Scan(&stats.Spins, &stats.UpdatedAt, &stats.Learned)
	if err != nil {
		return nil, fmt.Errorf("failed to get phrasebook stats: %w", err)
	}

	return &stats, nil
}

// GetLearned returns learned phrases, oldest first.
func (s *SQLiteStorage) GetLearned(ctx context.Context) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT slop
		FROM phrasebook_learned
		ORDER BY learned_at, slop
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query learned phrases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var learned []string
	for rows.Next() {
		var slop string
		if err := rows.Scan(&slop); err != nil {
			return nil, fmt.Errorf("failed to scan learned phrase: %w", err)
		}
		learned = append(learned, slop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating learned phrases: %w", err)
	}

	return learned, nil
}
