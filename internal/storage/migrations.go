package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

func execAll(tx *sql.Tx, queries []string) error {
	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query '%s': %w", query, err)
		}
	}
	return nil
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			return execAll(tx, []string{
				`CREATE TABLE IF NOT EXISTS tier_overrides (
					tier TEXT NOT NULL,
					position INTEGER NOT NULL,
					literal TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					PRIMARY KEY (tier, position)
				)`,

				`CREATE TABLE IF NOT EXISTS custom_patterns (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					literal TEXT UNIQUE NOT NULL,
					weight INTEGER NOT NULL CHECK (weight >= 0),
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS whitelist (
					entry TEXT PRIMARY KEY,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			})
		},
	},
	{
		Version:     2,
		Description: "Add phrasebook progress",
		Up: func(tx *sql.Tx) error {
			return execAll(tx, []string{
				`CREATE TABLE IF NOT EXISTS phrasebook_stats (
					id INTEGER PRIMARY KEY CHECK (id = 1),
					spins INTEGER NOT NULL DEFAULT 0,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`INSERT OR IGNORE INTO phrasebook_stats (id, spins) VALUES (1, 0)`,

				`CREATE TABLE IF NOT EXISTS phrasebook_learned (
					slop TEXT PRIMARY KEY,
					learned_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			})
		},
	},
	{
		Version:     3,
		Description: "Add scan history",
		Up: func(tx *sql.Tx) error {
			return execAll(tx, []string{
				`CREATE TABLE IF NOT EXISTS scan_runs (
					id TEXT PRIMARY KEY,
					source TEXT NOT NULL,
					context TEXT NOT NULL DEFAULT '',
					sensitivity INTEGER NOT NULL,
					elements INTEGER NOT NULL DEFAULT 0,
					clean INTEGER NOT NULL DEFAULT 0,
					borderline INTEGER NOT NULL DEFAULT 0,
					blocked INTEGER NOT NULL DEFAULT 0,
					skipped INTEGER NOT NULL DEFAULT 0,
					started_at DATETIME NOT NULL,
					finished_at DATETIME NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_scan_runs_started_at ON scan_runs(started_at)`,
			})
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	// Get current version
	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Debug("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	// Verify we're at the expected schema version
	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
