package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/whitelist"
)

// AddWhitelistEntry stores a normalized whitelist entry.
func (s *SQLiteStorage) AddWhitelistEntry(ctx context.Context, entry string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	normalized := whitelist.NormalizeEntry(entry)
	if err := validateString(normalized, "entry"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO whitelist (entry) VALUES (?)`, normalized)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: whitelist entry %s", common.ErrDuplicateEntry, normalized)
		}
		return fmt.Errorf("failed to add whitelist entry: %w", err)
	}
	return nil
}

// GetWhitelist returns all entries sorted alphabetically.
func (s *SQLiteStorage) GetWhitelist(ctx context.Context) ([]model.WhitelistRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT entry, created_at
		FROM whitelist
		ORDER BY entry
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query whitelist: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.WhitelistRecord
	for rows.Next() {
		var r model.WhitelistRecord
		if err := rows.Scan(&r.Entry, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan whitelist entry: %w", err)
		}
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating whitelist: %w", err)
	}

	return entries, nil
}

// DeleteWhitelistEntry removes an entry, matching it after normalization.
func (s *SQLiteStorage) DeleteWhitelistEntry(ctx context.Context, entry string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	normalized := whitelist.NormalizeEntry(entry)
	if err := validateString(normalized, "entry"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM whitelist WHERE entry = ?`, normalized)
	if err != nil {
		return fmt.Errorf("failed to delete whitelist entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return notFound("whitelist entry", normalized)
	}
	return nil
}
