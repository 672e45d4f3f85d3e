package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/deslop/internal/model"
)

// ReplaceTierOverride stores literals as the complete pattern list for tier.
// An empty list removes the override so the tier falls back to its built-ins.
func (s *SQLiteStorage) ReplaceTierOverride(ctx context.Context, tier model.CategoryName, literals []string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTier(tier); err != nil {
		return err
	}
	if err := validateLiterals(literals); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tier_overrides WHERE tier = ?`, string(tier)); err != nil {
			return fmt.Errorf("failed to clear tier override: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO tier_overrides (tier, position, literal) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for i, lit := range literals {
			if _, err := stmt.ExecContext(ctx, string(tier), i, lit); err != nil {
				return fmt.Errorf("failed to insert override literal %d: %w", i, err)
			}
		}
		return nil
	})
}

// GetTierOverrides returns stored overrides keyed by tier, in insertion order.
// Tiers without rows are absent from the map.
func (s *SQLiteStorage) GetTierOverrides(ctx context.Context) (map[model.CategoryName][]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT tier, literal
		FROM tier_overrides
		ORDER BY tier, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tier overrides: %w", err)
	}
	defer func() { _ = rows.Close() }()

	overrides := make(map[model.CategoryName][]string)
	for rows.Next() {
		var tier, literal string
		if err := rows.Scan(&tier, &literal); err != nil {
			return nil, fmt.Errorf("failed to scan tier override: %w", err)
		}
		name := model.CategoryName(tier)
		overrides[name] = append(overrides[name], literal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tier overrides: %w", err)
	}

	return overrides, nil
}

// ClearTierOverrides removes every tier override.
func (s *SQLiteStorage) ClearTierOverrides(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM tier_overrides`); err != nil {
		return fmt.Errorf("failed to clear tier overrides: %w", err)
	}
	return nil
}
