package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/pattern"
)

// AddCustomPattern stores a new custom pattern after checking it compiles.
func (s *SQLiteStorage) AddCustomPattern(ctx context.Context, p model.CustomPattern) (*model.CustomPatternRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if _, err := pattern.Parse(p.Pattern); err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO custom_patterns (literal, weight)
		VALUES (?, ?)
	`, p.Pattern, p.Weight)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: custom pattern %s", common.ErrDuplicateEntry, p.Pattern)
		}
		return nil, fmt.Errorf("failed to create custom pattern: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get custom pattern ID: %w", err)
	}

	record := &model.CustomPatternRecord{ID: id, CustomPattern: p}
	if err := s.db.QueryRowContext(ctx,
		`SELECT created_at FROM custom_patterns WHERE id = ?`, id,
	).Scan(&record.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to read custom pattern: %w", err)
	}

	return record, nil
}

// GetCustomPatterns returns every custom pattern in creation order.
func (s *SQLiteStorage) GetCustomPatterns(ctx context.Context) ([]model.CustomPatternRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, literal, weight, created_at
		FROM custom_patterns
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom patterns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.CustomPatternRecord
	for rows.Next() {
		var r model.CustomPatternRecord
		if err := rows.Scan(&r.ID, &r.Pattern, &r.Weight, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan custom pattern: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating custom patterns: %w", err)
	}

	return records, nil
}

// DeleteCustomPattern removes the custom pattern with the given ID.
func (s *SQLiteStorage) DeleteCustomPattern(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM custom_patterns WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete custom pattern: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return notFound("custom pattern", id)
	}

	return nil
}

// ClearCustomPatterns removes every custom pattern.
func (s *SQLiteStorage) ClearCustomPatterns(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM custom_patterns`); err != nil {
		return fmt.Errorf("failed to clear custom patterns: %w", err)
	}
	return nil
}
