package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidTier  = errors.New("invalid tier")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTier accepts only the tiers that support wholesale overrides.
func validateTier(tier model.CategoryName) error {
	switch tier {
	case model.CategoryTier1, model.CategoryTier2, model.CategoryTier3:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidTier, tier)
}

// validateLiterals rejects blank override entries. Syntax is checked when the
// catalog is built, where bad entries are dropped rather than refused.
func validateLiterals(literals []string) error {
	for i, lit := range literals {
		if strings.TrimSpace(lit) == "" {
			return fmt.Errorf("%w: literal at index %d is empty", common.ErrInvalidPattern, i)
		}
	}
	return nil
}

// validateScanRun validates a scan run before it is saved.
func validateScanRun(run *model.ScanRun) error {
	if run == nil {
		return fmt.Errorf("%w: scan run", ErrNilParameter)
	}
	if err := validateString(run.Source, "source"); err != nil {
		return err
	}
	if run.StartedAt.IsZero() || run.FinishedAt.IsZero() {
		return fmt.Errorf("%w: scan run times are required", common.ErrInvalidConfig)
	}
	if run.FinishedAt.Before(run.StartedAt) {
		return fmt.Errorf("%w: scan run finished before it started", common.ErrInvalidConfig)
	}
	return nil
}
