// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/deslop/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Tier override operations
	ReplaceTierOverride(ctx context.Context, tier model.CategoryName, literals []string) error
	GetTierOverrides(ctx context.Context) (map[model.CategoryName][]string, error)
	ClearTierOverrides(ctx context.Context) error

	// Custom pattern operations
	AddCustomPattern(ctx context.Context, pattern model.CustomPattern) (*model.CustomPatternRecord, error)
	GetCustomPatterns(ctx context.Context) ([]model.CustomPatternRecord, error)
	DeleteCustomPattern(ctx context.Context, id int64) error
	ClearCustomPatterns(ctx context.Context) error

	// Whitelist operations
	AddWhitelistEntry(ctx context.Context, entry string) error
	GetWhitelist(ctx context.Context) ([]model.WhitelistRecord, error)
	DeleteWhitelistEntry(ctx context.Context, entry string) error

	// Phrasebook progress
	RecordSpin(ctx context.Context, slop string, learned bool) error
	GetPhrasebookStats(ctx context.Context) (*model.PhrasebookStats, error)
	GetLearned(ctx context.Context) ([]string, error)

	// Scan history
	SaveScanRun(ctx context.Context, run *model.ScanRun) error
	GetScanRuns(ctx context.Context, limit int) ([]model.ScanRun, error)
	GetScanRun(ctx context.Context, id string) (*model.ScanRun, error)

	// Maintenance
	Migrate(ctx context.Context) error
	Close() error
}
