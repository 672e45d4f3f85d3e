// Package testutil provides test helpers for packages that need a seeded store.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/service"
	"github.com/Veraticus/deslop/internal/storage"
)

// TestDB represents a migrated in-memory database.
type TestDB struct {
	Storage service.Storage
	t       *testing.T
}

// TestDBOptions seeds a test database.
type TestDBOptions struct {
	CustomSetup    func(context.Context, service.Storage) error
	TierOverrides  map[model.CategoryName][]string
	CustomPatterns []model.CustomPattern
	Whitelist      []string
	SkipMigrations bool
}

// SetupTestDB creates a new in-memory test database.
// It automatically handles migrations and cleanup.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{})
}

// SetupTestDBWithOptions creates a test database with custom options.
//
// Example:
//
//	db := testutil.SetupTestDBWithOptions(t, testutil.TestDBOptions{
//		TierOverrides: map[model.CategoryName][]string{
//			model.CategoryTier2: {`/\bwidget\b/gi`},
//		},
//		Whitelist: []string{"example.com"},
//	})
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(storage.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	ctx := context.Background()

	if !opts.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	db := &TestDB{Storage: store, t: t}
	for tier, literals := range opts.TierOverrides {
		db.SeedTierOverride(tier, literals...)
	}
	for _, cp := range opts.CustomPatterns {
		db.SeedCustomPattern(cp.Pattern, cp.Weight)
	}
	for _, entry := range opts.Whitelist {
		db.SeedWhitelist(entry)
	}

	if opts.CustomSetup != nil {
		if err := opts.CustomSetup(ctx, store); err != nil {
			t.Fatalf("custom setup failed: %v", err)
		}
	}

	return db
}

// SeedTierOverride replaces a tier's stored patterns or fails the test.
func (db *TestDB) SeedTierOverride(tier model.CategoryName, literals ...string) {
	db.t.Helper()
	if err := db.Storage.ReplaceTierOverride(context.Background(), tier, literals); err != nil {
		db.t.Fatalf("failed to seed %s override: %v", tier, err)
	}
}

// SeedCustomPattern stores a custom pattern or fails the test.
func (db *TestDB) SeedCustomPattern(literal string, weight int) *model.CustomPatternRecord {
	db.t.Helper()
	record, err := db.Storage.AddCustomPattern(context.Background(), model.CustomPattern{Pattern: literal, Weight: weight})
	if err != nil {
		db.t.Fatalf("failed to seed custom pattern %q: %v", literal, err)
	}
	return record
}

// SeedWhitelist stores a whitelist entry or fails the test.
func (db *TestDB) SeedWhitelist(entry string) {
	db.t.Helper()
	if err := db.Storage.AddWhitelistEntry(context.Background(), entry); err != nil {
		db.t.Fatalf("failed to seed whitelist entry %q: %v", entry, err)
	}
}
