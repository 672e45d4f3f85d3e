package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_TierOverrides(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	overrides, err := store.GetTierOverrides(ctx)
	require.NoError(t, err)
	assert.Empty(t, overrides)

	require.NoError(t, store.ReplaceTierOverride(ctx, model.CategoryTier1, []string{"/zeta/gi", "/alpha/gi"}))
	require.NoError(t, store.ReplaceTierOverride(ctx, model.CategoryTier2, []string{"/synergy/gi"}))

	overrides, err = store.GetTierOverrides(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/zeta/gi", "/alpha/gi"}, overrides[model.CategoryTier1], "insertion order is kept")
	assert.Equal(t, []string{"/synergy/gi"}, overrides[model.CategoryTier2])
	_, hasTier3 := overrides[model.CategoryTier3]
	assert.False(t, hasTier3)

	// Replacing swaps the whole list.
	require.NoError(t, store.ReplaceTierOverride(ctx, model.CategoryTier1, []string{"/omega/g"}))
	overrides, err = store.GetTierOverrides(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/omega/g"}, overrides[model.CategoryTier1])

	// An empty list drops the override.
	require.NoError(t, store.ReplaceTierOverride(ctx, model.CategoryTier2, nil))
	overrides, err = store.GetTierOverrides(ctx)
	require.NoError(t, err)
	_, hasTier2 := overrides[model.CategoryTier2]
	assert.False(t, hasTier2)

	require.NoError(t, store.ClearTierOverrides(ctx))
	overrides, err = store.GetTierOverrides(ctx)
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestSQLiteStorage_ReplaceTierOverride_Invalid(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		wantErr  error
		name     string
		tier     model.CategoryName
		literals []string
	}{
		{name: "non tier category", tier: model.CategoryEmoji, literals: []string{"/x/g"}, wantErr: ErrInvalidTier},
		{name: "unknown tier", tier: "tier9", literals: []string{"/x/g"}, wantErr: ErrInvalidTier},
		{name: "blank literal", tier: model.CategoryTier1, literals: []string{"/x/g", " "}, wantErr: common.ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.ReplaceTierOverride(ctx, tt.tier, tt.literals)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	overrides, err := store.GetTierOverrides(ctx)
	require.NoError(t, err)
	assert.Empty(t, overrides, "failed writes leave nothing behind")
}
