package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_Phrasebook(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	stats, err := store.GetPhrasebookStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Spins)
	assert.Zero(t, stats.Learned)

	require.NoError(t, store.RecordSpin(ctx, "delve", false))
	require.NoError(t, store.RecordSpin(ctx, "delve", true))
	require.NoError(t, store.RecordSpin(ctx, "synergy", true))
	require.NoError(t, store.RecordSpin(ctx, "delve", true))

	stats, err = store.GetPhrasebookStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Spins)
	assert.Equal(t, 2, stats.Learned)

	learned, err := store.GetLearned(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"delve", "synergy"}, learned)
}

func TestSQLiteStorage_RecordSpin_LearnedNeedsPhrase(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	assert.ErrorIs(t, store.RecordSpin(ctx, "", true), ErrEmptyString)
	require.NoError(t, store.RecordSpin(ctx, "", false))

	stats, err := store.GetPhrasebookStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Spins)
}
