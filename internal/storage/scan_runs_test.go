package storage

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScanRun(source string, started time.Time) *model.ScanRun {
	return &model.ScanRun{
		Source:      source,
		Context:     model.ContextGeneric,
		Sensitivity: 3,
		Elements:    10,
		Clean:       6,
		Borderline:  2,
		Blocked:     1,
		Skipped:     1,
		StartedAt:   started,
		FinishedAt:  started.Add(2 * time.Second),
	}
}

func TestSQLiteStorage_ScanRuns(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	older := newScanRun("docs/**/*.md", base)
	newer := newScanRun("comments.txt", base.Add(time.Hour))
	newer.Context = model.ContextYouTube
	newer.ID = "fixed-id"

	require.NoError(t, store.SaveScanRun(ctx, older))
	require.NoError(t, store.SaveScanRun(ctx, newer))
	assert.NotEmpty(t, older.ID, "an ID is assigned")
	assert.Equal(t, "fixed-id", newer.ID)

	runs, err := store.GetScanRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "fixed-id", runs[0].ID, "newest first")
	assert.Equal(t, model.ContextYouTube, runs[0].Context)

	runs, err = store.GetScanRuns(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	got, err := store.GetScanRun(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, older.Source, got.Source)
	assert.Equal(t, 10, got.Elements)
	assert.Equal(t, 6, got.Clean)
	assert.Equal(t, 2, got.Borderline)
	assert.Equal(t, 1, got.Blocked)
	assert.Equal(t, 1, got.Skipped)
	assert.WithinDuration(t, older.StartedAt, got.StartedAt, time.Second)
	assert.WithinDuration(t, older.FinishedAt, got.FinishedAt, time.Second)

	_, err = store.GetScanRun(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStorage_SaveScanRun_Invalid(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	now := time.Now()
	backwards := newScanRun("x", now)
	backwards.FinishedAt = now.Add(-time.Minute)

	tests := []struct {
		run     *model.ScanRun
		wantErr error
		name    string
	}{
		{name: "nil run", run: nil, wantErr: ErrNilParameter},
		{name: "no source", run: newScanRun("", now), wantErr: ErrEmptyString},
		{name: "no times", run: &model.ScanRun{Source: "x"}, wantErr: common.ErrInvalidConfig},
		{name: "finished before start", run: backwards, wantErr: common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, store.SaveScanRun(ctx, tt.run), tt.wantErr)
		})
	}
}
