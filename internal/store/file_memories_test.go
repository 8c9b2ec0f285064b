package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_AddEntry(t *testing.T) {
	repo := NewMemoryRepository(t.TempDir(), logger.Nop())
	ctx := context.Background()

	ts := time.Date(2026, 8, 30, 21, 15, 0, 0, time.UTC)

	t.Run("entries accumulate in insertion order", func(t *testing.T) {
		require.NoError(t, repo.AddEntry(ctx, "alice", "2026-08-30", models.MemoryEntry{Title: "first", Text: "one", TS: ts}))
		require.NoError(t, repo.AddEntry(ctx, "alice", "2026-08-30", models.MemoryEntry{Title: "second", Text: "two", TS: ts.Add(time.Minute)}))

		entries, err := repo.ListEntries(ctx, "alice", "2026-08-30")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "first", entries[0].Title)
		assert.Equal(t, "second", entries[1].Title)
	})

	t.Run("dates do not leak into each other", func(t *testing.T) {
		entries, err := repo.ListEntries(ctx, "alice", "2026-08-31")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("users do not share documents", func(t *testing.T) {
		entries, err := repo.ListEntries(ctx, "bob", "2026-08-30")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestMemoryRepository_SurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := NewMemoryRepository(dir, logger.Nop())
	require.NoError(t, first.AddEntry(ctx, "alice", "2026-08-30", models.MemoryEntry{Title: "kept", Text: "still here"}))

	second := NewMemoryRepository(dir, logger.Nop())
	entries, err := second.ListEntries(ctx, "alice", "2026-08-30")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0].Title)
}
