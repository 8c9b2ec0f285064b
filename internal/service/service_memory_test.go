package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-memory-calendar/internal/config"
	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/store"
	"github.com/MKhiriev/go-memory-calendar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryService(t *testing.T) *memoryService {
	t.Helper()

	storages, err := store.NewStorages(config.Storage{DataDir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)

	return NewMemoryService(storages.MemoryRepository, storages.DecorationRepository, logger.Nop()).(*memoryService)
}

func TestMemoryService_AddEntry(t *testing.T) {
	memories := newMemoryService(t)
	ctx := context.Background()

	frozen := time.Date(2026, 8, 30, 20, 0, 0, 0, time.UTC)
	memories.now = func() time.Time { return frozen }

	t.Run("entry is trimmed and stamped with the server clock", func(t *testing.T) {
		entry, err := memories.AddEntry(ctx, "alice", "2026-08-30", "  Picnic  ", "  We went to the lake.  ")
		require.NoError(t, err)
		assert.Equal(t, "Picnic", entry.Title)
		assert.Equal(t, "We went to the lake.", entry.Text)
		assert.True(t, entry.TS.Equal(frozen))
	})

	t.Run("entries append in order", func(t *testing.T) {
		_, err := memories.AddEntry(ctx, "alice", "2026-08-30", "Dinner", "Homemade pasta.")
		require.NoError(t, err)

		entries, err := memories.ListEntries(ctx, "alice", "2026-08-30")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Picnic", entries[0].Title)
		assert.Equal(t, "Dinner", entries[1].Title)
	})

	t.Run("blank title or text is rejected", func(t *testing.T) {
		_, err := memories.AddEntry(ctx, "alice", "2026-08-30", "   ", "text")
		require.ErrorIs(t, err, ErrValidationEmptyMemoryFields)

		_, err = memories.AddEntry(ctx, "alice", "2026-08-30", "title", "   ")
		require.ErrorIs(t, err, ErrValidationEmptyMemoryFields)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := memories.AddEntry(ctx, "alice", "August 30", "title", "text")
		require.ErrorIs(t, err, ErrValidationBadDate)
	})

	t.Run("empty username is rejected", func(t *testing.T) {
		_, err := memories.AddEntry(ctx, "", "2026-08-30", "title", "text")
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestMemoryService_Decorations(t *testing.T) {
	memories := newMemoryService(t)
	ctx := context.Background()

	deco := models.Decoration{BG: "#ffe4e1", Radius: 8, Stickers: []string{"sun"}}

	t.Run("absent decoration reads as not found", func(t *testing.T) {
		_, found, err := memories.GetDecoration(ctx, "alice", "2026-08-30")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("save then get round-trips", func(t *testing.T) {
		require.NoError(t, memories.SaveDecoration(ctx, "alice", "2026-08-30", deco))

		got, found, err := memories.GetDecoration(ctx, "alice", "2026-08-30")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, deco, got)
	})

	t.Run("saving again overwrites quietly", func(t *testing.T) {
		require.NoError(t, memories.SaveDecoration(ctx, "alice", "2026-08-30", models.Decoration{BG: "#000000"}))

		got, _, err := memories.GetDecoration(ctx, "alice", "2026-08-30")
		require.NoError(t, err)
		assert.Equal(t, "#000000", got.BG)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		err := memories.SaveDecoration(ctx, "alice", "someday", deco)
		require.ErrorIs(t, err, ErrValidationBadDate)

		_, _, err = memories.GetDecoration(ctx, "alice", "someday")
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}
