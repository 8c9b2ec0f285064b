package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecorationRepository_SaveAndFind(t *testing.T) {
	repo := NewDecorationRepository(t.TempDir(), logger.Nop())
	ctx := context.Background()

	deco := models.Decoration{BG: "#ffe4e1", Radius: 12, Stickers: []string{"star", "heart"}}

	t.Run("absent decoration is not found", func(t *testing.T) {
		_, found, err := repo.Find(ctx, "alice", "2026-08-30")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("saved decoration loads back", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "alice", "2026-08-30", deco))

		got, found, err := repo.Find(ctx, "alice", "2026-08-30")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, deco, got)
	})

	t.Run("saving again overwrites", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "alice", "2026-08-30", models.Decoration{BG: "#ffffff"}))

		got, found, err := repo.Find(ctx, "alice", "2026-08-30")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "#ffffff", got.BG)
		assert.Empty(t, got.Stickers)
	})

	t.Run("users do not share decorations", func(t *testing.T) {
		_, found, err := repo.Find(ctx, "bob", "2026-08-30")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
