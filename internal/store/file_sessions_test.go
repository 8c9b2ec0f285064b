package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Lifecycle(t *testing.T) {
	repo := NewSessionRepository(t.TempDir(), logger.Nop())
	ctx := context.Background()

	t.Run("empty store has no session", func(t *testing.T) {
		_, found, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("saved session loads back", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, models.Session{Username: "alice", Role: models.RoleSender}))

		session, found, err := repo.Load(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "alice", session.Username)
		assert.Equal(t, models.RoleSender, session.Role)
	})

	t.Run("a new login overwrites the previous session", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, models.Session{Username: "bob", Role: models.RoleReceiver}))

		session, found, err := repo.Load(ctx)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "bob", session.Username)
	})

	t.Run("clear removes the session", func(t *testing.T) {
		require.NoError(t, repo.Clear(ctx))

		_, found, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("clearing twice is not an error", func(t *testing.T) {
		require.NoError(t, repo.Clear(ctx))
	})
}
