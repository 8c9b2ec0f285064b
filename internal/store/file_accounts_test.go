package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateUser(t *testing.T) {
	repo := NewAccountRepository(t.TempDir(), logger.Nop())
	ctx := context.Background()

	alice := models.User{Username: "alice", Password: "hash-a", Role: models.RoleReceiver}

	t.Run("first registration succeeds", func(t *testing.T) {
		created, err := repo.CreateUser(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, alice, created)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		_, err := repo.CreateUser(ctx, models.User{Username: "alice", Password: "other", Role: models.RoleSender})
		require.ErrorIs(t, err, ErrUsernameAlreadyExists)
	})

	t.Run("registered user is findable", func(t *testing.T) {
		found, err := repo.FindUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice, found)
	})
}

func TestAccountRepository_FindUserByUsername_Unknown(t *testing.T) {
	repo := NewAccountRepository(t.TempDir(), logger.Nop())

	_, err := repo.FindUserByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAccountRepository_ListUsernames(t *testing.T) {
	repo := NewAccountRepository(t.TempDir(), logger.Nop())
	ctx := context.Background()

	t.Run("empty store lists nothing", func(t *testing.T) {
		usernames, err := repo.ListUsernames(ctx)
		require.NoError(t, err)
		assert.Empty(t, usernames)
	})

	t.Run("lists all registered accounts", func(t *testing.T) {
		for _, name := range []string{"alice", "bob", "carol"} {
			_, err := repo.CreateUser(ctx, models.User{Username: name, Password: "x", Role: models.RoleReceiver})
			require.NoError(t, err)
		}

		usernames, err := repo.ListUsernames(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob", "carol"}, usernames)
	})
}

func TestAccountRepository_SurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := NewAccountRepository(dir, logger.Nop())
	_, err := first.CreateUser(ctx, models.User{Username: "alice", Password: "hash-a", Role: models.RoleSender})
	require.NoError(t, err)

	// A fresh repository over the same directory sees the same accounts.
	second := NewAccountRepository(dir, logger.Nop())
	found, err := second.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSender, found.Role)
}

func TestAccountRepository_CorruptDocumentReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "accounts.json"), []byte("{not json"), 0o644))

	repo := NewAccountRepository(dir, logger.Nop())
	ctx := context.Background()

	usernames, err := repo.ListUsernames(ctx)
	require.NoError(t, err)
	assert.Empty(t, usernames)

	// The store stays writable after degrading to the empty default.
	_, err = repo.CreateUser(ctx, models.User{Username: "alice", Password: "x", Role: models.RoleReceiver})
	require.NoError(t, err)
}
