package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-memory-calendar/internal/config"
	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/store"
	"github.com/MKhiriev/go-memory-calendar/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroupFixture(t *testing.T) (GroupService, AuthService) {
	t.Helper()

	storages, err := store.NewStorages(config.Storage{DataDir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)

	groups := NewGroupService(storages.GroupRegistry, storages.AccountRepository, logger.Nop())
	auth := NewAuthService(storages.AccountRepository, storages.SessionRepository, testAppConfig(), logger.Nop())

	return groups, auth
}

func registerAll(t *testing.T, auth AuthService, users map[string]models.Role) {
	t.Helper()
	for name, role := range users {
		_, err := auth.Register(context.Background(), name, "pw123", role)
		require.NoError(t, err)
	}
}

func TestGroupService_CreateGroup(t *testing.T) {
	groups, _ := newGroupFixture(t)
	ctx := context.Background()

	t.Run("creator is prepended and duplicates dropped", func(t *testing.T) {
		group, err := groups.CreateGroup(ctx, "alice", "Family", []string{"bob", "alice", "bob", ""})
		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "bob"}, group.Members)
	})

	t.Run("name is trimmed", func(t *testing.T) {
		group, err := groups.CreateGroup(ctx, "alice", "  Friends  ", []string{"carol"})
		require.NoError(t, err)
		assert.Equal(t, "Friends", group.GroupName)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := groups.CreateGroup(ctx, "alice", "   ", []string{"bob"})
		require.ErrorIs(t, err, ErrEmptyGroupName)
	})

	t.Run("duplicate name in creator scope is rejected", func(t *testing.T) {
		_, err := groups.CreateGroup(ctx, "alice", "Family", []string{"carol"})
		require.ErrorIs(t, err, store.ErrDuplicateGroupName)
	})

	t.Run("duplicate member set in creator scope is rejected", func(t *testing.T) {
		_, err := groups.CreateGroup(ctx, "alice", "Household", []string{"bob"})
		require.ErrorIs(t, err, store.ErrDuplicateMembership)
	})
}

func TestGroupService_AddMember(t *testing.T) {
	groups, auth := newGroupFixture(t)
	ctx := context.Background()

	registerAll(t, auth, map[string]models.Role{
		"alice": models.RoleSender,
		"bob":   models.RoleReceiver,
	})

	_, err := groups.CreateGroup(ctx, "alice", "Family", nil)
	require.NoError(t, err)

	t.Run("registered member is added", func(t *testing.T) {
		require.NoError(t, groups.AddMember(ctx, "alice", "Family", "bob"))

		mine, err := groups.MyGroups(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, mine, 1)
	})

	t.Run("unknown account is rejected", func(t *testing.T) {
		err := groups.AddMember(ctx, "alice", "Family", "stranger")
		require.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("empty arguments are rejected", func(t *testing.T) {
		err := groups.AddMember(ctx, "", "Family", "bob")
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestGroupService_Receivers(t *testing.T) {
	groups, _ := newGroupFixture(t)
	ctx := context.Background()

	_, err := groups.CreateGroup(ctx, "alice", "Family", []string{"bob", "carol"})
	require.NoError(t, err)
	_, err = groups.CreateGroup(ctx, "alice", "Friends", []string{"carol", "dave"}) // carol overlaps
	require.NoError(t, err)
	_, err = groups.CreateGroup(ctx, "erin", "Family", []string{"frank"})
	require.NoError(t, err)

	t.Run("union of own groups minus self, sorted", func(t *testing.T) {
		receivers, err := groups.Receivers(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []string{"bob", "carol", "dave"}, receivers)
	})

	t.Run("other users' groups are invisible", func(t *testing.T) {
		receivers, err := groups.Receivers(ctx, "erin")
		require.NoError(t, err)
		assert.Equal(t, []string{"frank"}, receivers)
	})

	t.Run("groupless sender has no receivers", func(t *testing.T) {
		receivers, err := groups.Receivers(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, receivers)
	})
}

func TestGroupService_LeaveGroup(t *testing.T) {
	groups, _ := newGroupFixture(t)
	ctx := context.Background()

	_, err := groups.CreateGroup(ctx, "alice", "Family", []string{"bob"})
	require.NoError(t, err)

	require.NoError(t, groups.LeaveGroup(ctx, "Family", "bob"))

	mine, err := groups.MyGroups(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, mine)

	t.Run("leaving twice errors", func(t *testing.T) {
		err := groups.LeaveGroup(ctx, "Family", "bob")
		require.ErrorIs(t, err, store.ErrGroupNotFound)
	})
}
