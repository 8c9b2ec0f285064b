package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/store"
	"github.com/MKhiriev/go-memory-calendar/models"
)

// groupService is the concrete implementation of GroupService.
type groupService struct {
	groupRegistry     store.GroupRegistry
	accountRepository store.AccountRepository

	logger *logger.Logger
}

// NewGroupService constructs a GroupService wired to the group registry and
// the account repository (needed to validate member usernames).
func NewGroupService(groups store.GroupRegistry, accounts store.AccountRepository, logger *logger.Logger) GroupService {
	return &groupService{
		groupRegistry:     groups,
		accountRepository: accounts,
		logger:            logger,
	}
}

// CreateGroup builds the proposed member list as {creator} ∪ others, with
// the creator first and duplicates removed, then delegates to the registry,
// which enforces the creator-scoped name and member-set uniqueness rules.
//
// Returns ErrEmptyGroupName when name is blank after trimming and
// ErrInvalidDataProvided when creator is empty.
func (s *groupService) CreateGroup(ctx context.Context, creator, name string, others []string) (models.Group, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if creator == "" {
		return models.Group{}, ErrInvalidDataProvided
	}
	if name == "" {
		log.Error().Str("creator", creator).Msg("blank group name")
		return models.Group{}, ErrEmptyGroupName
	}

	members := make([]string, 0, len(others)+1)
	seen := map[string]struct{}{creator: {}}
	members = append(members, creator)
	for _, m := range others {
		if _, ok := seen[m]; ok || m == "" {
			continue
		}
		seen[m] = struct{}{}
		members = append(members, m)
	}

	group, err := s.groupRegistry.CreateGroup(ctx, creator, models.Group{GroupName: name, Members: members})
	if err != nil {
		log.Err(err).Str("creator", creator).Str("group_name", name).Msg("group creation ended with error")
		return models.Group{}, fmt.Errorf("group creation ended with error: %w", err)
	}

	return group, nil
}

func (s *groupService) MyGroups(ctx context.Context, username string) ([]models.Group, error) {
	if username == "" {
		return nil, ErrInvalidDataProvided
	}

	return s.groupRegistry.GroupsWithMember(ctx, username)
}

// AddMember verifies that member has an account before delegating to the
// registry. The original UI only offered existing usernames in its picker,
// so the account check belongs server-side now that any caller can hit the
// operation directly. Adding an existing member stays a quiet no-op.
func (s *groupService) AddMember(ctx context.Context, actor, groupName, member string) error {
	log := logger.FromContext(ctx)

	if actor == "" || groupName == "" || member == "" {
		return ErrInvalidDataProvided
	}

	if _, err := s.accountRepository.FindUserByUsername(ctx, member); err != nil {
		log.Err(err).Str("member", member).Msg("member account lookup failed")
		return fmt.Errorf("member account lookup failed: %w", err)
	}

	if err := s.groupRegistry.AddMember(ctx, actor, groupName, member); err != nil {
		log.Err(err).Str("actor", actor).Str("group_name", groupName).Msg("adding member ended with error")
		return fmt.Errorf("adding member ended with error: %w", err)
	}

	return nil
}

func (s *groupService) LeaveGroup(ctx context.Context, groupName, username string) error {
	log := logger.FromContext(ctx)

	if groupName == "" || username == "" {
		return ErrInvalidDataProvided
	}

	if err := s.groupRegistry.Leave(ctx, groupName, username); err != nil {
		log.Err(err).Str("username", username).Str("group_name", groupName).Msg("leaving group ended with error")
		return fmt.Errorf("leaving group ended with error: %w", err)
	}

	return nil
}

// Receivers computes the monitoring audience for a sender: every member of
// every group the sender belongs to, minus the sender, sorted ascending.
func (s *groupService) Receivers(ctx context.Context, sender string) ([]string, error) {
	if sender == "" {
		return nil, ErrInvalidDataProvided
	}

	mine, err := s.groupRegistry.GroupsWithMember(ctx, sender)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{})
	for _, g := range mine {
		for _, m := range g.Members {
			if m != sender {
				set[m] = struct{}{}
			}
		}
	}

	receivers := make([]string, 0, len(set))
	for m := range set {
		receivers = append(receivers, m)
	}
	sort.Strings(receivers)

	return receivers, nil
}
