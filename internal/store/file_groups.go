package store

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/models"
)

// groupsDocument is the exact on-disk shape of groups.json.
type groupsDocument struct {
	Groups []models.Group `json:"groups"`
}

// groupRegistry is the flat-file implementation of [GroupRegistry].
//
// The uniqueness rules deliberately scan only the groups the acting user
// belongs to. Scanning the whole registry instead would wrongly prevent
// unrelated families from reusing common names like "Family"; scanning
// nothing would let one user pile up redundant groups. Both mistakes existed
// in earlier variants of this application.
type groupRegistry struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewGroupRegistry constructs a [GroupRegistry] persisting to groups.json
// inside dataDir.
func NewGroupRegistry(dataDir string, logger *logger.Logger) GroupRegistry {
	logger.Debug().Msg("GroupRegistry created")
	return &groupRegistry{
		path:   filepath.Join(dataDir, "groups.json"),
		logger: logger,
	}
}

func (r *groupRegistry) CreateGroup(ctx context.Context, creator string, group models.Group) (models.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc groupsDocument
	loadDocument(r.path, &doc, r.logger)

	for _, g := range doc.Groups {
		if !g.HasMember(creator) {
			continue
		}
		if g.GroupName == group.GroupName {
			r.logger.Debug().Str("creator", creator).Str("group_name", group.GroupName).Msg("duplicate group name in creator scope")
			return models.Group{}, ErrDuplicateGroupName
		}
		if g.SameMembers(group.Members) {
			r.logger.Debug().Str("creator", creator).Strs("members", group.Members).Msg("duplicate member set in creator scope")
			return models.Group{}, ErrDuplicateMembership
		}
	}

	doc.Groups = append(doc.Groups, group)
	if err := saveDocument(r.path, &doc); err != nil {
		r.logger.Err(err).Str("func", "*groupRegistry.CreateGroup").Msg("error persisting groups document")
		return models.Group{}, err
	}

	return group, nil
}

func (r *groupRegistry) GroupsWithMember(ctx context.Context, username string) ([]models.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc groupsDocument
	loadDocument(r.path, &doc, r.logger)

	var mine []models.Group
	for _, g := range doc.Groups {
		if g.HasMember(username) {
			mine = append(mine, g)
		}
	}

	return mine, nil
}

func (r *groupRegistry) AddMember(ctx context.Context, actor, groupName, member string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc groupsDocument
	loadDocument(r.path, &doc, r.logger)

	for i, g := range doc.Groups {
		if g.GroupName != groupName || !g.HasMember(actor) {
			continue
		}

		if g.HasMember(member) {
			// Matches the original UI behaviour: re-adding is a quiet no-op.
			return nil
		}

		doc.Groups[i].Members = append(doc.Groups[i].Members, member)
		if err := saveDocument(r.path, &doc); err != nil {
			r.logger.Err(err).Str("func", "*groupRegistry.AddMember").Msg("error persisting groups document")
			return err
		}

		return nil
	}

	return ErrGroupNotFound
}

func (r *groupRegistry) Leave(ctx context.Context, groupName, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc groupsDocument
	loadDocument(r.path, &doc, r.logger)

	for i, g := range doc.Groups {
		if g.GroupName != groupName || !g.HasMember(username) {
			continue
		}

		remaining := make([]string, 0, len(g.Members))
		for _, m := range g.Members {
			if m != username {
				remaining = append(remaining, m)
			}
		}

		if len(remaining) == 0 {
			// Last member out deletes the group entirely.
			doc.Groups = append(doc.Groups[:i], doc.Groups[i+1:]...)
		} else {
			doc.Groups[i].Members = remaining
		}

		if err := saveDocument(r.path, &doc); err != nil {
			r.logger.Err(err).Str("func", "*groupRegistry.Leave").Msg("error persisting groups document")
			return err
		}

		return nil
	}

	return ErrGroupNotFound
}
