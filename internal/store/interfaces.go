package store

import (
	"context"

	"github.com/MKhiriev/go-memory-calendar/models"
)

// AccountRepository persists user accounts in accounts.json.
type AccountRepository interface {
	// CreateUser appends a new user. The password must already be hashed by
	// the caller. Returns ErrUsernameAlreadyExists on a case-sensitive
	// username collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the exact username or
	// ErrUserNotFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// ListUsernames returns every known username in document order.
	ListUsernames(ctx context.Context) ([]string, error)
}

// SessionRepository persists the singleton logged-in identity in sessions.json.
type SessionRepository interface {
	// Save overwrites the persisted session with s.
	Save(ctx context.Context, s models.Session) error

	// Load returns the persisted session, with found=false when none exists.
	Load(ctx context.Context) (session models.Session, found bool, err error)

	// Clear deletes the persisted session. Clearing an absent session is not
	// an error.
	Clear(ctx context.Context) error
}

// GroupRegistry persists named member groups in groups.json.
//
// Name and member-set uniqueness are scoped to the acting user's own
// memberships; see the sentinel errors in errors.go.
type GroupRegistry interface {
	// CreateGroup appends a group with the given members (the creator is
	// expected to be members[0]). Returns ErrDuplicateGroupName or
	// ErrDuplicateMembership when the scoped uniqueness rules are violated.
	CreateGroup(ctx context.Context, creator string, group models.Group) (models.Group, error)

	// GroupsWithMember returns all groups containing username, in document
	// order.
	GroupsWithMember(ctx context.Context, username string) ([]models.Group, error)

	// AddMember appends member to the actor's group named groupName.
	// Adding an existing member is a no-op. Returns ErrGroupNotFound when
	// the actor has no group with that name.
	AddMember(ctx context.Context, actor, groupName, member string) error

	// Leave removes username from their group named groupName; when the
	// member list becomes empty the group is deleted from the registry.
	Leave(ctx context.Context, groupName, username string) error
}

// RecordRepository persists daily self-assessment records in diagnosis.json.
type RecordRepository interface {
	// SubmitRecord appends rec. Returns ErrAlreadySubmitted when a record
	// for (rec.Username, rec.Date) already exists.
	SubmitRecord(ctx context.Context, rec models.DailyRecord) error

	// HasSubmitted reports whether a record exists for (username, date).
	HasSubmitted(ctx context.Context, username, date string) (bool, error)

	// FindByUsernames returns all records whose username is in usernames,
	// sorted by (date, username) descending for display.
	FindByUsernames(ctx context.Context, usernames []string) ([]models.DailyRecord, error)
}

// QuestionRepository persists sender-authored questions in questions.json.
type QuestionRepository interface {
	// CreateQuestion appends q with a freshly assigned id and returns the
	// stored question.
	CreateQuestion(ctx context.Context, q models.CustomQuestion) (models.CustomQuestion, error)

	// FindByTarget returns all questions targeting username, in creation
	// order.
	FindByTarget(ctx context.Context, username string) ([]models.CustomQuestion, error)
}

// MemoryRepository persists per-user date-keyed memory entries in
// memories/<username>.json.
type MemoryRepository interface {
	// AddEntry appends entry to the list stored under (username, date).
	AddEntry(ctx context.Context, username, date string, entry models.MemoryEntry) error

	// ListEntries returns the entries for (username, date), empty when none
	// exist.
	ListEntries(ctx context.Context, username, date string) ([]models.MemoryEntry, error)
}

// DecorationRepository persists per-user date-keyed decorations in
// decos/<username>.json.
type DecorationRepository interface {
	// Save overwrites the decoration stored under (username, date).
	Save(ctx context.Context, username, date string, deco models.Decoration) error

	// Find returns the decoration for (username, date), with found=false
	// when none has been saved.
	Find(ctx context.Context, username, date string) (deco models.Decoration, found bool, err error)
}
