package service

import (
	"context"

	"github.com/MKhiriev/go-memory-calendar/models"
)

// AuthService owns account creation, credential verification, the session
// singleton, and the JWT token lifecycle.
type AuthService interface {
	// Register creates a new account. The username is trimmed before any
	// check; the password is stored as its SHA-256 hex digest.
	Register(ctx context.Context, username, password string, role models.Role) (models.User, error)

	// Login authenticates against the stored digest, accepting the legacy
	// plaintext form for records the migration has not touched yet.
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateToken issues a signed, time-limited JWT for user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns its identity claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// StartSession persists user as the singleton logged-in identity.
	StartSession(ctx context.Context, user models.User) error

	// RestoreSession loads the persisted identity, found=false when none.
	RestoreSession(ctx context.Context) (models.Session, bool, error)

	// EndSession clears the persisted identity.
	EndSession(ctx context.Context) error
}

// GroupService owns group creation and membership changes, including the
// scoped uniqueness rules and the receivers view used for monitoring.
type GroupService interface {
	// CreateGroup creates a group named name containing creator plus
	// others (deduplicated). Creator membership is unconditional.
	CreateGroup(ctx context.Context, creator, name string, others []string) (models.Group, error)

	// MyGroups returns the groups containing username.
	MyGroups(ctx context.Context, username string) ([]models.Group, error)

	// AddMember adds member to the actor's group named groupName after
	// verifying the member has an account.
	AddMember(ctx context.Context, actor, groupName, member string) error

	// LeaveGroup removes username from groupName; an emptied group is
	// deleted.
	LeaveGroup(ctx context.Context, groupName, username string) error

	// Receivers returns the union of members of sender's groups minus the
	// sender, sorted ascending.
	Receivers(ctx context.Context, sender string) ([]string, error)
}

// RecordService owns daily self-assessment submissions and the sender
// monitoring view.
type RecordService interface {
	// HasSubmitted reports whether username already has a record for date.
	HasSubmitted(ctx context.Context, username, date string) (bool, error)

	// Submit stores rec; the store rejects a second record for the same
	// (username, date).
	Submit(ctx context.Context, rec models.DailyRecord) error

	// Monitor returns the records of sender's receivers sorted by
	// (date, username) descending.
	Monitor(ctx context.Context, sender string) ([]models.DailyRecord, error)

	// DefaultQuestions returns the built-in self-assessment question set.
	DefaultQuestions() []models.CustomQuestion
}

// QuestionService owns sender-authored custom questions.
type QuestionService interface {
	// Create validates and stores a new custom question, returning it with
	// its server-assigned id.
	Create(ctx context.Context, q models.CustomQuestion) (models.CustomQuestion, error)

	// ForReceiver returns the questions targeting username.
	ForReceiver(ctx context.Context, username string) ([]models.CustomQuestion, error)
}

// MemoryService owns per-date memory entries and calendar decorations.
type MemoryService interface {
	// AddEntry appends a memory entry for (username, date) and returns it
	// with its server-side timestamp.
	AddEntry(ctx context.Context, username, date, title, text string) (models.MemoryEntry, error)

	// ListEntries returns the entries for (username, date), oldest first.
	ListEntries(ctx context.Context, username, date string) ([]models.MemoryEntry, error)

	// SaveDecoration overwrites the decoration for (username, date).
	SaveDecoration(ctx context.Context, username, date string, deco models.Decoration) error

	// GetDecoration returns the decoration for (username, date),
	// found=false when none was saved.
	GetDecoration(ctx context.Context, username, date string) (models.Decoration, bool, error)
}
