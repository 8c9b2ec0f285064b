package models

// Role determines which parts of the calendar a user can interact with.
// Senders author letters and custom check-in questions and monitor their
// receivers; receivers fill in one self-assessment per day.
type Role string

const (
	// RoleSender is the monitoring/authoring side of a calendar pair.
	RoleSender Role = "sender"

	// RoleReceiver is the side that submits daily self-assessments.
	RoleReceiver Role = "receiver"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleSender || r == RoleReceiver
}

// User represents an account entity used for authentication and authorization.
//
// The JSON tags mirror the on-disk layout of accounts.json exactly: the
// "password" field holds the 64-character lowercase-hex SHA-256 digest of the
// user's password. Legacy documents may still contain plaintext there until
// the one-time migration rewrites them (see the migrations package).
type User struct {
	// Username is the unique, case-sensitive account identifier.
	Username string `json:"username"`

	// Password is the stored credential: a SHA-256 hex digest after
	// migration, possibly plaintext in pre-migration documents.
	// It must never be exposed through the API.
	Password string `json:"password"`

	// Role is either RoleSender or RoleReceiver. It never changes after
	// signup.
	Role Role `json:"role"`
}
