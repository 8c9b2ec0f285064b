package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username (case-sensitive)
	// already exists in accounts.json.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a lookup expected to match a user
	// record produces nothing.
	ErrUserNotFound = errors.New("user not found")

	// ErrGroupNotFound is returned when an operation targets a group that is
	// not among the acting user's groups.
	ErrGroupNotFound = errors.New("group not found")

	// ErrDuplicateGroupName is returned when group creation would reuse a
	// name already taken by another group the creator belongs to. The check
	// is scoped to the creator's memberships, never global.
	ErrDuplicateGroupName = errors.New("group name already used")

	// ErrDuplicateMembership is returned when group creation would produce a
	// member set identical (order-independent) to another group the creator
	// belongs to.
	ErrDuplicateMembership = errors.New("identical member set already exists")

	// ErrAlreadySubmitted is returned when a daily record submission targets
	// a (username, date) pair that already has a record. One record per user
	// per day is enforced here, in the store, not at the UI.
	ErrAlreadySubmitted = errors.New("record already submitted for this date")
)

// Low-level document I/O errors. These wrap filesystem failures encountered
// while persisting a JSON document; a corrupt document on load is NOT an
// error (it degrades to the empty default with a logged warning).
var (
	// ErrWritingDocument is returned when a JSON document cannot be
	// serialised or atomically written back to disk.
	ErrWritingDocument = errors.New("error writing document")
)
