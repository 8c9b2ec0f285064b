package models

// Request and response bodies exchanged between the calendar UI (or the
// adapter package) and the HTTP API. Identity is never taken from a request
// body on authenticated routes; handlers read it from the bearer token.

// Credentials is the body of register and login requests. Role is only
// consulted during registration.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

// CreateGroupRequest creates a group; the authenticated caller is always
// added as a member in addition to Members.
type CreateGroupRequest struct {
	GroupName string   `json:"group_name"`
	Members   []string `json:"members"`
}

// GroupMemberRequest adds Username to the caller's group GroupName.
type GroupMemberRequest struct {
	GroupName string `json:"group_name"`
	Username  string `json:"username"`
}

// LeaveGroupRequest removes the caller from their group GroupName.
type LeaveGroupRequest struct {
	GroupName string `json:"group_name"`
}

// SubmitRecordRequest is the body of a daily self-assessment submission.
type SubmitRecordRequest struct {
	Date    string         `json:"date"`
	Answers map[string]any `json:"answers"`
	Memo    string         `json:"memo"`
}

// AddMemoryRequest appends a memory entry to the caller's calendar date.
type AddMemoryRequest struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// SaveDecorationRequest overwrites the caller's decoration for Date.
type SaveDecorationRequest struct {
	Date string     `json:"date"`
	Deco Decoration `json:"deco"`
}

// TokenResponse carries a signed session-restore token.
type TokenResponse struct {
	Token string `json:"token"`
}

// TodayStatusResponse reports whether the caller already submitted a record
// for the current date.
type TodayStatusResponse struct {
	Submitted bool `json:"submitted"`
}

// QuestionCreatedResponse carries the server-assigned question id.
type QuestionCreatedResponse struct {
	ID string `json:"id"`
}
