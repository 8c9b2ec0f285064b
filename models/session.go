package models

// Session is the singleton "currently logged in identity" document persisted
// to sessions.json so a restarted process can resume a logged-in state.
// Created on successful login, destroyed on logout.
type Session struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
