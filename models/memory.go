package models

import "time"

// MemoryEntry is a free-text note attached to a specific calendar date for
// one user. Entries are append-only; no update or delete operation exists.
type MemoryEntry struct {
	Title string `json:"title"`
	Text  string `json:"text"`

	// TS is the server-side creation timestamp.
	TS time.Time `json:"ts"`
}
