package models

// DateLayout is the calendar-date format used by every date-keyed document
// in the data directory (records, memories, decorations).
const DateLayout = "2006-01-02"

// DailyRecord is one receiver's self-assessment submission for a specific
// calendar date. Records are append-only and at most one record may exist per
// (username, date) pair; the record repository enforces that.
type DailyRecord struct {
	Username string `json:"username"`

	// Date is the calendar date of the submission in "YYYY-MM-DD" form.
	Date string `json:"date"`

	// Answers maps a question key to the submitted answer. Values are
	// either numbers (sliders) or strings (choices and free text), so the
	// mapping is deliberately loosely typed.
	Answers map[string]any `json:"answers"`

	// Memo is an optional free-form note attached to the submission.
	Memo string `json:"memo"`
}
