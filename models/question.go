package models

// QuestionType enumerates the supported custom question kinds.
type QuestionType string

const (
	QuestionYesNo  QuestionType = "yesno"
	QuestionScale  QuestionType = "scale"
	QuestionChoice QuestionType = "choice"
	QuestionText   QuestionType = "text"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionYesNo, QuestionScale, QuestionChoice, QuestionText:
		return true
	}
	return false
}

// CustomQuestion is a check-in question authored by a sender and shown only
// to the receivers listed in Targets. Questions are never mutated after
// creation and accumulate indefinitely in questions.json.
//
// Min/Max apply to scale questions, Options to choice questions; both are
// omitted from JSON for the other types.
type CustomQuestion struct {
	// ID is a server-assigned UUID. Built-in default questions use short
	// stable keys ("mood", "sleep", ...) instead.
	ID string `json:"id"`

	// Creator is the username of the authoring sender. Empty for the
	// built-in default question set.
	Creator string `json:"creator,omitempty"`

	// Targets lists the receiver usernames this question is visible to.
	Targets []string `json:"targets,omitempty"`

	Text string       `json:"text"`
	Type QuestionType `json:"type"`

	Min     int      `json:"min,omitempty"`
	Max     int      `json:"max,omitempty"`
	Options []string `json:"options,omitempty"`
}
