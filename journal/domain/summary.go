package journal

import (
	"time"
)

// Summary is one generated summary of an entry, stored append-only under
// entries/{entryID}/summaries. The latest document wins.
type Summary struct {
	SummaryText      string    `firestore:"summaryText" json:"summaryText"`
	Themes           []Theme   `firestore:"themes" json:"themes"`
	SuggestedPrompts []string  `firestore:"suggestedPrompts" json:"suggestedPrompts"`
	Model            string    `firestore:"model" json:"model"`
	TimeCreated      time.Time `firestore:"timeCreated,serverTimestamp" json:"timeCreated"`
}

// Theme names are stored title-cased so filter and count lookups compare equal.
type Theme struct {
	Name        string `firestore:"name" json:"name"`
	Description string `firestore:"description" json:"description"`
}
