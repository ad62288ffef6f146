package journal

import (
	"time"

	"cloud.google.com/go/firestore"
)

// Entry is a single journal entry under users/{userID}/entries.
type Entry struct {
	Text        string    `firestore:"text" json:"text"`
	PromptUsed  *string   `firestore:"promptUsed" json:"promptUsed"`
	IsShared    bool      `firestore:"isShared" json:"isShared"`
	TimeCreated time.Time `firestore:"timeCreated,serverTimestamp" json:"timeCreated"`

	ID            string                 `firestore:"-" json:"id"`
	Ref           *firestore.DocumentRef `firestore:"-" json:"-"`
	LatestSummary *Summary               `firestore:"-" json:"latestSummary,omitempty"`
}
