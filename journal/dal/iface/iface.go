//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"cloud.google.com/go/firestore"

	journal "github.com/journalai/api/journal/domain"
)

type Entries interface {
	GetRef(ctx context.Context, userID, entryID string) *firestore.DocumentRef
	Get(ctx context.Context, userID, entryID string) (*journal.Entry, error)
	Create(ctx context.Context, userID string, entry *journal.Entry) (*journal.Entry, error)
	List(ctx context.Context, userID string) ([]*journal.Entry, error)
	ListShared(ctx context.Context, userID string) ([]*journal.Entry, error)
	ListLast(ctx context.Context, userID string, lastN int) ([]*journal.Entry, error)
	SetShared(ctx context.Context, userID, entryID string, isShared bool) error
	Delete(ctx context.Context, userID, entryID string) error
	AddSummary(ctx context.Context, userID, entryID string, summary *journal.Summary) error
	GetLatestSummary(ctx context.Context, userID, entryID string) (*journal.Summary, error)
}
