//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	journal "github.com/journalai/api/journal/domain"
	"github.com/journalai/api/journal/service"
)

type JournalIface interface {
	CreateEntry(ctx context.Context, req service.CreateEntryRequest) (*journal.Entry, error)
	ListEntries(ctx context.Context, userID, themeFilter string) ([]*journal.Entry, error)
	ToggleShare(ctx context.Context, userID, entryID string, isShared bool) error
	DeleteEntry(ctx context.Context, userID, entryID string) error
	SummarizeEntry(ctx context.Context, userID, entryID string) (*journal.Summary, error)
	EnqueueSummarize(ctx context.Context, userID, entryID string) error
	ExportShared(ctx context.Context, userID string) (*service.SharedExport, error)
	ThemeCounts(ctx context.Context, userID string, lastN int) (map[string]int, error)
	Nudge(ctx context.Context, userID string) (*service.Nudge, error)
}
