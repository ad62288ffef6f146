//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	journal "github.com/journalai/api/journal/domain"
)

type Summarizer interface {
	Model() string
	GenerateSummary(ctx context.Context, text string) (*journal.Summary, error)
}
