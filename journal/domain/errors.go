package journal

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	ErrInvalidUserID  = errors.New("invalid user ID")
	ErrInvalidEntryID = errors.New("invalid entry ID")
	ErrInvalidEntry   = errors.New("invalid entry")
	ErrEmptyEntryText = errors.New("entry text is empty")
	ErrEntryNotFound  = func(entryID string) error { return fmt.Errorf("entry %s: %w", entryID, ErrNotFound) }

	ErrSummaryNotFound = errors.New("summary not found")
	ErrInvalidSummary  = errors.New("invalid summary")

	ErrNoNudge = errors.New("no recurring theme to nudge about")
)
