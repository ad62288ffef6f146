package service

import (
	journal "github.com/journalai/api/journal/domain"
)

type CreateEntryRequest struct {
	Text       string `json:"text"`
	PromptUsed string `json:"promptUsed"`

	UserID string `json:"-"`
}

type ShareRequest struct {
	IsShared *bool `json:"isShared"`
}

// SummarizeTaskRequest is the body of the summarize cloud task.
type SummarizeTaskRequest struct {
	UserID  string `json:"userId"`
	EntryID string `json:"entryId"`
}

type SharedEntry struct {
	EntryID    string          `json:"entryId"`
	Text       string          `json:"text"`
	PromptUsed *string         `json:"promptUsed"`
	CreatedAt  string          `json:"createdAt"`
	Summary    *string         `json:"summary"`
	Themes     []journal.Theme `json:"themes"`
}

type SharedExport struct {
	UserID string        `json:"userId"`
	Shared []SharedEntry `json:"shared"`
}

type ThemeCountsResponse struct {
	UserID string         `json:"userId"`
	LastN  int            `json:"lastN"`
	Counts map[string]int `json:"counts"`
}

// Nudge is the gentle reflection suggestion raised when a theme keeps
// recurring in the user's latest entries.
type Nudge struct {
	Theme   string `json:"theme"`
	Message string `json:"message"`
	Prompt  string `json:"prompt"`
}
