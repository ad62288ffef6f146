package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/journalai/api/common"
	"github.com/journalai/api/framework/connection"
	"github.com/journalai/api/journal/dal"
	dalIface "github.com/journalai/api/journal/dal/iface"
	journal "github.com/journalai/api/journal/domain"
	"github.com/journalai/api/logger"
	vertexIface "github.com/journalai/api/vertexai/iface"
)

const (
	// defaultThemeWindow is how many recent entries theme counting looks at.
	defaultThemeWindow = 10

	// nudgeThreshold is how often a theme must recur before we nudge.
	nudgeThreshold = 3

	// maxSummaryLookups bounds the latest-summary fan-out per request.
	maxSummaryLookups = 8

	summarizeTaskPath = "/tasks/summarize"
)

// TaskCreator enqueues cloud tasks for async work.
type TaskCreator interface {
	CreateTask(ctx context.Context, config *common.CloudTaskConfig) error
}

type cloudTasksCreator struct {
	conn *connection.Connection
}

func (c *cloudTasksCreator) CreateTask(ctx context.Context, config *common.CloudTaskConfig) error {
	_, err := common.CreateCloudTask(ctx, c.conn.CloudTasks(ctx), config)
	return err
}

type JournalService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	entriesDal     dalIface.Entries
	summarizer     vertexIface.Summarizer
	taskCreator    TaskCreator
}

func NewJournalService(log logger.Provider, conn *connection.Connection, summarizer vertexIface.Summarizer) *JournalService {
	return &JournalService{
		log,
		conn,
		dal.NewEntriesFirestoreWithClient(conn.Firestore),
		summarizer,
		&cloudTasksCreator{conn},
	}
}

func (s *JournalService) CreateEntry(ctx context.Context, req CreateEntryRequest) (*journal.Entry, error) {
	if req.UserID == "" {
		return nil, journal.ErrInvalidUserID
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, journal.ErrEmptyEntryText
	}

	entry := &journal.Entry{
		Text: text,
	}

	if req.PromptUsed != "" {
		promptUsed := req.PromptUsed
		entry.PromptUsed = &promptUsed
	}

	return s.entriesDal.Create(ctx, req.UserID, entry)
}

// ListEntries returns the user entries newest first, each with its latest
// summary attached. With a theme filter, only entries whose latest summary
// carries the theme are returned; entries without a summary are dropped.
func (s *JournalService) ListEntries(ctx context.Context, userID, themeFilter string) ([]*journal.Entry, error) {
	entries, err := s.entriesDal.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.attachLatestSummaries(ctx, userID, entries); err != nil {
		return nil, err
	}

	if themeFilter == "" {
		return entries, nil
	}

	filter := ToTitle(themeFilter)
	filtered := make([]*journal.Entry, 0, len(entries))

	for _, entry := range entries {
		if entry.LatestSummary == nil {
			continue
		}

		for _, theme := range entry.LatestSummary.Themes {
			if ToTitle(theme.Name) == filter {
				filtered = append(filtered, entry)
				break
			}
		}
	}

	return filtered, nil
}

func (s *JournalService) ToggleShare(ctx context.Context, userID, entryID string, isShared bool) error {
	return s.entriesDal.SetShared(ctx, userID, entryID, isShared)
}

// DeleteEntry removes the entry along with its summaries.
func (s *JournalService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return s.entriesDal.Delete(ctx, userID, entryID)
}

// SummarizeEntry generates a summary for the entry text, title-cases the
// returned theme names and persists the result.
func (s *JournalService) SummarizeEntry(ctx context.Context, userID, entryID string) (*journal.Summary, error) {
	entry, err := s.entriesDal.Get(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarizer.GenerateSummary(ctx, entry.Text)
	if err != nil {
		return nil, err
	}

	for i := range summary.Themes {
		summary.Themes[i].Name = ToTitle(summary.Themes[i].Name)
	}

	if err := s.entriesDal.AddSummary(ctx, userID, entryID, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

// EnqueueSummarize schedules a cloud task that summarizes the entry.
func (s *JournalService) EnqueueSummarize(ctx context.Context, userID, entryID string) error {
	if _, err := s.entriesDal.Get(ctx, userID, entryID); err != nil {
		return err
	}

	body, err := json.Marshal(SummarizeTaskRequest{
		UserID:  userID,
		EntryID: entryID,
	})
	if err != nil {
		return err
	}

	config := common.CloudTaskConfig{
		Method: cloudtaskspb.HttpMethod_POST,
		Path:   summarizeTaskPath,
		Queue:  common.TaskQueueJournalSummaries,
		Body:   body,
	}

	return s.taskCreator.CreateTask(ctx, &config)
}

// ExportShared collects the shared entries oldest first. An entry whose
// summary lookup fails is skipped and logged, the export still returns.
func (s *JournalService) ExportShared(ctx context.Context, userID string) (*SharedExport, error) {
	log := s.loggerProvider(ctx)

	entries, err := s.entriesDal.ListShared(ctx, userID)
	if err != nil {
		return nil, err
	}

	export := &SharedExport{
		UserID: userID,
		Shared: make([]SharedEntry, 0, len(entries)),
	}

	var lookupErrs *multierror.Error

	for _, entry := range entries {
		shared := SharedEntry{
			EntryID:    entry.ID,
			Text:       entry.Text,
			PromptUsed: entry.PromptUsed,
		}

		if !entry.TimeCreated.IsZero() {
			shared.CreatedAt = entry.TimeCreated.Format(time.RFC3339)
		}

		summary, err := s.entriesDal.GetLatestSummary(ctx, userID, entry.ID)

		switch {
		case err == nil:
			summaryText := summary.SummaryText
			shared.Summary = &summaryText
			shared.Themes = summary.Themes
		case err == journal.ErrSummaryNotFound:
			// exported without a summary
		default:
			lookupErrs = multierror.Append(lookupErrs, fmt.Errorf("entry %s: %w", entry.ID, err))
			continue
		}

		export.Shared = append(export.Shared, shared)
	}

	if err := lookupErrs.ErrorOrNil(); err != nil {
		log.Errorf("export shared for user %s: %s", userID, err)
	}

	return export, nil
}

// ThemeCounts counts theme occurrences across the latest summaries of the
// last N entries.
func (s *JournalService) ThemeCounts(ctx context.Context, userID string, lastN int) (map[string]int, error) {
	if lastN <= 0 {
		lastN = defaultThemeWindow
	}

	entries, err := s.entriesDal.ListLast(ctx, userID, lastN)
	if err != nil {
		return nil, err
	}

	if err := s.attachLatestSummaries(ctx, userID, entries); err != nil {
		return nil, err
	}

	counts := make(map[string]int)

	for _, entry := range entries {
		if entry.LatestSummary == nil {
			continue
		}

		for _, theme := range entry.LatestSummary.Themes {
			if name := ToTitle(theme.Name); name != "" {
				counts[name]++
			}
		}
	}

	return counts, nil
}

// Nudge surfaces a theme recurring at least three times within the last ten
// entries. The highest count wins, ties broken by name.
func (s *JournalService) Nudge(ctx context.Context, userID string) (*Nudge, error) {
	counts, err := s.ThemeCounts(ctx, userID, defaultThemeWindow)
	if err != nil {
		return nil, err
	}

	var hot string

	for name, count := range counts {
		if count < nudgeThreshold {
			continue
		}

		if hot == "" || count > counts[hot] || (count == counts[hot] && name < hot) {
			hot = name
		}
	}

	if hot == "" {
		return nil, journal.ErrNoNudge
	}

	return &Nudge{
		Theme:   hot,
		Message: fmt.Sprintf("I've noticed %s showing up a lot lately. Want a gentle prompt to reflect on it?", hot),
		Prompt:  fmt.Sprintf("Would you like to explore what's behind your recent %s? What patterns have you noticed?", strings.ToLower(hot)),
	}, nil
}

func (s *JournalService) attachLatestSummaries(ctx context.Context, userID string, entries []*journal.Entry) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxSummaryLookups)

	for _, entry := range entries {
		entry := entry

		g.Go(func() error {
			summary, err := s.entriesDal.GetLatestSummary(gctx, userID, entry.ID)
			if err != nil {
				if err == journal.ErrSummaryNotFound {
					return nil
				}

				return err
			}

			entry.LatestSummary = summary

			return nil
		})
	}

	return g.Wait()
}
