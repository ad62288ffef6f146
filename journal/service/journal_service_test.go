package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	"github.com/journalai/api/common"
	dalMocks "github.com/journalai/api/journal/dal/mocks"
	journal "github.com/journalai/api/journal/domain"
	"github.com/journalai/api/logger"
	vertexMocks "github.com/journalai/api/vertexai/mocks"
)

type taskCreatorMock struct {
	mock.Mock
}

func (m *taskCreatorMock) CreateTask(ctx context.Context, config *common.CloudTaskConfig) error {
	ret := m.Called(ctx, config)
	return ret.Error(0)
}

type journalFields struct {
	entriesDal  *dalMocks.Entries
	summarizer  *vertexMocks.Summarizer
	taskCreator *taskCreatorMock
}

func newTestService(f *journalFields) *JournalService {
	return &JournalService{
		loggerProvider: logger.FromContext,
		entriesDal:     f.entriesDal,
		summarizer:     f.summarizer,
		taskCreator:    f.taskCreator,
	}
}

func TestJournalService_CreateEntry(t *testing.T) {
	type args struct {
		req CreateEntryRequest
	}

	var (
		userID    = "user-id"
		prompt    = "How's your day going?"
		testError = errors.New("test error")
	)

	ctx := context.Background()

	tests := []struct {
		name           string
		args           args
		wantErr        bool
		expectedErr    error
		expectedResult *journal.Entry
		on             func(context.Context, *journalFields)
	}{
		{
			name: "success - create entry with prompt",
			args: args{
				req: CreateEntryRequest{
					UserID:     userID,
					Text:       "  wrote some thoughts  ",
					PromptUsed: prompt,
				},
			},
			on: func(ctx context.Context, f *journalFields) {
				f.entriesDal.On("Create", ctx, userID, &journal.Entry{
					Text:       "wrote some thoughts",
					PromptUsed: &prompt,
				}).Return(&journal.Entry{ID: "entry-id", Text: "wrote some thoughts"}, nil)
			},
			expectedResult: &journal.Entry{ID: "entry-id", Text: "wrote some thoughts"},
		},
		{
			name: "error - empty text after trimming",
			args: args{
				req: CreateEntryRequest{
					UserID: userID,
					Text:   "   ",
				},
			},
			wantErr:     true,
			expectedErr: journal.ErrEmptyEntryText,
		},
		{
			name: "error - missing user id",
			args: args{
				req: CreateEntryRequest{
					Text: "some text",
				},
			},
			wantErr:     true,
			expectedErr: journal.ErrInvalidUserID,
		},
		{
			name: "error - dal create fails",
			args: args{
				req: CreateEntryRequest{
					UserID: userID,
					Text:   "some text",
				},
			},
			wantErr:     true,
			expectedErr: testError,
			on: func(ctx context.Context, f *journalFields) {
				f.entriesDal.On("Create", ctx, userID, mock.AnythingOfType("*journal.Entry")).
					Return(nil, testError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := journalFields{
				entriesDal:  &dalMocks.Entries{},
				summarizer:  &vertexMocks.Summarizer{},
				taskCreator: &taskCreatorMock{},
			}

			s := newTestService(&f)

			if tt.on != nil {
				tt.on(ctx, &f)
			}

			got, err := s.CreateEntry(ctx, tt.args.req)
			assert.Equal(t, tt.expectedResult, got)

			if (err != nil) != tt.wantErr {
				t.Errorf("JournalService.CreateEntry() error = %v, wantErr %v", err, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
			}
		})
	}
}

func TestJournalService_ListEntries(t *testing.T) {
	var (
		userID    = "user-id"
		testError = errors.New("test error")

		stressSummary = &journal.Summary{
			SummaryText: "A stressful day.",
			Themes:      []journal.Theme{{Name: "Work Stress"}},
		}
		sleepSummary = &journal.Summary{
			SummaryText: "Slept badly.",
			Themes:      []journal.Theme{{Name: "Sleep"}},
		}
	)

	ctx := context.Background()

	tests := []struct {
		name        string
		themeFilter string
		wantErr     bool
		expectedIDs []string
		on          func(context.Context, *journalFields)
	}{
		{
			name: "success - no filter attaches latest summaries",
			on: func(ctx context.Context, f *journalFields) {
				f.entriesDal.On("List", ctx, userID).Return([]*journal.Entry{
					{ID: "e1"}, {ID: "e2"},
				}, nil)
				f.entriesDal.On("GetLatestSummary", mock.Anything, userID, "e1").Return(stressSummary, nil)
				f.entriesDal.On("GetLatestSummary", mock.Anything, userID, "e2").Return(nil, journal.ErrSummaryNotFound)
			},
			expectedIDs: []string{"e1", "e2"},
		},
		{
			name:        "success - theme filter keeps matching entries only",
			themeFilter: "work stress",
			on: func(ctx context.Context, f *journalFields) {
				f.entriesDal.On("List", ctx, userID).Return([]*journal.Entry{
					{ID: "e1"}, {ID: "e2"}, {ID: "e3"},
				}, nil)
				f.entriesDal.On("GetLatestSummary", mock.Anything, userID, "e1").Return(stressSummary, nil)
				f.entriesDal.On("GetLatestSummary", mock.Anything, userID, "e2").Return(sleepSummary, nil)
				f.entriesDal.On("GetLatestSummary", mock.Anything, userID, "e3").Return(nil, journal.ErrSummaryNotFound)
			},
			expectedIDs: []string{"e1"},
		},
		{
			name:    "error - list fails",
			wantErr: true,
			on: func(ctx context.Context, f *journalFields) {
				f.entriesDal.On("List", ctx, userID).Return(nil, testError)
			},
		},
		{
			name:    "error - summary lookup fails",
			wantErr: true,
			on: func(ctx context.Context, f *journalFields) {
				f.entriesDal.On("List", ctx, userID).Return([]*journal.Entry{{ID: "e1"}}, nil)
				f.entriesDal.On("GetLatestSummary", mock.Anything, userID, "e1").Return(nil, testError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := journalFields{
				entriesDal:  &dalMocks.Entries{},
				summarizer:  &vertexMocks.Summarizer{},
				taskCreator: &taskCreatorMock{},
			}

			s := newTestService(&f)

			if tt.on != nil {
				tt.on(ctx, &f)
			}

			got, err := s.ListEntries(ctx, userID, tt.themeFilter)

			if (err != nil) != tt.wantErr {
				t.Errorf("JournalService.ListEntries() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				return
			}

			gotIDs := make([]string, 0, len(got))
			for _, e := range got {
				gotIDs = append(gotIDs, e.ID)
			}

			assert.DeepEqual(t, tt.expectedIDs, gotIDs)
		})
	}
}

func TestJournalService_SummarizeEntry(t *testing.T) {
	var (
		userID    = "user-id"
		entryID   = "entry-id"
		entry     = &journal.Entry{ID: entryID, Text: "rough week at the office"}
		testError = errors.New("test error")

		generated = func() *journal.Summary {
			return &journal.Summary{
				SummaryText: "A rough week.",
				Themes:      []journal.Theme{{Name: "work stress"}},
				Model:       "gemini-1.5-flash",
			}
		}
	)

	ctx := context.Background()

	tests := []struct {
		name        string
		wantErr     bool
		expectedErr error
		on          func(context.Context, *journalFields)
		check       func(*testing.T, *journal.Summary)
	}{
		{
			name: "success - summary persisted with title-cased themes",
			on: func(ctx context.Context, f *journalFields) {
				f.entriesDal.On("Get", ctx, userID, entryID).Return(entry, nil)
				f.summarizer.On("GenerateSummary", ctx, entry.Text).Return(generated(), nil)
				f.entriesDal.On("AddSummary", ctx, userID, entryID, mock.AnythingOfType("*journal.Summary")).Return(nil)
			},
			check: func(t *testing.T, summary *journal.Summary) {
				assert.Equal(t, "Work Stress", summary.Themes[0].Name)
				assert.Equal(t, "gemini-1.5-flash", summary.Model)
			},
		},
		{
			name:        "error - entry not found",
			wantErr:     true,
			expectedErr: testError,
			on: func(ctx context.Context, f *journalFields) {
				f.entriesDal.On("Get", ctx, userID, entryID).Return(nil, testError)
			},
		},
		{
			name:        "error - model fails",
			wantErr:     true,
			expectedErr: testError,
			on: func(ctx context.Context, f *journalFields) {
				f.entriesDal.On("Get", ctx, userID, entryID).Return(entry, nil)
				f.summarizer.On("GenerateSummary", ctx, entry.Text).Return(nil, testError)
			},
		},
		{
			name:        "error - persisting summary fails",
			wantErr:     true,
			expectedErr: testError,
			on: func(ctx context.Context, f *journalFields) {
				f.entriesDal.On("Get", ctx, userID, entryID).Return(entry, nil)
				f.summarizer.On("GenerateSummary", ctx, entry.Text).Return(generated(), nil)
				f.entriesDal.On("AddSummary", ctx, userID, entryID, mock.AnythingOfType("*journal.Summary")).Return(testError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := journalFields{
				entriesDal:  &dalMocks.Entries{},
				summarizer:  &vertexMocks.Summarizer{},
				taskCreator: &taskCreatorMock{},
			}

			s := newTestService(&f)

			if tt.on != nil {
				tt.on(ctx, &f)
			}

			got, err := s.SummarizeEntry(ctx, userID, entryID)

			if (err != nil) != tt.wantErr {
				t.Errorf("JournalService.SummarizeEntry() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
			}

			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestJournalService_DeleteEntry(t *testing.T) {
	var (
		userID  = "user-id"
		entryID = "entry-id"
	)

	ctx := context.Background()

	f := journalFields{
		entriesDal:  &dalMocks.Entries{},
		summarizer:  &vertexMocks.Summarizer{},
		taskCreator: &taskCreatorMock{},
	}

	f.entriesDal.On("Delete", ctx, userID, entryID).Return(nil)

	s := newTestService(&f)

	assert.NoError(t, s.DeleteEntry(ctx, userID, entryID))
	f.entriesDal.AssertExpectations(t)
}

func TestJournalService_EnqueueSummarize(t *testing.T) {
	var (
		userID    = "user-id"
		entryID   = "entry-id"
		testError = errors.New("test error")
	)

	ctx := context.Background()

	t.Run("success - task created on the summaries queue", func(t *testing.T) {
		f := journalFields{
			entriesDal:  &dalMocks.Entries{},
			summarizer:  &vertexMocks.Summarizer{},
			taskCreator: &taskCreatorMock{},
		}

		f.entriesDal.On("Get", ctx, userID, entryID).Return(&journal.Entry{ID: entryID}, nil)
		f.taskCreator.On("CreateTask", ctx, mock.MatchedBy(func(config *common.CloudTaskConfig) bool {
			return config.Queue == common.TaskQueueJournalSummaries && config.Path == summarizeTaskPath
		})).Return(nil)

		s := newTestService(&f)

		assert.NoError(t, s.EnqueueSummarize(ctx, userID, entryID))
		f.taskCreator.AssertExpectations(t)
	})

	t.Run("error - entry must exist before enqueueing", func(t *testing.T) {
		f := journalFields{
			entriesDal:  &dalMocks.Entries{},
			summarizer:  &vertexMocks.Summarizer{},
			taskCreator: &taskCreatorMock{},
		}

		f.entriesDal.On("Get", ctx, userID, entryID).Return(nil, testError)

		s := newTestService(&f)

		assert.Equal(t, testError, s.EnqueueSummarize(ctx, userID, entryID))
		f.taskCreator.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
	})
}

func TestJournalService_ExportShared(t *testing.T) {
	var (
		userID  = "user-id"
		prompt  = "What gave you energy this week?"
		created = time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)

		summary = &journal.Summary{
			SummaryText: "An energizing week.",
			Themes:      []journal.Theme{{Name: "Energy"}},
		}
	)

	ctx := context.Background()

	t.Run("success - shared entries with and without summaries", func(t *testing.T) {
		f := journalFields{
			entriesDal:  &dalMocks.Entries{},
			summarizer:  &vertexMocks.Summarizer{},
			taskCreator: &taskCreatorMock{},
		}

		f.entriesDal.On("ListShared", ctx, userID).Return([]*journal.Entry{
			{ID: "e1", Text: "first", PromptUsed: &prompt, TimeCreated: created},
			{ID: "e2", Text: "second"},
		}, nil)
		f.entriesDal.On("GetLatestSummary", ctx, userID, "e1").Return(summary, nil)
		f.entriesDal.On("GetLatestSummary", ctx, userID, "e2").Return(nil, journal.ErrSummaryNotFound)

		s := newTestService(&f)

		export, err := s.ExportShared(ctx, userID)
		assert.NoError(t, err)

		summaryText := summary.SummaryText
		want := &SharedExport{
			UserID: userID,
			Shared: []SharedEntry{
				{
					EntryID:    "e1",
					Text:       "first",
					PromptUsed: &prompt,
					CreatedAt:  "2024-05-14T09:30:00Z",
					Summary:    &summaryText,
					Themes:     summary.Themes,
				},
				{
					EntryID: "e2",
					Text:    "second",
				},
			},
		}

		if diff := cmp.Diff(want, export); diff != "" {
			t.Errorf("ExportShared() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success - entry with failing summary lookup is skipped", func(t *testing.T) {
		f := journalFields{
			entriesDal:  &dalMocks.Entries{},
			summarizer:  &vertexMocks.Summarizer{},
			taskCreator: &taskCreatorMock{},
		}

		f.entriesDal.On("ListShared", ctx, userID).Return([]*journal.Entry{
			{ID: "e1", Text: "first"},
			{ID: "e2", Text: "second"},
		}, nil)
		f.entriesDal.On("GetLatestSummary", ctx, userID, "e1").Return(nil, errors.New("firestore unavailable"))
		f.entriesDal.On("GetLatestSummary", ctx, userID, "e2").Return(nil, journal.ErrSummaryNotFound)

		s := newTestService(&f)

		export, err := s.ExportShared(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(export.Shared))
		assert.Equal(t, "e2", export.Shared[0].EntryID)
	})
}

func TestJournalService_ThemeCountsAndNudge(t *testing.T) {
	userID := "user-id"

	ctx := context.Background()

	summaryWith := func(names ...string) *journal.Summary {
		s := &journal.Summary{}
		for _, n := range names {
			s.Themes = append(s.Themes, journal.Theme{Name: n})
		}

		return s
	}

	setup := func(f *journalFields, summaries map[string]*journal.Summary) {
		entries := make([]*journal.Entry, 0, len(summaries))

		// deterministic entry order
		for _, id := range []string{"e1", "e2", "e3", "e4"} {
			summary, ok := summaries[id]
			if !ok {
				continue
			}

			entries = append(entries, &journal.Entry{ID: id})

			if summary == nil {
				f.entriesDal.On("GetLatestSummary", mock.Anything, userID, id).Return(nil, journal.ErrSummaryNotFound)
			} else {
				f.entriesDal.On("GetLatestSummary", mock.Anything, userID, id).Return(summary, nil)
			}
		}

		f.entriesDal.On("ListLast", mock.Anything, userID, 10).Return(entries, nil)
	}

	t.Run("counts are title-cased and aggregated", func(t *testing.T) {
		f := journalFields{
			entriesDal:  &dalMocks.Entries{},
			summarizer:  &vertexMocks.Summarizer{},
			taskCreator: &taskCreatorMock{},
		}

		setup(&f, map[string]*journal.Summary{
			"e1": summaryWith("work stress", "Sleep"),
			"e2": summaryWith("WORK STRESS"),
			"e3": nil,
			"e4": summaryWith("Work Stress"),
		})

		s := newTestService(&f)

		counts, err := s.ThemeCounts(ctx, userID, 0)
		assert.NoError(t, err)
		assert.DeepEqual(t, map[string]int{"Work Stress": 3, "Sleep": 1}, counts)
	})

	t.Run("nudge fires at three occurrences", func(t *testing.T) {
		f := journalFields{
			entriesDal:  &dalMocks.Entries{},
			summarizer:  &vertexMocks.Summarizer{},
			taskCreator: &taskCreatorMock{},
		}

		setup(&f, map[string]*journal.Summary{
			"e1": summaryWith("Work Stress"),
			"e2": summaryWith("Work Stress"),
			"e3": summaryWith("Work Stress", "Sleep"),
		})

		s := newTestService(&f)

		nudge, err := s.Nudge(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, "Work Stress", nudge.Theme)
		assert.Equal(t,
			"Would you like to explore what's behind your recent work stress? What patterns have you noticed?",
			nudge.Prompt)
	})

	t.Run("no nudge below the threshold", func(t *testing.T) {
		f := journalFields{
			entriesDal:  &dalMocks.Entries{},
			summarizer:  &vertexMocks.Summarizer{},
			taskCreator: &taskCreatorMock{},
		}

		setup(&f, map[string]*journal.Summary{
			"e1": summaryWith("Work Stress"),
			"e2": summaryWith("Sleep"),
		})

		s := newTestService(&f)

		_, err := s.Nudge(ctx, userID)
		assert.Equal(t, journal.ErrNoNudge, err)
	})
}
