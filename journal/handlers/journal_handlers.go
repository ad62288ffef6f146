package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/journalai/api/config"
	"github.com/journalai/api/errorreporting"
	"github.com/journalai/api/framework/connection"
	"github.com/journalai/api/framework/web"
	journal "github.com/journalai/api/journal/domain"
	"github.com/journalai/api/journal/service"
	"github.com/journalai/api/journal/service/iface"
	"github.com/journalai/api/logger"
	"github.com/journalai/api/vertexai"
)

type Journal struct {
	loggerProvider logger.Provider
	service        iface.JournalIface
}

func NewJournal(ctx context.Context, log logger.Provider, conn *connection.Connection, config *config.Config) *Journal {
	summarizer, err := vertexai.NewClient(ctx, config)
	if err != nil {
		log(ctx).Fatalf("could not create vertex ai client. error [%s]", err)
	}

	s := service.NewJournalService(log, conn, summarizer)

	return &Journal{
		log,
		s,
	}
}

func (h *Journal) CreateEntry(ctx *gin.Context) error {
	var body service.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	body.UserID = ctx.Param("userID")

	entry, err := h.service.CreateEntry(ctx, body)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, entry, http.StatusCreated)
}

func (h *Journal) ListEntries(ctx *gin.Context) error {
	userID := ctx.Param("userID")
	themeFilter := ctx.Query("theme")

	entries, err := h.service.ListEntries(ctx, userID, themeFilter)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, entries, http.StatusOK)
}

func (h *Journal) ToggleShare(ctx *gin.Context) error {
	var body service.ShareRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if body.IsShared == nil {
		return web.NewRequestError(errors.New("isShared is required"), http.StatusBadRequest)
	}

	userID := ctx.Param("userID")
	entryID := ctx.Param("entryID")

	if err := h.service.ToggleShare(ctx, userID, entryID, *body.IsShared); err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *Journal) DeleteEntry(ctx *gin.Context) error {
	userID := ctx.Param("userID")
	entryID := ctx.Param("entryID")

	if err := h.service.DeleteEntry(ctx, userID, entryID); err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusNoContent)
}

func (h *Journal) SummarizeEntry(ctx *gin.Context) error {
	userID := ctx.Param("userID")
	entryID := ctx.Param("entryID")

	summary, err := h.service.SummarizeEntry(ctx, userID, entryID)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, summary, http.StatusOK)
}

func (h *Journal) SummarizeEntryAsync(ctx *gin.Context) error {
	userID := ctx.Param("userID")
	entryID := ctx.Param("entryID")

	if err := h.service.EnqueueSummarize(ctx, userID, entryID); err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, nil, http.StatusAccepted)
}

func (h *Journal) ExportShared(ctx *gin.Context) error {
	userID := ctx.Param("userID")

	export, err := h.service.ExportShared(ctx, userID)
	if err != nil {
		return translateServiceError(err)
	}

	return web.Respond(ctx, export, http.StatusOK)
}

func (h *Journal) ThemeCounts(ctx *gin.Context) error {
	userID := ctx.Param("userID")

	lastN := 0

	if v := ctx.Query("lastN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return web.NewRequestError(errors.New("lastN must be a positive integer"), http.StatusBadRequest)
		}

		lastN = n
	}

	counts, err := h.service.ThemeCounts(ctx, userID, lastN)
	if err != nil {
		return translateServiceError(err)
	}

	if lastN == 0 {
		lastN = 10
	}

	return web.Respond(ctx, service.ThemeCountsResponse{
		UserID: userID,
		LastN:  lastN,
		Counts: counts,
	}, http.StatusOK)
}

func (h *Journal) Nudge(ctx *gin.Context) error {
	userID := ctx.Param("userID")

	nudge, err := h.service.Nudge(ctx, userID)
	if err != nil {
		if err == journal.ErrNoNudge {
			return web.Respond(ctx, nil, http.StatusNoContent)
		}

		return translateServiceError(err)
	}

	return web.Respond(ctx, nudge, http.StatusOK)
}

// SummarizeTask is the cloud tasks worker endpoint behind the
// journal-summaries queue.
func (h *Journal) SummarizeTask(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var req service.SummarizeTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if req.UserID == "" || req.EntryID == "" {
		return web.NewRequestError(journal.ErrInvalidEntryID, http.StatusBadRequest)
	}

	summary, err := h.service.SummarizeEntry(ctx, req.UserID, req.EntryID)
	if err != nil {
		errorreporting.ReportRequestError(ctx, err)

		return translateServiceError(err)
	}

	l.Infof("summarized entry %s for user %s with model %s", req.EntryID, req.UserID, summary.Model)

	return web.Respond(ctx, nil, http.StatusOK)
}

func translateServiceError(err error) error {
	switch {
	case errors.Is(err, journal.ErrNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case err == journal.ErrInvalidUserID,
		err == journal.ErrInvalidEntryID,
		err == journal.ErrEmptyEntryText:
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
