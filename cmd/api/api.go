package api

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/journalai/api/config"
	"github.com/journalai/api/framework/connection"
	"github.com/journalai/api/framework/mid"
	"github.com/journalai/api/framework/web"
	journalHandlers "github.com/journalai/api/journal/handlers"
	"github.com/journalai/api/logger"
	promptsHandlers "github.com/journalai/api/prompts/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
	config   *config.Config
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection, config *config.Config) *API {
	return &API{
		shutdown,
		logging,
		conn,
		config,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	backgroundContext := context.Background()

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	journal := journalHandlers.NewJournal(backgroundContext, loggerProvider, a.conn, a.config)
	prompts := promptsHandlers.NewPrompts(loggerProvider)

	app.Get("/health", healthCheck)

	// SCHEDULED OR CLOUD TASKS
	tasksGroup := web.NewGroup(app, "/tasks")
	{
		tasksGroup.Post("/summarize", journal.SummarizeTask)
	}

	apiV1Group := web.NewGroup(app, "/api/v1")
	{
		usersGroup := apiV1Group.NewSubgroup("/users/:userID", mid.ValidatePathParamNotEmpty("userID"))
		{
			entriesGroup := usersGroup.NewSubgroup("/entries")
			{
				entriesGroup.Post("", journal.CreateEntry)
				entriesGroup.Get("", journal.ListEntries)
				entriesGroup.Delete("/:entryID", journal.DeleteEntry)
				entriesGroup.Patch("/:entryID/share", journal.ToggleShare)
				entriesGroup.Post("/:entryID/summarize", journal.SummarizeEntry)
				entriesGroup.Post("/:entryID/summarize-async", journal.SummarizeEntryAsync)
			}

			usersGroup.Get("/export/shared", journal.ExportShared)
			usersGroup.Get("/themes", journal.ThemeCounts)
			usersGroup.Get("/nudge", journal.Nudge)
		}

		promptsGroup := apiV1Group.NewSubgroup("/prompts")
		{
			promptsGroup.Get("/default", prompts.Default)
			promptsGroup.Post("/next", prompts.Next)
		}
	}

	return app
}

func healthCheck(ctx *gin.Context) error {
	return web.Respond(ctx, nil, http.StatusOK)
}
