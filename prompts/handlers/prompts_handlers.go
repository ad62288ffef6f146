package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/journalai/api/framework/web"
	"github.com/journalai/api/logger"
	"github.com/journalai/api/prompts"
)

type Prompts struct {
	loggerProvider logger.Provider
}

func NewPrompts(log logger.Provider) *Prompts {
	return &Prompts{
		log,
	}
}

type nextPromptRequest struct {
	Current      string `json:"current"`
	RefreshCount int    `json:"refreshCount"`
}

type promptResponse struct {
	Prompt string `json:"prompt"`
}

// Default returns the prompt shown on a fresh session.
func (h *Prompts) Default(ctx *gin.Context) error {
	return web.Respond(ctx, promptResponse{Prompt: prompts.Default()}, http.StatusOK)
}

// Next shuffles to a new prompt, settling on the fallback after two refreshes.
func (h *Prompts) Next(ctx *gin.Context) error {
	var body nextPromptRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if body.RefreshCount < 0 {
		body.RefreshCount = 0
	}

	return web.Respond(ctx, promptResponse{Prompt: prompts.Next(body.Current, body.RefreshCount)}, http.StatusOK)
}
