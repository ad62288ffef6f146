package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/zeebo/assert"

	"github.com/journalai/api/logger"
	"github.com/journalai/api/prompts"
)

func GetPromptsContext() (*gin.Context, *httptest.ResponseRecorder) {
	request := httptest.NewRequest(http.MethodPost, "http://example.com/foo", nil)
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request

	return ctx, recorder
}

func TestPrompts_Default(t *testing.T) {
	ctx, recorder := GetPromptsContext()

	h := NewPrompts(logger.FromContext)

	assert.NoError(t, h.Default(ctx))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp promptResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, prompts.Default(), resp.Prompt)
}

func TestPrompts_Next(t *testing.T) {
	t.Run("returns the fallback after two refreshes", func(t *testing.T) {
		ctx, recorder := GetPromptsContext()

		body, err := json.Marshal(nextPromptRequest{
			Current:      prompts.Prompts[0],
			RefreshCount: 2,
		})
		if err != nil {
			t.Fatal(err)
		}

		ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

		h := NewPrompts(logger.FromContext)

		assert.NoError(t, h.Next(ctx))

		var resp promptResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, prompts.Fallback, resp.Prompt)
	})

	t.Run("invalid body is a bad request", func(t *testing.T) {
		ctx, _ := GetPromptsContext()

		ctx.Request.Body = io.NopCloser(bytes.NewReader([]byte("not json")))

		h := NewPrompts(logger.FromContext)

		assert.Error(t, h.Next(ctx))
	})
}
