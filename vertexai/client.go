package vertexai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/journalai/api/config"
)

var (
	ErrEmptyModelResponse = errors.New("model returned no candidates")
)

const (
	// generate calls allowed per second per instance, with a small burst
	generateRPS   = 1
	generateBurst = 5
)

// Client calls the configured Gemini model through the Vertex AI backend.
type Client struct {
	client      *genai.Client
	model       string
	limiter     *rate.Limiter
	generateFun func(ctx context.Context, prompt string) (string, error)
}

func NewClient(ctx context.Context, config *config.Config) (*Client, error) {
	creds, err := config.Credentials()
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:     genai.BackendVertexAI,
		Project:     config.GCP.ProjectID,
		Location:    config.GCP.Location,
		Credentials: creds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	c := &Client{
		client:  client,
		model:   config.GCP.VertexModel,
		limiter: rate.NewLimiter(rate.Every(time.Second/generateRPS), generateBurst),
	}
	c.generateFun = c.generate

	return c, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	contents := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: jsonMIMEType,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", ErrEmptyModelResponse
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", ErrEmptyModelResponse
	}

	var text string

	for i, part := range candidate.Content.Parts {
		if i > 0 {
			text += "\n"
		}

		text += part.Text
	}

	return text, nil
}
