package vertexai

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	journal "github.com/journalai/api/journal/domain"
)

const (
	jsonMIMEType = "application/json"

	systemPrompt = "You are a careful mental-health journaling assistant. " +
		"Summarize neutrally and supportively without diagnosing." +
		" Return STRICT JSON with keys: summary (2-3 sentences), " +
		"themes (array of objects with keys name, description), " +
		"suggested_prompts (array with 1 short reflective question)."

	promptTemplate = `System:
%s

User:
JOURNAL:
"""%s"""

Return strict JSON:
{
  "summary": "<2-3 sentence recap>",
  "themes": [
    {"name":"ThemeName1","description":"One sentence."},
    {"name":"ThemeName2","description":"One sentence."}
  ],
  "suggested_prompts": ["One gentle follow-up question"]
}`

	strictJSONReminder = "\n\nIMPORTANT: Output MUST be valid JSON only, no commentary."
)

type modelTheme struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type modelSummary struct {
	Summary          string       `json:"summary"`
	Themes           []modelTheme `json:"themes"`
	SuggestedPrompts []string     `json:"suggested_prompts"`
}

// GenerateSummary asks the model for a strict JSON summary of the entry text.
// A response that fails to decode gets one retry with a harder instruction.
func (c *Client) GenerateSummary(ctx context.Context, text string) (*journal.Summary, error) {
	prompt := fmt.Sprintf(promptTemplate, systemPrompt, text)

	raw, err := c.generateFun(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var out modelSummary

	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		raw, err = c.generateFun(ctx, prompt+strictJSONReminder)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return nil, fmt.Errorf("model output is not valid JSON: %w", err)
		}
	}

	summary := &journal.Summary{
		SummaryText:      out.Summary,
		SuggestedPrompts: out.SuggestedPrompts,
		Model:            c.model,
	}

	for _, t := range out.Themes {
		summary.Themes = append(summary.Themes, journal.Theme{
			Name:        t.Name,
			Description: t.Description,
		})
	}

	return summary, nil
}
