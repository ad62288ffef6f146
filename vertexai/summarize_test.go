package vertexai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zeebo/assert"

	journal "github.com/journalai/api/journal/domain"
)

func TestClient_GenerateSummary(t *testing.T) {
	ctx := context.Background()

	validJSON := `{
		"summary": "A calm day overall.",
		"themes": [{"name":"Gratitude","description":"Noticing small wins."}],
		"suggested_prompts": ["What made today feel calm?"]
	}`

	type fields struct {
		responses []string
		err       error
	}

	tests := []struct {
		name          string
		fields        fields
		want          *journal.Summary
		wantErr       bool
		wantCalls     int
		wantReminders int
	}{
		{
			name: "valid json on first attempt",
			fields: fields{
				responses: []string{validJSON},
			},
			want: &journal.Summary{
				SummaryText:      "A calm day overall.",
				Themes:           []journal.Theme{{Name: "Gratitude", Description: "Noticing small wins."}},
				SuggestedPrompts: []string{"What made today feel calm?"},
				Model:            "gemini-1.5-flash",
			},
			wantCalls: 1,
		},
		{
			name: "retries once with strict reminder on invalid json",
			fields: fields{
				responses: []string{"Sure! Here's your summary:", validJSON},
			},
			want: &journal.Summary{
				SummaryText:      "A calm day overall.",
				Themes:           []journal.Theme{{Name: "Gratitude", Description: "Noticing small wins."}},
				SuggestedPrompts: []string{"What made today feel calm?"},
				Model:            "gemini-1.5-flash",
			},
			wantCalls:     2,
			wantReminders: 1,
		},
		{
			name: "fails when retry output still not json",
			fields: fields{
				responses: []string{"not json", "still not json"},
			},
			wantErr:   true,
			wantCalls: 2,
		},
		{
			name: "model error is returned",
			fields: fields{
				err: errors.New("deadline exceeded"),
			},
			wantErr:   true,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				calls     int
				reminders int
			)

			c := &Client{
				model: "gemini-1.5-flash",
				generateFun: func(ctx context.Context, prompt string) (string, error) {
					if strings.HasSuffix(prompt, strictJSONReminder) {
						reminders++
					}

					calls++

					if tt.fields.err != nil {
						return "", tt.fields.err
					}

					return tt.fields.responses[calls-1], nil
				},
			}

			got, err := c.GenerateSummary(ctx, "wrote in my journal today")

			if (err != nil) != tt.wantErr {
				t.Errorf("Client.GenerateSummary() error = %v, wantErr %v", err, tt.wantErr)
			}

			assert.Equal(t, tt.wantCalls, calls)
			assert.Equal(t, tt.wantReminders, reminders)

			if tt.want != nil {
				assert.DeepEqual(t, tt.want, got)
			}
		})
	}
}
