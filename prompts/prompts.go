package prompts

import (
	"math/rand"
)

// Reflective prompts offered when composing an entry.
var Prompts = []string{
	"How's your day going?",
	"What's been on your mind today?",
	"What gave you energy this week?",
	"What's one small win you had recently?",
	"What's been draining your energy lately?",
}

// Fallback is served once the user keeps shuffling.
const Fallback = "Just write whatever's on your mind."

const maxRefreshes = 2

// Default returns the prompt shown on a fresh session.
func Default() string {
	return Prompts[0]
}

// Next picks a new prompt different from the current one. After two
// refreshes in a row it settles on the fallback.
func Next(current string, refreshCount int) string {
	if refreshCount >= maxRefreshes {
		return Fallback
	}

	choices := make([]string, 0, len(Prompts))

	for _, p := range Prompts {
		if p != current {
			choices = append(choices, p)
		}
	}

	if len(choices) == 0 {
		return Fallback
	}

	return choices[rand.Intn(len(choices))]
}
