package prompts

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestPrompts_Default(t *testing.T) {
	assert.Equal(t, Prompts[0], Default())
}

func TestPrompts_Next(t *testing.T) {
	t.Run("falls back after two refreshes", func(t *testing.T) {
		assert.Equal(t, Fallback, Next(Prompts[0], 2))
		assert.Equal(t, Fallback, Next(Prompts[1], 5))
	})

	t.Run("never repeats the current prompt", func(t *testing.T) {
		current := Prompts[2]

		for i := 0; i < 50; i++ {
			next := Next(current, 0)

			assert.True(t, next != current)
			assert.True(t, contains(Prompts, next))
		}
	})

	t.Run("unknown current prompt still picks from the list", func(t *testing.T) {
		next := Next("something the user typed", 1)
		assert.True(t, contains(Prompts, next))
	})
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
