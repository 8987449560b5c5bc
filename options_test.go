package strand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptions(t *testing.T) {
	t.Run("returns empty options when no options provided", func(t *testing.T) {
		opts := ApplyOptions()
		assert.NotNil(t, opts)
		assert.Empty(t, opts.Model)
		assert.Zero(t, opts.MaxTokens)
		assert.Nil(t, opts.Temperature)
		assert.Empty(t, opts.System)
	})

	t.Run("applies multiple options", func(t *testing.T) {
		opts := ApplyOptions(
			WithModel("claude-sonnet-4-20250514"),
			WithMaxTokens(1000),
			WithTemperature(0.7),
			WithSystem("You are terse."),
		)

		assert.Equal(t, "claude-sonnet-4-20250514", opts.Model)
		assert.Equal(t, 1000, opts.MaxTokens)
		require.NotNil(t, opts.Temperature)
		assert.Equal(t, 0.7, *opts.Temperature)
		assert.Equal(t, "You are terse.", opts.System)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		opts := ApplyOptions(
			WithModel("gpt-4o"),
			WithModel("gpt-4o-mini"),
		)
		assert.Equal(t, "gpt-4o-mini", opts.Model)
	})
}

func TestWithTemperature(t *testing.T) {
	t.Run("zero is distinguishable from unset", func(t *testing.T) {
		opts := ApplyOptions(WithTemperature(0))
		require.NotNil(t, opts.Temperature)
		assert.Zero(t, *opts.Temperature)
	})
}

func TestUsageAdd(t *testing.T) {
	u := Usage{InputTokens: 10, OutputTokens: 20}
	u.Add(Usage{InputTokens: 5, OutputTokens: 7})

	assert.Equal(t, 15, u.InputTokens)
	assert.Equal(t, 27, u.OutputTokens)
}
