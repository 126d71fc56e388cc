package feed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptdeck/internal/models"
)

func TestCachedPromptFetcher_DeduplicatesLookups(t *testing.T) {
	fake := &fakePrompts{
		prompts: map[string]models.Prompt{
			"pr1": {ID: "pr1", PromptText: "shared?", Category: "tech"},
		},
	}
	cached, err := NewCachedPromptFetcher(fake, 8)
	require.NoError(t, err)

	for range 3 {
		prompt, err := cached.GetPrompt(context.Background(), "pr1")
		require.NoError(t, err)
		assert.Equal(t, "shared?", prompt.PromptText)
	}
	assert.Equal(t, int64(1), fake.calls.Load())
}

func TestCachedPromptFetcher_DoesNotCacheFailures(t *testing.T) {
	fake := &fakePrompts{fail: map[string]bool{"pr1": true}}
	cached, err := NewCachedPromptFetcher(fake, 8)
	require.NoError(t, err)

	_, err = cached.GetPrompt(context.Background(), "pr1")
	require.Error(t, err)
	_, err = cached.GetPrompt(context.Background(), "pr1")
	require.Error(t, err)

	// Each attempt went to the inner fetcher.
	assert.Equal(t, int64(2), fake.calls.Load())
}
