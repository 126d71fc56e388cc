package feed

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"promptdeck/internal/models"
)

// CachedPromptFetcher wraps a PromptFetcher with an LRU keyed by prompt id.
// Multiple posts on the same prompt would otherwise each trigger their own
// lookup. Only successful lookups are cached, so the fallback behavior for
// failed prompts is unchanged.
type CachedPromptFetcher struct {
	inner PromptFetcher
	cache *lru.Cache[string, models.Prompt]
}

func NewCachedPromptFetcher(inner PromptFetcher, size int) (*CachedPromptFetcher, error) {
	cache, err := lru.New[string, models.Prompt](size)
	if err != nil {
		return nil, err
	}
	return &CachedPromptFetcher{inner: inner, cache: cache}, nil
}

func (f *CachedPromptFetcher) GetPrompt(ctx context.Context, promptID string) (models.Prompt, error) {
	if prompt, ok := f.cache.Get(promptID); ok {
		return prompt, nil
	}
	prompt, err := f.inner.GetPrompt(ctx, promptID)
	if err != nil {
		return models.Prompt{}, err
	}
	f.cache.Add(promptID, prompt)
	return prompt, nil
}
