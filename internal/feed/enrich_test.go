package feed

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptdeck/internal/models"
)

// fakePrompts serves canned prompts with optional per-id failures and delays.
type fakePrompts struct {
	prompts map[string]models.Prompt
	fail    map[string]bool
	delays  map[string]time.Duration
	calls   atomic.Int64
}

func (f *fakePrompts) GetPrompt(ctx context.Context, promptID string) (models.Prompt, error) {
	f.calls.Add(1)
	if d, ok := f.delays[promptID]; ok {
		time.Sleep(d)
	}
	if f.fail[promptID] {
		return models.Prompt{}, errors.New("prompt service unavailable")
	}
	p, ok := f.prompts[promptID]
	if !ok {
		return models.Prompt{}, errors.New("prompt not found")
	}
	return p, nil
}

func TestEnrich_PreservesOrderRegardlessOfCompletion(t *testing.T) {
	// Earlier posts resolve slower than later ones, so completion order is
	// the reverse of input order.
	fake := &fakePrompts{
		prompts: map[string]models.Prompt{
			"pr1": {ID: "pr1", PromptText: "first?", Category: "sports"},
			"pr2": {ID: "pr2", PromptText: "second?", Category: "music"},
			"pr3": {ID: "pr3", PromptText: "third?", Category: "tech"},
		},
		delays: map[string]time.Duration{
			"pr1": 30 * time.Millisecond,
			"pr2": 15 * time.Millisecond,
			"pr3": 0,
		},
	}
	svc := NewService(nil, fake)

	posts := []models.Post{
		{ID: "1", PromptID: "pr1"},
		{ID: "2", PromptID: "pr2"},
		{ID: "3", PromptID: "pr3"},
	}
	enriched := svc.Enrich(context.Background(), posts)

	require.Len(t, enriched, len(posts))
	for i := range posts {
		assert.Equal(t, posts[i].ID, enriched[i].ID, "post %d moved", i)
	}
	assert.Equal(t, "first?", enriched[0].PromptText)
	assert.Equal(t, "music", enriched[1].Category)
	assert.Equal(t, "third?", enriched[2].PromptText)
}

func TestEnrich_FailedLookupKeepsPostWithEmptyFields(t *testing.T) {
	fake := &fakePrompts{
		prompts: map[string]models.Prompt{
			"pr1": {ID: "pr1", PromptText: "ok?", Category: "food"},
		},
		fail: map[string]bool{"pr2": true},
	}
	svc := NewService(nil, fake)

	posts := []models.Post{
		{ID: "1", PromptID: "pr1", Content: "a"},
		{ID: "2", PromptID: "pr2", Content: "b"},
	}
	enriched := svc.Enrich(context.Background(), posts)

	require.Len(t, enriched, 2)
	assert.Equal(t, "ok?", enriched[0].PromptText)
	// The failed post is present, with defined-but-empty prompt fields.
	assert.Equal(t, "2", enriched[1].ID)
	assert.Equal(t, "b", enriched[1].Content)
	assert.Equal(t, "", enriched[1].PromptText)
	assert.Equal(t, "", enriched[1].Category)
}

func TestEnrich_EmptyInput(t *testing.T) {
	svc := NewService(nil, &fakePrompts{})
	enriched := svc.Enrich(context.Background(), nil)
	assert.NotNil(t, enriched)
	assert.Empty(t, enriched)
}

func TestEnrich_IssuesOneLookupPerPost(t *testing.T) {
	fake := &fakePrompts{
		prompts: map[string]models.Prompt{
			"pr1": {ID: "pr1", PromptText: "shared?", Category: "tech"},
		},
	}
	svc := NewService(nil, fake)

	// Two posts on the same prompt still fetch twice without the cache.
	posts := []models.Post{
		{ID: "1", PromptID: "pr1"},
		{ID: "2", PromptID: "pr1"},
	}
	svc.Enrich(context.Background(), posts)
	assert.Equal(t, int64(2), fake.calls.Load())
}
