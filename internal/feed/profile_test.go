package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptdeck/internal/models"
)

func TestProfile_ControversyScoreAndEnrichment(t *testing.T) {
	// Posts {5,1} and {2,0} with one prompt lookup failing give a score of 8
	// and an empty PromptText on the failed post.
	src := &fakeSource{
		users: map[string]models.User{"u1": {UserID: "u1", Username: "ada"}},
		userPosts: map[string][]models.Post{
			"u1": {
				{ID: "1", PromptID: "prOK", UpvoteCount: 5, DownvoteCount: 1},
				{ID: "2", PromptID: "prBAD", UpvoteCount: 2, DownvoteCount: 0},
			},
		},
	}
	prompts := &fakePrompts{
		prompts: map[string]models.Prompt{
			"prOK": {ID: "prOK", PromptText: "well?", Category: "advice"},
		},
		fail: map[string]bool{"prBAD": true},
	}
	svc := NewService(src, prompts)

	profile, err := svc.Profile(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "ada", profile.User.Username)
	assert.Equal(t, 8, profile.ControversyScore)
	require.Len(t, profile.Posts, 2)
	assert.Equal(t, "well?", profile.Posts[0].PromptText)
	assert.Equal(t, "", profile.Posts[1].PromptText)
	assert.Equal(t, "", profile.Posts[1].Category)
}

func TestProfile_ScoreIndependentOfEnrichment(t *testing.T) {
	src := &fakeSource{
		users: map[string]models.User{"u1": {UserID: "u1", Username: "ada"}},
		userPosts: map[string][]models.Post{
			"u1": {
				{ID: "1", PromptID: "pr1", UpvoteCount: 10, DownvoteCount: 4},
				{ID: "2", PromptID: "pr2", UpvoteCount: 0, DownvoteCount: 7},
				{ID: "3", PromptID: "pr3", UpvoteCount: 1, DownvoteCount: 0},
			},
		},
	}
	// Every prompt lookup fails; the score must still cover every post once.
	prompts := &fakePrompts{fail: map[string]bool{"pr1": true, "pr2": true, "pr3": true}}
	svc := NewService(src, prompts)

	profile, err := svc.Profile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 22, profile.ControversyScore)
	assert.Len(t, profile.Posts, 3)
}

func TestProfile_EmptyPosts(t *testing.T) {
	src := &fakeSource{
		users:     map[string]models.User{"u1": {UserID: "u1", Username: "ada"}},
		userPosts: map[string][]models.Post{},
	}
	svc := NewService(src, &fakePrompts{})

	profile, err := svc.Profile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, profile.Posts)
	assert.Zero(t, profile.ControversyScore)
}

func TestProfile_UserFetchFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("upstream down")}
	prompts := &fakePrompts{}
	svc := NewService(src, prompts)

	_, err := svc.Profile(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, int64(0), prompts.calls.Load())
}

func TestControversyScore(t *testing.T) {
	assert.Zero(t, ControversyScore(nil))
	assert.Equal(t, 8, ControversyScore([]models.Post{
		{UpvoteCount: 5, DownvoteCount: 1},
		{UpvoteCount: 2, DownvoteCount: 0},
	}))
}
