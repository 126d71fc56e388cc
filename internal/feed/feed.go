package feed

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"promptdeck/internal/models"
)

// TrendingLimit caps the trending feed at the top posts by upvotes.
const TrendingLimit = 20

var ErrUnknownCategory = errors.New("unknown category")

// PostSource is the slice of the upstream API the feed builders read from.
type PostSource interface {
	GetPosts(ctx context.Context) ([]models.Post, error)
	GetUserPosts(ctx context.Context, userID string) ([]models.Post, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
}

// PromptFetcher resolves a prompt id to its prompt record.
type PromptFetcher interface {
	GetPrompt(ctx context.Context, promptID string) (models.Prompt, error)
}

// ProfileFeed is the screen-ready payload for a user's own feed.
type ProfileFeed struct {
	User             models.User   `json:"user"`
	Posts            []models.Post `json:"posts"`
	ControversyScore int           `json:"controversyScore"`
}

// Service builds the two feed variants. Each call runs the full pipeline
// (fetch, enrich, score) and returns a fresh result; nothing is patched
// incrementally between calls.
type Service struct {
	posts   PostSource
	prompts PromptFetcher
}

func NewService(posts PostSource, prompts PromptFetcher) *Service {
	return &Service{posts: posts, prompts: prompts}
}

// Trending fetches the global post list, keeps the top entries by upvote
// count, enriches them, and optionally filters the rendered set down to a
// single category. An empty category means unfiltered.
func (s *Service) Trending(ctx context.Context, category string) ([]models.Post, error) {
	if category != "" && !ValidCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	posts, err := s.posts.GetPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}

	posts = TopByUpvotes(posts, TrendingLimit)
	enriched := s.Enrich(ctx, posts)
	return FilterByCategory(enriched, category), nil
}

// Profile fetches a user's display record and posts, enriches the posts, and
// computes the controversy score. The score is summed over the fetched posts
// while the enrichment fan-out is in flight, so it covers every post exactly
// once whatever the individual prompt lookups do.
func (s *Service) Profile(ctx context.Context, userID string) (ProfileFeed, error) {
	var (
		user  models.User
		posts []models.Post
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.posts.GetUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetch user: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		posts, err = s.posts.GetUserPosts(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetch user posts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return ProfileFeed{}, err
	}

	var score int
	eg := new(errgroup.Group)
	eg.Go(func() error {
		score = ControversyScore(posts)
		return nil
	})

	enriched := make([]models.Post, len(posts))
	for i, p := range posts {
		eg.Go(func() error {
			enriched[i] = s.enrichOne(ctx, p)
			return nil
		})
	}
	// Every branch returns nil; Wait cannot fail.
	eg.Wait()

	return ProfileFeed{User: user, Posts: enriched, ControversyScore: score}, nil
}

// ControversyScore sums upvotes and downvotes across the given posts.
func ControversyScore(posts []models.Post) int {
	score := 0
	for _, p := range posts {
		score += p.UpvoteCount + p.DownvoteCount
	}
	return score
}
