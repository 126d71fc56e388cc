package feed

import (
	"context"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"promptdeck/internal/models"
)

// Enrich merges each post's prompt fields (PromptText, Category) onto it.
// All prompt lookups are issued concurrently and each result is written back
// by index, so the output has the same length and ordering as the input no
// matter which lookups finish first. A failed lookup keeps the post and
// leaves both fields as empty strings; one bad prompt never fails the batch.
func (s *Service) Enrich(ctx context.Context, posts []models.Post) []models.Post {
	enriched := make([]models.Post, len(posts))

	g := new(errgroup.Group)
	for i, p := range posts {
		g.Go(func() error {
			enriched[i] = s.enrichOne(ctx, p)
			return nil
		})
	}
	// Every branch returns nil; Wait cannot fail.
	g.Wait()

	return enriched
}

func (s *Service) enrichOne(ctx context.Context, post models.Post) models.Post {
	prompt, err := s.prompts.GetPrompt(ctx, post.PromptID)
	if err != nil {
		log.Printf("Error fetching prompt %s for post %s: %v", post.PromptID, post.ID, err)
		post.PromptText = ""
		post.Category = ""
		return post
	}
	post.PromptText = prompt.PromptText
	post.Category = prompt.Category
	return post
}

// TopByUpvotes returns the first limit posts sorted by upvote count,
// descending. The sort is stable so equal counts keep their fetched order.
func TopByUpvotes(posts []models.Post, limit int) []models.Post {
	sorted := make([]models.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpvoteCount > sorted[j].UpvoteCount
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// FilterByCategory narrows the rendered set to one category. An empty
// category returns the input unchanged.
func FilterByCategory(posts []models.Post, category string) []models.Post {
	if category == "" {
		return posts
	}
	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
