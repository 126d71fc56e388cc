package upstream

import "promptdeck/internal/models"

// Wire types for the posting service. The API serializes ids as strings and
// uses PascalCase field names.
type apiUser struct {
	UserID   string `json:"UserID"`
	Username string `json:"Username"`
}

type apiPost struct {
	ID            string `json:"PostID"`
	PromptID      string `json:"PromptID"`
	Content       string `json:"Content"`
	UpvoteCount   int    `json:"UpvoteCount"`
	DownvoteCount int    `json:"DownvoteCount"`
}

type apiPrompt struct {
	PromptID   string `json:"PromptID"`
	PromptText string `json:"PromptText"`
	Category   string `json:"Category"`
}

type userPostsResponse struct {
	Posts []apiPost `json:"posts"`
}

func (p apiPost) toModel() models.Post {
	return models.Post{
		ID:            p.ID,
		PromptID:      p.PromptID,
		Content:       p.Content,
		UpvoteCount:   p.UpvoteCount,
		DownvoteCount: p.DownvoteCount,
	}
}
