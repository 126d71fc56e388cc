package models

import (
	"time"
)

// Post is a user response to a Prompt, as served by the upstream posting API.
// PromptText and Category start empty and are filled in by enrichment; after
// enrichment they are always defined, even if only as empty strings.
type Post struct {
	ID            string `json:"id"`
	PromptID      string `json:"promptId"`
	Content       string `json:"content"`
	UpvoteCount   int    `json:"upvoteCount"`
	DownvoteCount int    `json:"downvoteCount"`
	PromptText    string `json:"promptText"`
	Category      string `json:"category"`
}

// Prompt is a categorized question that Posts respond to.
type Prompt struct {
	ID         string `json:"id"`
	PromptText string `json:"promptText"`
	Category   string `json:"category"`
}

// User is the upstream account a profile feed is built for.
type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Session binds a device to its stored user id. This is the gateway's only
// persisted state; a device without a row is a valid "no user id" state.
type Session struct {
	ID        string    `gorm:"primarykey" json:"id"`
	DeviceID  string    `gorm:"uniqueIndex;not null" json:"deviceId"`
	UserID    string    `gorm:"not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
