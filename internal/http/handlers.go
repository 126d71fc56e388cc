package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"promptdeck/internal/feed"
	"promptdeck/internal/identity"
	"promptdeck/internal/nav"
)

// DeviceHeader carries the client's device id, the key its stored user id is
// looked up under.
const DeviceHeader = "X-Device-ID"

// --- Structs for request binding ---
type CreateSessionInput struct {
	UserID string `json:"userId" binding:"required,min=1,max=64"`
}

// --- Handlers ---
type Env struct {
	Feed     *feed.Service
	Identity *identity.Store
}

// GetTrendingFeed serves the trending screen: top posts by upvotes, enriched,
// optionally narrowed to one category.
func (e *Env) GetTrendingFeed(c *gin.Context) {
	// "category" is the chip the user selected, "current" the active filter;
	// selecting the active category again toggles the filter back off.
	category := feed.ToggleCategory(c.Query("current"), c.Query("category"))

	posts, err := e.Feed.Trending(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, feed.ErrUnknownCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}
		log.Printf("Error building trending feed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "category": category})
}

// GetProfileFeed serves the profile screen. Without a resolvable stored user
// id it answers 401 before any upstream request is made.
func (e *Env) GetProfileFeed(c *gin.Context) {
	deviceID := c.GetHeader(DeviceHeader)
	if deviceID == "" {
		log.Printf("Profile feed refused: missing %s header", DeviceHeader)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No user id"})
		return
	}

	userID, err := e.Identity.Get(deviceID)
	if err != nil {
		if errors.Is(err, identity.ErrNoUser) {
			log.Printf("Profile feed refused: no stored user id for device %s", deviceID)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No user id"})
			return
		}
		log.Printf("Error reading stored user id: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read user id"})
		return
	}

	profile, err := e.Feed.Profile(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error building profile feed for user %s: %v", userID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch posts"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ResolveRepliesRoute converts the string ids from the API into the typed
// Replies route. A non-numeric id aborts the navigation with a 400.
func (e *Env) ResolveRepliesRoute(c *gin.Context) {
	route, err := nav.RepliesRoute(c.Query("postId"), c.Query("promptId"))
	if err != nil {
		log.Printf("Error resolving replies route: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post or prompt ID"})
		return
	}
	c.JSON(http.StatusOK, route)
}

// CreateSession stores the user id for the calling device (the register
// screen's follow-up call).
func (e *Env) CreateSession(c *gin.Context) {
	deviceID := c.GetHeader(DeviceHeader)
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing " + DeviceHeader + " header"})
		return
	}
	var input CreateSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := e.Identity.Put(deviceID, input.UserID); err != nil {
		log.Printf("Error storing user id: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store user id"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"deviceId": deviceID, "userId": input.UserID})
}

// DeleteSession clears a device's stored user id. Admin-only.
func (e *Env) DeleteSession(c *gin.Context) {
	deviceID := c.Param("device")
	if err := e.Identity.Delete(deviceID); err != nil {
		log.Printf("Error deleting session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}
