package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"promptdeck/internal/models"
)

const DefaultTimeout = 10 * time.Second

// Client talks to the posting service's HTTP API. The service is an opaque
// collaborator: the gateway only reads from it and never authenticates.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// GetUser fetches the display record for a user id.
func (c *Client) GetUser(ctx context.Context, userID string) (models.User, error) {
	var data apiUser
	if err := c.getJSON(ctx, "/api/user/"+url.PathEscape(userID), &data); err != nil {
		return models.User{}, err
	}
	return models.User{UserID: data.UserID, Username: data.Username}, nil
}

// GetUserPosts fetches every post authored by the given user, in the order
// the service returns them.
func (c *Client) GetUserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	var data userPostsResponse
	if err := c.getJSON(ctx, "/api/user/"+url.PathEscape(userID)+"/posts", &data); err != nil {
		return nil, err
	}
	posts := make([]models.Post, 0, len(data.Posts))
	for _, p := range data.Posts {
		posts = append(posts, p.toModel())
	}
	return posts, nil
}

// GetPosts fetches the global post list.
func (c *Client) GetPosts(ctx context.Context) ([]models.Post, error) {
	var data []apiPost
	if err := c.getJSON(ctx, "/api/posts", &data); err != nil {
		return nil, err
	}
	posts := make([]models.Post, 0, len(data))
	for _, p := range data {
		posts = append(posts, p.toModel())
	}
	return posts, nil
}

// GetPrompt fetches the prompt record a post belongs to.
func (c *Client) GetPrompt(ctx context.Context, promptID string) (models.Prompt, error) {
	var data apiPrompt
	if err := c.getJSON(ctx, "/api/prompt/"+url.PathEscape(promptID), &data); err != nil {
		return models.Prompt{}, err
	}
	return models.Prompt{ID: data.PromptID, PromptText: data.PromptText, Category: data.Category}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s failed with status: %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
