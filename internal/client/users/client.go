package users

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/s21platform/messaging-service/internal/config"
	"github.com/s21platform/messaging-service/internal/model"
)

// Client talks to the user service: profile lookups plus the durable
// online/last-seen/status fields the gateway updates as a side effect.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Users.BaseURL,
		apiKey:  cfg.Users.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Users.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) GetUser(ctx context.Context, userID string) (*model.UserProfile, error) {
	endpoint := fmt.Sprintf("%s/internal/users/%s", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "apikey "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: user %s", model.ErrNotFound, userID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var profile model.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &profile, nil
}

func (c *Client) SetOnline(ctx context.Context, userID string, online bool) error {
	return c.patchPresence(ctx, userID, map[string]interface{}{"is_online": online})
}

func (c *Client) SetLastSeen(ctx context.Context, userID string, lastSeen time.Time) error {
	return c.patchPresence(ctx, userID, map[string]interface{}{"last_seen": lastSeen.UTC().Format(time.RFC3339)})
}

func (c *Client) SetStatus(ctx context.Context, userID, status string) error {
	return c.patchPresence(ctx, userID, map[string]interface{}{"status": status})
}

func (c *Client) patchPresence(ctx context.Context, userID string, fields map[string]interface{}) error {
	jsonData, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/internal/users/%s/presence", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
