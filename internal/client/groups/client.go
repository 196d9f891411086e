package groups

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/s21platform/messaging-service/internal/config"
	"github.com/s21platform/messaging-service/internal/model"
)

// Client asks the group service about membership. Checked live on every
// join/send, never cached here; room membership in the gateway is the only
// cache and it is rebuilt per connection.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Groups.BaseURL,
		apiKey:  cfg.Groups.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Groups.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) IsMember(ctx context.Context, groupID, userID string) (bool, error) {
	membership, err := c.getMembership(ctx, groupID, userID)
	if err != nil {
		return false, err
	}

	return membership.IsMember, nil
}

func (c *Client) IsAdmin(ctx context.Context, groupID, userID string) (bool, error) {
	membership, err := c.getMembership(ctx, groupID, userID)
	if err != nil {
		return false, err
	}

	return membership.IsAdmin, nil
}

type membershipResponse struct {
	IsMember bool `json:"is_member"`
	IsAdmin  bool `json:"is_admin"`
}

func (c *Client) getMembership(ctx context.Context, groupID, userID string) (*membershipResponse, error) {
	endpoint := fmt.Sprintf("%s/internal/groups/%s/members/%s",
		c.baseURL, url.PathEscape(groupID), url.PathEscape(userID))

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
		return nil, fmt.Errorf("%w: group %s", model.ErrNotFound, groupID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var membership membershipResponse
	if err := json.NewDecoder(resp.Body).Decode(&membership); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &membership, nil
}
