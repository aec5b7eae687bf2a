// File: notion/client.go
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"
)

// Client is a minimal typed client for the Notion REST API, covering
// the three calls the scheduler needs: database query, page fetch and
// page creation.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// APIError carries the status code and a snippet of the response body
// of a non-2xx Notion response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: unexpected status %d: %s", e.StatusCode, e.Body)
}

// QueryDatabase runs a filtered query against a database and returns
// the matching pages.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, filter any) (*QueryResponse, error) {
	body := queryRequest{Filter: filter}
	var out QueryResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/databases/%s/query", databaseID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPage fetches a single page by ID.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	var out Page
	if err := c.do(ctx, http.MethodGet, "/v1/pages/"+pageID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePage creates a new page inside a database.
func (c *Client) CreatePage(ctx context.Context, req CreatePageRequest) (*Page, error) {
	var out Page
	if err := c.do(ctx, http.MethodPost, "/v1/pages", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("notion: failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("notion: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("notion: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("notion: failed to decode response: %w", err)
	}
	return nil
}
