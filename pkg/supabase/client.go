package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the Supabase PostgREST API. It only
// covers the row-level upsert and delete operations the mirror sync
// needs.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Supabase REST client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// Upsert inserts or replaces a row via POST /rest/v1/<table>.
func (c *Client) Upsert(ctx context.Context, table string, record interface{}) error {
	url := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", table, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build upsert request: %w", err)
	}
	c.setHeaders(httpReq)
	httpReq.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call supabase upsert API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase upsert error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// Delete removes a row by id via DELETE /rest/v1/<table>?id=eq.<id>.
func (c *Client) Delete(ctx context.Context, table string, id int64) error {
	url := fmt.Sprintf("%s/rest/v1/%s?id=eq.%d", c.baseURL, table, id)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call supabase delete API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase delete error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
}
