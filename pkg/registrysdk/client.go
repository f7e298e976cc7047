package registrysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a registry instance. The zero value is not usable; create
// one with NewClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a registry API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListClients returns every registered client in insertion order.
func (c *Client) ListClients(ctx context.Context) ([]ClientInfo, error) {
	var out []ClientInfo
	if err := c.do(ctx, http.MethodGet, "/clients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetClient fetches a single client by its registry key.
func (c *Client) GetClient(ctx context.Context, id string) (ClientInfo, error) {
	var out ClientInfo
	err := c.do(ctx, http.MethodGet, "/clients/"+url.PathEscape(id), nil, &out)
	return out, err
}

// CreateClient registers a new client. The server derives the registry key
// from the trimmed name; a duplicate name yields an APIError with status 409.
func (c *Client) CreateClient(ctx context.Context, req ClientRequest) (ClientRecord, error) {
	var out ClientRecord
	err := c.do(ctx, http.MethodPost, "/clients", req, &out)
	return out, err
}

// UpdateClient replaces the name and download link of the client registered
// under id. The key itself never changes.
func (c *Client) UpdateClient(ctx context.Context, id string, req ClientRequest) (ClientRecord, error) {
	var out ClientRecord
	err := c.do(ctx, http.MethodPut, "/clients/"+url.PathEscape(id), req, &out)
	return out, err
}

// DeleteClient removes the client registered under id.
func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/clients/"+url.PathEscape(id), nil, nil)
}

// Livez reports basic liveness of the service.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &out)
	return out, err
}

// Readyz reports readiness, including the store check.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &out)
	return out, err
}

// do performs a request against the API, encoding in as JSON when non-nil
// and decoding the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := parseErrorResponse(resp, raw); err != nil {
		return err
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
