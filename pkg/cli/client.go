package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sheetregistry/internal/domain"
)

// APIError is a non-2xx response from the registry API.
type APIError struct {
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.HTTPStatus, e.Message)
}

// Client is a minimal HTTP client for the registry API.
type Client struct {
	host  string
	token string
	http  *http.Client
}

// NewClient creates a client for the given host. token may be empty for the
// login call.
func NewClient(host, token string) *Client {
	return &Client{
		host:  host,
		token: token,
		http:  &http.Client{Timeout: 30 * time.Second},
	}
}

// LoginResult is the /auth/google response.
type LoginResult struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}

// Login exchanges a Google ID token for a session credential.
func (c *Client) Login(ctx context.Context, idToken string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"token": idToken}
	if err := c.do(ctx, http.MethodPost, "/auth/google", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRecords fetches all records.
func (c *Client) ListRecords(ctx context.Context) ([]domain.Record, error) {
	var out []domain.Record
	if err := c.do(ctx, http.MethodGet, "/data", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRecord creates a record.
func (c *Client) CreateRecord(ctx context.Context, in *domain.RecordInput) (*domain.Record, error) {
	var out domain.Record
	if err := c.do(ctx, http.MethodPost, "/data/entry", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRecord overwrites a record by id.
func (c *Client) UpdateRecord(ctx context.Context, id int, in *domain.RecordInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/dataupdate/%d", id), in, nil)
}

// DeleteRecord soft-deletes a record by id.
func (c *Client) DeleteRecord(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/data/%d", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.host+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return &APIError{HTTPStatus: resp.StatusCode, Message: apiErr.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
