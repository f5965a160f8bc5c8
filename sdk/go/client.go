// Package contactform is the Go SDK for the portfolio contact backend. It
// provides a low-level HTTP client and a Form controller that mirrors the
// frontend's behavior: local validation with inline per-field errors, one
// request per user-initiated submit, and toast-style notifications.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-portfolio-backend/internal/domain"
)

// Config holds the configuration for the contact client.
type Config struct {
	// BaseURL is the root URL of the backend.
	// Examples: "https://api.example.com" or "https://api.example.com/api"
	// The "/api" suffix is appended automatically if missing.
	BaseURL string

	// HTTPClient is an optional custom HTTP client.
	// If nil, a default client with 10s timeout is used.
	HTTPClient *http.Client
}

func (c *Config) defaults() {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if !strings.HasSuffix(c.BaseURL, "/api") {
		c.BaseURL = c.BaseURL + "/api"
	}
}

// Client calls the contact backend.
type Client struct {
	cfg Config
}

// NewClient creates a new contact client with the given configuration.
func NewClient(cfg Config) *Client {
	cfg.defaults()
	return &Client{cfg: cfg}
}

// resultBody is the wire shape of every backend response.
type resultBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Submit posts one submission. It returns nil when the backend dispatched
// the email, a *ServerError when the backend reported a failure (including
// a malformed response body), and a wrapped transport error when the
// request itself never completed.
func (c *Client) Submit(ctx context.Context, sub domain.Submission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("contactform: failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/contact", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("contactform: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("contactform: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("contactform: failed to read response: %w", err)
	}

	var result resultBody
	// A decode failure leaves the zero value, which is handled below as a
	// failure indicator with no server message.
	_ = json.Unmarshal(body, &result)

	if resp.StatusCode != http.StatusOK || !result.Success {
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    result.Error,
		}
	}

	return nil
}
