// Package client talks to the onboarding REST API. It implements the small
// interfaces the wizard, admin editor and review table consume, so those
// components never see HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"onboard/internal/config"
	"onboard/internal/logging"
	"onboard/internal/user"
)

// DefaultBaseURL matches the server's default listen address.
const DefaultBaseURL = "http://localhost:8080"

const requestTimeout = 10 * time.Second

// Client is a thin JSON client over the onboarding API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

// New creates a client for the given base URL. An empty base URL falls back
// to the default local server address.
func New(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		logger:  logging.NewComponentLogger("APIClient"),
	}
}

// FetchConfig reads the live step configuration.
func (c *Client) FetchConfig(ctx context.Context) (config.StepConfig, error) {
	var cfg config.StepConfig
	if err := c.do(ctx, http.MethodGet, "/api/config", nil, &cfg); err != nil {
		return config.StepConfig{}, err
	}
	return cfg, nil
}

// SaveConfig replaces the stored configuration and returns the echoed shape.
func (c *Client) SaveConfig(ctx context.Context, cfg config.StepConfig) (config.StepConfig, error) {
	var stored config.StepConfig
	if err := c.do(ctx, http.MethodPost, "/api/config", cfg, &stored); err != nil {
		return config.StepConfig{}, err
	}
	return stored, nil
}

// CreateUser submits a completed draft and returns the stored record.
func (c *Client) CreateUser(ctx context.Context, sub user.Submission) (user.Record, error) {
	var rec user.Record
	if err := c.do(ctx, http.MethodPost, "/api/users", sub, &rec); err != nil {
		return user.Record{}, err
	}
	return rec, nil
}

// ListUsers returns all submitted records in server order.
func (c *Client) ListUsers(ctx context.Context) ([]user.Record, error) {
	var records []user.Record
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet := errorSnippet(res.Body)
		c.logger.Warn("%s %s returned %d: %s", method, path, res.StatusCode, snippet)
		return fmt.Errorf("%s %s: server returned %d: %s", method, path, res.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// errorSnippet pulls a short diagnostic out of an error response body,
// preferring the API's JSON error shape.
func errorSnippet(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 512))
	if err != nil || len(raw) == 0 {
		return "(no body)"
	}
	var apiErr struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
		return apiErr.Error
	}
	return strings.TrimSpace(string(raw))
}
