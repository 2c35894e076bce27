// Package apiclient is the single entry point the dashboard uses for
// data access. One façade, two transports: real HTTP calls against the
// admin API, or an offline dispatch into the file-backed mock store
// when mock mode is on.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/biz365/admin-api/internal/config"
	"github.com/biz365/admin-api/internal/mockdata"
	"github.com/biz365/admin-api/internal/query"
)

type Record = map[string]any

// Result is what every verb method yields: the payload plus optional
// pagination meta, already stripped of the response envelope.
type Result struct {
	Data    json.RawMessage
	Meta    *query.Pagination
	Message string
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
	mock    bool
	delay   time.Duration
	store   *mockdata.Store
	routes  []route
}

// New builds a client from config. The store is always required: in
// mock mode it backs every operation, in network mode it persists the
// auth token between runs.
func New(cfg *config.Config, store *mockdata.Store) (*Client, error) {
	if store == nil {
		return nil, fmt.Errorf("apiclient: store is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		mock:    cfg.UseMockData,
		delay:   cfg.MockDelay,
		store:   store,
	}

	if c.mock {
		if err := store.Initialize(); err != nil {
			return nil, fmt.Errorf("failed to seed mock store: %w", err)
		}
	}

	var token string
	if _, err := store.GetValue(mockdata.KeyAuthToken, &token); err != nil {
		return nil, err
	}
	c.token = token

	c.routes = buildRoutes(c)
	return c, nil
}

// MockMode reports which transport the client is using.
func (c *Client) MockMode() bool {
	return c.mock
}

func (c *Client) Get(ctx context.Context, path string) (*Result, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body Record) (*Result, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body Record) (*Result, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*Result, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body Record) (*Result, error) {
	if c.mock {
		if c.delay > 0 {
			select {
			case <-time.After(c.delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		return c.dispatch(ctx, method, path, body)
	}
	return c.request(ctx, method, path, body)
}

// envelope mirrors the server's StandardResponse.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   *envelopeError    `json:"error"`
	Meta    *query.Pagination `json:"meta"`
}

type envelopeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details"`
}

func (c *Client) request(ctx context.Context, method, path string, body Record) (*Result, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed (is the backend running at %s?): %w", path, c.baseURL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= 400 {
				return nil, &APIError{
					Code:    "HTTP_ERROR",
					Message: http.StatusText(resp.StatusCode),
					Status:  resp.StatusCode,
				}
			}
			return nil, fmt.Errorf("unexpected response from %s: %w", path, err)
		}
	}

	if resp.StatusCode >= 400 || (len(raw) > 0 && !env.Success && resp.StatusCode != http.StatusNoContent) {
		apiErr := &APIError{
			Code:    "HTTP_ERROR",
			Message: http.StatusText(resp.StatusCode),
			Status:  resp.StatusCode,
		}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
		}
		return nil, apiErr
	}

	return &Result{Data: env.Data, Meta: env.Meta, Message: env.Message}, nil
}

// decode re-marshals a mock handler's payload or decodes a network
// payload into the caller's type.
func decode(data json.RawMessage, target any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}

func makeResult(data any, meta *query.Pagination) (*Result, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Result{Data: raw, Meta: meta}, nil
}
