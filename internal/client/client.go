// Package client is a Go caller of the catalog HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"bookcatalog/internal/book"
	"bookcatalog/internal/httpx"

	"golang.org/x/time/rate"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit paces outgoing requests to rps per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithMaxRetries sets how often idempotent reads are retried on 429 and 5xx responses.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches every book.
func (c *Client) List(ctx context.Context) ([]book.Book, error) {
	var books []book.Book
	if err := c.get(ctx, "/books", &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Get fetches a single book.
func (c *Client) Get(ctx context.Context, id int) (book.Book, error) {
	var b book.Book
	if err := c.get(ctx, "/books/"+strconv.Itoa(id), &b); err != nil {
		return book.Book{}, err
	}
	return b, nil
}

// Create adds a book and returns the id the server assigned.
func (c *Client) Create(ctx context.Context, title, author string) (int, error) {
	resp, err := c.send(ctx, http.MethodPost, "/books", book.CreateRequest{Title: title, Author: author})
	if err != nil {
		return 0, err
	}
	id, ok := book.ParseID(path.Base(resp.Header.Get("Location")))
	if !ok {
		return 0, fmt.Errorf("create: missing or invalid Location header %q", resp.Header.Get("Location"))
	}
	return id, nil
}

// Update overwrites the non-empty fields of req.
func (c *Client) Update(ctx context.Context, id int, req book.UpdateRequest) error {
	_, err := c.send(ctx, http.MethodPut, "/books/"+strconv.Itoa(id), req)
	return err
}

// Delete removes a book.
func (c *Client) Delete(ctx context.Context, id int) error {
	_, err := c.send(ctx, http.MethodDelete, "/books/"+strconv.Itoa(id), nil)
	return err
}

func (c *Client) get(ctx context.Context, route string, target any) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 100ms, 200ms, 400ms...
			backoff := time.Duration(1<<uint(i-1)) * 100 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		resp, body, err := c.do(ctx, http.MethodGet, route, nil)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			apiErr := newAPIError(resp.StatusCode, body)
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = apiErr
				continue
			}
			return apiErr
		}
		return json.Unmarshal(body, target)
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) send(ctx context.Context, method, route string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}

	resp, respBody, err := c.do(ctx, method, route, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, route string, body io.Reader) (*http.Response, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+route, body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, data, nil
}

func newAPIError(status int, body []byte) *APIError {
	var msg httpx.MessageResponse
	_ = json.Unmarshal(body, &msg)
	return &APIError{StatusCode: status, Message: msg.Message}
}
