// Package remote talks to the flashcard server: it persists ratings, signals
// session completion, serves the card collection and submits deck forms.
package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 1 << 20
)

// Paths are the server endpoints, relative to the base URL.
type Paths struct {
	Review    string
	Complete  string
	Cards     string
	Add       string
	Edit      string
	Translate string
}

// DefaultPaths returns the endpoints of the stock server.
func DefaultPaths() Paths {
	return Paths{
		Review:    "/flashcard/review_flashcard",
		Complete:  "/flashcard/complete",
		Cards:     "/flashcard/cards",
		Add:       "/flashcard/addcards",
		Edit:      "/flashcard/edit_card",
		Translate: "/audiobook/translate",
	}
}

// Client is an HTTP client for the flashcard server.
type Client struct {
	baseURL   string
	paths     Paths
	client    *http.Client
	token     string
	csrfToken string
	retry     RetryConfig
	log       *logrus.Entry
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the server base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithPaths overrides the endpoint paths. Empty fields keep their default.
func WithPaths(p Paths) Option {
	return func(c *Client) {
		d := &c.paths
		for _, f := range []struct {
			dst *string
			src string
		}{
			{&d.Review, p.Review},
			{&d.Complete, p.Complete},
			{&d.Cards, p.Cards},
			{&d.Add, p.Add},
			{&d.Edit, p.Edit},
			{&d.Translate, p.Translate},
		} {
			if f.src != "" {
				*f.dst = f.src
			}
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client. Redirects are still
// reported as *StatusError unless hc sets its own CheckRedirect.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithToken sends a bearer token with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithCSRFToken sends the X-CSRFToken header with every request.
func WithCSRFToken(token string) Option {
	return func(c *Client) { c.csrfToken = token }
}

// WithRetry sets the retry policy for idempotent requests.
func WithRetry(cfg RetryConfig) Option {
	return func(c *Client) { c.retry = cfg }
}

// WithLogger sets the request logger.
func WithLogger(log *logrus.Entry) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a Client with the given options.
func NewClient(opts ...Option) *Client {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		baseURL: DefaultBaseURL,
		paths:   DefaultPaths(),
		client:  &http.Client{Timeout: DefaultTimeout},
		retry:   DefaultRetryConfig(),
		log:     logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client.CheckRedirect == nil {
		hc := *c.client
		hc.CheckRedirect = noRedirect
		c.client = &hc
	}
	c.log = c.log.WithField("component", "remote")
	return c
}

// noRedirect stops at the first 3xx. An expired login answers with a
// redirect to the sign-in page, which must not pass for a 2xx.
func noRedirect(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends a request and returns the response body. A non-2xx answer is
// reported as *StatusError; the body is still returned so callers can decode
// a server message from it.
func (c *Client) do(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.csrfToken != "" {
		req.Header.Set("X-CSRFToken", c.csrfToken)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	entry := c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"latency_ms": time.Since(start).Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Debug("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	entry.WithField("status", resp.StatusCode).Debug("request done")
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return data, &StatusError{
			Method:     method,
			Path:       path,
			Code:       resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
			Location:   resp.Header.Get("Location"),
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	return data, nil
}
