package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/nekrasovka/libsearch/internal/core/domain"
	"github.com/nekrasovka/libsearch/internal/core/ports/driven"
	"github.com/nekrasovka/libsearch/internal/logger"
)

// Ensure Client implements the interfaces.
var (
	_ driven.SearchGateway = (*Client)(nil)
	_ driven.LikeGateway   = (*Client)(nil)
)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8076"
	DefaultTimeout = 30 * time.Second

	// HeaderRequestID identifies one outbound call in service logs.
	HeaderRequestID = "X-Request-ID"

	// maxErrorBody caps how much of a failed response is quoted in errors.
	maxErrorBody = 512
)

// Client talks to the library search service over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
	newID   func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithRateLimit throttles outbound calls to perSecond. Zero disables it.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		client:  &http.Client{Timeout: DefaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromSettings creates a client from server settings.
func NewFromSettings(s domain.ServerSettings, opts ...Option) *Client {
	base := []Option{WithTimeout(s.Timeout), WithRateLimit(s.LikeRate)}
	return New(s.BaseURL, append(base, opts...)...)
}

// BaseURL returns the service root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search runs one query against GET /search.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	params := url.Values{}
	params.Set("index", req.Index)
	params.Set("q", req.Query)
	params.Set("start_year", strconv.Itoa(req.Years.Start))
	params.Set("end_year", strconv.Itoa(req.Years.End))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrSearchFailed, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", domain.ErrSearchFailed, statusError(resp))
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrSearchFailed, err)
	}

	out := body.toDomain()
	logger.Debug("search %q: %d results, total %d", req.Query, len(out.Results), out.Total)
	return out, nil
}

// RegisterLike records a like with POST /like.
func (c *Client) RegisterLike(ctx context.Context, req domain.LikeRequest) error {
	payload, err := json.Marshal(likeRequest{DocID: req.DocumentID, Query: req.Query})
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", domain.ErrLikeFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/like", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", domain.ErrLikeFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLikeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s", domain.ErrLikeFailed, statusError(resp))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// do waits for the rate limiter, tags the request and sends it.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	id := c.newID()
	req.Header.Set(HeaderRequestID, id)
	logger.Debug("%s %s [%s]", req.Method, req.URL.Path, id)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

func statusError(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
