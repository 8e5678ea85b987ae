package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBaseURL is where the file hub API listens in a default deployment.
const DefaultBaseURL = "http://localhost:8000/api"

// RequestIDHeader carries a per-request id so client and server logs can be joined.
const RequestIDHeader = "X-Request-ID"

type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTimeout bounds every request including reading its body. Zero disables the bound.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

var newRequestID = uuid.NewString

// Client is an HTTP implementation of Catalog.
type Client struct {
	base    url.URL
	client  *http.Client
	logger  *zap.Logger
	timeout time.Duration
}

// NewClient creates a client for the API rooted at base, e.g. http://localhost:8000/api.
func NewClient(base url.URL, o ...ClientOption) *Client {
	c := &Client{
		base:   base,
		logger: zap.NewNop(),
	}
	for _, opt := range o {
		opt(c)
	}
	switch {
	case c.client == nil:
		c.client = &http.Client{Timeout: c.timeout}
	case c.timeout > 0:
		client := *c.client
		client.Timeout = c.timeout
		c.client = &client
	}
	c.logger = c.logger.Named("catalogapi")
	return c
}

// ParseBaseURL validates a base URL given as text.
func ParseBaseURL(raw string) (url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return url.URL{}, fmt.Errorf("invalid API URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return url.URL{}, fmt.Errorf("invalid API URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return url.URL{}, fmt.Errorf("invalid API URL %q: missing host", raw)
	}
	return *u, nil
}

// BaseURL returns the API root with credentials stripped.
func (c *Client) BaseURL() string {
	u := c.base
	u.User = nil
	return u.String()
}

// endpoint joins path segments under the base path.
// The API routes all end with a slash.
func (c *Client) endpoint(query url.Values, segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	escaped[len(escaped)-1] += "/"
	u := c.base.JoinPath(escaped...)
	u.RawQuery = query.Encode()
	return u.String()
}

// do sends req and returns the response when its status is one of ok.
// Any other status is turned into an *Error and the body is closed.
func (c *Client) do(ctx context.Context, op string, req *http.Request, ok ...int) (*http.Response, error) {
	req = req.WithContext(ctx)

	requestID := newRequestID()
	req.Header.Set(RequestIDHeader, requestID)
	logger := c.logger.With(
		zap.String("op", op),
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.String("request_id", requestID),
	)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn("request failed", zap.Error(err), zap.Duration("latency", time.Since(start)))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logger.Debug("response", zap.Int("status", resp.StatusCode), zap.Duration("latency", time.Since(start)))

	for _, code := range ok {
		if resp.StatusCode == code {
			return resp, nil
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	apiErr := newResponseError(op, resp)
	logger.Warn("unexpected status", zap.Int("status", resp.StatusCode), zap.String("message", apiErr.Message))
	return nil, apiErr
}

// getJSON decodes the 200 response of a GET into o.
func (c *Client) getJSON(ctx context.Context, op, endpoint string, o any) error {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.do(ctx, op, req, http.StatusOK)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if err = json.NewDecoder(resp.Body).Decode(o); err != nil {
		return fmt.Errorf("%s: failed to decode response body: %w", op, err)
	}
	return nil
}
