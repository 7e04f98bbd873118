package apiclient

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

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// =====================================================
// CONTEXT VALUES
// =====================================================

type ctxKey int

const (
	tokenKey ctxKey = iota
	requestIDKey
	clientIPKey
)

// WithToken attaches the bearer token of the current session to ctx
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the token attached by WithToken
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// WithRequestID propagates the inbound request id to backend calls
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithClientIP forwards the browser address (the backend needs it for
// gateway payment URLs)
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// TokenSource supplies the bearer token for an outgoing request.
// An empty token means the request is sent anonymously.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// ContextTokenSource reads the token placed on the context by WithToken
type ContextTokenSource struct{}

func (ContextTokenSource) Token(ctx context.Context) (string, error) {
	return TokenFromContext(ctx), nil
}

// =====================================================
// CLIENT
// =====================================================

// Request describes one backend call
type Request struct {
	Method string
	Path   string // relative to the base URL, e.g. "/cart/items"
	Query  url.Values
	// RawQuery is forwarded verbatim (used for gateway redirects whose
	// parameter order and encoding must survive for signature checks).
	RawQuery string
	Body     interface{}
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
	userAgent  string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithRateLimit throttles outbound calls; rps <= 0 disables the limiter
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates backend client
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens:    ContextTokenSource{},
		userAgent: "bookstore-storefront",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends req and unwraps the response envelope into out (may be nil)
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	// Step 1: Throttle
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	// Step 2: Build URL
	target := c.baseURL + req.Path
	switch {
	case req.RawQuery != "":
		target += "?" + strings.TrimPrefix(req.RawQuery, "?")
	case len(req.Query) > 0:
		target += "?" + req.Query.Encode()
	}

	// Step 3: Encode body
	var body io.Reader
	if req.Body != nil {
		bodyJSON, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(bodyJSON)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	// Step 4: Headers (auth + correlation)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if token, err := c.tokens.Token(ctx); err != nil {
		return fmt.Errorf("failed to resolve token: %w", err)
	} else if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	requestID, _ := ctx.Value(requestIDKey).(string)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set("X-Request-ID", requestID)
	if ip, _ := ctx.Value(clientIPKey).(string); ip != "" {
		httpReq.Header.Set("X-Forwarded-For", ip)
	}

	// Step 5: Call backend
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call backend %s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Step 6: Unwrap envelope
	return decodeEnvelope(resp.StatusCode, respBody, out)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, out)
}
