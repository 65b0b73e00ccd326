package keeper

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"resty.dev/v3"

	"github.com/vk/keeperctl/internal/ctxlog"
)

// Client talks to a single keeper service instance. It is safe for
// concurrent use; every operation method hands out an independent builder.
type Client struct {
	host string
	http *resty.Client
}

// Option customises a Client during construction.
type Option func(*Client)

// WithTimeout bounds every HTTP request issued by the client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.http.SetHeader("User-Agent", ua)
	}
}

// New creates a Client for the keeper service at host. The token is sent as
// a bearer credential on every request; an empty token disables auth.
func New(host, token string, opts ...Option) *Client {
	httpClient := resty.New().
		SetBaseURL(host).
		SetHeader("Accept", "application/json")
	if token != "" {
		httpClient.SetAuthToken(token)
	}

	c := &Client{
		host: host,
		http: httpClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Host returns the base URL the client was constructed with.
func (c *Client) Host() string {
	return c.host
}

// Close releases the client's transport resources. The client must not be
// used afterwards.
func (c *Client) Close() error {
	return c.http.Close()
}

// newRequest prepares a request with the per-invocation plumbing every
// operation shares: context, request id, and debug logging.
func (c *Client) newRequest(ctx context.Context) *resty.Request {
	requestID := uuid.NewString()
	ctxlog.FromContext(ctx).Debug("Preparing keeper request.", "request_id", requestID)
	return c.http.R().
		SetContext(ctx).
		SetHeader("x-request-id", requestID)
}

// Error is the decoded failure payload returned by the keeper service for
// any non-2xx response.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("keeper: %s (%s, status %d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("keeper: %s (status %d)", e.Message, e.StatusCode)
}

// checkResponse folds a transport error or an API error response into a
// single error value. The success payload is left to the caller.
func checkResponse(res *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("keeper: request failed: %w", err)
	}
	if res.IsError() {
		apiErr, ok := res.Error().(*Error)
		if !ok || apiErr == nil {
			return &Error{StatusCode: res.StatusCode(), Message: res.String()}
		}
		apiErr.StatusCode = res.StatusCode()
		return apiErr
	}
	return nil
}
