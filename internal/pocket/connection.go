package pocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/marekjm/pocket/internal/branding"
	"github.com/rs/zerolog"
)

// Connection sends authenticated requests to the Pocket API.
type Connection struct {
	baseURL     string
	consumerKey string
	accessToken string
	httpClient  *http.Client
	log         zerolog.Logger
}

// Option configures a Connection.
type Option func(*Connection)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(conn *Connection) {
		conn.httpClient = c
	}
}

// WithBaseURL points the connection at a different API origin.
func WithBaseURL(baseURL string) Option {
	return func(conn *Connection) {
		if baseURL != "" {
			conn.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(conn *Connection) {
		conn.log = log
	}
}

// NewConnection creates a Connection for the given credentials.
func NewConnection(consumerKey, accessToken string, opts ...Option) *Connection {
	c := &Connection{
		baseURL:     branding.APIURL(),
		consumerKey: consumerKey,
		accessToken: accessToken,
		httpClient:  http.DefaultClient,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the absolute URL for an API path such as "/v3/get".
func (c *Connection) URL(path string) string {
	return c.baseURL + path
}

// Headers returns the headers sent with every request.
func (c *Connection) Headers() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json; charset=UTF-8")
	h.Set("X-Accept", "application/json")
	return h
}

// Auth returns a copy of payload with the credentials added. The caller's
// map is left untouched.
func (c *Connection) Auth(payload map[string]any) map[string]any {
	signed := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		signed[k] = v
	}
	signed["consumer_key"] = c.consumerKey
	signed["access_token"] = c.accessToken
	return signed
}

// Get sends payload to path with the GET method.
func (c *Connection) Get(ctx context.Context, path string, payload map[string]any) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, payload)
}

// Put sends payload to path with the PUT method.
func (c *Connection) Put(ctx context.Context, path string, payload map[string]any) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, payload)
}

// Post sends payload to path with the POST method.
func (c *Connection) Post(ctx context.Context, path string, payload map[string]any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, payload)
}

func (c *Connection) do(ctx context.Context, method, path string, payload map[string]any) (*Response, error) {
	body, err := json.Marshal(c.Auth(payload))
	if err != nil {
		return nil, fmt.Errorf("marshaling request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.Headers()

	c.log.Debug().Str("method", method).Str("path", path).Msg("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.log.Debug().Str("path", path).Int("status", resp.StatusCode).Int("bytes", len(data)).Msg("received response")

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}
