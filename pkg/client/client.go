// Package client is a Go client for the antwar-server HTTP and WebSocket API.
package client

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

	"github.com/gorilla/websocket"

	"github.com/daniacca/antwar/internal/antwar"
)

// Client talks to a running antwar-server instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
	dialer     *websocket.Dialer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithDialer replaces the default websocket dialer used by Subscribe.
func WithDialer(d *websocket.Dialer) Option {
	return func(c *Client) {
		if d != nil {
			c.dialer = d
		}
	}
}

// New creates a client for the server at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		dialer:     websocket.DefaultDialer,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health checks the server's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("building health request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

// ApplyConfig resets the server's world from the given configuration.
func (c *Client) ApplyConfig(ctx context.Context, cfg antwar.Config) error {
	body, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/config", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building config request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("applying config: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("applying config: %s", readError(resp))
	}
	return nil
}

// Tick advances the world by n ticks and returns the last tick's statistics.
func (c *Client) Tick(ctx context.Context, n int) (antwar.TickStats, error) {
	if n < 1 {
		return antwar.TickStats{}, fmt.Errorf("tick count must be positive, got %d", n)
	}
	u := c.baseURL + "/tick?n=" + strconv.Itoa(n)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return antwar.TickStats{}, fmt.Errorf("building tick request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return antwar.TickStats{}, fmt.Errorf("ticking: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return antwar.TickStats{}, fmt.Errorf("ticking: %s", readError(resp))
	}
	var stats antwar.TickStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return antwar.TickStats{}, fmt.Errorf("decoding tick stats: %w", err)
	}
	return stats, nil
}

// State fetches the current world snapshot.
func (c *Client) State(ctx context.Context) (antwar.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/state", nil)
	if err != nil {
		return antwar.Snapshot{}, fmt.Errorf("building state request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return antwar.Snapshot{}, fmt.Errorf("fetching state: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return antwar.Snapshot{}, fmt.Errorf("fetching state: %s", readError(resp))
	}
	var s antwar.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return antwar.Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return s, nil
}

// Stats fetches the cumulative statistics recorded since the last reset.
func (c *Client) Stats(ctx context.Context) ([]antwar.TickStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats", nil)
	if err != nil {
		return nil, fmt.Errorf("building stats request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching stats: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching stats: %s", readError(resp))
	}
	var rows []antwar.TickStats
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding stats: %w", err)
	}
	return rows, nil
}

// Subscribe opens the server's snapshot stream and returns a channel of
// snapshots. The channel is closed when the context is cancelled or the
// connection drops; malformed frames are skipped.
func (c *Client) Subscribe(ctx context.Context) (<-chan antwar.Snapshot, error) {
	wsURL, err := c.websocketURL()
	if err != nil {
		return nil, err
	}

	conn, resp, err := c.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", wsURL, err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	out := make(chan antwar.Snapshot, 16)
	readerDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-readerDone:
		}
	}()
	go func() {
		defer close(out)
		defer close(readerDone)
		defer conn.Close()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			s, err := antwar.DecodeSnapshotJSON(data)
			if err != nil {
				continue
			}
			select {
			case out <- s:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (c *Client) websocketURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	return u.String(), nil
}

// readError extracts a short error description from a failed response.
func readError(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 512))
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
}
