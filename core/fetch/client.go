package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"json-cooker/core/document"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %s", e.StatusCode, e.URL)
}

// Result is the outcome of one download in a FetchAll batch.
type Result struct {
	Name     string
	URL      string
	Err      error
	Duration time.Duration
}

// Client downloads upstream JSON documents. Each download is a single attempt.
type Client struct {
	http   *http.Client
	cfg    Config
	logger *zap.Logger
}

// NewClient creates a client whose requests are bounded by cfg.Timeout().
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout()

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          cfg.Limit() * 2,
		MaxIdleConnsPerHost:   cfg.Limit(),
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		http:   &http.Client{Timeout: timeout, Transport: transport},
		cfg:    cfg,
		logger: logger,
	}
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// Fetch downloads and parses one document. Failures are logged with the
// descriptor's logical name and returned wrapped with it.
func (c *Client) Fetch(ctx context.Context, d Descriptor) (*document.Node, error) {
	c.logger.Info("Downloading", zap.String("name", d.Name), zap.String("url", d.URL))

	doc, err := c.get(ctx, d.URL)
	if err != nil {
		c.logger.Error("Download failed", zap.String("name", d.Name), zap.String("url", d.URL), zap.Error(err))
		return nil, fmt.Errorf("fetch %s: %w", d.Name, err)
	}
	return doc, nil
}

func (c *Client) get(ctx context.Context, url string) (*document.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json, */*")
	req.Header.Set("Accept-Encoding", acceptEncoding)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := decodedBody(resp)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}
	return doc, nil
}

// FetchAll downloads every descriptor concurrently and stores each parsed
// document in store under its logical name. It returns once every download has
// settled; one failure never cancels its siblings, and a failed name is left
// absent from the store. Results are in descriptor order.
func (c *Client) FetchAll(ctx context.Context, descriptors []Descriptor, store *document.Store) []Result {
	results := make([]Result, len(descriptors))

	var g errgroup.Group
	g.SetLimit(c.cfg.Limit())

	for i, d := range descriptors {
		g.Go(func() error {
			start := time.Now()
			doc, err := c.Fetch(ctx, d)
			if err == nil {
				store.Put(d.Name, doc)
			}
			results[i] = Result{Name: d.Name, URL: d.URL, Err: err, Duration: time.Since(start)}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
