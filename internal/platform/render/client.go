package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Box is an element bounding box in page coordinates.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Element is one DOM element record returned by the rendering service.
type Element struct {
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Class    string `json:"class"`
	ID       string `json:"id"`
	Selector string `json:"selector"`
	Box      *Box   `json:"box"`
}

// Client talks to the rendering service over HTTP.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a rendering service client with the given configuration
// and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Screenshot captures a full-page PNG of the given URL.
func (c *Client) Screenshot(ctx context.Context, pageURL string) ([]byte, error) {
	body, err := json.Marshal(map[string]any{
		"url":       pageURL,
		"width":     c.cfg.ViewportWidth,
		"height":    c.cfg.ViewportHeight,
		"full_page": true,
		"wait_ms":   c.cfg.SettleDelay.Milliseconds(),
	})
	if err != nil {
		return nil, err
	}

	res, err := c.post(ctx, "/screenshot", body)
	if err != nil {
		return nil, err
	}
	defer closeBody(res)

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("render service http %d", res.StatusCode)
	}
	return io.ReadAll(res.Body)
}

// QueryImages returns the image elements matching the given CSS selectors,
// with rendered bounding boxes, in document order per selector.
func (c *Client) QueryImages(ctx context.Context, pageURL string, selectors []string) ([]Element, error) {
	body, err := json.Marshal(map[string]any{
		"url":       pageURL,
		"selectors": selectors,
		"width":     c.cfg.ViewportWidth,
		"height":    c.cfg.ViewportHeight,
		"wait_ms":   c.cfg.SettleDelay.Milliseconds(),
	})
	if err != nil {
		return nil, err
	}

	res, err := c.post(ctx, "/elements", body)
	if err != nil {
		return nil, err
	}
	defer closeBody(res)

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("render service http %d", res.StatusCode)
	}

	var out struct {
		Elements []Element `json:"elements"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode elements response: %w", err)
	}
	return out.Elements, nil
}

func (c *Client) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

func closeBody(res *http.Response) {
	if err := res.Body.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
}
