// Package httpimg downloads candidate images over HTTP.
package httpimg

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/logofinder/usecase"
)

// userAgent mirrors a desktop browser; several CDNs refuse unknown agents.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Downloader fetches images with a hard size ceiling.
type Downloader struct {
	client *http.Client
}

// Downloader implements usecase.ImageDownloader; verified at compile time.
var _ usecase.ImageDownloader = (*Downloader)(nil)

// NewDownloader creates a Downloader using the given HTTP client.
func NewDownloader(client *http.Client) *Downloader {
	return &Downloader{client: client}
}

// Download fetches the image at imageURL. It returns an error when the
// response status is not 2xx or the body exceeds maxSize bytes; the body is
// read through a limited reader so an oversized image never fully buffers.
func (d *Downloader) Download(ctx context.Context, imageURL string, maxSize int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("download image: http %d", res.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("image exceeds %d bytes", maxSize)
	}
	return data, nil
}
