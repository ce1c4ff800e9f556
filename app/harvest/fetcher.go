package harvest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// PageFetcher retrieves raw page markup. Callers treat any error as soft:
// log it and continue with zero candidates or empty content.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

var _ PageFetcher = (*Fetcher)(nil)

// Fetcher performs plain GET requests with a fixed total timeout and
// normalizes response bodies to UTF-8.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return decodeBody(data, resp.Header.Get("Content-Type")), nil
}

// decodeBody converts data to UTF-8 based on the declared charset. Unknown
// or missing charsets fall back to the raw bytes.
func decodeBody(data []byte, contentType string) []byte {
	if contentType == "" {
		return data
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return data
	}

	charset := strings.ToLower(params["charset"])
	if charset == "" || charset == "utf-8" || charset == "utf8" {
		return data
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		slog.Warn("Unknown response charset, using raw bytes", "charset", charset)
		return data
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		slog.Warn("Charset decoding failed, using raw bytes", "charset", charset, "error", err)
		return data
	}

	return decoded
}
