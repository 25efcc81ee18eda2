// Package http provides an HTTP-based implementation of aemet.Fetcher.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/manumora/aemet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// Ensure Fetcher implements aemet.Fetcher at compile time.
var _ aemet.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Each Fetch is a single GET; nothing is retried.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Zero, the default, leaves the request bounded only by its context.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header. Defaults to aemet.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient sets the underlying HTTP client. The timeout option is
// ignored when a client is supplied.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		userAgent: aemet.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the page at url and returns it decoded to UTF-8.
// The source encoding comes from the Content-Type header, a BOM or a
// <meta charset> declaration. Without those only the first 1024 bytes are
// sniffed; plain ASCII there means windows-1252 for the whole body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", aemet.WrapError(aemet.EFETCH, err, "invalid request for %s", url)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", aemet.WrapError(aemet.EFETCH, err, "error accessing %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", aemet.WrapError(aemet.EFETCH, fmt.Errorf("HTTP %d", resp.StatusCode), "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", aemet.WrapError(aemet.EFETCH, err, "error reading %s", url)
	}

	e, _, _ := charset.DetermineEncoding(body, resp.Header.Get("Content-Type"))
	if e == encoding.Nop {
		return string(body), nil
	}
	decoded, err := e.NewDecoder().Bytes(body)
	if err != nil {
		return "", aemet.WrapError(aemet.EFETCH, err, "error decoding %s", url)
	}
	return string(decoded), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
