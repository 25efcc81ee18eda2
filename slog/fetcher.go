// Package slog provides logging decorators for the aemet interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/manumora/aemet"
)

// Ensure LoggingFetcher implements aemet.Fetcher.
var _ aemet.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
//
// Each fetch is logged once, after it returns. Failed fetches carry the
// error code so a blocked request (EFETCH) can be told apart from a bad
// configuration (EINVALID) when reading the logs.
type LoggingFetcher struct {
	next      aemet.Fetcher
	logger    *slog.Logger
	userAgent string
}

// FetcherOption configures a LoggingFetcher.
type FetcherOption func(*LoggingFetcher)

// WithUserAgent records the User-Agent the wrapped fetcher presents to
// the site. AEMET rejects unknown agents, so it is logged with every fetch.
func WithUserAgent(ua string) FetcherOption {
	return func(f *LoggingFetcher) {
		f.userAgent = ua
	}
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next aemet.Fetcher, logger *slog.Logger, opts ...FetcherOption) *LoggingFetcher {
	f := &LoggingFetcher{next: next, logger: logger}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch delegates to the wrapped fetcher and logs the page size, the
// user agent and, on failure, the error code.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if f.userAgent != "" {
			attrs = append(attrs, "user_agent", f.userAgent)
		}
		if err != nil {
			attrs = append(attrs, "code", aemet.ErrorCode(err), "err", err)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
