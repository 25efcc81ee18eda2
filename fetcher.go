package aemet

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs one request for the URL and returns the body as text.
	// Transport failures and non-2xx responses return EFETCH.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
