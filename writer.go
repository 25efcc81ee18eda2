package aemet

import "context"

// Writer persists an assembled document, replacing any previous one.
type Writer interface {
	// WriteDocument stores content and returns the path it was written to.
	// Returns EWRITE on any I/O failure.
	WriteDocument(ctx context.Context, content string) (path string, err error)
}
