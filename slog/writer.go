package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/manumora/aemet"
)

// Ensure LoggingWriter implements aemet.Writer.
var _ aemet.Writer = (*LoggingWriter)(nil)

// LoggingWriter wraps a Writer with logging.
type LoggingWriter struct {
	next   aemet.Writer
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next aemet.Writer, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteDocument delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteDocument(ctx context.Context, content string) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDocument(ctx, content)
}
