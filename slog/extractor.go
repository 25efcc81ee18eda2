package slog

import (
	"log/slog"
	"time"

	"github.com/manumora/aemet"
)

// Ensure LoggingExtractor implements aemet.Extractor.
var _ aemet.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   aemet.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next aemet.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result size.
func (e *LoggingExtractor) Extract(html string, sourceURL string) (ext *aemet.Extraction, err error) {
	defer func(begin time.Time) {
		var content, stylesheets int
		if ext != nil {
			content = len(ext.ContentHTML)
			stylesheets = len(ext.Styles.Links)
		}
		e.logger.Info("extract",
			"url", sourceURL,
			"bytes", content,
			"stylesheets", stylesheets,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, sourceURL)
}
