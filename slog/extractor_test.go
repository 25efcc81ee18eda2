package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/manumora/aemet"
	"github.com/manumora/aemet/mock"
	aemetslog "github.com/manumora/aemet/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs content size and stylesheet count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &aemet.Extraction{
			ContentHTML: "<div>region</div>",
			Styles:      aemet.StyleSheets{Links: []string{"https://www.aemet.es/css/a.css"}},
		}
		inner := &mock.Extractor{
			ExtractFn: func(html string, sourceURL string) (*aemet.Extraction, error) {
				return want, nil
			},
		}

		extractor := aemetslog.NewLoggingExtractor(inner, logger)
		got, err := extractor.Extract("<html></html>", aemet.DefaultURL)

		require.NoError(t, err)
		assert.Same(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "bytes=17")
		assert.Contains(t, output, "stylesheets=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error when region is missing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string, sourceURL string) (*aemet.Extraction, error) {
				return nil, aemet.Errorf(aemet.ENOTFOUND, "region missing")
			},
		}

		extractor := aemetslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>", aemet.DefaultURL)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, "code=not_found")
	})
}
