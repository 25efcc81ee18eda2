package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/manumora/aemet/mock"
	aemetslog "github.com/manumora/aemet/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Writer{
		WriteDocumentFn: func(ctx context.Context, content string) (string, error) {
			return "/var/www/html/aemet.html", nil
		},
	}

	writer := aemetslog.NewLoggingWriter(inner, logger)
	path, err := writer.WriteDocument(context.Background(), "<html></html>")

	require.NoError(t, err)
	assert.Equal(t, "/var/www/html/aemet.html", path)
	output := buf.String()
	assert.Contains(t, output, "write")
	assert.Contains(t, output, "path=/var/www/html/aemet.html")
	assert.Contains(t, output, "bytes=13")
}
