package mock

import (
	"context"

	"github.com/manumora/aemet"
)

var _ aemet.Writer = (*Writer)(nil)

// Writer is a mock implementation of aemet.Writer.
type Writer struct {
	WriteDocumentFn func(ctx context.Context, content string) (string, error)
}

func (w *Writer) WriteDocument(ctx context.Context, content string) (string, error) {
	return w.WriteDocumentFn(ctx, content)
}
