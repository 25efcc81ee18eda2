// Package fs provides file-based storage for the forecast snapshot.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/manumora/aemet"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Ensure Writer implements aemet.Writer at compile time.
var _ aemet.Writer = (*Writer)(nil)

// Writer writes the snapshot document to a fixed file in a directory.
//
// Content is written to a temporary file next to the target and renamed
// over it, so a failed write leaves the previous snapshot untouched.
type Writer struct {
	dir      string
	filename string
}

// Option configures a Writer.
type Option func(*Writer)

// WithFilename sets the output filename. Defaults to aemet.OutputFilename.
func WithFilename(name string) Option {
	return func(w *Writer) {
		w.filename = name
	}
}

// NewWriter creates a new Writer that writes into dir.
func NewWriter(dir string, opts ...Option) *Writer {
	w := &Writer{
		dir:      dir,
		filename: aemet.OutputFilename,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path returns the path of the output file.
func (w *Writer) Path() string {
	return filepath.Join(w.dir, w.filename)
}

// WriteDocument writes content as UTF-8, replacing ill-formed sequences,
// creating the directory if needed.
func (w *Writer) WriteDocument(ctx context.Context, content string) (string, error) {
	path := w.Path()

	if w.dir == "" {
		return "", aemet.Errorf(aemet.EWRITE, "output directory required")
	}
	if err := ctx.Err(); err != nil {
		return "", aemet.WrapError(aemet.EWRITE, err, "writing %s", path)
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", aemet.WrapError(aemet.EWRITE, err, "creating directory %s", w.dir)
	}

	f, err := os.CreateTemp(w.dir, "."+w.filename+".*.tmp")
	if err != nil {
		return "", aemet.WrapError(aemet.EWRITE, err, "writing %s", path)
	}
	tmp := f.Name()

	if err := writeUTF8(f, content); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", aemet.WrapError(aemet.EWRITE, err, "writing %s", path)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return "", aemet.WrapError(aemet.EWRITE, err, "writing %s", path)
	}

	// Rename is atomic within a directory.
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", aemet.WrapError(aemet.EWRITE, err, "replacing %s", path)
	}

	return path, nil
}

func writeUTF8(f *os.File, content string) error {
	// CreateTemp uses 0600; the snapshot is served by a web server.
	if err := f.Chmod(0644); err != nil {
		return err
	}
	tw := transform.NewWriter(f, unicode.UTF8.NewEncoder())
	if _, err := io.Copy(tw, strings.NewReader(content)); err != nil {
		return err
	}
	return tw.Close()
}
