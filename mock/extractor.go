package mock

import (
	"net/url"

	"github.com/manumora/aemet"
)

var _ aemet.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of aemet.Extractor.
type Extractor struct {
	ExtractFn func(html string, sourceURL string) (*aemet.Extraction, error)
}

func (e *Extractor) Extract(html string, sourceURL string) (*aemet.Extraction, error) {
	return e.ExtractFn(html, sourceURL)
}

var _ aemet.CSSRewriter = (*CSSRewriter)(nil)

// CSSRewriter is a mock implementation of aemet.CSSRewriter.
type CSSRewriter struct {
	RewriteURLsFn func(css string, base *url.URL) string
}

func (r *CSSRewriter) RewriteURLs(css string, base *url.URL) string {
	return r.RewriteURLsFn(css, base)
}
