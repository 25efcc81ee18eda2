package aemet

import "net/url"

// StyleSheets holds the styling collected from the whole source page.
type StyleSheets struct {
	// Inline is the text of every <style> element in document order, each
	// followed by a newline, with url(...) references made absolute.
	Inline string

	// Links are the absolute hrefs of every stylesheet <link> in document order.
	Links []string
}

// Extraction is the result of extracting the forecast region from a page.
type Extraction struct {
	// ContentHTML is the serialized region after pruning and rewriting.
	ContentHTML string

	Styles StyleSheets
}

// Extractor extracts the forecast region from a page.
type Extractor interface {
	// Extract parses html, prunes and rewrites the region and collects
	// stylesheets. sourceURL is the base for relative references.
	// Returns EPARSE for unparseable input and ENOTFOUND when the region
	// is missing.
	Extract(html string, sourceURL string) (*Extraction, error)
}

// CSSRewriter rewrites url(...) references inside CSS text.
type CSSRewriter interface {
	// RewriteURLs returns css with every relative url(...) resolved against base.
	RewriteURLs(css string, base *url.URL) string
}
