// Package goquery implements aemet.Extractor on top of goquery and cascadia.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/manumora/aemet"
	"github.com/manumora/aemet/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements aemet.Extractor at compile time.
var _ aemet.Extractor = (*Extractor)(nil)

// Extractor cuts the forecast region out of a page and makes it
// self-contained: exclusions and hidden rows are removed, a heading is
// added and relative references are resolved against the source URL.
type Extractor struct {
	target aemet.Target
	css    aemet.CSSRewriter

	region     cascadia.Selector
	exclusions []cascadia.Selector
	hiddenRows cascadia.Selector
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCSSRewriter sets the rewriter used for url(...) references in the
// collected inline styles. Defaults to css.RegexpRewriter.
func WithCSSRewriter(r aemet.CSSRewriter) Option {
	return func(e *Extractor) {
		e.css = r
	}
}

// NewExtractor creates an Extractor for target.
// Returns EINVALID if any of the target's selectors does not compile.
func NewExtractor(target aemet.Target, opts ...Option) (*Extractor, error) {
	e := &Extractor{
		target: target,
		css:    css.NewRegexpRewriter(),
	}
	for _, opt := range opts {
		opt(e)
	}

	var err error
	if e.region, err = compile(target.Region); err != nil {
		return nil, err
	}
	if e.hiddenRows, err = compile(target.HiddenRows); err != nil {
		return nil, err
	}
	for _, s := range target.Exclusions {
		sel, err := compile(s)
		if err != nil {
			return nil, err
		}
		e.exclusions = append(e.exclusions, sel)
	}

	return e, nil
}

func compile(s aemet.Selector) (cascadia.Selector, error) {
	sel, err := cascadia.Compile(s.String())
	if err != nil {
		return nil, aemet.WrapError(aemet.EINVALID, err, "invalid selector %q", s.String())
	}
	return sel, nil
}

// Extract parses page and returns the rewritten forecast region together
// with the stylesheets of the whole page.
func (e *Extractor) Extract(page string, sourceURL string) (*aemet.Extraction, error) {
	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil, aemet.WrapError(aemet.EINVALID, err, "invalid source URL %q", sourceURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, aemet.WrapError(aemet.EPARSE, err, "failed to parse HTML")
	}

	region := doc.FindMatcher(e.region).First()
	if region.Length() == 0 {
		return nil, aemet.Errorf(aemet.ENOTFOUND, "could not find the %q region", e.target.Region.String())
	}

	// All exclusions are located before any is removed, so a match nested
	// inside another excluded subtree does not pull in a later sibling.
	excluded := make([]*goquery.Selection, 0, len(e.exclusions))
	for _, sel := range e.exclusions {
		excluded = append(excluded, region.FindMatcher(sel).First())
	}
	for _, s := range excluded {
		s.Remove()
	}
	region.FindMatcher(e.hiddenRows).Remove()

	e.insertHeading(region)

	styles := aemet.StyleSheets{
		Inline: e.css.RewriteURLs(collectInlineStyles(doc), base),
		Links:  collectStylesheetLinks(doc, base),
	}

	region.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}
		img.SetAttr("src", aemet.Absolutize(base, src))
	})

	region.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || href == "" || isInPageLink(href) {
			return
		}
		a.SetAttr("href", aemet.Absolutize(base, href))
	})

	content, err := goquery.OuterHtml(region)
	if err != nil {
		return nil, aemet.WrapError(aemet.EINTERNAL, err, "failed to render region")
	}

	return &aemet.Extraction{
		ContentHTML: content,
		Styles:      styles,
	}, nil
}

// insertHeading prepends the heading to the forecast table's parent, or to
// the region itself when the table is missing.
func (e *Extractor) insertHeading(region *goquery.Selection) {
	table := region.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		return id == e.target.TableID
	}).First()

	parent := region
	if table.Length() > 0 {
		parent = table.Parent()
	}
	parent.PrependNodes(e.heading())
}

func (e *Extractor) heading() *html.Node {
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     "h1",
		DataAtom: atom.H1,
		Attr:     []html.Attribute{{Key: "style", Val: e.target.HeadingStyle}},
	}
	h.AppendChild(&html.Node{Type: html.TextNode, Data: e.target.Heading})
	return h
}

// collectInlineStyles concatenates every <style> element of the document,
// each followed by a newline.
func collectInlineStyles(doc *goquery.Document) string {
	var b strings.Builder
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		b.WriteString(s.Text())
		b.WriteString("\n")
	})
	return b.String()
}

// collectStylesheetLinks returns the absolute hrefs of every stylesheet
// link in document order.
func collectStylesheetLinks(doc *goquery.Document, base *url.URL) []string {
	var links []string
	doc.Find(`link[rel~="stylesheet"]`).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		links = append(links, aemet.Absolutize(base, href))
	})
	return links
}

// isInPageLink reports whether href stays on the rendered page: a fragment
// or a javascript: pseudo-link.
func isInPageLink(href string) bool {
	return strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:")
}
