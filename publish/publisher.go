// Package publish runs a snapshot: fetch, extract, assemble, write.
package publish

import (
	"context"

	"github.com/manumora/aemet"
)

// Publisher produces the kiosk snapshot for one page.
//
// Steps run strictly in sequence and a failing step stops the run, so the
// Writer is only reached with a fully assembled document.
type Publisher struct {
	Fetcher   aemet.Fetcher
	Extractor aemet.Extractor
	Assembler aemet.Assembler
	Writer    aemet.Writer

	// URL is the page to snapshot.
	URL string
}

// Publish fetches the page, extracts the forecast region, assembles the
// standalone document and writes it. It returns the written path.
func (p *Publisher) Publish(ctx context.Context) (string, error) {
	html, err := p.Fetcher.Fetch(ctx, p.URL)
	if err != nil {
		return "", err
	}

	ext, err := p.Extractor.Extract(html, p.URL)
	if err != nil {
		return "", err
	}

	doc, err := p.Assembler.Assemble(ext)
	if err != nil {
		return "", err
	}

	return p.Writer.WriteDocument(ctx, doc)
}
