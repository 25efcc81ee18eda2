// Package template implements aemet.Assembler with html/template.
package template

import (
	"html/template"
	"strings"

	"github.com/manumora/aemet"
)

// Ensure Assembler implements aemet.Assembler at compile time.
var _ aemet.Assembler = (*Assembler)(nil)

// DefaultBackgroundURL is the background image painted behind the forecast.
const DefaultBackgroundURL = "https://raw.githubusercontent.com/manumora/aemet_extractor/refs/heads/master/background.png"

// DefaultTitle is the <title> of the assembled document.
const DefaultTitle = "Predicción meteorológica para Mérida - AEMET"

// The inline styles and the region markup are trusted page content and are
// inserted verbatim. Stylesheet URLs go through attribute escaping.
//
// The body is scaled by 1.7 for the kiosk screen; its width of 58.82%
// (100/1.7) compensates the zoom. The script keeps links from navigating.
// html/template strips comments inside <style> and <script>.
var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
{{.Styles}}

body {
    transform: scale(1.7);
    transform-origin: top left;
    width: 58.82%;
    margin: 0;
    padding: 0;
    overflow-x: hidden;
    background-image: url('{{.Background}}');
    background-repeat: no-repeat;
    background-attachment: fixed;
    background-size: cover;
}

html {
    overflow-x: hidden;
}

table, img {
    max-width: 100%;
}

td {
    background-color: white !important;
}
    </style>
{{range .Links}}
    <link rel="stylesheet" href="{{.}}">
{{- end}}
</head>
<body>
    {{.Content}}

    <script>
        document.addEventListener('DOMContentLoaded', function() {
            var links = document.getElementsByTagName('a');
            for (var i = 0; i < links.length; i++) {
                links[i].addEventListener('click', function(e) {
                    e.preventDefault();
                });
            }
        });
    </script>
</body>
</html>
`))

type document struct {
	Title      string
	Styles     template.CSS
	Background template.URL
	Links      []string
	Content    template.HTML
}

// Assembler renders extractions into the kiosk document.
type Assembler struct {
	title      string
	background string
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithTitle sets the document title. Defaults to DefaultTitle.
func WithTitle(title string) Option {
	return func(a *Assembler) {
		a.title = title
	}
}

// WithBackgroundURL sets the background image. Defaults to DefaultBackgroundURL.
func WithBackgroundURL(u string) Option {
	return func(a *Assembler) {
		a.background = u
	}
}

// NewAssembler creates a new Assembler.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		title:      DefaultTitle,
		background: DefaultBackgroundURL,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble returns the complete HTML document for ext.
func (a *Assembler) Assemble(ext *aemet.Extraction) (string, error) {
	if ext == nil {
		return "", aemet.Errorf(aemet.EINVALID, "extraction required")
	}

	var b strings.Builder
	err := documentTemplate.Execute(&b, document{
		Title:      a.title,
		Styles:     template.CSS(ext.Styles.Inline),
		Background: template.URL(a.background),
		Links:      ext.Styles.Links,
		Content:    template.HTML(ext.ContentHTML),
	})
	if err != nil {
		return "", aemet.WrapError(aemet.EINTERNAL, err, "failed to render document")
	}
	return b.String(), nil
}
