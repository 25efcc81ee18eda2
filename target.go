package aemet

import "strings"

// Defaults for the Mérida forecast page.
const (
	DefaultURL       = "https://www.aemet.es/es/eltiempo/prediccion/municipios/merida-id06083"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"
	DefaultOutputDir = "/var/www/html"

	// OutputFilename is the name of the snapshot file inside the output directory.
	OutputFilename = "aemet.html"
)

// Selector identifies elements by tag name and class attribute.
// An element matches when it has the tag and carries every class.
type Selector struct {
	Tag     string
	Classes []string
}

// String returns the selector in CSS syntax, e.g. "div.notas_tabla".
func (s Selector) String() string {
	var b strings.Builder
	b.WriteString(s.Tag)
	for _, c := range s.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}

// Target describes which part of which page gets snapshotted and how the
// extracted region is decorated.
type Target struct {
	URL       string
	UserAgent string

	// Region is the subtree kept from the page.
	Region Selector

	// Exclusions are removed from Region, first match only. Missing
	// exclusions are ignored.
	Exclusions []Selector

	// HiddenRows are removed from Region, every match.
	HiddenRows Selector

	// TableID identifies the forecast table. The heading is inserted as the
	// first child of the table's parent, or of Region when the table is absent.
	TableID string

	Heading      string
	HeadingStyle string
}

// DefaultTarget returns the target for the AEMET Mérida forecast.
func DefaultTarget() Target {
	return Target{
		URL:       DefaultURL,
		UserAgent: DefaultUserAgent,
		Region:    Selector{Tag: "div", Classes: []string{"contenedor_central_izq"}},
		Exclusions: []Selector{
			{Tag: "div", Classes: []string{"notas_tabla"}},
			{Tag: "div", Classes: []string{"alinear_texto_dcha"}},
			{Tag: "div", Classes: []string{"enlace_mas_detalle", "margintop5px_important"}},
			{Tag: "div", Classes: []string{"paddingbot40"}},
		},
		HiddenRows:   Selector{Tag: "tr", Classes: []string{"ocultar_filas_tabla"}},
		TableID:      "tabla_prediccion",
		Heading:      "Predicción metereológica - Mérida",
		HeadingStyle: "text-align: center; margin: 20px 0; color: #1b4990;",
	}
}
