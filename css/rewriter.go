// Package css rewrites resource references inside CSS text.
//
// The rewriting is a pattern substitution over url(...) occurrences, not a
// CSS parser. Callers depend on aemet.CSSRewriter so a tokenizer-based
// implementation can replace it.
package css

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/manumora/aemet"
)

// Ensure RegexpRewriter implements aemet.CSSRewriter at compile time.
var _ aemet.CSSRewriter = (*RegexpRewriter)(nil)

// urlPattern matches url(x), url('x') and url("x"). The reference itself
// may not contain quotes or a closing parenthesis.
var urlPattern = regexp.MustCompile(`url\(['"]?([^'")]+)['"]?\)`)

// RegexpRewriter rewrites url(...) references with a regular expression.
type RegexpRewriter struct{}

// NewRegexpRewriter creates a new RegexpRewriter.
func NewRegexpRewriter() *RegexpRewriter {
	return &RegexpRewriter{}
}

// RewriteURLs resolves every url(...) reference in css against base.
// References starting with "http" or "data:" are left untouched, byte for
// byte. Rewritten references are always emitted as url("...").
func (r *RegexpRewriter) RewriteURLs(css string, base *url.URL) string {
	return urlPattern.ReplaceAllStringFunc(css, func(match string) string {
		ref := urlPattern.FindStringSubmatch(match)[1]
		if strings.HasPrefix(ref, "http") || strings.HasPrefix(ref, "data:") {
			return match
		}
		return `url("` + aemet.Absolutize(base, ref) + `")`
	})
}
