package aemet

import (
	"net/url"
	"strings"
)

// IsAbsolute reports whether ref already needs no resolution: it starts
// with "http" or carries any other scheme (data:, mailto:, ...).
// Scheme-relative references ("//host/x") are not absolute.
func IsAbsolute(ref string) bool {
	if strings.HasPrefix(ref, "http") {
		return true
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.IsAbs()
}

// Absolutize resolves ref against base following RFC 3986 reference
// resolution. Absolute references and references that cannot be parsed
// are returned unchanged, so Absolutize is a fixed point on its own output.
func Absolutize(base *url.URL, ref string) string {
	if IsAbsolute(ref) {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
