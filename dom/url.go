// Package dom also provides URL resolution for the operation harness: when
// an input is given as a relative file path or relative URL, it is resolved
// against a base (the current working directory, or a supplied base URL)
// before being handed to the ResourceLoader.
package dom

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/vectorforge/svgcore/log"
)

// ResolveURLString resolves a potentially relative URL or file path against
// a base. If relativeURL is already absolute (http(s):// or a data URL), it
// is returned unchanged.
func ResolveURLString(baseURL, relativeURL string) string {
	if strings.HasPrefix(relativeURL, "http://") || strings.HasPrefix(relativeURL, "https://") || strings.HasPrefix(relativeURL, "data:") {
		return relativeURL
	}

	if strings.HasPrefix(baseURL, "http://") || strings.HasPrefix(baseURL, "https://") {
		base, err := url.Parse(baseURL)
		if err != nil {
			log.Warnf("failed to parse base URL %q: %v", baseURL, err)
			return relativeURL
		}
		rel, err := url.Parse(relativeURL)
		if err != nil {
			log.Warnf("failed to parse relative URL %q: %v", relativeURL, err)
			return relativeURL
		}
		return base.ResolveReference(rel).String()
	}

	if baseURL == "" {
		return relativeURL
	}
	return filepath.Join(baseURL, relativeURL)
}

// ParseFragmentReference extracts the fragment id from a `#id` or
// `url(#id)` attribute value, as used by fill/stroke/clip-path/mask/filter
// and by href/xlink:href on <use> and animation elements. Reports ok=false
// for anything else (external references, named colors, etc.).
func ParseFragmentReference(value string) (id string, ok bool) {
	v := strings.TrimSpace(value)
	if strings.HasPrefix(v, "url(") && strings.HasSuffix(v, ")") {
		v = strings.TrimSuffix(strings.TrimPrefix(v, "url("), ")")
		v = strings.Trim(v, `'"`)
	}
	if strings.HasPrefix(v, "#") && len(v) > 1 {
		return v[1:], true
	}
	return "", false
}
