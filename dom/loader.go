// Package dom also provides resource loading for the operation harness: the
// I/O wrapper that fetches an operation's input from a file, a URL, or a
// data URL, per the core's "Suspension points" rule (§5) — this is the only
// place in the repository that performs blocking I/O.
package dom

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/vectorforge/svgcore/cerr"
)

// ResourceLoader handles loading resources from URLs or file paths.
type ResourceLoader struct {
	BaseURL string
	// Timeout bounds a network fetch. Zero or a negative value means the
	// default of 30 seconds.
	Timeout time.Duration
}

// NewResourceLoader creates a new resource loader with the given base URL.
func NewResourceLoader(baseURL string) *ResourceLoader {
	return &ResourceLoader{BaseURL: baseURL}
}

// LoadResource loads content from a URL, data URL, or file path; a network
// fetch is bounded only by rl.Timeout (30 seconds when unset).
func (rl *ResourceLoader) LoadResource(path string) ([]byte, error) {
	return rl.LoadResourceContext(context.Background(), path)
}

// LoadResourceContext is LoadResource with caller-supplied cancellation.
// RFC 2397: data URLs are decoded in-process (no suspension). http(s) URLs
// suspend on the network. Anything else is read from the filesystem.
func (rl *ResourceLoader) LoadResourceContext(ctx context.Context, path string) ([]byte, error) {
	if isDataURL(path) {
		return loadFromDataURL(path)
	}
	if isURL(path) {
		timeout := rl.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return loadFromURL(ctx, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cerr.Wrap(cerr.ResourceFailure, "reading file "+path, err)
	}
	return data, nil
}

// LoadResourceAsString loads content as a string.
func (rl *ResourceLoader) LoadResourceAsString(path string) (string, error) {
	data, err := rl.LoadResource(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// isURL checks if the input string is a URL (http:// or https://).
func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// isDataURL checks if the input string is a data URL.
// RFC 2397: data URLs have the format data:[<mediatype>][;base64],<data>
func isDataURL(input string) bool {
	return strings.HasPrefix(input, "data:")
}

// loadFromURL fetches content from a URL, honoring ctx's deadline.
func loadFromURL(ctx context.Context, urlStr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, cerr.Wrap(cerr.ResourceFailure, "building request for "+urlStr, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, cerr.Wrap(cerr.ResourceFailure, "timed out fetching "+urlStr, ctx.Err())
		}
		return nil, cerr.Wrap(cerr.ResourceFailure, "fetching "+urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, cerr.Newf(cerr.ResourceFailure, "HTTP %d fetching %s", resp.StatusCode, urlStr)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cerr.Wrap(cerr.ResourceFailure, "reading response body from "+urlStr, err)
	}
	return body, nil
}

// loadFromDataURL decodes a data URL and returns its content.
// RFC 2397: data:[<mediatype>][;base64],<data>
func loadFromDataURL(dataURL string) ([]byte, error) {
	parsedURL, err := url.Parse(dataURL)
	if err != nil {
		return nil, cerr.Wrap(cerr.MalformedInput, "parsing data URL", err)
	}
	if parsedURL.Scheme != "data" {
		return nil, cerr.New(cerr.MalformedInput, "not a data URL")
	}

	dataStr := parsedURL.Opaque
	commaIdx := strings.Index(dataStr, ",")
	if commaIdx == -1 {
		return nil, cerr.New(cerr.MalformedInput, "data URL missing comma separator")
	}

	metadata := dataStr[:commaIdx]
	data := dataStr[commaIdx+1:]

	if strings.HasSuffix(metadata, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, cerr.Wrap(cerr.MalformedInput, "decoding base64 data URL", err)
		}
		return decoded, nil
	}

	decoded, err := url.QueryUnescape(data)
	if err != nil {
		return nil, cerr.Wrap(cerr.MalformedInput, "URL-decoding data URL", err)
	}
	return []byte(decoded), nil
}
