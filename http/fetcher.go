// Package http provides an HTTP-based implementation of grader.Fetcher
// for fetching static pages that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/grader"
	"golang.org/x/net/html/charset"
)

// Ensure Fetcher implements grader.Fetcher at compile time.
var _ grader.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using a single HTTP GET.
// Unlike rod.Fetcher, this does not execute JavaScript.
// Redirects are followed the way net/http follows them by default.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Zero, the default, means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient replaces the underlying HTTP client.
// The timeout option still applies to the supplied client.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	if f.timeout > 0 {
		c := *f.client
		c.Timeout = f.timeout
		f.client = &c
	}

	return f
}

// Fetch retrieves the HTML content from the given URL, decoded to UTF-8.
// Any response body is returned whatever its status, so error pages are
// graded like any other page. Only transport failures return EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", grader.Errorf(grader.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", grader.Errorf(grader.EUNAVAILABLE, "%v", err)
	}
	defer resp.Body.Close()

	// Honor the declared or sniffed charset so selectors see decoded text.
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", grader.Errorf(grader.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", grader.Errorf(grader.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(data), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
