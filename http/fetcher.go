// Package http provides an HTTP-based implementation of offwiki.Fetcher
// backed by the Wikipedia REST API's mobile-html endpoint.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/offwiki"
)

// DefaultBaseURL is the endpoint serving server-rendered article HTML.
const DefaultBaseURL = "https://en.wikipedia.org/api/rest_v1/page/mobile-html/"

// DefaultUserAgent identifies the harvester to Wikimedia.
const DefaultUserAgent = "offwiki"

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements offwiki.Fetcher at compile time.
var _ offwiki.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves article HTML using HTTP requests.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
	timeout   time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL sets the endpoint that escaped titles are appended to.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = u
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if !strings.HasSuffix(f.baseURL, "/") {
		f.baseURL += "/"
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Host returns the host requests are sent to, for rate limiting.
func (f *Fetcher) Host() string {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// ArticleURL returns the URL the HTML for title is fetched from.
// The title is escaped as a single path segment, slashes included.
func (f *Fetcher) ArticleURL(title string) string {
	return f.baseURL + url.PathEscape(title)
}

// FetchArticle retrieves the mobile HTML for title.
func (f *Fetcher) FetchArticle(ctx context.Context, title string) (string, error) {
	if title == "" {
		return "", offwiki.Errorf(offwiki.EINVALID, "article title required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.ArticleURL(title), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", offwiki.Errorf(offwiki.ENOTFOUND, "article %q not found", title)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, title)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
