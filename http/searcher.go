// Package http provides an HTTP implementation of coursecat.Searcher for
// the catalog's search endpoint.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/coursecat"
	"golang.org/x/time/rate"
)

// Catalog endpoint defaults.
const (
	DefaultBaseURL       = "https://webappprd.acs.ncsu.edu/php/coursecat"
	DefaultSearchTimeout = 30 * time.Second
	DefaultRateLimit     = 2.0

	searchPath = "/search.php"
	indexPath  = "/index.php"
)

// Markers the catalog embeds in otherwise successful responses.
const (
	noDataMarker  = "Error: No Data Returned"
	warningMarker = "text-warning"
)

// Ensure Searcher implements coursecat.Searcher at compile time.
var _ coursecat.Searcher = (*Searcher)(nil)

// Searcher issues course searches against the catalog over HTTP.
// Requests are paced by a token bucket shared by all callers.
type Searcher struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultSearchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// WithBaseURL sets the catalog base URL.
func WithBaseURL(u string) Option {
	return func(s *Searcher) {
		s.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithRateLimit sets the maximum number of requests per second.
// A non-positive value disables pacing.
func WithRateLimit(rps float64) Option {
	return func(s *Searcher) {
		if rps <= 0 {
			s.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithHTTPClient sets the client used for requests. The client's own
// timeout takes precedence over WithTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Searcher) {
		s.client = c
	}
}

// NewSearcher creates a new HTTP-based Searcher.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		baseURL: DefaultBaseURL,
		timeout: DefaultSearchTimeout,
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{
			Timeout: s.timeout,
		}
	}

	return s
}

// Search posts the query to the catalog search endpoint.
func (s *Searcher) Search(ctx context.Context, q coursecat.SearchQuery) (*coursecat.SearchResponse, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("subject", q.Subject)
	form.Set("term", strconv.FormatUint(uint64(q.Term), 10))
	if q.Number > 0 {
		form.Set("course-number", strconv.FormatUint(uint64(q.Number), 10))
		form.Set("course-inequality", "=")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+searchPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, err := s.do(req)
	if err != nil {
		return nil, err
	}

	if strings.Contains(body, noDataMarker) {
		return nil, coursecat.Errorf(coursecat.ENOTFOUND, "no course matches subject %q", q.Subject)
	}
	if strings.Contains(body, warningMarker) {
		return nil, coursecat.Errorf(coursecat.EINTERNAL, "catalog returned a warning: %s", body)
	}

	var resp coursecat.SearchResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, coursecat.Errorf(coursecat.EINVALID, "failed to decode search response: %v", err)
	}
	return &resp, nil
}

// Index returns the markup of the catalog index page, which lists the
// available terms.
func (s *Searcher) Index(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+indexPath, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	return s.do(req)
}

// do waits for the rate limiter, sends req and returns the body of a
// successful response.
func (s *Searcher) do(req *http.Request) (string, error) {
	if err := s.limiter.Wait(req.Context()); err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", coursecat.Errorf(coursecat.EINTERNAL, "HTTP %d for %s: %s", resp.StatusCode, req.URL, body)
	}

	return string(body), nil
}

// Close releases resources. It is a no-op since http.Client doesn't
// require explicit cleanup.
func (s *Searcher) Close() error {
	return nil
}

// String returns a description of the searcher for logs.
func (s *Searcher) String() string {
	return fmt.Sprintf("catalog %s", s.baseURL)
}
