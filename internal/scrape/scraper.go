// Package scrape fetches a company website and extracts short descriptive
// snippets ("insights") used to personalize outreach.
package scrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/net/html"
)

const (
	defaultTimeout      = 8 * time.Second
	defaultMaxBodyBytes = 2 << 20
	defaultUserAgent    = "Mozilla/5.0 (compatible; LeadgenBot/1.0)"
)

// Option configures an InsightScraper.
type Option func(*InsightScraper)

// WithTimeout bounds the whole page fetch.
func WithTimeout(d time.Duration) Option {
	return func(s *InsightScraper) {
		s.client.Timeout = d
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *InsightScraper) {
		s.client = hc
	}
}

// WithUserAgent sets the User-Agent header sent with each fetch.
func WithUserAgent(ua string) Option {
	return func(s *InsightScraper) {
		s.userAgent = ua
	}
}

// WithMaxBodyBytes caps how much of the page body is read.
func WithMaxBodyBytes(n int64) Option {
	return func(s *InsightScraper) {
		s.maxBody = n
	}
}

// InsightScraper fetches a page over net/http, rejects anti-bot pages, and
// runs the ordered insight heuristics over the parsed document.
type InsightScraper struct {
	client     *http.Client
	userAgent  string
	maxBody    int64
	heuristics []Heuristic
}

// NewInsightScraper creates an InsightScraper with an 8 second timeout.
func NewInsightScraper(opts ...Option) *InsightScraper {
	s := &InsightScraper{
		client: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
		userAgent:  defaultUserAgent,
		maxBody:    defaultMaxBodyBytes,
		heuristics: DefaultHeuristics(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Scrape fetches targetURL and returns at most MaxInsights snippets. A failed
// fetch, a non-200 status, or a challenge page with nothing to extract returns
// no insights and an error describing why; callers treat that as "no insights".
func (s *InsightScraper) Scrape(ctx context.Context, targetURL string) ([]string, error) {
	if targetURL == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: create request")
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "scrape: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody))
	if err != nil {
		return nil, eris.Wrap(err, "scrape: read body")
	}

	if resp.StatusCode != http.StatusOK {
		if blocked, blockType := DetectBlock(resp, body); blocked {
			return nil, eris.Errorf("scrape: blocked (%s)", blockType)
		}
		return nil, &StatusError{URL: targetURL, Code: resp.StatusCode}
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "scrape: parse html")
	}

	insights := Extract(doc, s.heuristics)
	if len(insights) == 0 {
		// An empty 200 page is only reported as blocked when it is a challenge.
		if blocked, blockType := DetectBlock(resp, body); blocked {
			return nil, eris.Errorf("scrape: blocked (%s)", blockType)
		}
	}
	return insights, nil
}

// StatusError is returned when the page responds with anything but 200.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("scrape: %s: status %d", e.URL, e.Code)
}

// StatusCode returns the HTTP status of the page response.
func (e *StatusError) StatusCode() int { return e.Code }
