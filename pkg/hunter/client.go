// Package hunter provides a client for the Hunter.io domain search and
// company enrichment APIs.
package hunter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.hunter.io"

// Client defines the Hunter operations used by the lead pipeline.
type Client interface {
	// DomainSearch returns the email addresses Hunter knows for a domain.
	DomainSearch(ctx context.Context, domain string) ([]Email, error)
	// FindCompany returns Hunter's company record for a domain.
	FindCompany(ctx context.Context, domain string) (*Company, error)
}

// Email is a single address from the domain search endpoint.
type Email struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Company is the data object returned by the companies/find endpoint.
// Every nested object is optional.
type Company struct {
	Name        string    `json:"name"`
	LegalName   string    `json:"legalName"`
	Domain      string    `json:"domain"`
	Site        *Site     `json:"site"`
	Tags        []string  `json:"tags"`
	FoundedYear *int      `json:"foundedYear"`
	Location    string    `json:"location"`
	Category    *Category `json:"category"`
	Tech        []string  `json:"tech"`
}

// Site holds contact channels published on the company site.
type Site struct {
	PhoneNumbers   []string `json:"phoneNumbers"`
	EmailAddresses []string `json:"emailAddresses"`
}

// Category holds Hunter's industry classification.
type Category struct {
	Sector        string `json:"sector"`
	IndustryGroup string `json:"industryGroup"`
	Industry      string `json:"industry"`
	SubIndustry   string `json:"subIndustry"`
}

// APIError is returned when Hunter responds with a non-200 status.
type APIError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hunter: %s: unexpected status %d: %s", e.Endpoint, e.Code, e.Body)
}

// StatusCode returns the HTTP status of the failed response.
func (e *APIError) StatusCode() int { return e.Code }

// ResponseHook receives every raw response body, keyed by endpoint path.
type ResponseHook func(endpoint string, status int, body []byte)

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

// WithResponseHook registers a hook that sees every raw response.
func WithResponseHook(h ResponseHook) Option {
	return func(c *httpClient) {
		c.hook = h
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	hook    ResponseHook
}

// NewClient creates a Hunter API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) DomainSearch(ctx context.Context, domain string) ([]Email, error) {
	var out struct {
		Data struct {
			Emails []Email `json:"emails"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/v2/domain-search", domain, &out); err != nil {
		return nil, err
	}
	return out.Data.Emails, nil
}

func (c *httpClient) FindCompany(ctx context.Context, domain string) (*Company, error) {
	var out struct {
		Data *Company `json:"data"`
	}
	if err := c.get(ctx, "/v2/companies/find", domain, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return &Company{}, nil
	}
	return out.Data, nil
}

// get issues GET path?domain=&api_key= and decodes a 200 response into out.
func (c *httpClient) get(ctx context.Context, path, domain string, out any) error {
	q := url.Values{}
	q.Set("domain", domain)
	q.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return eris.Wrap(err, "hunter: create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// The URL carries the API key; keep it out of the error text.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return eris.Wrapf(err, "hunter: send request %s", path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "hunter: read response")
	}

	if c.hook != nil {
		c.hook(path, resp.StatusCode, respBody)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{Endpoint: path, Code: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return eris.Wrapf(err, "hunter: unmarshal response %s", path)
	}
	return nil
}
