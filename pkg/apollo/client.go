// Package apollo provides a client for the Apollo.io company search,
// organization enrichment, and people APIs.
package apollo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.apollo.io"

// Client defines the Apollo operations used by the lead pipeline.
type Client interface {
	// SearchOrganizations returns the first page of companies matching the filter.
	SearchOrganizations(ctx context.Context, req SearchRequest) ([]Organization, error)
	// EnrichOrganization returns firmographic data for a bare domain.
	EnrichOrganization(ctx context.Context, domain string) (*Organization, error)
	// TopPeople returns the most senior people at the company with the domain.
	TopPeople(ctx context.Context, domain string) ([]Person, error)
	// SearchContacts returns the saved contacts belonging to the domain.
	SearchContacts(ctx context.Context, domain string) ([]Contact, error)
}

// SearchRequest is the request body for POST /v1/organizations/search.
type SearchRequest struct {
	OrganizationSizes []string `json:"organization_sizes"`
	Industries        []string `json:"industries"`
	Locations         []string `json:"locations,omitempty"`
}

// Organization is an Apollo organization record. Search results populate only
// the identity fields; enrichment populates the rest.
type Organization struct {
	Name                  string `json:"name"`
	WebsiteURL            string `json:"website_url"`
	EstimatedNumEmployees *int   `json:"estimated_num_employees"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	Address               string `json:"address"`
	LinkedinURL           string `json:"linkedin_url"`
	FacebookURL           string `json:"facebook_url"`
	TwitterURL            string `json:"twitter_url"`
	CrunchbaseURL         string `json:"crunchbase_url"`
}

// Person is an entry from the organization top-people endpoint.
type Person struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Contact is an entry from the contacts search endpoint.
type Contact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// APIError is returned when Apollo responds with a non-200 status.
type APIError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("apollo: %s: unexpected status %d: %s", e.Endpoint, e.Code, e.Body)
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

// NewClient creates an Apollo API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) SearchOrganizations(ctx context.Context, req SearchRequest) ([]Organization, error) {
	var out struct {
		Organizations []Organization `json:"organizations"`
	}
	if err := c.post(ctx, "/v1/organizations/search", req, &out); err != nil {
		return nil, err
	}
	return out.Organizations, nil
}

func (c *httpClient) EnrichOrganization(ctx context.Context, domain string) (*Organization, error) {
	var out struct {
		Organization *Organization `json:"organization"`
	}
	if err := c.post(ctx, "/v1/organizations/enrich", map[string]string{"domain": domain}, &out); err != nil {
		return nil, err
	}
	if out.Organization == nil {
		return &Organization{}, nil
	}
	return out.Organization, nil
}

func (c *httpClient) TopPeople(ctx context.Context, domain string) ([]Person, error) {
	var out struct {
		People []Person `json:"people"`
	}
	payload := map[string]string{"organization_domain": domain}
	if err := c.post(ctx, "/v1/mixed_people/organization_top_people", payload, &out); err != nil {
		return nil, err
	}
	return out.People, nil
}

func (c *httpClient) SearchContacts(ctx context.Context, domain string) ([]Contact, error) {
	var out struct {
		Contacts []Contact `json:"contacts"`
	}
	payload := map[string]any{
		"organization_domains": []string{domain},
		"page":                 1,
	}
	if err := c.post(ctx, "/v1/contacts/search", payload, &out); err != nil {
		return nil, err
	}
	return out.Contacts, nil
}

// post sends a JSON body to path and decodes a 200 response into out.
func (c *httpClient) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return eris.Wrap(err, "apollo: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return eris.Wrap(err, "apollo: create request")
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrapf(err, "apollo: send request %s", path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "apollo: read response")
	}

	if c.hook != nil {
		c.hook(path, resp.StatusCode, respBody)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{Endpoint: path, Code: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return eris.Wrapf(err, "apollo: unmarshal response %s", path)
	}
	return nil
}
