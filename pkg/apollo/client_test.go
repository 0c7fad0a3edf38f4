package apollo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServer asserts the common Apollo request shape and replies with status/body.
func newServer(t *testing.T, wantPath string, status int, body string, inspect func(map[string]any)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, wantPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		if inspect != nil {
			inspect(payload)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestSearchOrganizations(t *testing.T) {
	tests := []struct {
		name      string
		req       SearchRequest
		status    int
		body      string
		wantErr   string
		wantCount int
		inspect   func(t *testing.T, payload map[string]any)
	}{
		{
			name:   "success with location",
			req:    SearchRequest{OrganizationSizes: []string{"50-200"}, Industries: []string{"software"}, Locations: []string{"Ohio"}},
			status: http.StatusOK,
			body: `{"organizations": [
				{"name": "Acme", "website_url": "https://acme.io", "estimated_num_employees": 120},
				{"name": "NoSite", "website_url": null, "estimated_num_employees": null}
			]}`,
			wantCount: 2,
			inspect: func(t *testing.T, payload map[string]any) {
				assert.Equal(t, []any{"50-200"}, payload["organization_sizes"])
				assert.Equal(t, []any{"software"}, payload["industries"])
				assert.Equal(t, []any{"Ohio"}, payload["locations"])
			},
		},
		{
			name:   "location omitted",
			req:    SearchRequest{OrganizationSizes: []string{"1-10"}, Industries: []string{"retail"}},
			status: http.StatusOK,
			body:   `{"organizations": []}`,
			inspect: func(t *testing.T, payload map[string]any) {
				_, ok := payload["locations"]
				assert.False(t, ok, "locations should be omitted when empty")
			},
		},
		{
			name:   "missing list",
			req:    SearchRequest{OrganizationSizes: []string{"1-10"}, Industries: []string{"retail"}},
			status: http.StatusOK,
			body:   `{}`,
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"error": "invalid api key"}`,
			wantErr: "unexpected status 401",
		},
		{
			name:    "malformed",
			status:  http.StatusOK,
			body:    `{invalid json`,
			wantErr: "unmarshal response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, "/v1/organizations/search", tt.status, tt.body, func(p map[string]any) {
				if tt.inspect != nil {
					tt.inspect(t, p)
				}
			})
			defer srv.Close()

			client := NewClient("test-key", WithBaseURL(srv.URL))
			orgs, err := client.SearchOrganizations(context.Background(), tt.req)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, orgs)
				return
			}
			require.NoError(t, err)
			assert.Len(t, orgs, tt.wantCount)
		})
	}
}

func TestSearchOrganizations_Fields(t *testing.T) {
	srv := newServer(t, "/v1/organizations/search", http.StatusOK,
		`{"organizations": [{"name": "Acme", "website_url": "https://acme.io", "estimated_num_employees": 120}]}`, nil)
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	orgs, err := client.SearchOrganizations(context.Background(), SearchRequest{})
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, "Acme", orgs[0].Name)
	assert.Equal(t, "https://acme.io", orgs[0].WebsiteURL)
	require.NotNil(t, orgs[0].EstimatedNumEmployees)
	assert.Equal(t, 120, *orgs[0].EstimatedNumEmployees)
}

func TestEnrichOrganization(t *testing.T) {
	srv := newServer(t, "/v1/organizations/enrich", http.StatusOK, `{"organization": {
		"name": "Acme",
		"phone": "+1 555 0100",
		"linkedin_url": "https://linkedin.com/company/acme",
		"facebook_url": "https://facebook.com/acme"
	}}`, func(p map[string]any) {
		assert.Equal(t, "acme.io", p["domain"])
	})
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	org, err := client.EnrichOrganization(context.Background(), "acme.io")
	require.NoError(t, err)
	assert.Equal(t, "+1 555 0100", org.Phone)
	assert.Equal(t, "https://linkedin.com/company/acme", org.LinkedinURL)
	assert.Equal(t, "https://facebook.com/acme", org.FacebookURL)
	assert.Empty(t, org.TwitterURL)
}

func TestEnrichOrganization_MissingObject(t *testing.T) {
	srv := newServer(t, "/v1/organizations/enrich", http.StatusOK, `{}`, nil)
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	org, err := client.EnrichOrganization(context.Background(), "acme.io")
	require.NoError(t, err)
	require.NotNil(t, org)
	assert.Equal(t, Organization{}, *org)
}

func TestTopPeople(t *testing.T) {
	srv := newServer(t, "/v1/mixed_people/organization_top_people", http.StatusOK,
		`{"people": [{"name": "Jane Doe", "title": "CEO"}, {"name": "John Roe", "title": "CTO"}]}`,
		func(p map[string]any) {
			assert.Equal(t, "acme.io", p["organization_domain"])
		})
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	people, err := client.TopPeople(context.Background(), "acme.io")
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, Person{Name: "Jane Doe", Title: "CEO"}, people[0])
}

func TestSearchContacts(t *testing.T) {
	srv := newServer(t, "/v1/contacts/search", http.StatusOK,
		`{"contacts": [{"first_name": "Jane", "last_name": "Doe", "title": "CEO", "email": "jane@acme.io", "phone": null}]}`,
		func(p map[string]any) {
			assert.Equal(t, []any{"acme.io"}, p["organization_domains"])
			assert.Equal(t, float64(1), p["page"])
		})
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	contacts, err := client.SearchContacts(context.Background(), "acme.io")
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Jane", contacts[0].FirstName)
	assert.Equal(t, "jane@acme.io", contacts[0].Email)
	assert.Empty(t, contacts[0].Phone)
}

func TestAPIError_StatusCode(t *testing.T) {
	srv := newServer(t, "/v1/contacts/search", http.StatusTooManyRequests, `{"error":"slow down"}`, nil)
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.SearchContacts(context.Background(), "acme.io")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode())
	assert.Equal(t, "/v1/contacts/search", apiErr.Endpoint)
}

func TestResponseHook(t *testing.T) {
	srv := newServer(t, "/v1/mixed_people/organization_top_people", http.StatusInternalServerError, `oops`, nil)
	defer srv.Close()

	var gotEndpoint string
	var gotStatus int
	var gotBody string
	client := NewClient("test-key", WithBaseURL(srv.URL), WithResponseHook(func(endpoint string, status int, body []byte) {
		gotEndpoint, gotStatus, gotBody = endpoint, status, string(body)
	}))

	_, err := client.TopPeople(context.Background(), "acme.io")
	require.Error(t, err)
	assert.Equal(t, "/v1/mixed_people/organization_top_people", gotEndpoint)
	assert.Equal(t, http.StatusInternalServerError, gotStatus)
	assert.Equal(t, "oops", gotBody)
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL), WithTimeout(20*time.Millisecond))
	_, err := client.TopPeople(context.Background(), "acme.io")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send request")
}
