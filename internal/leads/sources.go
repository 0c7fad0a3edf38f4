package leads

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/resilience"
	"github.com/sells-group/leadgen-cli/pkg/apollo"
	"github.com/sells-group/leadgen-cli/pkg/hunter"
)

// Outcome is the result of one provider call. A failed call is an explicit
// unavailable outcome holding the zero value; it never propagates as an error.
type Outcome[T any] struct {
	Value   T
	Failure resilience.FailureKind
	Err     error
}

// Found wraps a successful provider result.
func Found[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

// Unavailable records a failed provider call.
func Unavailable[T any](err error) Outcome[T] {
	return Outcome[T]{Failure: resilience.Classify(err), Err: err}
}

// OK reports whether the call succeeded.
func (o Outcome[T]) OK() bool {
	return o.Err == nil
}

// Scraper extracts insights from a company website.
type Scraper interface {
	Scrape(ctx context.Context, url string) ([]string, error)
}

// Sources wraps the provider clients and absorbs their failures into
// unavailable outcomes.
type Sources struct {
	apollo  apollo.Client
	hunter  hunter.Client
	scraper Scraper
}

// NewSources creates a Sources over the given clients.
func NewSources(a apollo.Client, h hunter.Client, s Scraper) *Sources {
	return &Sources{apollo: a, hunter: h, scraper: s}
}

// SearchCompanies returns the first page of companies matching criteria.
func (s *Sources) SearchCompanies(ctx context.Context, c model.SearchCriteria) Outcome[[]model.CompanyCandidate] {
	req := apollo.SearchRequest{
		OrganizationSizes: []string{c.CompanySize},
		Industries:        []string{c.Industry},
	}
	if c.Location != "" {
		req.Locations = []string{c.Location}
	}

	orgs, err := s.apollo.SearchOrganizations(ctx, req)
	if err != nil {
		return absorb[[]model.CompanyCandidate]("apollo", "search_companies", "", err)
	}

	out := make([]model.CompanyCandidate, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, model.CompanyCandidate{
			Name:          o.Name,
			Website:       o.WebsiteURL,
			EmployeeCount: o.EstimatedNumEmployees,
		})
	}
	return Found(out)
}

// EnrichCompany returns the firmographic record for domain.
func (s *Sources) EnrichCompany(ctx context.Context, domain string) Outcome[apollo.Organization] {
	org, err := s.apollo.EnrichOrganization(ctx, domain)
	if err != nil {
		return absorb[apollo.Organization]("apollo", "enrich_company", domain, err)
	}
	return Found(*org)
}

// TopPeople returns the senior people listed for domain.
func (s *Sources) TopPeople(ctx context.Context, domain string) Outcome[[]apollo.Person] {
	people, err := s.apollo.TopPeople(ctx, domain)
	if err != nil {
		return absorb[[]apollo.Person]("apollo", "top_people", domain, err)
	}
	return Found(people)
}

// SearchContacts returns the contacts saved for domain.
func (s *Sources) SearchContacts(ctx context.Context, domain string) Outcome[[]apollo.Contact] {
	contacts, err := s.apollo.SearchContacts(ctx, domain)
	if err != nil {
		return absorb[[]apollo.Contact]("apollo", "search_contacts", domain, err)
	}
	return Found(contacts)
}

// DomainEmails returns the addresses Hunter knows for domain, formatted as
// "<address> (<type>)".
func (s *Sources) DomainEmails(ctx context.Context, domain string) Outcome[[]string] {
	emails, err := s.hunter.DomainSearch(ctx, domain)
	if err != nil {
		return absorb[[]string]("hunter", "domain_emails", domain, err)
	}

	out := make([]string, 0, len(emails))
	for _, e := range emails {
		if e.Value == "" {
			continue
		}
		out = append(out, fmt.Sprintf("%s (%s)", e.Value, model.OrNA(e.Type)))
	}
	return Found(out)
}

// CompanyByDomain returns Hunter's company record for domain.
func (s *Sources) CompanyByDomain(ctx context.Context, domain string) Outcome[hunter.Company] {
	c, err := s.hunter.FindCompany(ctx, domain)
	if err != nil {
		return absorb[hunter.Company]("hunter", "company_by_domain", domain, err)
	}
	return Found(*c)
}

// ScrapeInsights returns up to three snippets from the company website.
func (s *Sources) ScrapeInsights(ctx context.Context, website string) Outcome[[]string] {
	insights, err := s.scraper.Scrape(ctx, website)
	if err != nil {
		return absorb[[]string]("website", "scrape_insights", website, err)
	}
	return Found(insights)
}

func absorb[T any](provider, op, target string, err error) Outcome[T] {
	out := Unavailable[T](err)
	zap.L().Debug("leads: provider call failed",
		zap.String("provider", provider),
		zap.String("op", op),
		zap.String("target", target),
		zap.String("failure", string(out.Failure)),
		zap.Error(err),
	)
	return out
}

// DebugResponseHook logs every raw provider response at debug level. It is
// assignable to the apollo and hunter ResponseHook types.
func DebugResponseHook(provider string) func(endpoint string, status int, body []byte) {
	return func(endpoint string, status int, body []byte) {
		zap.L().Debug("leads: provider response",
			zap.String("provider", provider),
			zap.String("endpoint", endpoint),
			zap.Int("status", status),
			zap.ByteString("raw", body),
		)
	}
}
