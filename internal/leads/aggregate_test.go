package leads

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/pkg/apollo"
	"github.com/sells-group/leadgen-cli/pkg/hunter"
)

func TestEnrich_AllSources(t *testing.T) {
	a := new(mockApollo)
	h := new(mockHunter)
	sc := new(mockScraper)

	a.On("EnrichOrganization", mock.Anything, "acme.io").Return(&apollo.Organization{
		Phone:         "+1 555 0100",
		Email:         "hello@acme.io",
		LinkedinURL:   "https://linkedin.com/company/acme",
		CrunchbaseURL: "https://crunchbase.com/acme",
	}, nil)
	a.On("TopPeople", mock.Anything, "acme.io").Return([]apollo.Person{{Name: "Jane Doe", Title: "CEO"}}, nil)
	a.On("SearchContacts", mock.Anything, "acme.io").Return([]apollo.Contact{
		{FirstName: "Jane", LastName: "Doe", Title: "CEO", Email: "jane@acme.io"},
	}, nil)
	sc.On("Scrape", mock.Anything, "https://acme.io/home").Return([]string{"Makes rockets"}, nil)
	h.On("DomainSearch", mock.Anything, "acme.io").Return([]hunter.Email{{Value: "jane@acme.io", Type: "personal"}}, nil)
	h.On("FindCompany", mock.Anything, "acme.io").Return(&hunter.Company{
		LegalName:   "Acme Incorporated",
		Site:        &hunter.Site{PhoneNumbers: []string{"+1 555 0100", "+1 555 0101"}},
		Tags:        []string{"saas"},
		FoundedYear: intPtr(2012),
		Category:    &hunter.Category{Industry: "Aerospace"},
		Tech:        []string{"react", "aws"},
	}, nil)

	agg := NewAggregator(NewSources(a, h, sc))
	lead := agg.Enrich(context.Background(), model.CompanyCandidate{
		Name: "Acme", Website: "https://acme.io/home", EmployeeCount: intPtr(120),
	})

	assert.Equal(t, "acme.io", lead.Domain)
	assert.Equal(t, "+1 555 0100", lead.CompanyPhone)
	assert.Equal(t, "hello@acme.io", lead.CompanyEmail)
	assert.Equal(t, model.NotAvailable, lead.Address)
	assert.Equal(t, "Linkedin: https://linkedin.com/company/acme | Crunchbase: https://crunchbase.com/acme", lead.SocialLinks)
	assert.Equal(t, "Jane Doe (CEO)", lead.TopPeople)
	assert.Equal(t, "Jane Doe (CEO) jane@acme.io N/A", lead.Contacts)
	assert.True(t, lead.HasTopPeople)
	assert.True(t, lead.HasContacts)
	assert.Equal(t, []string{"Makes rockets"}, lead.Insights)
	assert.Equal(t, []string{"jane@acme.io (personal)"}, lead.HunterEmails)
	assert.Equal(t, "Acme Incorporated", lead.HunterLegalName)
	assert.Equal(t, "+1 555 0100 | +1 555 0101", lead.HunterPhones)
	assert.Equal(t, model.NotAvailable, lead.HunterCompanyEmails)
	assert.Equal(t, "Aerospace", lead.HunterIndustry)
	assert.Equal(t, "saas", lead.HunterTags)
	assert.Equal(t, "2012", lead.HunterFounded)
	assert.Equal(t, model.NotAvailable, lead.HunterLocation)
	assert.Equal(t, "react | aws", lead.HunterTech)

	a.AssertExpectations(t)
	h.AssertExpectations(t)
	sc.AssertExpectations(t)
}

func TestEnrich_NoWebsite(t *testing.T) {
	a := new(mockApollo)
	h := new(mockHunter)
	sc := new(mockScraper)

	lead := NewAggregator(NewSources(a, h, sc)).Enrich(context.Background(), model.CompanyCandidate{Name: "NoSite"})

	assert.Equal(t, model.NewEnrichedLead(model.CompanyCandidate{Name: "NoSite"}), lead)
	a.AssertNotCalled(t, "EnrichOrganization", mock.Anything, mock.Anything)
	a.AssertNotCalled(t, "TopPeople", mock.Anything, mock.Anything)
	a.AssertNotCalled(t, "SearchContacts", mock.Anything, mock.Anything)
	h.AssertNotCalled(t, "DomainSearch", mock.Anything, mock.Anything)
	h.AssertNotCalled(t, "FindCompany", mock.Anything, mock.Anything)
	sc.AssertNotCalled(t, "Scrape", mock.Anything, mock.Anything)
}

func TestEnrich_AllFailing(t *testing.T) {
	a := new(mockApollo)
	h := new(mockHunter)
	sc := new(mockScraper)
	failAll(a, h, sc, "acme.io", "https://acme.io", errors.New("connection refused"))

	lead := NewAggregator(NewSources(a, h, sc)).Enrich(context.Background(), model.CompanyCandidate{
		Name: "Acme", Website: "https://acme.io", EmployeeCount: intPtr(120),
	})

	for name, v := range map[string]string{
		"phone":        lead.CompanyPhone,
		"email":        lead.CompanyEmail,
		"address":      lead.Address,
		"social":       lead.SocialLinks,
		"top_people":   lead.TopPeople,
		"contacts":     lead.Contacts,
		"legal_name":   lead.HunterLegalName,
		"phones":       lead.HunterPhones,
		"company_mail": lead.HunterCompanyEmails,
		"industry":     lead.HunterIndustry,
		"tags":         lead.HunterTags,
		"founded":      lead.HunterFounded,
		"location":     lead.HunterLocation,
		"tech":         lead.HunterTech,
	} {
		assert.Equal(t, model.NotAvailable, v, name)
	}
	assert.Empty(t, lead.Insights)
	assert.Empty(t, lead.HunterEmails)
	assert.False(t, lead.HasContacts)
	assert.False(t, lead.HasTopPeople)
}

func TestEnrich_WebsiteWithSurroundingSpaces(t *testing.T) {
	a := new(mockApollo)
	h := new(mockHunter)
	sc := new(mockScraper)
	err := errors.New("connection refused")
	a.On("EnrichOrganization", mock.Anything, "acme.io").Return(nil, err)
	a.On("TopPeople", mock.Anything, "acme.io").Return(nil, err)
	a.On("SearchContacts", mock.Anything, "acme.io").Return(nil, err)
	h.On("DomainSearch", mock.Anything, "acme.io").Return(nil, err)
	h.On("FindCompany", mock.Anything, "acme.io").Return(nil, err)
	sc.On("Scrape", mock.Anything, "https://acme.io").Return([]string{"Acme ships sensors."}, nil)

	lead := NewAggregator(NewSources(a, h, sc)).Enrich(context.Background(), model.CompanyCandidate{
		Name: "Acme", Website: "  https://acme.io \n",
	})

	assert.Equal(t, "acme.io", lead.Domain)
	assert.Equal(t, []string{"Acme ships sensors."}, lead.Insights)
	sc.AssertExpectations(t)
}

func TestSocialLinks(t *testing.T) {
	tests := []struct {
		name string
		org  apollo.Organization
		want string
	}{
		{
			name: "linkedin and facebook",
			org:  apollo.Organization{LinkedinURL: "https://linkedin.com/company/acme", FacebookURL: "https://facebook.com/acme"},
			want: "Linkedin: https://linkedin.com/company/acme | Facebook: https://facebook.com/acme",
		},
		{
			name: "all four in fixed order",
			org: apollo.Organization{
				CrunchbaseURL: "c", TwitterURL: "t", FacebookURL: "f", LinkedinURL: "l",
			},
			want: "Linkedin: l | Facebook: f | Twitter: t | Crunchbase: c",
		},
		{
			name: "none",
			want: model.NotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SocialLinks(tt.org))
		})
	}
}

func TestFormatPeopleAndContacts(t *testing.T) {
	assert.Equal(t, "Jane Doe (CEO) | N/A (CTO)", FormatPeople([]apollo.Person{
		{Name: "Jane Doe", Title: "CEO"},
		{Title: "CTO"},
	}))
	assert.Equal(t, model.NotAvailable, FormatPeople(nil))

	assert.Equal(t, "Jane Doe (CEO) jane@acme.io +1 555 0100 | John N/A (N/A) N/A N/A", FormatContacts([]apollo.Contact{
		{FirstName: "Jane", LastName: "Doe", Title: "CEO", Email: "jane@acme.io", Phone: "+1 555 0100"},
		{FirstName: "John"},
	}))
	assert.Equal(t, model.NotAvailable, FormatContacts(nil))
}

func TestApplyHunterCompany_MissingNested(t *testing.T) {
	lead := model.NewEnrichedLead(model.CompanyCandidate{Name: "Acme"})
	ApplyHunterCompany(&lead, hunter.Company{
		LegalName: "Acme Inc",
		Site:      &hunter.Site{},
		Category:  &hunter.Category{},
		Location:  "Columbus, OH",
	})

	assert.Equal(t, "Acme Inc", lead.HunterLegalName)
	assert.Equal(t, model.NotAvailable, lead.HunterPhones)
	assert.Equal(t, model.NotAvailable, lead.HunterCompanyEmails)
	assert.Equal(t, model.NotAvailable, lead.HunterIndustry)
	assert.Equal(t, model.NotAvailable, lead.HunterFounded)
	assert.Equal(t, "Columbus, OH", lead.HunterLocation)
}
