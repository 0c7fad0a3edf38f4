package leads

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/leadgen-cli/internal/outreach"
	"github.com/sells-group/leadgen-cli/pkg/apollo"
	"github.com/sells-group/leadgen-cli/pkg/hunter"
)

// --- Apollo Mock ---

type mockApollo struct {
	mock.Mock
}

func (m *mockApollo) SearchOrganizations(ctx context.Context, req apollo.SearchRequest) ([]apollo.Organization, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]apollo.Organization), args.Error(1)
}

func (m *mockApollo) EnrichOrganization(ctx context.Context, domain string) (*apollo.Organization, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apollo.Organization), args.Error(1)
}

func (m *mockApollo) TopPeople(ctx context.Context, domain string) ([]apollo.Person, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]apollo.Person), args.Error(1)
}

func (m *mockApollo) SearchContacts(ctx context.Context, domain string) ([]apollo.Contact, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]apollo.Contact), args.Error(1)
}

// --- Hunter Mock ---

type mockHunter struct {
	mock.Mock
}

func (m *mockHunter) DomainSearch(ctx context.Context, domain string) ([]hunter.Email, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]hunter.Email), args.Error(1)
}

func (m *mockHunter) FindCompany(ctx context.Context, domain string) (*hunter.Company, error) {
	args := m.Called(ctx, domain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hunter.Company), args.Error(1)
}

// --- Scraper Mock ---

type mockScraper struct {
	mock.Mock
}

func (m *mockScraper) Scrape(ctx context.Context, url string) ([]string, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Generator Mock ---

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, company string, insights []string) outreach.Message {
	args := m.Called(ctx, company, insights)
	return args.Get(0).(outreach.Message)
}

func (m *mockGenerator) Usage() outreach.Usage {
	args := m.Called()
	return args.Get(0).(outreach.Usage)
}

func (m *mockGenerator) EstimatedCost() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

// failAll makes every per-domain call for domain fail with err.
func failAll(a *mockApollo, h *mockHunter, s *mockScraper, domain, website string, err error) {
	a.On("EnrichOrganization", mock.Anything, domain).Return(nil, err)
	a.On("TopPeople", mock.Anything, domain).Return(nil, err)
	a.On("SearchContacts", mock.Anything, domain).Return(nil, err)
	s.On("Scrape", mock.Anything, website).Return(nil, err)
	h.On("DomainSearch", mock.Anything, domain).Return(nil, err)
	h.On("FindCompany", mock.Anything, domain).Return(nil, err)
}
