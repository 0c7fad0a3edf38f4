package leads

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/pkg/apollo"
	"github.com/sells-group/leadgen-cli/pkg/hunter"
)

// Aggregator builds an EnrichedLead for one company by calling every
// per-domain source in a fixed order.
type Aggregator struct {
	sources *Sources
}

// NewAggregator creates an Aggregator over sources.
func NewAggregator(sources *Sources) *Aggregator {
	return &Aggregator{sources: sources}
}

// Enrich returns the lead for c without its outreach message. Companies with
// no website skip every per-domain source and keep NotAvailable fields.
func (a *Aggregator) Enrich(ctx context.Context, c model.CompanyCandidate) model.EnrichedLead {
	lead := model.NewEnrichedLead(c)
	if !c.HasWebsite() {
		return lead
	}

	domain := ExtractDomain(c.Website)
	lead.Domain = domain
	if domain == "" {
		return lead
	}

	if org := a.sources.EnrichCompany(ctx, domain); org.OK() {
		ApplyOrganization(&lead, org.Value)
	}

	if people := a.sources.TopPeople(ctx, domain); len(people.Value) > 0 {
		lead.TopPeople = FormatPeople(people.Value)
		lead.HasTopPeople = true
	}

	if contacts := a.sources.SearchContacts(ctx, domain); len(contacts.Value) > 0 {
		lead.Contacts = FormatContacts(contacts.Value)
		lead.HasContacts = true
	}

	lead.Insights = a.sources.ScrapeInsights(ctx, strings.TrimSpace(c.Website)).Value

	lead.HunterEmails = a.sources.DomainEmails(ctx, domain).Value

	if company := a.sources.CompanyByDomain(ctx, domain); company.OK() {
		ApplyHunterCompany(&lead, company.Value)
	}

	return lead
}

// socialPlatforms lists the organization links in display order.
var socialPlatforms = []struct {
	key string
	url func(apollo.Organization) string
}{
	{"linkedin", func(o apollo.Organization) string { return o.LinkedinURL }},
	{"facebook", func(o apollo.Organization) string { return o.FacebookURL }},
	{"twitter", func(o apollo.Organization) string { return o.TwitterURL }},
	{"crunchbase", func(o apollo.Organization) string { return o.CrunchbaseURL }},
}

// ApplyOrganization copies the enrichment contact fields and social links
// onto lead.
func ApplyOrganization(lead *model.EnrichedLead, org apollo.Organization) {
	lead.CompanyPhone = model.OrNA(org.Phone)
	lead.CompanyEmail = model.OrNA(org.Email)
	lead.Address = model.OrNA(org.Address)
	lead.SocialLinks = SocialLinks(org)
}

// SocialLinks formats the present social URLs as "<Platform>: <url>" joined
// by " | ", or NotAvailable when there are none.
func SocialLinks(org apollo.Organization) string {
	caser := cases.Title(language.English)
	var links []string
	for _, p := range socialPlatforms {
		if u := strings.TrimSpace(p.url(org)); u != "" {
			links = append(links, caser.String(p.key)+": "+u)
		}
	}
	return model.JoinOrNA(links)
}

// FormatPeople renders each person as "<name> (<title>)".
func FormatPeople(people []apollo.Person) string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, fmt.Sprintf("%s (%s)", model.OrNA(p.Name), model.OrNA(p.Title)))
	}
	return model.JoinOrNA(out)
}

// FormatContacts renders each contact as "<first> <last> (<title>) <email> <phone>".
func FormatContacts(contacts []apollo.Contact) string {
	out := make([]string, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, fmt.Sprintf("%s %s (%s) %s %s",
			model.OrNA(c.FirstName),
			model.OrNA(c.LastName),
			model.OrNA(c.Title),
			model.OrNA(c.Email),
			model.OrNA(c.Phone),
		))
	}
	return model.JoinOrNA(out)
}

// ApplyHunterCompany copies Hunter's company record onto lead. A missing
// nested object is treated the same as an empty one.
func ApplyHunterCompany(lead *model.EnrichedLead, c hunter.Company) {
	lead.HunterLegalName = model.OrNA(c.LegalName)

	var site hunter.Site
	if c.Site != nil {
		site = *c.Site
	}
	lead.HunterPhones = model.JoinOrNA(site.PhoneNumbers)
	lead.HunterCompanyEmails = model.JoinOrNA(site.EmailAddresses)

	lead.HunterTags = model.JoinOrNA(c.Tags)
	lead.HunterTech = model.JoinOrNA(c.Tech)
	lead.HunterLocation = model.OrNA(c.Location)

	lead.HunterFounded = model.NotAvailable
	if c.FoundedYear != nil {
		lead.HunterFounded = strconv.Itoa(*c.FoundedYear)
	}

	lead.HunterIndustry = model.NotAvailable
	if c.Category != nil {
		lead.HunterIndustry = model.OrNA(c.Category.Industry)
	}
}
