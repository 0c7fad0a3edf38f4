package leads

import (
	"fmt"
	"io"
	"strings"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// Printer writes user-facing progress for a run.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Criteria prints the resolved search criteria.
func (p *Printer) Criteria(c model.SearchCriteria) {
	fmt.Fprintf(p.w, "Search Criteria: Size=%s, Industry=%s, Location=%s\n", c.CompanySize, c.Industry, c.Location)
}

// LeadsHeader introduces the per-lead blocks.
func (p *Printer) LeadsHeader() {
	fmt.Fprint(p.w, "\nLeads found:\n")
}

// Lead prints one processed lead with its derived fields and message.
func (p *Printer) Lead(l model.EnrichedLead) {
	fmt.Fprintf(p.w, "- %s | %s | Employees: %s\n", l.Name, model.OrNA(l.Website), l.EmployeeCountString())

	fields := []struct {
		label string
		value string
	}{
		{"Company Phone", l.CompanyPhone},
		{"Company Email", l.CompanyEmail},
		{"Address", l.Address},
		{"Social Links", l.SocialLinks},
		{"Insights", l.InsightsString()},
		{"Top People", l.TopPeople},
		{"Contacts", l.Contacts},
		{"Hunter Emails", l.HunterEmailsString()},
		{"Hunter Legal Name", l.HunterLegalName},
		{"Hunter Phones", l.HunterPhones},
		{"Hunter Company Emails", l.HunterCompanyEmails},
		{"Hunter Industry", l.HunterIndustry},
		{"Hunter Tags", l.HunterTags},
		{"Hunter Founded", l.HunterFounded},
		{"Hunter Location", l.HunterLocation},
		{"Hunter Tech", l.HunterTech},
	}
	for _, f := range fields {
		fmt.Fprintf(p.w, "  %s: %s\n", f.label, model.OrNA(f.value))
	}

	fmt.Fprint(p.w, "  Outreach Message:\n")
	fmt.Fprintf(p.w, "    %s\n\n", strings.ReplaceAll(l.Message, "\n", "\n    "))
}

// Summary prints the end-of-run counters.
func (p *Printer) Summary(s model.RunSummary) {
	fmt.Fprintf(p.w, "\nSummary: %d companies processed.\n", s.Total)
	fmt.Fprintf(p.w, "  Companies with contacts: %d\n", s.WithContacts)
	fmt.Fprintf(p.w, "  Companies with top people: %d\n", s.WithTopPeople)
	fmt.Fprintf(p.w, "  Output saved to %s\n\n", s.OutputPath)
}
