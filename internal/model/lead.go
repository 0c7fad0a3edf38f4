package model

import (
	"strconv"
	"strings"
)

// NotAvailable is the placeholder written for any lead field with no data.
const NotAvailable = "N/A"

// ListSeparator joins multi-value fields in progress output and reports.
const ListSeparator = " | "

// SearchCriteria selects which companies the search provider returns.
type SearchCriteria struct {
	CompanySize string `json:"company_size"`
	Industry    string `json:"industry"`
	Location    string `json:"location,omitempty"`
}

// CompanyCandidate is a single company returned by the search provider.
type CompanyCandidate struct {
	Name          string `json:"name"`
	Website       string `json:"website,omitempty"`
	EmployeeCount *int   `json:"employee_count,omitempty"`
}

// HasWebsite reports whether per-domain enrichment can run for the candidate.
func (c CompanyCandidate) HasWebsite() bool {
	return strings.TrimSpace(c.Website) != ""
}

// EmployeeCountString formats the employee count, or NotAvailable when unknown.
func (c CompanyCandidate) EmployeeCountString() string {
	if c.EmployeeCount == nil {
		return NotAvailable
	}
	return strconv.Itoa(*c.EmployeeCount)
}

// EnrichedLead is a company candidate with all enrichment and its outreach
// message. String fields hold display values and are NotAvailable when empty.
type EnrichedLead struct {
	CompanyCandidate

	Domain       string   `json:"domain,omitempty"`
	CompanyPhone string   `json:"company_phone"`
	CompanyEmail string   `json:"company_email"`
	Address      string   `json:"address"`
	SocialLinks  string   `json:"social_links"`
	Insights     []string `json:"insights"`
	TopPeople    string   `json:"top_people"`
	Contacts     string   `json:"contacts"`
	HunterEmails []string `json:"hunter_emails"`

	HunterLegalName     string `json:"hunter_legal_name"`
	HunterPhones        string `json:"hunter_phones"`
	HunterCompanyEmails string `json:"hunter_company_emails"`
	HunterIndustry      string `json:"hunter_industry"`
	HunterTags          string `json:"hunter_tags"`
	HunterFounded       string `json:"hunter_founded"`
	HunterLocation      string `json:"hunter_location"`
	HunterTech          string `json:"hunter_tech"`

	Message string `json:"message"`

	// HasContacts and HasTopPeople feed the end-of-run summary counters.
	HasContacts  bool `json:"-"`
	HasTopPeople bool `json:"-"`
}

// NewEnrichedLead returns a lead for the candidate with every display field
// set to NotAvailable.
func NewEnrichedLead(c CompanyCandidate) EnrichedLead {
	return EnrichedLead{
		CompanyCandidate:    c,
		CompanyPhone:        NotAvailable,
		CompanyEmail:        NotAvailable,
		Address:             NotAvailable,
		SocialLinks:         NotAvailable,
		TopPeople:           NotAvailable,
		Contacts:            NotAvailable,
		HunterLegalName:     NotAvailable,
		HunterPhones:        NotAvailable,
		HunterCompanyEmails: NotAvailable,
		HunterIndustry:      NotAvailable,
		HunterTags:          NotAvailable,
		HunterFounded:       NotAvailable,
		HunterLocation:      NotAvailable,
		HunterTech:          NotAvailable,
	}
}

// InsightsString joins the scraped insights, or returns NotAvailable.
func (l EnrichedLead) InsightsString() string {
	return JoinOrNA(l.Insights)
}

// HunterEmailsString joins the Hunter domain emails, or returns NotAvailable.
func (l EnrichedLead) HunterEmailsString() string {
	return JoinOrNA(l.HunterEmails)
}

// JoinOrNA joins the non-blank values with ListSeparator. An empty result
// becomes NotAvailable.
func JoinOrNA(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return NotAvailable
	}
	return strings.Join(kept, ListSeparator)
}

// OrNA returns s, or NotAvailable when s is blank.
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

// RunSummary holds the end-of-run counters printed after the report is written.
type RunSummary struct {
	RunID            string  `json:"run_id"`
	Total            int     `json:"total"`
	WithContacts     int     `json:"with_contacts"`
	WithTopPeople    int     `json:"with_top_people"`
	FallbackMessages int     `json:"fallback_messages"`
	GenerationCalls  int     `json:"generation_calls"`
	InputTokens      int64   `json:"input_tokens"`
	OutputTokens     int64   `json:"output_tokens"`
	OutputPath       string  `json:"output_path"`
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
}
