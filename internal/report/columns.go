// Package report writes the fixed-column lead report.
package report

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// Supported report formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Columns defines the ordered report columns. Every row has exactly this many
// cells.
var Columns = []string{
	"Company Name",
	"Website",
	"Employee Count",
	"Company Phone",
	"Company Email",
	"Address",
	"Social Links",
	"Insights",
	"Top People",
	"Contacts",
	"Hunter Emails",
	"Hunter Legal Name",
	"Hunter Phones",
	"Hunter Company Emails",
	"Hunter Industry",
	"Hunter Tags",
	"Hunter Founded",
	"Hunter Location",
	"Hunter Tech",
	"Outreach Message",
}

// Row maps a lead to its report cells, in Columns order.
func Row(l model.EnrichedLead) []string {
	return []string{
		l.Name,                            // Company Name
		model.OrNA(l.Website),             // Website
		l.EmployeeCountString(),           // Employee Count
		model.OrNA(l.CompanyPhone),        // Company Phone
		model.OrNA(l.CompanyEmail),        // Company Email
		model.OrNA(l.Address),             // Address
		model.OrNA(l.SocialLinks),         // Social Links
		l.InsightsString(),                // Insights
		model.OrNA(l.TopPeople),           // Top People
		model.OrNA(l.Contacts),            // Contacts
		l.HunterEmailsString(),            // Hunter Emails
		model.OrNA(l.HunterLegalName),     // Hunter Legal Name
		model.OrNA(l.HunterPhones),        // Hunter Phones
		model.OrNA(l.HunterCompanyEmails), // Hunter Company Emails
		model.OrNA(l.HunterIndustry),      // Hunter Industry
		model.OrNA(l.HunterTags),          // Hunter Tags
		model.OrNA(l.HunterFounded),       // Hunter Founded
		model.OrNA(l.HunterLocation),      // Hunter Location
		model.OrNA(l.HunterTech),          // Hunter Tech
		l.Message,                         // Outreach Message
	}
}

// Write serializes leads to path in the given format ("csv" or "xlsx").
func Write(path, format string, leads []model.EnrichedLead) error {
	switch strings.ToLower(format) {
	case "", FormatCSV:
		return WriteCSV(path, leads)
	case FormatXLSX:
		return WriteXLSX(path, leads)
	default:
		return eris.Errorf("report: unsupported format %q", format)
	}
}
