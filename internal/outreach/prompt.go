package outreach

import (
	"fmt"
	"strings"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// SystemPrompt is sent as the system message of every generation request.
const SystemPrompt = "You are a professional B2B sales representative."

const promptTemplate = `You are a professional B2B sales representative. Write a concise, personalized outreach email to the company below. Reference their business context and suggest how your hardware solutions can help them. Be specific, professional, and relevant.

Company: %s
Key Insights: %s
Your Business: %s

Email:
`

// BuildPrompt renders the generation prompt for one company.
func BuildPrompt(company string, insights []string, p Profile) string {
	joined := strings.Join(insights, ", ")
	if joined == "" {
		joined = model.NotAvailable
	}
	return fmt.Sprintf(promptTemplate, company, joined, p.Description)
}

// FallbackMessage is the deterministic message used when generation fails.
// It never returns an empty string.
func FallbackMessage(company string, insights []string, p Profile) string {
	noticed := strings.Join(insights, ", ")
	if noticed == "" {
		noticed = "your business"
	}
	return fmt.Sprintf("Hello %s team,\n\nI noticed %s. %s\n\nBest regards,\n%s",
		company, noticed, p.Pitch, p.Signature)
}
