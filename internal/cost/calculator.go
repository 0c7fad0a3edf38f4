// Package cost estimates the spend of text-generation calls.
package cost

// Provider names used to look up rates.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Rates holds per-provider pricing configuration.
type Rates struct {
	OpenAI    map[string]ModelRate
	Anthropic map[string]ModelRate
}

// ModelRate holds per-model token pricing (per million tokens).
type ModelRate struct {
	Input  float64
	Output float64
}

// Calculator computes costs for API usage.
type Calculator struct {
	rates Rates
}

// NewCalculator creates a Calculator with the given rates.
func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// Completion computes the cost of input and output tokens for one model.
// Unknown providers and models cost 0.
func (c *Calculator) Completion(provider, model string, input, output int64) float64 {
	var table map[string]ModelRate
	switch provider {
	case ProviderOpenAI:
		table = c.rates.OpenAI
	case ProviderAnthropic:
		table = c.rates.Anthropic
	}

	rate, ok := table[model]
	if !ok {
		return 0
	}

	inCost := (float64(input) / 1e6) * rate.Input
	outCost := (float64(output) / 1e6) * rate.Output
	return inCost + outCost
}

// Known reports whether rates exist for the provider and model.
func (c *Calculator) Known(provider, model string) bool {
	switch provider {
	case ProviderOpenAI:
		_, ok := c.rates.OpenAI[model]
		return ok
	case ProviderAnthropic:
		_, ok := c.rates.Anthropic[model]
		return ok
	}
	return false
}

// DefaultRates returns the default pricing rates.
func DefaultRates() Rates {
	return Rates{
		OpenAI: map[string]ModelRate{
			"gpt-3.5-turbo": {Input: 0.50, Output: 1.50},
			"gpt-4o-mini":   {Input: 0.15, Output: 0.60},
			"gpt-4o":        {Input: 2.50, Output: 10.00},
		},
		Anthropic: map[string]ModelRate{
			"claude-haiku-4-5-20251001":  {Input: 1.00, Output: 5.00},
			"claude-sonnet-4-5-20250929": {Input: 3.00, Output: 15.00},
		},
	}
}
