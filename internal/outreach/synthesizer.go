// Package outreach writes the personalized email attached to every lead.
package outreach

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/cost"
	"github.com/sells-group/leadgen-cli/internal/resilience"
)

// Message is the outreach text for one lead. Fallback is set when the
// deterministic template was used instead of a generated email.
type Message struct {
	Text     string
	Fallback bool
	Err      error
}

// Usage totals the generation calls made by a Synthesizer.
type Usage struct {
	Calls        int
	Failures     int
	InputTokens  int64
	OutputTokens int64
}

// Synthesizer generates outreach messages with a Completer and falls back to
// FallbackMessage on any failure.
type Synthesizer struct {
	completer Completer
	profile   Profile
	calc      *cost.Calculator
	usage     Usage
}

// NewSynthesizer creates a Synthesizer. A nil completer means every message
// uses the fallback template.
func NewSynthesizer(completer Completer, profile Profile, calc *cost.Calculator) *Synthesizer {
	if calc == nil {
		calc = cost.NewCalculator(cost.DefaultRates())
	}
	if completer != nil && !calc.Known(completer.Provider(), completer.Model()) {
		zap.L().Warn("outreach: no pricing for model, estimated cost will be 0",
			zap.String("provider", completer.Provider()),
			zap.String("model", completer.Model()),
		)
	}
	return &Synthesizer{completer: completer, profile: profile, calc: calc}
}

// Generate returns the outreach message for a company. The returned text is
// never empty.
func (s *Synthesizer) Generate(ctx context.Context, company string, insights []string) Message {
	text, err := s.generate(ctx, company, insights)
	if err == nil {
		return Message{Text: text}
	}

	zap.L().Debug("outreach: using fallback message",
		zap.String("company", company),
		zap.String("failure", string(resilience.Classify(err))),
		zap.Error(err),
	)
	return Message{
		Text:     FallbackMessage(company, insights, s.profile),
		Fallback: true,
		Err:      err,
	}
}

func (s *Synthesizer) generate(ctx context.Context, company string, insights []string) (string, error) {
	if s.completer == nil {
		return "", eris.New("outreach: no text generator configured")
	}

	s.usage.Calls++
	c, err := s.completer.Complete(ctx, SystemPrompt, BuildPrompt(company, insights, s.profile))
	if err != nil {
		s.usage.Failures++
		return "", eris.Wrap(err, "outreach: generate")
	}

	s.usage.InputTokens += c.InputTokens
	s.usage.OutputTokens += c.OutputTokens

	if c.Text == "" {
		s.usage.Failures++
		return "", resilience.NewMalformedError(eris.New("outreach: empty completion"))
	}
	return c.Text, nil
}

// Usage returns the running totals of generation calls.
func (s *Synthesizer) Usage() Usage {
	return s.usage
}

// EstimatedCost prices the tokens consumed so far. Unknown models cost 0.
func (s *Synthesizer) EstimatedCost() float64 {
	if s.completer == nil {
		return 0
	}
	return s.calc.Completion(s.completer.Provider(), s.completer.Model(), s.usage.InputTokens, s.usage.OutputTokens)
}
