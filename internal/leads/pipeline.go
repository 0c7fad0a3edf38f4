// Package leads drives the lead-generation run: company search, per-lead
// enrichment, outreach generation, and the final report.
package leads

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/outreach"
	"github.com/sells-group/leadgen-cli/internal/report"
)

// Generator writes the outreach message for one lead.
type Generator interface {
	Generate(ctx context.Context, company string, insights []string) outreach.Message
	Usage() outreach.Usage
	EstimatedCost() float64
}

// ReportWriter serializes the finished leads.
type ReportWriter func(path, format string, leads []model.EnrichedLead) error

// Options controls where the report goes.
type Options struct {
	OutputPath string
	Format     string
}

// Pipeline runs one lead-generation pass.
type Pipeline struct {
	sources    *Sources
	aggregator *Aggregator
	generator  Generator
	printer    *Printer
	write      ReportWriter
	opts       Options
}

// NewPipeline creates a Pipeline writing progress to out and the report
// with report.Write.
func NewPipeline(sources *Sources, generator Generator, out io.Writer, opts Options) *Pipeline {
	return &Pipeline{
		sources:    sources,
		aggregator: NewAggregator(sources),
		generator:  generator,
		printer:    NewPrinter(out),
		write:      report.Write,
		opts:       opts,
	}
}

// WithReportWriter replaces the report writer.
func (p *Pipeline) WithReportWriter(w ReportWriter) *Pipeline {
	p.write = w
	return p
}

// Run searches for companies matching criteria, enriches each one in order,
// and writes the report. Provider failures degrade to "N/A" fields; only a
// failed report write is returned as an error.
func (p *Pipeline) Run(ctx context.Context, criteria model.SearchCriteria) (*model.RunSummary, error) {
	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID))

	p.printer.Criteria(criteria)

	search := p.sources.SearchCompanies(ctx, criteria)
	if !search.OK() {
		log.Warn("leads: company search unavailable, writing empty report",
			zap.String("failure", string(search.Failure)),
			zap.Error(search.Err),
		)
	}
	candidates := search.Value
	log.Info("leads: search complete", zap.Int("companies", len(candidates)))

	p.printer.LeadsHeader()

	summary := &model.RunSummary{RunID: runID, OutputPath: p.opts.OutputPath}
	results := make([]model.EnrichedLead, 0, len(candidates))

	for _, c := range candidates {
		lead := p.aggregator.Enrich(ctx, c)

		msg := p.generator.Generate(ctx, lead.Name, lead.Insights)
		lead.Message = msg.Text
		if msg.Fallback {
			summary.FallbackMessages++
		}

		if lead.HasContacts {
			summary.WithContacts++
		}
		if lead.HasTopPeople {
			summary.WithTopPeople++
		}

		p.printer.Lead(lead)
		log.Debug("leads: lead processed",
			zap.String("company", lead.Name),
			zap.String("domain", lead.Domain),
			zap.Int("insights", len(lead.Insights)),
			zap.Bool("fallback_message", msg.Fallback),
			zap.NamedError("message_error", msg.Err),
		)
		results = append(results, lead)
	}

	summary.Total = len(results)
	usage := p.generator.Usage()
	summary.GenerationCalls = usage.Calls
	summary.InputTokens = usage.InputTokens
	summary.OutputTokens = usage.OutputTokens
	summary.EstimatedCostUSD = p.generator.EstimatedCost()

	if err := p.write(p.opts.OutputPath, p.opts.Format, results); err != nil {
		return summary, eris.Wrapf(err, "leads: write report %s", p.opts.OutputPath)
	}

	p.printer.Summary(*summary)
	log.Info("leads: run complete",
		zap.Int("total", summary.Total),
		zap.Int("with_contacts", summary.WithContacts),
		zap.Int("with_top_people", summary.WithTopPeople),
		zap.Int("fallback_messages", summary.FallbackMessages),
		zap.Int("generation_calls", summary.GenerationCalls),
		zap.Int("generation_failures", usage.Failures),
		zap.Int64("input_tokens", summary.InputTokens),
		zap.Int64("output_tokens", summary.OutputTokens),
		zap.Float64("estimated_cost_usd", summary.EstimatedCostUSD),
		zap.String("output", summary.OutputPath),
	)

	return summary, nil
}
