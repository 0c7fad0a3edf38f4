package main

import (
	"io"
	"time"

	"github.com/sells-group/leadgen-cli/internal/config"
	"github.com/sells-group/leadgen-cli/internal/cost"
	"github.com/sells-group/leadgen-cli/internal/leads"
	"github.com/sells-group/leadgen-cli/internal/outreach"
	"github.com/sells-group/leadgen-cli/internal/scrape"
	anthropicpkg "github.com/sells-group/leadgen-cli/pkg/anthropic"
	"github.com/sells-group/leadgen-cli/pkg/apollo"
	"github.com/sells-group/leadgen-cli/pkg/hunter"
	"github.com/sells-group/leadgen-cli/pkg/openai"
)

// initPipeline builds every provider client from cfg and returns the lead
// pipeline writing progress to out.
func initPipeline(cfg *config.Config, out io.Writer) (*leads.Pipeline, error) {
	profile, err := outreach.LoadProfile(cfg.Outreach.ProfilePath)
	if err != nil {
		return nil, err
	}

	debug := cfg.Log.Level == "debug"

	apolloOpts := []apollo.Option{
		apollo.WithBaseURL(cfg.Apollo.BaseURL),
		apollo.WithTimeout(seconds(cfg.Apollo.TimeoutSecs)),
	}
	hunterOpts := []hunter.Option{
		hunter.WithBaseURL(cfg.Hunter.BaseURL),
		hunter.WithTimeout(seconds(cfg.Hunter.TimeoutSecs)),
	}
	if debug {
		apolloOpts = append(apolloOpts, apollo.WithResponseHook(leads.DebugResponseHook("apollo")))
		hunterOpts = append(hunterOpts, hunter.WithResponseHook(leads.DebugResponseHook("hunter")))
	}

	scraper := scrape.NewInsightScraper(
		scrape.WithTimeout(seconds(cfg.Scrape.TimeoutSecs)),
		scrape.WithUserAgent(cfg.Scrape.UserAgent),
		scrape.WithMaxBodyBytes(cfg.Scrape.MaxBodyBytes),
	)

	sources := leads.NewSources(
		apollo.NewClient(cfg.Apollo.Key, apolloOpts...),
		hunter.NewClient(cfg.Hunter.Key, hunterOpts...),
		scraper,
	)

	synth := outreach.NewSynthesizer(initCompleter(cfg), profile, cost.NewCalculator(cost.DefaultRates()))

	return leads.NewPipeline(sources, synth, out, leads.Options{
		OutputPath: cfg.Report.Path,
		Format:     cfg.Report.Format,
	}), nil
}

// initCompleter returns the configured text generator, or nil when its key
// is missing so every message uses the fallback template.
func initCompleter(cfg *config.Config) outreach.Completer {
	switch cfg.Outreach.Provider {
	case cost.ProviderAnthropic:
		if cfg.Anthropic.Key == "" {
			return nil
		}
		client := anthropicpkg.NewClient(cfg.Anthropic.Key, anthropicpkg.WithTimeout(60*time.Second))
		return outreach.NewAnthropicCompleter(client, outreach.GenerationParams{
			Model:       cfg.Anthropic.Model,
			MaxTokens:   cfg.Outreach.MaxTokens,
			Temperature: cfg.Outreach.Temperature,
		})
	default:
		if cfg.OpenAI.Key == "" {
			return nil
		}
		client := openai.NewClient(cfg.OpenAI.Key,
			openai.WithBaseURL(cfg.OpenAI.BaseURL),
			openai.WithModel(cfg.OpenAI.Model),
		)
		return outreach.NewOpenAICompleter(client, outreach.GenerationParams{
			Model:       cfg.OpenAI.Model,
			MaxTokens:   cfg.Outreach.MaxTokens,
			Temperature: cfg.Outreach.Temperature,
		})
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
