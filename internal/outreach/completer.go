package outreach

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadgen-cli/internal/cost"
	"github.com/sells-group/leadgen-cli/pkg/anthropic"
	"github.com/sells-group/leadgen-cli/pkg/openai"
)

// Completion is the text and token usage of one generation call.
type Completion struct {
	Text         string
	InputTokens  int64
	OutputTokens int64
}

// Completer produces a single completion for a system and user prompt.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (*Completion, error)
	// Provider and Model identify the rates used for cost estimates.
	Provider() string
	Model() string
}

// GenerationParams bounds a completion request.
type GenerationParams struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// OpenAICompleter adapts an OpenAI-compatible chat completion client.
type OpenAICompleter struct {
	client openai.Client
	params GenerationParams
}

// NewOpenAICompleter wraps client with the given request parameters.
func NewOpenAICompleter(client openai.Client, params GenerationParams) *OpenAICompleter {
	return &OpenAICompleter{client: client, params: params}
}

func (c *OpenAICompleter) Provider() string { return cost.ProviderOpenAI }
func (c *OpenAICompleter) Model() string    { return c.params.Model }

// Complete requests one choice and returns its trimmed content.
func (c *OpenAICompleter) Complete(ctx context.Context, system, prompt string) (*Completion, error) {
	maxTokens := c.params.MaxTokens
	temp := c.params.Temperature

	resp, err := c.client.ChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.params.Model,
		Messages: []openai.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   &maxTokens,
		Temperature: &temp,
		N:           1,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, eris.New("outreach: openai returned no choices")
	}

	return &Completion{
		Text:         strings.TrimSpace(resp.Choices[0].Message.Content),
		InputTokens:  int64(resp.Usage.PromptTokens),
		OutputTokens: int64(resp.Usage.CompletionTokens),
	}, nil
}

// AnthropicCompleter adapts the Anthropic Messages API.
type AnthropicCompleter struct {
	client anthropic.Client
	params GenerationParams
}

// NewAnthropicCompleter wraps client with the given request parameters.
func NewAnthropicCompleter(client anthropic.Client, params GenerationParams) *AnthropicCompleter {
	return &AnthropicCompleter{client: client, params: params}
}

func (c *AnthropicCompleter) Provider() string { return cost.ProviderAnthropic }
func (c *AnthropicCompleter) Model() string    { return c.params.Model }

// Complete sends prompt as the single user turn and returns the trimmed text.
func (c *AnthropicCompleter) Complete(ctx context.Context, system, prompt string) (*Completion, error) {
	temp := c.params.Temperature

	resp, err := c.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       c.params.Model,
		MaxTokens:   int64(c.params.MaxTokens),
		System:      []anthropic.SystemBlock{{Text: system}},
		Messages:    []anthropic.Message{{Role: "user", Content: prompt}},
		Temperature: &temp,
	})
	if err != nil {
		return nil, err
	}

	return &Completion{
		Text:         strings.TrimSpace(resp.Text()),
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}, nil
}
