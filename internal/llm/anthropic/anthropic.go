// Package anthropic implements llm.Provider with the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/roboco-io/galaxymsbt/internal/llm"
)

// ProviderName is the registry name of this provider.
const ProviderName = "anthropic"

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "claude-sonnet-4-20250514"

// Config configures the provider.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
	Endpoint  string
}

// Provider translates with Claude.
type Provider struct {
	cfg    Config
	client anthropic.Client
}

// New creates a provider. The client is built even without an API key;
// Validate reports the missing key.
func New(cfg Config) *Provider {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}
	return &Provider{
		cfg:    cfg,
		client: anthropic.NewClient(opts...),
	}
}

func (p *Provider) Name() string { return ProviderName }

func (p *Provider) Validate() error {
	if p.cfg.APIKey == "" {
		return fmt.Errorf("%s: API key is not set (ANTHROPIC_API_KEY)", ProviderName)
	}
	return nil
}

func (p *Provider) Translate(ctx context.Context, text string, opts llm.TranslateOptions) (*llm.TranslateResult, error) {
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.cfg.MaxTokens
	}
	if maxTokens <= 0 {
		maxTokens = llm.DefaultTranslateOptions().MaxTokens
	}

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.cfg.Model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(opts.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: llm.SystemPrompt(opts)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ProviderName, err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return &llm.TranslateResult{
		Text:  sb.String(),
		Model: string(msg.Model),
		Usage: llm.TokenUsage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
			TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}, nil
}
