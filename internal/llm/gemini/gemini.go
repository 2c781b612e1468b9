// Package gemini implements llm.Provider with the Google Gen AI SDK.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/roboco-io/galaxymsbt/internal/llm"
)

// ProviderName is the registry name of this provider.
const ProviderName = "gemini"

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gemini-1.5-flash"

// Config configures the provider.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// Provider translates with Gemini. The SDK client needs a context to be
// created, so it is built on each call.
type Provider struct {
	cfg Config
}

// New creates a provider.
func New(cfg Config) *Provider {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &Provider{cfg: cfg}
}

func (p *Provider) Name() string { return ProviderName }

func (p *Provider) Validate() error {
	if p.cfg.APIKey == "" {
		return fmt.Errorf("%s: API key is not set (GOOGLE_API_KEY)", ProviderName)
	}
	return nil
}

func (p *Provider) Translate(ctx context.Context, text string, opts llm.TranslateOptions) (*llm.TranslateResult, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: create client: %w", ProviderName, err)
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.cfg.MaxTokens
	}
	temperature := float32(opts.Temperature)

	resp, err := client.Models.GenerateContent(ctx, p.cfg.Model, genai.Text(text), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(llm.SystemPrompt(opts), genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   int32(maxTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ProviderName, err)
	}

	result := &llm.TranslateResult{
		Text:  resp.Text(),
		Model: p.cfg.Model,
	}
	if u := resp.UsageMetadata; u != nil {
		result.Usage = llm.TokenUsage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return result, nil
}
