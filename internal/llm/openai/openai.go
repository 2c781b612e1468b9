// Package openai implements llm.Provider with the OpenAI chat completions
// API. The same client serves a local Ollama server through its
// OpenAI-compatible endpoint.
package openai

import (
	"context"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/roboco-io/galaxymsbt/internal/llm"
)

// Registry names and default models.
const (
	ProviderName       = "openai"
	OllamaProviderName = "ollama"
	DefaultModel       = "gpt-4o-mini"
	DefaultOllamaModel = "llama3.2"
	DefaultOllamaHost  = "http://localhost:11434"
)

// Config configures the provider.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
	Endpoint  string
}

// Provider translates with a chat completions endpoint.
type Provider struct {
	name   string
	cfg    Config
	client *goopenai.Client
}

// New creates an OpenAI provider.
func New(cfg Config) *Provider {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientCfg.BaseURL = cfg.Endpoint
	}
	return &Provider{
		name:   ProviderName,
		cfg:    cfg,
		client: goopenai.NewClientWithConfig(clientCfg),
	}
}

// NewOllama creates a provider for an Ollama server. No API key is needed.
func NewOllama(cfg Config) *Provider {
	if cfg.Model == "" {
		cfg.Model = DefaultOllamaModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultOllamaHost
	}
	clientCfg := goopenai.DefaultConfig("ollama")
	clientCfg.BaseURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/v1"
	return &Provider{
		name:   OllamaProviderName,
		cfg:    cfg,
		client: goopenai.NewClientWithConfig(clientCfg),
	}
}

func (p *Provider) Name() string { return p.name }

func (p *Provider) Validate() error {
	if p.name == ProviderName && p.cfg.APIKey == "" {
		return fmt.Errorf("%s: API key is not set (OPENAI_API_KEY)", p.name)
	}
	return nil
}

func (p *Provider) Translate(ctx context.Context, text string, opts llm.TranslateOptions) (*llm.TranslateResult, error) {
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = p.cfg.MaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       p.cfg.Model,
		MaxTokens:   maxTokens,
		Temperature: float32(opts.Temperature),
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: llm.SystemPrompt(opts)},
			{Role: goopenai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: empty response", p.name)
	}

	return &llm.TranslateResult{
		Text:  resp.Choices[0].Message.Content,
		Model: resp.Model,
		Usage: llm.TokenUsage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
