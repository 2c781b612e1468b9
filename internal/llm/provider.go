// Package llm provides the LLM provider interface and registry used to
// machine-translate message text.
package llm

import (
	"context"
)

// Provider is the interface that all LLM providers must implement.
type Provider interface {
	// Name returns the provider identifier (e.g., "openai", "anthropic").
	Name() string

	// Translate sends one message text in tag notation and returns the
	// model's translation.
	Translate(ctx context.Context, text string, opts TranslateOptions) (*TranslateResult, error)

	// Validate checks if the provider is properly configured.
	Validate() error
}

// TranslateOptions contains options for LLM translation.
type TranslateOptions struct {
	Language    string  `json:"language,omitempty"`    // target language (e.g., "en", "ja")
	MaxTokens   int     `json:"max_tokens,omitempty"`  // maximum tokens for response
	Temperature float64 `json:"temperature,omitempty"` // creativity level (0.0 - 1.0)
	Prompt      string  `json:"prompt,omitempty"`      // custom system prompt
}

// TranslateResult contains the result of one translation.
type TranslateResult struct {
	Text  string     `json:"text"`
	Usage TokenUsage `json:"usage"`
	Model string     `json:"model"`
}

// TokenUsage contains token usage statistics.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Add accumulates u into the receiver.
func (t *TokenUsage) Add(u TokenUsage) {
	t.InputTokens += u.InputTokens
	t.OutputTokens += u.OutputTokens
	t.TotalTokens += u.TotalTokens
}

// DefaultTranslateOptions returns the default translation options.
func DefaultTranslateOptions() TranslateOptions {
	return TranslateOptions{
		Language:    "en",
		MaxTokens:   4096,
		Temperature: 0.3,
	}
}
