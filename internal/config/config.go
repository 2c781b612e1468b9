// Package config manages application configuration and the symbol table
// override file.
package config

// Config represents the application configuration.
type Config struct {
	// Charset is the text encoding of message strings.
	Charset string `yaml:"charset"`
	// Tables is the path of the symbol table override file. Empty selects
	// the built-in tables.
	Tables          string              `yaml:"tables,omitempty"`
	DefaultProvider string              `yaml:"default_provider"`
	Providers       map[string]Provider `yaml:"providers"`
	Translate       TranslateConfig     `yaml:"translate"`
}

// Provider represents an LLM provider configuration.
type Provider struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	Endpoint  string `yaml:"endpoint,omitempty"` // for Ollama or custom endpoints
}

// TranslateConfig contains machine translation options.
type TranslateConfig struct {
	Temperature float64 `yaml:"temperature"`
	Language    string  `yaml:"language"`
}

// DefaultCharset is the charset of Super Mario Galaxy 2 message files.
const DefaultCharset = "utf-16-be"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Charset:         DefaultCharset,
		DefaultProvider: "anthropic",
		Providers: map[string]Provider{
			"openai": {
				APIKey:    "${OPENAI_API_KEY}",
				Model:     "gpt-4o-mini",
				MaxTokens: 4096,
			},
			"anthropic": {
				APIKey:    "${ANTHROPIC_API_KEY}",
				Model:     "claude-sonnet-4-20250514",
				MaxTokens: 4096,
			},
			"gemini": {
				APIKey:    "${GOOGLE_API_KEY}",
				Model:     "gemini-1.5-flash",
				MaxTokens: 4096,
			},
			"ollama": {
				Endpoint:  "http://localhost:11434",
				Model:     "llama3.2",
				MaxTokens: 4096,
			},
		},
		Translate: TranslateConfig{
			Temperature: 0.3,
			Language:    "en",
		},
	}
}

// GetProvider returns the provider configuration by name.
func (c *Config) GetProvider(name string) (*Provider, bool) {
	p, ok := c.Providers[name]
	if !ok {
		return nil, false
	}
	return &p, true
}

// GetDefaultProvider returns the default provider configuration.
func (c *Config) GetDefaultProvider() (*Provider, bool) {
	return c.GetProvider(c.DefaultProvider)
}
