package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboco-io/galaxymsbt/internal/config"
	"github.com/roboco-io/galaxymsbt/internal/ir"
	"github.com/roboco-io/galaxymsbt/internal/llm"
	"github.com/roboco-io/galaxymsbt/internal/llm/anthropic"
	"github.com/roboco-io/galaxymsbt/internal/llm/gemini"
	"github.com/roboco-io/galaxymsbt/internal/llm/openai"
)

var (
	translateOutput      string
	translateProvider    string
	translateModel       string
	translateLanguage    string
	translateTemperature float64
	translatePrompt      string
)

var translateCmd = &cobra.Command{
	Use:   "translate <file>",
	Short: "Machine-translate message text with an LLM",
	Long: `Translate every message of a message file or decoded document.

Tags are kept: each translation must contain the same tags as its
source, otherwise the command fails naming the missing or extra tags.
Labels and attributes are copied unchanged.

The output format follows the --output extension (.msbt writes a
message file); without --output a JSON document goes to stdout.

Environment:
  GALAXYMSBT_MODEL=xxx   model name (selects the provider)

Examples:
  galaxymsbt translate ScenarioData.msbt -o ScenarioData_en.msbt
  galaxymsbt translate scenario.yaml --language de -o scenario_de.yaml
  galaxymsbt translate scenario.yaml --model gpt-4o`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringVarP(&translateOutput, "output", "o", "", "output file (default: stdout)")
	translateCmd.Flags().StringVar(&translateProvider, "provider", "", "LLM provider (anthropic, openai, gemini, ollama)")
	translateCmd.Flags().StringVar(&translateModel, "model", "", "LLM model name")
	translateCmd.Flags().StringVarP(&translateLanguage, "language", "l", "", "target language (default: from config)")
	translateCmd.Flags().Float64Var(&translateTemperature, "temperature", -1, "LLM temperature (default: from config)")
	translateCmd.Flags().StringVar(&translatePrompt, "prompt", "", "custom system prompt")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	doc, err := s.readDocument(args[0])
	if err != nil {
		return err
	}

	model := firstNonEmpty(translateModel, config.GetEnvOrDefault(EnvModel, ""))
	name := translateProvider
	if name == "" {
		if model != "" {
			name = detectProviderFromModel(model)
		} else {
			name = firstNonEmpty(s.cfg.DefaultProvider, anthropic.ProviderName)
		}
	}

	registry, err := newProviderRegistry(s.cfg, name, model)
	if err != nil {
		return err
	}
	provider, err := registry.Select(name)
	if err != nil {
		return err
	}

	opts := translateOptions(s.cfg, name)
	logger := s.logger.With("command", "translate", "provider", name, "language", opts.Language)
	logger.Info("translating", "file", args[0], "messages", len(doc.Messages))

	out, usage, err := llm.TranslateDocument(cmd.Context(), provider, doc, opts, logger)
	if err != nil {
		return err
	}

	data, err := s.marshalDocument(out, translateOutput, ir.FormatJSON)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, translateOutput, data); err != nil {
		return err
	}

	logger.Info("translated",
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
		"output", firstNonEmpty(translateOutput, "(stdout)"),
	)
	return nil
}

func translateOptions(cfg *config.Config, provider string) llm.TranslateOptions {
	opts := llm.DefaultTranslateOptions()
	if cfg.Translate.Language != "" {
		opts.Language = cfg.Translate.Language
	}
	if cfg.Translate.Temperature > 0 {
		opts.Temperature = cfg.Translate.Temperature
	}
	if p, ok := cfg.GetProvider(provider); ok && p.MaxTokens > 0 {
		opts.MaxTokens = p.MaxTokens
	}

	if translateLanguage != "" {
		opts.Language = translateLanguage
	}
	if translateTemperature >= 0 {
		opts.Temperature = translateTemperature
	}
	opts.Prompt = translatePrompt
	return opts
}

// newProviderRegistry registers every known provider from cfg. model, if
// set, overrides the configured model of the selected provider.
func newProviderRegistry(cfg *config.Config, selected, model string) (*llm.Registry, error) {
	settings := func(name string) config.Provider {
		p, _ := cfg.GetProvider(name)
		var out config.Provider
		if p != nil {
			out = *p
		}
		if name == selected && model != "" {
			out.Model = model
		}
		return out
	}

	a := settings(anthropic.ProviderName)
	o := settings(openai.ProviderName)
	g := settings(gemini.ProviderName)
	l := settings(openai.OllamaProviderName)

	registry := llm.NewRegistry()
	for _, p := range []llm.Provider{
		anthropic.New(anthropic.Config{
			APIKey:    firstNonEmpty(a.APIKey, config.GetEnvOrDefault("ANTHROPIC_API_KEY", "")),
			Model:     a.Model,
			MaxTokens: a.MaxTokens,
			Endpoint:  a.Endpoint,
		}),
		openai.New(openai.Config{
			APIKey:    firstNonEmpty(o.APIKey, config.GetEnvOrDefault("OPENAI_API_KEY", "")),
			Model:     o.Model,
			MaxTokens: o.MaxTokens,
			Endpoint:  o.Endpoint,
		}),
		gemini.New(gemini.Config{
			APIKey:    firstNonEmpty(g.APIKey, config.GetEnvOrDefault("GOOGLE_API_KEY", "")),
			Model:     g.Model,
			MaxTokens: g.MaxTokens,
		}),
		openai.NewOllama(openai.Config{
			Model:     l.Model,
			MaxTokens: l.MaxTokens,
			Endpoint:  config.GetEnvOrDefault("OLLAMA_HOST", firstNonEmpty(l.Endpoint, openai.DefaultOllamaHost)),
		}),
	} {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// detectProviderFromModel picks the provider serving a model name.
// Unknown models are assumed to run on a local Ollama server.
func detectProviderFromModel(model string) string {
	m := strings.ToLower(model)
	switch {
	case m == "" || strings.HasPrefix(m, "claude"):
		return anthropic.ProviderName
	case strings.HasPrefix(m, "gpt"), strings.HasPrefix(m, "o1"), strings.HasPrefix(m, "o3"):
		return openai.ProviderName
	case strings.HasPrefix(m, "gemini"):
		return gemini.ProviderName
	default:
		return openai.OllamaProviderName
	}
}
