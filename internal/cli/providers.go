package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roboco-io/galaxymsbt/internal/llm/anthropic"
	"github.com/roboco-io/galaxymsbt/internal/llm/gemini"
	"github.com/roboco-io/galaxymsbt/internal/llm/openai"
)

type providerInfo struct {
	Name         string
	DefaultModel string
	EnvKey       string
	Description  string
}

var providers = []providerInfo{
	{
		Name:         anthropic.ProviderName,
		DefaultModel: anthropic.DefaultModel,
		EnvKey:       "ANTHROPIC_API_KEY",
		Description:  "Anthropic Claude API",
	},
	{
		Name:         openai.ProviderName,
		DefaultModel: openai.DefaultModel,
		EnvKey:       "OPENAI_API_KEY",
		Description:  "OpenAI GPT API",
	},
	{
		Name:         gemini.ProviderName,
		DefaultModel: gemini.DefaultModel,
		EnvKey:       "GOOGLE_API_KEY",
		Description:  "Google Gemini API",
	},
	{
		Name:         openai.OllamaProviderName,
		DefaultModel: openai.DefaultOllamaModel,
		EnvKey:       "OLLAMA_HOST",
		Description:  "Local Ollama server",
	},
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the LLM providers for translate",
	Long: `List the LLM providers the translate command can use.

Each provider needs its API key in the listed environment variable
(ollama runs locally and needs none).

Examples:
  galaxymsbt translate scenario.yaml --provider anthropic
  galaxymsbt translate scenario.yaml --model gpt-4o`,
	Run: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "PROVIDER\tDEFAULT MODEL\tENV VAR\tSTATUS\tDESCRIPTION")
	fmt.Fprintln(w, "--------\t-------------\t-------\t------\t-----------")

	for _, p := range providers {
		status := checkProviderStatus(p)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.Name, p.DefaultModel, p.EnvKey, status, p.Description)
	}
}

func checkProviderStatus(p providerInfo) string {
	if p.Name == openai.OllamaProviderName {
		// Ollama doesn't require API key
		return "✓ available"
	}

	if os.Getenv(p.EnvKey) != "" {
		return "✓ configured"
	}
	return "✗ not set"
}
