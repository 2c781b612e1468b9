package cli

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roboco-io/galaxymsbt/internal/binio"
	"github.com/roboco-io/galaxymsbt/internal/config"
	"github.com/roboco-io/galaxymsbt/internal/llm"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long: `Manage galaxymsbt settings.

Config file: ~/.galaxymsbt/config.yaml

Subcommands:
  show    print the current settings
  init    create a default config file
  set     change a setting
  path    print the config file path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Long: `Print the settings in effect.

Defaults are shown when there is no config file. Environment variables
that override settings are listed below them.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long: `Create a default config file at ~/.galaxymsbt/config.yaml.

An existing file is kept unless --force is given.`,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting.

Keys:
  charset                message text charset (utf-16-be, utf-16-le)
  tables                 symbol table override file ("" for built-in)
  default_provider       LLM provider (anthropic, openai, gemini, ollama)
  translate.temperature  LLM temperature (0.0-1.0)
  translate.language     target language (en, ja, de, ...)

Examples:
  galaxymsbt config set default_provider openai
  galaxymsbt config set translate.language de`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := newLoader()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader.ConfigPath())
		return nil
	},
}

var configForce bool

var validProviders = []string{"anthropic", "openai", "gemini", "ollama"}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	if loader.Exists() {
		fmt.Fprintf(out, "Config file: %s\n\n", loader.ConfigPath())
	} else {
		fmt.Fprintf(out, "Config file: (defaults)\n\n")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format config: %w", err)
	}
	fmt.Fprintln(out, string(data))

	fmt.Fprintln(out, "Environment:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	envVars := []struct {
		key   string
		desc  string
		value string
	}{
		{EnvCharset, "charset", os.Getenv(EnvCharset)},
		{EnvTables, "symbol table file", os.Getenv(EnvTables)},
		{EnvModel, "model (selects the provider)", os.Getenv(EnvModel)},
		{"ANTHROPIC_API_KEY", "Anthropic API key", maskAPIKey(os.Getenv("ANTHROPIC_API_KEY"))},
		{"OPENAI_API_KEY", "OpenAI API key", maskAPIKey(os.Getenv("OPENAI_API_KEY"))},
		{"GOOGLE_API_KEY", "Google API key", maskAPIKey(os.Getenv("GOOGLE_API_KEY"))},
		{"OLLAMA_HOST", "Ollama host", os.Getenv("OLLAMA_HOST")},
	}

	for _, ev := range envVars {
		status := "(not set)"
		if ev.value != "" {
			status = ev.value
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", ev.key, ev.desc, status)
	}
	return w.Flush()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}

	if loader.Exists() && !configForce {
		return fmt.Errorf("config file already exists: %s\nuse --force to overwrite", loader.ConfigPath())
	}

	if err := loader.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file created: %s\n", loader.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	loader, err := newLoader()
	if err != nil {
		return err
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := applySetting(cfg, key, value); err != nil {
		return err
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s = %s\n", key, value)
	return nil
}

func applySetting(cfg *config.Config, key, value string) error {
	switch key {
	case "charset":
		cs, err := binio.LookupCharset(value)
		if err != nil {
			return err
		}
		cfg.Charset = cs.Name()

	case "tables":
		if value != "" {
			if _, err := config.LoadTables(value); err != nil {
				return err
			}
		}
		cfg.Tables = value

	case "default_provider":
		if !contains(validProviders, value) {
			return fmt.Errorf("invalid provider: %s (supported: %s)", value, strings.Join(validProviders, ", "))
		}
		cfg.DefaultProvider = value

	case "translate.temperature":
		temp, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid temperature: %s", value)
		}
		if temp < 0 || temp > 1 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0: %g", temp)
		}
		cfg.Translate.Temperature = temp

	case "translate.language":
		languages := llm.Languages()
		if !contains(languages, value) {
			return fmt.Errorf("invalid language: %s (supported: %s)", value, strings.Join(languages, ", "))
		}
		cfg.Translate.Language = value

	default:
		return fmt.Errorf("unknown setting: %s\nsupported: charset, tables, default_provider, translate.temperature, translate.language", key)
	}
	return nil
}

func maskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

func contains(slice []string, item string) bool {
	return slices.Contains(slice, item)
}
