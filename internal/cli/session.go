package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboco-io/galaxymsbt/internal/binio"
	"github.com/roboco-io/galaxymsbt/internal/config"
	"github.com/roboco-io/galaxymsbt/internal/symbols"
	"github.com/roboco-io/galaxymsbt/internal/tag"
)

// Environment variables overriding the config file.
const (
	EnvCharset = "GALAXYMSBT_CHARSET"
	EnvTables  = "GALAXYMSBT_TABLES"
	EnvModel   = "GALAXYMSBT_MODEL"
)

// session holds what a command needs after flags, environment and config
// are resolved.
type session struct {
	loader     *config.Loader
	cfg        *config.Config
	tables     *symbols.Tables
	tablesPath string // empty when the built-in tables are used
	charset    *binio.Charset
	logger     *slog.Logger
}

func newLoader() (*config.Loader, error) {
	if flagConfig != "" {
		return config.NewLoaderWithPath(flagConfig), nil
	}
	loader, err := config.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config loader: %w", err)
	}
	return loader, nil
}

// loadSession resolves config, charset and symbol tables. Precedence is
// flag, then environment, then config file. Without an explicit tables
// path, adapter_config.json next to the config file is used if present.
func loadSession(cmd *cobra.Command) (*session, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, err
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	s := &session{
		loader: loader,
		cfg:    cfg,
		logger: newCommandLogger(cmd.ErrOrStderr()),
	}

	csName := firstNonEmpty(flagCharset, os.Getenv(EnvCharset), cfg.Charset)
	if s.charset, err = binio.LookupCharset(csName); err != nil {
		return nil, err
	}

	s.tablesPath = firstNonEmpty(flagTables, os.Getenv(EnvTables), cfg.Tables)
	if s.tablesPath == "" {
		if _, err := os.Stat(loader.TablesPath()); err == nil {
			s.tablesPath = loader.TablesPath()
		}
	}
	if s.tablesPath == "" {
		s.tables = symbols.Default()
	} else if s.tables, err = config.LoadTables(s.tablesPath); err != nil {
		return nil, err
	}

	s.logger.Debug("session loaded",
		"config", loader.ConfigPath(),
		"charset", s.charset.Name(),
		"tables", firstNonEmpty(s.tablesPath, "(built-in)"),
	)
	return s, nil
}

func (s *session) codec() *tag.Codec {
	return tag.New(s.tables, s.charset)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseHex accepts hex with optional whitespace and 0x prefix.
func parseHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}

// formatHex renders data as upper-case hex in 16-bit groups.
func formatHex(data []byte) string {
	var sb strings.Builder
	for i := 0; i < len(data); i += 2 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		end := min(i+2, len(data))
		sb.WriteString(strings.ToUpper(hex.EncodeToString(data[i:end])))
	}
	return sb.String()
}

// readInput reads the named file, or stdin for "" and "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
