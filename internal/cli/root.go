// Package cli implements the galaxymsbt command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

var (
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string
	flagTables  string
	flagCharset string
)

var rootCmd = &cobra.Command{
	Use:   "galaxymsbt",
	Short: "Super Mario Galaxy 2 message file tool",
	Long: `galaxymsbt decodes and encodes the message files of Super Mario Galaxy 2.

Message text is shown in bracket notation, e.g. "Get the [icon:star]!".
Tag names come from the symbol tables, which can be overridden with an
adapter_config.json file (see "galaxymsbt tables").

Examples:
  galaxymsbt decode ScenarioData.msbt -o scenario.yaml
  galaxymsbt encode scenario.yaml -o ScenarioData.msbt
  galaxymsbt tag decode "0003 0007 0002 0007"
  galaxymsbt text encode "Hello [color:red]Mario"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "galaxymsbt %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "only report errors")
	pf.StringVar(&flagConfig, "config", "", "config file path (default: ~/.galaxymsbt/config.yaml)")
	pf.StringVar(&flagTables, "tables", "", "symbol table override file (adapter_config.json)")
	pf.StringVar(&flagCharset, "charset", "", "message text charset (utf-16-be, utf-16-le)")

	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		newCommandLogger(os.Stderr).Error(err.Error())
		return err
	}
	return nil
}

// newCommandLogger creates the logger for command diagnostics: text when
// w is a terminal, JSON otherwise.
func newCommandLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case flagQuiet:
		level = slog.LevelError
	case flagVerbose:
		level = slog.LevelDebug
	}

	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}
