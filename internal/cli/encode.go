package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboco-io/galaxymsbt/internal/ir"
)

var encodeOutput string

var encodeCmd = &cobra.Command{
	Use:   "encode <document>",
	Short: "Encode a JSON, YAML or CBOR document to a message file",
	Long: `Encode a decoded document back to a message file.

Messages keep their order. Messages without attributes get the defaults
of a new message. A warning is logged when the document was decoded
with different symbol tables.

Examples:
  galaxymsbt encode scenario.yaml
  galaxymsbt encode scenario.yaml -o ScenarioData.msbt`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "output file (default: input name with .msbt)")

	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	input := args[0]
	doc, err := s.readDocument(input)
	if err != nil {
		return err
	}

	out := encodeOutput
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".msbt"
	}
	if filepath.Clean(out) == filepath.Clean(input) {
		return fmt.Errorf("output would overwrite the input: %s", input)
	}
	data, err := s.marshalDocument(doc, out, ir.FormatJSON)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, out, data); err != nil {
		return err
	}

	s.logger.Info("encoded", "file", input, "messages", len(doc.Messages), "output", out)
	return nil
}
