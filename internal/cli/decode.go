package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/roboco-io/galaxymsbt/internal/ir"
)

var (
	decodeOutput string
	decodeFormat string
	decodeSort   bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode <file.msbt>...",
	Short: "Decode message files to JSON, YAML or CBOR",
	Long: `Decode one or more message files. Files are decoded concurrently.

With one input the document goes to stdout or to --output. With several,
--output names a directory (default: next to each input) and each
document is written as <name>.<format>.

Examples:
  galaxymsbt decode ScenarioData.msbt
  galaxymsbt decode ScenarioData.msbt -o scenario.yaml
  galaxymsbt decode *.msbt -f yaml -o decoded/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "", "output file or directory (default: stdout)")
	decodeCmd.Flags().StringVarP(&decodeFormat, "format", "f", "", "output format (json, yaml, cbor; default: from --output or json)")
	decodeCmd.Flags().BoolVar(&decodeSort, "sort", false, "sort messages by label")

	rootCmd.AddCommand(decodeCmd)
}

type decodeResult struct {
	doc *ir.Document
	err error
}

// decodeFiles reads every path concurrently. Results keep input order.
func (s *session) decodeFiles(paths []string) ([]*ir.Document, error) {
	results := make([]decodeResult, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := s.readDocument(path)
			results[i] = decodeResult{doc: doc, err: err}
		}()
	}
	wg.Wait()

	docs := make([]*ir.Document, len(paths))
	for i, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		docs[i] = r.doc
	}
	return docs, nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	format := ir.FormatJSON
	switch {
	case decodeFormat != "":
		if format, err = ir.ParseFormat(decodeFormat); err != nil {
			return err
		}
	case len(args) == 1 && filepath.Ext(decodeOutput) != "":
		if format, err = ir.ParseFormat(filepath.Ext(decodeOutput)); err != nil {
			return err
		}
	}

	docs, err := s.decodeFiles(args)
	if err != nil {
		return err
	}
	if len(args) > 1 && decodeOutput != "" {
		if err := os.MkdirAll(decodeOutput, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for i, doc := range docs {
		if decodeSort {
			doc.SortMessages()
		}
		data, err := doc.Marshal(format)
		if err != nil {
			return fmt.Errorf("%s: %w", args[i], err)
		}

		out := decodeOutput
		if len(args) > 1 {
			out = outputPath(args[i], decodeOutput, format)
		}
		if err := writeOutput(cmd, out, data); err != nil {
			return err
		}
		s.logger.Info("decoded", "file", args[i], "messages", len(doc.Messages), "output", firstNonEmpty(out, "(stdout)"))
	}
	return nil
}

// outputPath names the document for input inside dir, or next to input
// when dir is empty.
func outputPath(input, dir string, format ir.Format) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + "." + string(format)
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}
