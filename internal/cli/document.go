package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roboco-io/galaxymsbt/internal/ir"
	"github.com/roboco-io/galaxymsbt/internal/parser"
	"github.com/roboco-io/galaxymsbt/internal/parser/msbt"
)

// readDocument loads a message file or a decoded document, chosen by
// extension and, for unknown extensions, by magic bytes.
func (s *session) readDocument(path string) (*ir.Document, error) {
	format := parser.DetectFormat(path)
	if format == parser.FormatUnknown {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		format, err = parser.DetectFormatFromReader(f)
		f.Close()
		if err != nil {
			return nil, err
		}
	}

	switch format {
	case parser.FormatMSBT:
		p, err := msbt.New(path, parser.Options{Tables: s.tables})
		if err != nil {
			return nil, err
		}
		defer p.Close()
		return p.Parse()

	case parser.FormatDocument:
		f, err := ir.ParseFormat(filepath.Ext(path))
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read document: %w", err)
		}
		doc, err := ir.Unmarshal(data, f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		s.checkFingerprint(path, doc)
		return doc, nil

	default:
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}
}

// checkFingerprint warns when a document was decoded with different
// symbol tables than the ones now loaded.
func (s *session) checkFingerprint(path string, doc *ir.Document) {
	if doc.Tables == "" {
		return
	}
	if fp := s.tables.Fingerprint(); doc.Tables != fp {
		s.logger.Warn("document was decoded with different symbol tables",
			"file", path,
			"document_tables", doc.Tables,
			"current_tables", fp,
		)
	}
}

// marshalDocument renders doc for path: a message file for .msbt, else the
// document format named by the extension or by fallback.
func (s *session) marshalDocument(doc *ir.Document, path string, fallback ir.Format) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".msbt" {
		return msbt.Write(doc, s.tables)
	}

	f := fallback
	if ext != "" {
		parsed, err := ir.ParseFormat(ext)
		if err != nil {
			return nil, err
		}
		f = parsed
	}
	return doc.Marshal(f)
}
