// Package parser provides the parser interface and format detection for
// message files.
package parser

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/roboco-io/galaxymsbt/internal/ir"
	"github.com/roboco-io/galaxymsbt/internal/symbols"
)

// Parser is the interface for message file parsers.
type Parser interface {
	// Parse reads the file and returns its messages.
	Parse() (*ir.Document, error)

	// Close releases any resources held by the parser.
	Close() error
}

// Format represents an input file format.
type Format int

const (
	FormatUnknown  Format = iota
	FormatMSBT            // binary message file
	FormatDocument        // decoded document (JSON, YAML or CBOR)
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatMSBT:
		return "msbt"
	case FormatDocument:
		return "document"
	default:
		return "unknown"
	}
}

// DetectFormat detects the file format from the file path.
func DetectFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".msbt":
		return FormatMSBT
	case ".json", ".yaml", ".yml", ".cbor":
		return FormatDocument
	default:
		return FormatUnknown
	}
}

// msbtMagic starts every binary message file.
var msbtMagic = []byte("MsgStdBn")

// DetectFormatFromReader detects the format by reading magic bytes.
func DetectFormatFromReader(r io.ReaderAt) (Format, error) {
	buf := make([]byte, len(msbtMagic))
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return FormatUnknown, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if n < len(msbtMagic) {
		return FormatUnknown, fmt.Errorf("file too small to detect format")
	}

	if bytes.Equal(buf, msbtMagic) {
		return FormatMSBT, nil
	}
	return FormatUnknown, nil
}

// Options contains parser configuration options.
type Options struct {
	// Tables resolves tag names. Nil selects the built-in tables.
	Tables *symbols.Tables
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		Tables: symbols.Default(),
	}
}
