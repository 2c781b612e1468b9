package ir

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format is a serialization of a Document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// ParseFormat resolves a format name or file extension.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	}
	return "", fmt.Errorf("unsupported format: %s (supported: json, yaml, cbor)", name)
}

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("ir: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("ir: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal serializes d in format f.
func (d *Document) Marshal(f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatYAML:
		return yaml.Marshal(d)
	case FormatCBOR:
		return cborEnc.Marshal(d)
	}
	return nil, fmt.Errorf("unsupported format: %s", f)
}

// Unmarshal parses a document serialized in format f.
func Unmarshal(data []byte, f Format) (*Document, error) {
	var doc Document
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatCBOR:
		err = cborDec.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s document: %w", f, err)
	}
	if doc.Version == "" {
		return nil, fmt.Errorf("failed to parse %s document: missing version", f)
	}
	return &doc, nil
}
