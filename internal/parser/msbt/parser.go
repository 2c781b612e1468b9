// Package msbt reads and writes binary message files: a header followed by
// LBL1 (labels), ATR1 (attribute blocks) and TXT2 (message text) sections.
package msbt

import (
	"fmt"
	"os"

	"github.com/roboco-io/galaxymsbt/internal/attr"
	"github.com/roboco-io/galaxymsbt/internal/binio"
	"github.com/roboco-io/galaxymsbt/internal/ir"
	"github.com/roboco-io/galaxymsbt/internal/message"
	"github.com/roboco-io/galaxymsbt/internal/parser"
	"github.com/roboco-io/galaxymsbt/internal/tag"
)

// Parser parses binary message files.
type Parser struct {
	path    string
	data    []byte
	options parser.Options

	header *FileHeader
	codec  *tag.Codec
}

// New creates a parser for the file at path.
func New(path string, opts parser.Options) (*Parser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open message file: %w", err)
	}
	p, err := NewFromBytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.path = path
	return p, nil
}

// NewFromBytes creates a parser over an in-memory file.
func NewFromBytes(data []byte, opts parser.Options) (*Parser, error) {
	header, err := ParseFileHeader(data)
	if err != nil {
		return nil, err
	}
	return &Parser{
		data:    data,
		options: opts,
		header:  header,
		codec:   tag.New(opts.Tables, header.Charset()),
	}, nil
}

// Header returns the parsed file header.
func (p *Parser) Header() *FileHeader {
	return p.header
}

// Parse implements the parser.Parser interface.
func (p *Parser) Parse() (*ir.Document, error) {
	sections, err := NewSectionReader(p.data).ReadAll()
	if err != nil {
		return nil, err
	}

	var labels, attrs, text *Section
	for _, sec := range sections {
		switch sec.Magic {
		case SectionLabels:
			labels = sec
		case SectionAttributes:
			attrs = sec
		case SectionText:
			text = sec
		}
	}
	if labels == nil || text == nil {
		return nil, fmt.Errorf("message file needs both %s and %s sections", SectionLabels, SectionText)
	}

	names, err := parseLabels(labels.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SectionLabels, err)
	}
	texts, err := p.parseText(text.Data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SectionText, err)
	}

	var blocks []attr.Block
	if attrs != nil {
		if blocks, err = p.parseAttributes(attrs.Data, len(texts)); err != nil {
			return nil, fmt.Errorf("%s: %w", SectionAttributes, err)
		}
	}

	doc := ir.NewDocument(p.codec.Charset().Name(), p.codec.Tables().Fingerprint())
	for i, t := range texts {
		label, ok := names[uint32(i)]
		if !ok {
			return nil, fmt.Errorf("message %d has no label", i)
		}
		m := &ir.Message{Label: label, Text: t}
		if blocks != nil {
			b := blocks[i]
			m.Attributes = &b
		}
		if err := doc.AddMessage(m); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (p *Parser) parseText(data []byte) ([]string, error) {
	r := binio.NewReader(data)
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if int64(count)*4 > r.Remaining() {
		return nil, fmt.Errorf("%d messages exceed section size %d", count, len(data))
	}

	offsets := make([]uint32, count)
	for i := range offsets {
		if offsets[i], err = r.ReadU32(); err != nil {
			return nil, err
		}
	}

	texts := make([]string, count)
	for i, off := range offsets {
		if err := r.Seek(int64(off)); err != nil {
			return nil, err
		}
		if texts[i], err = message.Decode(p.codec, r); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
	}
	return texts, nil
}

func (p *Parser) parseAttributes(data []byte, messages int) ([]attr.Block, error) {
	r := binio.NewReader(data)
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	size, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	if size != attr.Size {
		return nil, fmt.Errorf("unsupported attribute size %d", size)
	}
	if int(count) != messages {
		return nil, fmt.Errorf("%d attribute blocks for %d messages", count, messages)
	}
	return attr.DecodeSection(r, p.codec.Charset(), 0, int64(len(data)), int(count))
}

// Close implements the parser.Parser interface.
func (p *Parser) Close() error {
	p.data = nil
	return nil
}
