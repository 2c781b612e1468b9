package msbt

import (
	"fmt"

	"github.com/roboco-io/galaxymsbt/internal/attr"
	"github.com/roboco-io/galaxymsbt/internal/binio"
	"github.com/roboco-io/galaxymsbt/internal/ir"
	"github.com/roboco-io/galaxymsbt/internal/message"
	"github.com/roboco-io/galaxymsbt/internal/symbols"
	"github.com/roboco-io/galaxymsbt/internal/tag"
)

// Write encodes doc as a message file. Messages keep their order;
// messages without attributes get the default block.
func Write(doc *ir.Document, tables *symbols.Tables) ([]byte, error) {
	if doc.Charset != "" {
		cs, err := binio.LookupCharset(doc.Charset)
		if err != nil {
			return nil, err
		}
		if cs != binio.UTF16BE {
			return nil, fmt.Errorf("message files can only be written as %s, document is %s", binio.UTF16BE.Name(), cs.Name())
		}
	}
	codec := tag.New(tables, binio.UTF16BE)

	labels := make([]string, len(doc.Messages))
	blocks := make([]attr.Block, len(doc.Messages))
	seen := make(map[string]bool, len(doc.Messages))
	for i, m := range doc.Messages {
		if seen[m.Label] {
			return nil, fmt.Errorf("duplicate label: %s", m.Label)
		}
		seen[m.Label] = true
		labels[i] = m.Label
		blocks[i] = attr.Default()
		if m.Attributes != nil {
			blocks[i] = *m.Attributes
		}
	}

	lbl, err := buildLabels(labels, DefaultBuckets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SectionLabels, err)
	}
	atr, err := buildAttributes(codec.Charset(), blocks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SectionAttributes, err)
	}
	txt, err := buildText(codec, doc.Messages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", SectionText, err)
	}

	w := binio.NewWriter()
	if err := writeFileHeader(w, 3, 0); err != nil {
		return nil, err
	}
	for _, sec := range []struct {
		magic string
		data  []byte
	}{
		{SectionLabels, lbl},
		{SectionAttributes, atr},
		{SectionText, txt},
	} {
		if err := writeSection(w, sec.magic, sec.data); err != nil {
			return nil, err
		}
	}

	size := w.Size()
	if err := w.Seek(0); err != nil {
		return nil, err
	}
	if err := writeFileHeader(w, 3, uint32(size)); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func buildAttributes(cs *binio.Charset, blocks []attr.Block) ([]byte, error) {
	w := binio.NewWriter()
	if err := w.WriteU32(uint32(len(blocks))); err != nil {
		return nil, err
	}
	if err := w.WriteU32(attr.Size); err != nil {
		return nil, err
	}
	if err := attr.EncodeSection(w, cs, blocks); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func buildText(codec *tag.Codec, messages []*ir.Message) ([]byte, error) {
	w := binio.NewWriter()
	if err := w.WriteU32(uint32(len(messages))); err != nil {
		return nil, err
	}
	if err := w.Write(make([]byte, 4*len(messages))); err != nil {
		return nil, err
	}

	for i, m := range messages {
		offset := w.Size()
		if err := w.Seek(int64(4 + 4*i)); err != nil {
			return nil, err
		}
		if err := w.WriteU32(uint32(offset)); err != nil {
			return nil, err
		}
		if err := w.SeekEnd(); err != nil {
			return nil, err
		}
		if err := message.Encode(codec, w, m.Text); err != nil {
			return nil, fmt.Errorf("message %s: %w", m.Label, err)
		}
	}
	return w.Bytes(), nil
}
