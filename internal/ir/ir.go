// Package ir defines the editable form of a message file: an ordered list
// of labelled messages with their text in tag notation and their attribute
// blocks. It is the exchange format between the binary codecs, the CLI and
// translation providers.
package ir

import (
	"fmt"
	"slices"
)

// CurrentVersion is the document format version written by NewDocument.
const CurrentVersion = "1.0"

// Document is a decoded message file.
type Document struct {
	Version string `json:"version" yaml:"version"`
	// Charset is the text encoding the messages were decoded with.
	Charset string `json:"charset" yaml:"charset"`
	// Tables is the fingerprint of the name tables used for tag notation.
	// Encoding with different tables may change the meaning of names.
	Tables   string     `json:"tables" yaml:"tables"`
	Messages []*Message `json:"messages" yaml:"messages"`
}

// NewDocument creates an empty document with the current version.
func NewDocument(charset, tables string) *Document {
	return &Document{
		Version:  CurrentVersion,
		Charset:  charset,
		Tables:   tables,
		Messages: make([]*Message, 0),
	}
}

// AddMessage appends m. Labels must be unique within a document.
func (d *Document) AddMessage(m *Message) error {
	if d.Find(m.Label) != nil {
		return fmt.Errorf("duplicate message label %q", m.Label)
	}
	d.Messages = append(d.Messages, m)
	return nil
}

// Find returns the message with the given label, or nil.
func (d *Document) Find(label string) *Message {
	for _, m := range d.Messages {
		if m.Label == label {
			return m
		}
	}
	return nil
}

// SortMessages orders messages by label in natural order, so "msg_2"
// sorts before "msg_10". The sort is stable.
func (d *Document) SortMessages() {
	slices.SortStableFunc(d.Messages, func(a, b *Message) int {
		return NaturalCompare(a.Label, b.Label)
	})
}
