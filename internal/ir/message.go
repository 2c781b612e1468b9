package ir

import (
	"github.com/roboco-io/galaxymsbt/internal/attr"
)

// Message is one labelled entry of a document.
type Message struct {
	Label string `json:"label" yaml:"label"`
	// Text is the message text in tag notation, e.g. "Hi [color:red]there".
	Text       string      `json:"text" yaml:"text"`
	Attributes *attr.Block `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// NewMessage creates a message with default attributes.
func NewMessage(label, text string) *Message {
	a := attr.Default()
	return &Message{
		Label:      label,
		Text:       text,
		Attributes: &a,
	}
}
