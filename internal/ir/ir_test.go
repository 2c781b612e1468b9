package ir

import (
	"encoding/json"
	"testing"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument("utf-16-be", "abc")

	if doc.Version != "1.0" {
		t.Errorf("expected version 1.0, got %s", doc.Version)
	}
	if doc.Charset != "utf-16-be" {
		t.Errorf("expected charset utf-16-be, got %s", doc.Charset)
	}
	if len(doc.Messages) != 0 {
		t.Errorf("expected no messages, got %d", len(doc.Messages))
	}
}

func TestNewMessage(t *testing.T) {
	m := NewMessage("ScenarioName_Galaxy", "Hello")

	if m.Attributes == nil {
		t.Fatal("expected default attributes")
	}
	if m.Attributes.SoundID != 1 || m.Attributes.MsgLinkID != 255 {
		t.Errorf("unexpected attributes: %+v", *m.Attributes)
	}
}

func TestDocument_AddMessage(t *testing.T) {
	doc := NewDocument("utf-16-be", "")

	if err := doc.AddMessage(NewMessage("a", "1")); err != nil {
		t.Fatalf("AddMessage() error = %v", err)
	}
	if err := doc.AddMessage(NewMessage("b", "2")); err != nil {
		t.Fatalf("AddMessage() error = %v", err)
	}
	if err := doc.AddMessage(NewMessage("a", "3")); err == nil {
		t.Error("expected duplicate label error")
	}

	if len(doc.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(doc.Messages))
	}
	if m := doc.Find("b"); m == nil || m.Text != "2" {
		t.Errorf("Find(b) = %+v", m)
	}
	if m := doc.Find("c"); m != nil {
		t.Errorf("Find(c) = %+v, want nil", m)
	}
}

func TestDocument_SortMessages(t *testing.T) {
	doc := NewDocument("utf-16-be", "")
	for _, label := range []string{"msg_10", "msg_2", "Intro", "msg_1", "msg_02"} {
		doc.Messages = append(doc.Messages, NewMessage(label, ""))
	}

	doc.SortMessages()

	want := []string{"Intro", "msg_1", "msg_02", "msg_2", "msg_10"}
	for i, m := range doc.Messages {
		if m.Label != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], m.Label)
		}
	}
}

func TestNaturalCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "a", 0},
		{"a2", "a10", -1},
		{"a10", "a2", 1},
		{"a", "a1", -1},
		{"10", "9", 1},
		{"x01", "x1", -1},
		{"Galaxy_2_b", "Galaxy_2_a", 1},
		{"", "", 0},
		{"", "a", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := NaturalCompare(tt.a, tt.b); got != tt.want {
				t.Errorf("NaturalCompare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func newTestDocument() *Document {
	doc := NewDocument("utf-16-be", "0123456789abcdef01234567")
	m := NewMessage("Greeting", "Hi [color:red]Mario[defcolor]!")
	m.Attributes.Comment = "first"
	doc.Messages = append(doc.Messages, m, &Message{Label: "Bare", Text: "[pagebreak]"})
	return doc
}

func TestDocument_JSONSerialization(t *testing.T) {
	doc := newTestDocument()

	data, err := doc.Marshal(FormatJSON)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if raw["charset"] != "utf-16-be" {
		t.Errorf("charset mismatch: got %v", raw["charset"])
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML, FormatCBOR} {
		t.Run(string(f), func(t *testing.T) {
			doc := newTestDocument()

			data, err := doc.Marshal(f)
			if err != nil {
				t.Fatalf("failed to marshal: %v", err)
			}
			restored, err := Unmarshal(data, f)
			if err != nil {
				t.Fatalf("failed to unmarshal: %v", err)
			}

			if restored.Version != doc.Version || restored.Tables != doc.Tables {
				t.Errorf("header mismatch: got %+v", restored)
			}
			if len(restored.Messages) != 2 {
				t.Fatalf("expected 2 messages, got %d", len(restored.Messages))
			}
			if restored.Messages[0].Text != doc.Messages[0].Text {
				t.Errorf("text mismatch: expected %s, got %s", doc.Messages[0].Text, restored.Messages[0].Text)
			}
			if *restored.Messages[0].Attributes != *doc.Messages[0].Attributes {
				t.Errorf("attributes mismatch: got %+v", *restored.Messages[0].Attributes)
			}
			if restored.Messages[1].Attributes != nil {
				t.Errorf("expected no attributes, got %+v", *restored.Messages[1].Attributes)
			}
		})
	}
}

func TestUnmarshal_Errors(t *testing.T) {
	if _, err := Unmarshal([]byte("{"), FormatJSON); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := Unmarshal([]byte(`{"messages": []}`), FormatJSON); err == nil {
		t.Error("expected error for missing version")
	}
	if _, err := Unmarshal([]byte("{}"), Format("xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"json":  FormatJSON,
		".yml":  FormatYAML,
		"YAML":  FormatYAML,
		"cbor":  FormatCBOR,
		".json": FormatJSON,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}
