// Package message converts a message's text stream between its binary
// form (charset text interleaved with escape-marked tag records, NUL
// terminated) and the editable notation, e.g. "Hello [color:red]Mario".
//
// In notation, a literal '[' is written "\[" and a literal '\' is "\\".
package message

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/roboco-io/galaxymsbt/internal/binio"
	"github.com/roboco-io/galaxymsbt/internal/tag"
)

// Token is one piece of parsed notation: either literal text or the inner
// text of a tag (without brackets).
type Token struct {
	Text string
	Tag  bool
}

// Decode reads a message text stream at the reader's position up to and
// including the NUL terminator, or to the end of the data if there is
// none.
func Decode(c *tag.Codec, r *binio.Reader) (string, error) {
	cs := c.Charset()
	unit := cs.UnitSize()
	marker, err := cs.Encode(tag.EscapeMarker)
	if err != nil {
		return "", err
	}

	var (
		sb      strings.Builder
		literal []byte
		runAt   = r.Tell()
	)
	flush := func() error {
		if len(literal) == 0 {
			return nil
		}
		s, err := cs.Decode(literal)
		if err != nil {
			return &tag.FormatError{Offset: runAt, Msg: "Couldn't decode message text", Err: err}
		}
		sb.WriteString(Escape(s))
		literal = literal[:0]
		return nil
	}

	for r.Remaining() > 0 {
		pos := r.Tell()
		ch, err := r.ReadBytes(unit)
		if err != nil {
			return "", &tag.FormatError{Offset: pos, Msg: "truncated character at end of message", Err: err}
		}
		if bytes.Equal(ch, make([]byte, unit)) {
			break
		}
		if !bytes.Equal(ch, marker) {
			if len(literal) == 0 {
				runAt = pos
			}
			literal = append(literal, ch...)
			continue
		}

		if err := flush(); err != nil {
			return "", err
		}
		text, err := c.Decode(r)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}

	if err := flush(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// DecodeBytes decodes a message text stream held in data.
func DecodeBytes(c *tag.Codec, data []byte) (string, error) {
	return Decode(c, binio.NewReader(data))
}

// Encode writes text as a message stream at the writer's position,
// followed by a NUL terminator.
func Encode(c *tag.Codec, w *binio.Writer, text string) error {
	tokens, err := Parse(text)
	if err != nil {
		return err
	}

	cs := c.Charset()
	for _, tok := range tokens {
		if tok.Tag {
			if err := c.Encode(w, tok.Text); err != nil {
				return err
			}
			continue
		}
		b, err := cs.Encode(tok.Text)
		if err != nil {
			return fmt.Errorf("encode message text: %w", err)
		}
		if err := w.Write(b); err != nil {
			return err
		}
	}

	nul, err := cs.Encode("\x00")
	if err != nil {
		return err
	}
	return w.Write(nul)
}

// EncodeBytes encodes text into a new buffer.
func EncodeBytes(c *tag.Codec, text string) ([]byte, error) {
	w := binio.NewWriter()
	if err := Encode(c, w, text); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Parse splits notation into literal runs and tags. Escapes are resolved
// in the literal runs.
func Parse(text string) ([]Token, error) {
	var (
		tokens []Token
		sb     strings.Builder
	)
	flush := func() {
		if sb.Len() > 0 {
			tokens = append(tokens, Token{Text: sb.String()})
			sb.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		switch ch := text[i]; ch {
		case '\\':
			if i+1 < len(text) && (text[i+1] == '[' || text[i+1] == '\\') {
				i++
			}
			sb.WriteByte(text[i])
		case '[':
			end := strings.IndexByte(text[i+1:], ']')
			if end < 0 {
				return nil, &tag.SyntaxError{Tag: text[i+1:], Msg: "Unterminated tag"}
			}
			flush()
			tokens = append(tokens, Token{Text: text[i+1 : i+1+end], Tag: true})
			i += end + 1
		case tag.EscapeMarker[0]:
			return nil, &tag.SyntaxError{Tag: text, Msg: fmt.Sprintf("Raw escape character at position %d", i)}
		case 0:
			return nil, &tag.SyntaxError{Tag: text, Msg: fmt.Sprintf("NUL character at position %d", i)}
		default:
			sb.WriteByte(ch)
		}
	}
	flush()
	return tokens, nil
}

// Tags returns the tags of text in order of appearance, without brackets.
func Tags(text string) ([]string, error) {
	tokens, err := Parse(text)
	if err != nil {
		return nil, err
	}
	var tags []string
	for _, tok := range tokens {
		if tok.Tag {
			tags = append(tags, tok.Text)
		}
	}
	return tags, nil
}

var escaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`)

// Escape quotes the characters of s that have a meaning in notation.
func Escape(s string) string {
	return escaper.Replace(s)
}
