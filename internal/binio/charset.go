package binio

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Charset is a 16-bit text encoding used for message strings.
// Conversion is strict: malformed input is an error rather than being
// replaced with U+FFFD.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// Supported charsets.
var (
	UTF16BE = &Charset{name: "utf-16-be", enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}
	UTF16LE = &Charset{name: "utf-16-le", enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}
)

var charsetAliases = map[string]*Charset{
	"utf-16-be": UTF16BE,
	"utf-16be":  UTF16BE,
	"utf16be":   UTF16BE,
	"utf-16-le": UTF16LE,
	"utf-16le":  UTF16LE,
	"utf16le":   UTF16LE,
}

// LookupCharset returns the charset registered under name (case-insensitive).
func LookupCharset(name string) (*Charset, error) {
	cs, ok := charsetAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unsupported charset: %s (supported: utf-16-be, utf-16-le)", name)
	}
	return cs, nil
}

// Name returns the canonical charset name.
func (c *Charset) Name() string {
	return c.name
}

// UnitSize returns the size of one character unit in bytes.
func (c *Charset) UnitSize() int {
	return 2
}

// Encode converts s to the charset.
func (c *Charset) Encode(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%s: string is not valid UTF-8", c.name)
	}
	out, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%s: encode: %w", c.name, err)
	}
	return out, nil
}

// Decode converts charset bytes to a string. Odd lengths and unpaired
// surrogates are rejected.
func (c *Charset) Decode(b []byte) (string, error) {
	if len(b)%c.UnitSize() != 0 {
		return "", fmt.Errorf("%s: odd byte length %d", c.name, len(b))
	}
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%s: decode: %w", c.name, err)
	}

	// The x/text decoder substitutes U+FFFD for unpaired surrogates.
	// Re-encoding exposes the substitution.
	back, err := c.enc.NewEncoder().Bytes(out)
	if err != nil || !bytes.Equal(back, b) {
		return "", fmt.Errorf("%s: invalid code unit sequence", c.name)
	}
	return string(out), nil
}
