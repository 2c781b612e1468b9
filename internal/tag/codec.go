package tag

import (
	"github.com/roboco-io/galaxymsbt/internal/binio"
	"github.com/roboco-io/galaxymsbt/internal/symbols"
)

// Codec converts tags using one set of name tables and one charset.
// A Codec holds no mutable state and is safe for concurrent use as long
// as the tables are not modified.
type Codec struct {
	tables  *symbols.Tables
	charset *binio.Charset
}

// New creates a codec. A nil tables or charset selects the built-in
// tables or UTF-16BE respectively.
func New(tables *symbols.Tables, charset *binio.Charset) *Codec {
	if tables == nil {
		tables = symbols.Default()
	}
	if charset == nil {
		charset = binio.UTF16BE
	}
	return &Codec{
		tables:  tables,
		charset: charset,
	}
}

// Tables returns the codec's name tables.
func (c *Codec) Tables() *symbols.Tables {
	return c.tables
}

// Charset returns the codec's text charset.
func (c *Codec) Charset() *binio.Charset {
	return c.charset
}
