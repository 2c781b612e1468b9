package tag

import (
	"encoding/hex"
	"fmt"

	"github.com/roboco-io/galaxymsbt/internal/binio"
	"github.com/roboco-io/galaxymsbt/internal/symbols"
)

// header is a parsed tag record header.
type header struct {
	offset int64
	group  uint16
	tag    uint16
	size   uint16
}

func (h header) errorf(format string, args ...any) *FormatError {
	return &FormatError{Offset: h.offset, Msg: fmt.Sprintf(format, args...)}
}

func (h header) wrap(err error, format string, args ...any) *FormatError {
	return &FormatError{Offset: h.offset, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (h header) expectSize(what string, n uint16) error {
	if h.size != n {
		return h.errorf("%s tag length should be %d, found %d", what, n, h.size)
	}
	return nil
}

// decodeFunc decodes the payload of one group. ok is false when the tag id
// is not a known variant of the group; the record is then dumped raw.
type decodeFunc func(c *Codec, r *binio.Reader, h header) (text string, ok bool, err error)

var decoders = map[uint16]decodeFunc{
	GroupSystem:   decodeSystem,
	GroupDisplay:  decodeDisplay,
	GroupSound:    decodeSound,
	GroupPicture:  decodePicture,
	GroupFontSize: decodeFontSize,
	GroupLocalize: decodeLocalize,
	GroupNumber:   decodeNumber,
	GroupString:   decodeString,
	GroupRaceTime: decodeRaceTime,
	GroupNumFont:  decodeNumberFont,
}

// Decode reads one tag record (header and payload) at the reader's
// position and returns its bracket notation. The escape marker preceding
// the record must already have been consumed. On success the reader is
// positioned just past the record.
func (c *Codec) Decode(r *binio.Reader) (string, error) {
	h := header{offset: r.Tell()}

	var err error
	if h.group, err = r.ReadU16(); err == nil {
		if h.tag, err = r.ReadU16(); err == nil {
			h.size, err = r.ReadU16()
		}
	}
	if err != nil {
		return "", h.wrap(err, "incomplete tag header")
	}

	if decode, ok := decoders[h.group]; ok {
		text, ok, err := decode(c, r, h)
		if err != nil {
			return "", err
		}
		if ok {
			return text, nil
		}
	}

	data, err := r.ReadBytes(int(h.size))
	if err != nil {
		return "", h.wrap(err, "incomplete tag data")
	}
	return fmt.Sprintf("[%d:%d;%s]", h.group, h.tag, hex.EncodeToString(data)), nil
}

func decodeSystem(c *Codec, r *binio.Reader, h header) (string, bool, error) {
	switch h.tag {
	case TagRuby:
		if h.size < 4 {
			return "", false, h.errorf("Minimum Ruby tag length should be 4, found %d", h.size)
		}
		kanjiLen, err := r.ReadU16()
		if err != nil {
			return "", false, h.wrap(err, "incomplete Ruby tag")
		}
		furiganaLen, err := r.ReadU16()
		if err != nil {
			return "", false, h.wrap(err, "incomplete Ruby tag")
		}
		if want := 4 + int(kanjiLen) + int(furiganaLen); want != int(h.size) {
			return "", false, h.errorf("Ruby tag length should be %d, found %d", want, h.size)
		}

		furigana, err := c.readText(r, int(furiganaLen))
		if err != nil {
			return "", false, h.wrap(err, "Couldn't decode ruby characters")
		}
		kanji, err := c.readText(r, int(kanjiLen))
		if err != nil {
			return "", false, h.wrap(err, "Couldn't decode ruby characters")
		}
		return fmt.Sprintf("[ruby:%s;%s]", kanji, furigana), true, nil

	case TagColor:
		if err := h.expectSize("Color", 2); err != nil {
			return "", false, err
		}
		id, err := r.ReadU16()
		if err != nil {
			return "", false, h.wrap(err, "incomplete Color tag")
		}
		if id == DefaultColorID {
			return "[defcolor]", true, nil
		}
		name, ok := symbols.Name(c.tables.FontColors, int(id))
		if !ok {
			return "", false, h.errorf("Illegal Color tag color ID: %d", id)
		}
		return fmt.Sprintf("[color:%s]", name), true, nil
	}
	return "", false, nil
}

func decodeDisplay(c *Codec, r *binio.Reader, h header) (string, bool, error) {
	switch h.tag {
	case TagWait:
		if err := h.expectSize("Wait", 2); err != nil {
			return "", false, err
		}
		frames, err := r.ReadU16()
		if err != nil {
			return "", false, h.wrap(err, "incomplete Wait tag")
		}
		return fmt.Sprintf("[wait:%d]", frames), true, nil

	case TagPageBreak:
		if err := h.expectSize("Page break", 0); err != nil {
			return "", false, err
		}
		return "[pagebreak]", true, nil

	case TagYCenter:
		if err := h.expectSize("Offset page", 0); err != nil {
			return "", false, err
		}
		return "[ycenter]", true, nil

	case TagXCenter:
		if err := h.expectSize("Center page", 0); err != nil {
			return "", false, err
		}
		return "[xcenter]", true, nil
	}
	return "", false, nil
}

func decodeSound(c *Codec, r *binio.Reader, h header) (string, bool, error) {
	if h.tag != 0 {
		return "", false, nil
	}
	name, err := c.readPrefixedText(r, h, "Sound")
	if err != nil {
		return "", false, err
	}
	return fmt.Sprintf("[sound:%s]", name), true, nil
}

func decodePicture(c *Codec, r *binio.Reader, h header) (string, bool, error) {
	if err := h.expectSize("Picture group", 2); err != nil {
		return "", false, err
	}
	// The payload repeats the picture code; the tag id alone selects the
	// picture and the code is recomputed from the table on encode.
	if _, err := r.ReadU16(); err != nil {
		return "", false, h.wrap(err, "incomplete Picture tag")
	}
	p, ok := c.tables.Picture(int(h.tag))
	if !ok {
		return "", false, h.errorf("Illegal Picture group tag ID: %d", h.tag)
	}
	return fmt.Sprintf("[icon:%s]", p.Name), true, nil
}

func decodeFontSize(c *Codec, r *binio.Reader, h header) (string, bool, error) {
	if err := h.expectSize("FontSize group", 0); err != nil {
		return "", false, err
	}
	name, ok := symbols.Name(c.tables.FontSizes, int(h.tag))
	if !ok {
		return "", false, h.errorf("Illegal FontSize group tag ID: %d", h.tag)
	}
	return fmt.Sprintf("[size:%s]", name), true, nil
}

func decodeLocalize(c *Codec, r *binio.Reader, h header) (string, bool, error) {
	if h.tag != 0 {
		return "", false, nil
	}
	if err := h.expectSize("Localize group", 2); err != nil {
		return "", false, err
	}
	preset, err := r.ReadU8()
	if err != nil {
		return "", false, h.wrap(err, "incomplete Localize tag")
	}
	if _, err := r.ReadU8(); err != nil {
		return "", false, h.wrap(err, "incomplete Localize tag")
	}
	return fmt.Sprintf("[player:%d]", preset), true, nil
}

func decodeNumber(c *Codec, r *binio.Reader, h header) (string, bool, error) {
	if err := h.expectSize("Number group", 8); err != nil {
		return "", false, err
	}
	def, err := r.ReadS32()
	if err != nil {
		return "", false, h.wrap(err, "incomplete Number tag")
	}
	arg, err := r.ReadU32()
	if err != nil {
		return "", false, h.wrap(err, "incomplete Number tag")
	}
	return fmt.Sprintf("[intvar:%d;%d;%d]", h.tag, arg, def), true, nil
}

func decodeString(c *Codec, r *binio.Reader, h header) (string, bool, error) {
	if err := h.expectSize("String group", 8); err != nil {
		return "", false, err
	}
	ptr, err := r.ReadU32()
	if err != nil {
		return "", false, h.wrap(err, "incomplete String tag")
	}
	arg, err := r.ReadU32()
	if err != nil {
		return "", false, h.wrap(err, "incomplete String tag")
	}
	return fmt.Sprintf("[stringvar:%d;%d;0x%08X]", h.tag, arg, ptr), true, nil
}

func decodeRaceTime(c *Codec, r *binio.Reader, h header) (string, bool, error) {
	if err := h.expectSize("RaceTime group", 0); err != nil {
		return "", false, err
	}
	name, ok := symbols.Name(c.tables.RaceTimes, int(h.tag))
	if !ok {
		return "", false, h.errorf("Illegal RaceTime group tag ID: %d", h.tag)
	}
	return fmt.Sprintf("[race:%s]", name), true, nil
}

func decodeNumberFont(c *Codec, r *binio.Reader, h header) (string, bool, error) {
	if h.tag != 0 {
		return "", false, nil
	}
	text, err := c.readPrefixedText(r, h, "NumberFont")
	if err != nil {
		return "", false, err
	}
	return fmt.Sprintf("[numberfont:%s]", text), true, nil
}

// readPrefixedText reads a u16 byte length followed by that many bytes of
// charset text. The prefix and text must fill the payload exactly.
func (c *Codec) readPrefixedText(r *binio.Reader, h header, what string) (string, error) {
	if h.size < 2 {
		return "", h.errorf("Minimum %s tag length should be 2, found %d", what, h.size)
	}
	n, err := r.ReadU16()
	if err != nil {
		return "", h.wrap(err, "incomplete %s tag", what)
	}
	if want := 2 + int(n); want != int(h.size) {
		return "", h.errorf("%s tag length should be %d, found %d", what, want, h.size)
	}
	text, err := c.readText(r, int(n))
	if err != nil {
		return "", h.wrap(err, "Couldn't decode %s tag text", what)
	}
	return text, nil
}

func (c *Codec) readText(r *binio.Reader, n int) (string, error) {
	raw, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return c.charset.Decode(raw)
}
