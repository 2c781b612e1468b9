package tag

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/roboco-io/galaxymsbt/internal/binio"
	"github.com/roboco-io/galaxymsbt/internal/symbols"
)

// record is an encoded tag ready to be written.
type record struct {
	group   uint16
	tag     uint16
	payload []byte
}

type buildFunc func(c *Codec, name string, args []string, text string) (record, error)

type encoder struct {
	arity int
	build buildFunc
}

var encoders = map[string]encoder{
	"ruby":       {2, encodeRuby},
	"defcolor":   {0, fixed(GroupSystem, TagColor, 0xFF, 0xFF)},
	"color":      {1, encodeColor},
	"wait":       {1, encodeWait},
	"pagebreak":  {0, fixed(GroupDisplay, TagPageBreak)},
	"ycenter":    {0, fixed(GroupDisplay, TagYCenter)},
	"xcenter":    {0, fixed(GroupDisplay, TagXCenter)},
	"sound":      {1, prefixedText(GroupSound, "sound name")},
	"icon":       {1, encodeIcon},
	"size":       {1, encodeSize},
	"player":     {1, encodePlayer},
	"intvar":     {3, encodeIntVar},
	"stringvar":  {3, encodeStringVar},
	"race":       {1, encodeRace},
	"numberfont": {1, prefixedText(GroupNumFont, "number font text")},
}

// rawEncoder handles [group:tag;hexdata] for numeric names.
var rawEncoder = encoder{2, encodeRaw}

// Encode parses the bracket notation of one tag (without the brackets)
// and writes the escape marker, header and payload at the writer's
// position. Nothing is written if the tag is malformed.
func (c *Codec) Encode(w *binio.Writer, text string) error {
	rec, err := c.parse(text)
	if err != nil {
		return err
	}

	marker, err := c.charset.Encode(EscapeMarker)
	if err != nil {
		return err
	}

	buf := make([]byte, 0, len(marker)+HeaderSize+len(rec.payload))
	buf = append(buf, marker...)
	buf = binary.BigEndian.AppendUint16(buf, rec.group)
	buf = binary.BigEndian.AppendUint16(buf, rec.tag)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(rec.payload)))
	buf = append(buf, rec.payload...)
	return w.Write(buf)
}

// Marshal encodes one tag into a new buffer, escape marker included.
func (c *Codec) Marshal(text string) ([]byte, error) {
	w := binio.NewWriter()
	if err := c.Encode(w, text); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (c *Codec) parse(text string) (record, error) {
	name, args := Split(text)
	if name == "" {
		return record{}, syntaxErrorf(text, "Empty tag found")
	}

	enc, ok := encoders[name]
	if !ok {
		if _, err := strconv.ParseInt(name, 0, 64); err != nil {
			return record{}, syntaxErrorf(text, "Unknown tag '%s'", name)
		}
		enc = rawEncoder
	}
	if len(args) != enc.arity {
		return record{}, syntaxErrorf(text, "Unexpected attributes count for tag '%s'. Expected %d, found %d",
			name, enc.arity, len(args))
	}

	rec, err := enc.build(c, name, args, text)
	if err != nil {
		return record{}, err
	}
	if len(rec.payload) > math.MaxUint16 {
		return record{}, syntaxErrorf(text, "Tag data of %d bytes exceeds the maximum of %d", len(rec.payload), math.MaxUint16)
	}
	return rec, nil
}

// Split separates a tag's name from its ';'-separated arguments.
// A tag without ':' has no arguments.
func Split(text string) (name string, args []string) {
	name, rest, hasArgs := strings.Cut(text, ":")
	name = strings.TrimSpace(name)
	if !hasArgs {
		return name, nil
	}
	return name, strings.Split(strings.TrimSpace(rest), ";")
}

func fixed(group, tag uint16, payload ...byte) buildFunc {
	return func(c *Codec, name string, args []string, text string) (record, error) {
		return record{group: group, tag: tag, payload: payload}, nil
	}
}

func prefixedText(group uint16, what string) buildFunc {
	return func(c *Codec, name string, args []string, text string) (record, error) {
		encoded, err := c.charset.Encode(args[0])
		if err != nil {
			return record{}, &SyntaxError{Tag: text, Msg: "Couldn't encode " + what, Err: err}
		}
		if len(encoded) > math.MaxUint16-2 {
			return record{}, syntaxErrorf(text, "The %s is too long", what)
		}
		payload := binary.BigEndian.AppendUint16(nil, uint16(len(encoded)))
		return record{group: group, tag: 0, payload: append(payload, encoded...)}, nil
	}
}

func encodeRuby(c *Codec, name string, args []string, text string) (record, error) {
	kanji, err := c.charset.Encode(args[0])
	if err != nil {
		return record{}, &SyntaxError{Tag: text, Msg: "Couldn't write ruby tag", Err: err}
	}
	furigana, err := c.charset.Encode(args[1])
	if err != nil {
		return record{}, &SyntaxError{Tag: text, Msg: "Couldn't write ruby tag", Err: err}
	}
	if 4+len(kanji)+len(furigana) > math.MaxUint16 {
		return record{}, syntaxErrorf(text, "Ruby text is too long")
	}

	payload := make([]byte, 0, 4+len(kanji)+len(furigana))
	payload = binary.BigEndian.AppendUint16(payload, uint16(len(kanji)))
	payload = binary.BigEndian.AppendUint16(payload, uint16(len(furigana)))
	payload = append(payload, furigana...)
	payload = append(payload, kanji...)
	return record{group: GroupSystem, tag: TagRuby, payload: payload}, nil
}

func encodeColor(c *Codec, name string, args []string, text string) (record, error) {
	id, ok := symbols.Index(c.tables.FontColors, args[0])
	if !ok {
		return record{}, syntaxErrorf(text, "Invalid text color '%s'", args[0])
	}
	return record{
		group:   GroupSystem,
		tag:     TagColor,
		payload: binary.BigEndian.AppendUint16(nil, uint16(id)),
	}, nil
}

func encodeWait(c *Codec, name string, args []string, text string) (record, error) {
	frames, err := parseU16(args[0], text)
	if err != nil {
		return record{}, err
	}
	return record{
		group:   GroupDisplay,
		tag:     TagWait,
		payload: binary.BigEndian.AppendUint16(nil, frames),
	}, nil
}

func encodeIcon(c *Codec, name string, args []string, text string) (record, error) {
	id, ok := c.tables.PictureIndex(args[0])
	if !ok {
		return record{}, syntaxErrorf(text, "Invalid icon name '%s'", args[0])
	}
	p, _ := c.tables.Picture(id)
	return record{
		group:   GroupPicture,
		tag:     uint16(id),
		payload: binary.BigEndian.AppendUint16(nil, p.Code),
	}, nil
}

func encodeSize(c *Codec, name string, args []string, text string) (record, error) {
	id, ok := symbols.Index(c.tables.FontSizes, args[0])
	if !ok {
		return record{}, syntaxErrorf(text, "Invalid font size '%s'", args[0])
	}
	return record{group: GroupFontSize, tag: uint16(id)}, nil
}

func encodePlayer(c *Codec, name string, args []string, text string) (record, error) {
	preset, err := parseU8(args[0], text)
	if err != nil {
		return record{}, err
	}
	return record{group: GroupLocalize, tag: 0, payload: []byte{preset, PlayerReserved}}, nil
}

func encodeIntVar(c *Codec, name string, args []string, text string) (record, error) {
	id, err := parseU16(args[0], text)
	if err != nil {
		return record{}, err
	}
	arg, err := parseU32(args[1], text)
	if err != nil {
		return record{}, err
	}
	def, err := parseS32(args[2], text)
	if err != nil {
		return record{}, err
	}

	payload := binary.BigEndian.AppendUint32(nil, uint32(def))
	payload = binary.BigEndian.AppendUint32(payload, arg)
	return record{group: GroupNumber, tag: id, payload: payload}, nil
}

func encodeStringVar(c *Codec, name string, args []string, text string) (record, error) {
	id, err := parseU16(args[0], text)
	if err != nil {
		return record{}, err
	}
	arg, err := parseU32(args[1], text)
	if err != nil {
		return record{}, err
	}
	ptr, err := parseU32(args[2], text)
	if err != nil {
		return record{}, err
	}

	payload := binary.BigEndian.AppendUint32(nil, ptr)
	payload = binary.BigEndian.AppendUint32(payload, arg)
	return record{group: GroupString, tag: id, payload: payload}, nil
}

func encodeRace(c *Codec, name string, args []string, text string) (record, error) {
	id, ok := symbols.Index(c.tables.RaceTimes, args[0])
	if !ok {
		return record{}, syntaxErrorf(text, "Invalid race name '%s'", args[0])
	}
	return record{group: GroupRaceTime, tag: uint16(id)}, nil
}

// encodeRaw writes [group:tag;hexdata]. Odd-length data gets one zero
// byte of padding so the payload length stays even.
func encodeRaw(c *Codec, name string, args []string, text string) (record, error) {
	group, err := parseU16(name, text)
	if err != nil {
		return record{}, err
	}
	tag, err := parseU16(args[0], text)
	if err != nil {
		return record{}, err
	}

	digits := strings.Join(strings.Fields(args[1]), "")
	data, err := hex.DecodeString(digits)
	if err != nil {
		return record{}, &SyntaxError{Tag: text, Msg: "Couldn't write arbitrary tag", Err: err}
	}
	if len(data)%2 != 0 {
		data = append(data, 0)
	}
	return record{group: group, tag: tag, payload: data}, nil
}

func parseInt(attr string, min, max int64, text string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(attr), 0, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, syntaxErrorf(text, "Tag attribute '%s' out of range", attr)
		}
		return 0, syntaxErrorf(text, "Couldn't parse tag attribute '%s' as integer", attr)
	}
	if v < min || v > max {
		return 0, syntaxErrorf(text, "Tag attribute '%s' out of range", attr)
	}
	return v, nil
}

func parseU8(attr, text string) (uint8, error) {
	v, err := parseInt(attr, 0, math.MaxUint8, text)
	return uint8(v), err
}

func parseU16(attr, text string) (uint16, error) {
	v, err := parseInt(attr, 0, math.MaxUint16, text)
	return uint16(v), err
}

func parseU32(attr, text string) (uint32, error) {
	v, err := parseInt(attr, 0, math.MaxUint32, text)
	return uint32(v), err
}

func parseS32(attr, text string) (int32, error) {
	v, err := parseInt(attr, math.MinInt32, math.MaxInt32, text)
	return int32(v), err
}
