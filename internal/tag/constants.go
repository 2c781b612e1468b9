// Package tag converts control tags between their binary record form and
// the bracket notation used for editing, e.g. [color:red] or [wait:30].
package tag

// EscapeMarker is the character that precedes every tag record in a
// message's text stream.
const EscapeMarker = "\u000E"

// HeaderSize is the size of a tag record header: group, tag and payload
// length, each a big-endian u16.
const HeaderSize = 6

// Tag groups
const (
	GroupSystem    uint16 = 0  // ruby, color
	GroupDisplay   uint16 = 1  // wait, page break, centering
	GroupSound     uint16 = 2  // sound effect by name
	GroupPicture   uint16 = 3  // inline icon, tag id = picture index
	GroupFontSize  uint16 = 4  // tag id = size index
	GroupLocalize  uint16 = 5  // player name preset
	GroupNumber    uint16 = 6  // integer argument substitution
	GroupString    uint16 = 7  // string argument substitution
	GroupRaceTime  uint16 = 9  // tag id = race index
	GroupNumFont   uint16 = 10 // text drawn with the number font
)

// Tags within GroupSystem and GroupDisplay.
const (
	TagRuby  uint16 = 0
	TagColor uint16 = 3

	TagWait      uint16 = 0
	TagPageBreak uint16 = 1
	TagYCenter   uint16 = 2
	TagXCenter   uint16 = 3
)

// DefaultColorID selects the message's default text color.
const DefaultColorID uint16 = 0xFFFF

// PlayerReserved is written in the unused byte of a player tag.
const PlayerReserved uint8 = 0xCD
