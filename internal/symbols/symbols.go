// Package symbols holds the per-title name tables that tag arguments and
// attribute values are resolved against.
package symbols

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Picture pairs an icon name with the code written into the tag payload.
// Codes are not contiguous with the table index.
type Picture struct {
	Name string
	Code uint16
}

// Tables is the full set of name tables for one session.
// A Tables value is built once and only read afterwards, so a single
// instance may be shared by concurrent decoders.
type Tables struct {
	FontColors    []string
	FontSizes     []string
	RaceTimes     []string
	Pictures      []Picture
	MessageSounds []string
	TalkTypes     []string
	BalloonTypes  []string
	CameraTypes   []string
}

// Name returns list[id] if id is in range.
func Name(list []string, id int) (string, bool) {
	if id < 0 || id >= len(list) {
		return "", false
	}
	return list[id], true
}

// Index returns the position of the first exact (case-sensitive) match.
func Index(list []string, name string) (int, bool) {
	for i, s := range list {
		if s == name {
			return i, true
		}
	}
	return -1, false
}

// Picture returns the picture at table index id.
func (t *Tables) Picture(id int) (Picture, bool) {
	if id < 0 || id >= len(t.Pictures) {
		return Picture{}, false
	}
	return t.Pictures[id], true
}

// PictureIndex returns the table index of the named picture.
func (t *Tables) PictureIndex(name string) (int, bool) {
	for i, p := range t.Pictures {
		if p.Name == name {
			return i, true
		}
	}
	return -1, false
}

// PictureNames returns the picture names in table order.
func (t *Tables) PictureNames() []string {
	names := make([]string, len(t.Pictures))
	for i, p := range t.Pictures {
		names[i] = p.Name
	}
	return names
}

// Validate checks that the name tables used for tag encoding resolve
// names to indices one-to-one.
func (t *Tables) Validate() error {
	lists := []struct {
		key   string
		names []string
	}{
		{"font_colors", t.FontColors},
		{"font_sizes", t.FontSizes},
		{"race_times", t.RaceTimes},
		{"picture_icons", t.PictureNames()},
	}

	for _, l := range lists {
		seen := make(map[string]int, len(l.names))
		for i, name := range l.names {
			if prev, ok := seen[name]; ok {
				return fmt.Errorf("%s: duplicate name %q at %d and %d", l.key, name, prev, i)
			}
			seen[name] = i
		}
		if len(l.names) > 0xFFFF {
			return fmt.Errorf("%s: %d entries exceed the 16-bit tag id range", l.key, len(l.names))
		}
	}
	return nil
}

// Fingerprint returns a short BLAKE3 digest of the tables' contents.
// Text decoded under one set of tables should only be re-encoded under
// tables with the same fingerprint.
func (t *Tables) Fingerprint() string {
	h := blake3.New()

	writeList := func(tag string, names []string) {
		h.Write([]byte(tag))
		h.Write([]byte{0})
		for _, n := range names {
			h.Write([]byte(n))
			h.Write([]byte{0})
		}
		h.Write([]byte{0xFF})
	}

	writeList("font_colors", t.FontColors)
	writeList("font_sizes", t.FontSizes)
	writeList("race_times", t.RaceTimes)
	writeList("picture_icons", t.PictureNames())
	var code [2]byte
	for _, p := range t.Pictures {
		binary.BigEndian.PutUint16(code[:], p.Code)
		h.Write(code[:])
	}
	writeList("message_sounds", t.MessageSounds)
	writeList("talk_types", t.TalkTypes)
	writeList("balloon_types", t.BalloonTypes)
	writeList("camera_types", t.CameraTypes)

	return hex.EncodeToString(h.Sum(nil)[:12])
}
