package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/sjson"

	"github.com/roboco-io/galaxymsbt/internal/symbols"
)

// Keys of the symbol table override file.
const (
	KeyFontColors    = "font_colors"
	KeyFontSizes     = "font_sizes"
	KeyRaceTimes     = "race_times"
	KeyPictureIcons  = "picture_icons"
	KeyMessageSounds = "message_sounds"
	KeyTalkTypes     = "talk_types"
	KeyBalloonTypes  = "balloon_types"
	KeyCameraTypes   = "camera_types"
)

// TableError reports an invalid symbol table override file.
type TableError struct {
	Key string
	Msg string
}

func (e *TableError) Error() string {
	if e.Key == "" {
		return "invalid adapter config: " + e.Msg
	}
	return fmt.Sprintf("invalid adapter config: entry '%s' %s", e.Key, e.Msg)
}

var utf8BOM = []byte("\xEF\xBB\xBF")

// listFields maps each list-valued key to its field in t, in file order.
func listFields(t *symbols.Tables) []struct {
	key  string
	list *[]string
} {
	return []struct {
		key  string
		list *[]string
	}{
		{KeyFontColors, &t.FontColors},
		{KeyFontSizes, &t.FontSizes},
		{KeyRaceTimes, &t.RaceTimes},
		{KeyMessageSounds, &t.MessageSounds},
		{KeyTalkTypes, &t.TalkTypes},
		{KeyBalloonTypes, &t.BalloonTypes},
		{KeyCameraTypes, &t.CameraTypes},
	}
}

// ParseTables reads a symbol table override. The file is JSON, optionally
// with a UTF-8 BOM, comments and trailing commas. Absent keys keep the
// built-in tables; picture_icons order defines the picture indices.
func ParseTables(data []byte) (*symbols.Tables, error) {
	stripped := jsonc.ToJSON(bytes.TrimPrefix(data, utf8BOM))
	if !gjson.ValidBytes(stripped) {
		return nil, &TableError{Msg: "malformed JSON"}
	}

	root := gjson.ParseBytes(stripped)
	if !root.IsObject() {
		return nil, &TableError{Msg: "root element is not an object"}
	}

	t := symbols.Default()
	for _, f := range listFields(t) {
		res := root.Get(f.key)
		if !res.Exists() {
			continue
		}
		names, err := parseNameList(f.key, res)
		if err != nil {
			return nil, err
		}
		*f.list = names
	}

	if res := root.Get(KeyPictureIcons); res.Exists() {
		pictures, err := parsePictures(res)
		if err != nil {
			return nil, err
		}
		t.Pictures = pictures
	}

	if err := t.Validate(); err != nil {
		return nil, &TableError{Msg: err.Error()}
	}
	return t, nil
}

func parseNameList(key string, res gjson.Result) ([]string, error) {
	if !res.IsArray() {
		return nil, &TableError{Key: key, Msg: "is not a list"}
	}
	elems := res.Array()
	names := make([]string, 0, len(elems))
	for _, el := range elems {
		if el.Type != gjson.String {
			return nil, &TableError{Key: key, Msg: "contains a value that is not a string"}
		}
		names = append(names, el.String())
	}
	return names, nil
}

func parsePictures(res gjson.Result) ([]symbols.Picture, error) {
	if !res.IsObject() {
		return nil, &TableError{Key: KeyPictureIcons, Msg: "is not an object"}
	}

	var (
		pictures []symbols.Picture
		err      error
	)
	res.ForEach(func(k, v gjson.Result) bool {
		if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
			err = &TableError{Key: KeyPictureIcons, Msg: fmt.Sprintf("value for '%s' is not an integer", k.String())}
			return false
		}
		if v.Num < 0 || v.Num > math.MaxUint16 {
			err = &TableError{Key: KeyPictureIcons, Msg: fmt.Sprintf("code %s for '%s' is out of range", v.Raw, k.String())}
			return false
		}
		pictures = append(pictures, symbols.Picture{Name: k.String(), Code: uint16(v.Int())})
		return true
	})
	if err != nil {
		return nil, err
	}
	return pictures, nil
}

// LoadTables reads the override file at path.
func LoadTables(path string) (*symbols.Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read adapter config: %w", err)
	}
	t, err := ParseTables(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// FormatTables renders t as an override file, keys and picture order
// preserved.
func FormatTables(t *symbols.Tables) ([]byte, error) {
	out := []byte("{}")
	var err error

	fields := listFields(t)
	for _, f := range fields[:3] {
		if out, err = sjson.SetBytes(out, f.key, nonNil(*f.list)); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", f.key, err)
		}
	}

	icons, err := pictureObject(t.Pictures)
	if err != nil {
		return nil, err
	}
	if out, err = sjson.SetRawBytes(out, KeyPictureIcons, icons); err != nil {
		return nil, fmt.Errorf("failed to set %s: %w", KeyPictureIcons, err)
	}

	for _, f := range fields[3:] {
		if out, err = sjson.SetBytes(out, f.key, nonNil(*f.list)); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", f.key, err)
		}
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, out, "", "    "); err != nil {
		return nil, fmt.Errorf("failed to format adapter config: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// pictureObject builds the picture_icons object by hand since a Go map
// would lose the order.
func pictureObject(pictures []symbols.Picture) ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range pictures {
		if i > 0 {
			sb.WriteByte(',')
		}
		name, err := json.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&sb, "%s:%d", name, p.Code)
	}
	sb.WriteByte('}')
	return []byte(sb.String()), nil
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// SaveTables writes t to path, creating the directory if needed.
func SaveTables(path string, t *symbols.Tables) error {
	data, err := FormatTables(t)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write adapter config: %w", err)
	}
	return nil
}

// ErrTablesExist is returned by InitTables when the file already exists.
var ErrTablesExist = errors.New("adapter config already exists")

// InitTables writes the built-in tables to path. An existing file is only
// replaced when force is set.
func InitTables(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrTablesExist, path)
	}
	return SaveTables(path, symbols.Default())
}
