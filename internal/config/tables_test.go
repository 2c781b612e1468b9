package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roboco-io/galaxymsbt/internal/symbols"
)

func TestFormatTables_RoundTrip(t *testing.T) {
	defaults := symbols.Default()

	data, err := FormatTables(defaults)
	if err != nil {
		t.Fatalf("FormatTables() error = %v", err)
	}

	parsed, err := ParseTables(data)
	if err != nil {
		t.Fatalf("ParseTables() error = %v", err)
	}
	if parsed.Fingerprint() != defaults.Fingerprint() {
		t.Error("tables changed after a format/parse round trip")
	}
	if p, _ := parsed.Picture(44); p.Name != "1up_mushroom" || p.Code != 49 {
		t.Errorf("picture 44 = %+v", p)
	}
}

func TestFormatTables_KeyOrder(t *testing.T) {
	data, err := FormatTables(symbols.Default())
	if err != nil {
		t.Fatalf("FormatTables() error = %v", err)
	}

	keys := []string{
		KeyFontColors, KeyFontSizes, KeyRaceTimes, KeyPictureIcons,
		KeyMessageSounds, KeyTalkTypes, KeyBalloonTypes, KeyCameraTypes,
	}
	last := -1
	for _, k := range keys {
		i := strings.Index(string(data), `"`+k+`"`)
		if i < 0 {
			t.Fatalf("key %s missing", k)
		}
		if i < last {
			t.Errorf("key %s out of order", k)
		}
		last = i
	}
	if !strings.Contains(string(data), `"a_button": 0`) {
		t.Error("expected indented picture entries")
	}
}

func TestParseTables_PartialOverride(t *testing.T) {
	data := []byte("\xEF\xBB\xBF" + `{
    // comments and trailing commas are accepted
    "font_colors": ["black", "red", "pink",],
    "picture_icons": {"moon": 3, "star": 7},
}`)

	tables, err := ParseTables(data)
	if err != nil {
		t.Fatalf("ParseTables() error = %v", err)
	}

	if len(tables.FontColors) != 3 || tables.FontColors[2] != "pink" {
		t.Errorf("font_colors = %v", tables.FontColors)
	}
	if len(tables.Pictures) != 2 {
		t.Fatalf("expected 2 pictures, got %d", len(tables.Pictures))
	}
	if tables.Pictures[0] != (symbols.Picture{Name: "moon", Code: 3}) {
		t.Errorf("picture 0 = %+v", tables.Pictures[0])
	}

	// Untouched keys keep the built-in tables
	defaults := symbols.Default()
	if len(tables.FontSizes) != len(defaults.FontSizes) {
		t.Errorf("font_sizes = %v", tables.FontSizes)
	}
	if len(tables.MessageSounds) != len(defaults.MessageSounds) {
		t.Errorf("expected %d message sounds, got %d", len(defaults.MessageSounds), len(tables.MessageSounds))
	}
}

func TestParseTables_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantKey string
	}{
		{"malformed", `{"font_colors": [`, ""},
		{"root is a list", `["red"]`, ""},
		{"list is a string", `{"font_sizes": "large"}`, KeyFontSizes},
		{"list has a number", `{"talk_types": ["Normal", 1]}`, KeyTalkTypes},
		{"pictures is a list", `{"picture_icons": ["star"]}`, KeyPictureIcons},
		{"picture code is a string", `{"picture_icons": {"star": "7"}}`, KeyPictureIcons},
		{"picture code is fractional", `{"picture_icons": {"star": 7.5}}`, KeyPictureIcons},
		{"picture code out of range", `{"picture_icons": {"star": 65536}}`, KeyPictureIcons},
		{"duplicate color", `{"font_colors": ["red", "red"]}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTables([]byte(tt.data))
			var te *TableError
			if !errors.As(err, &te) {
				t.Fatalf("expected *TableError, got %v", err)
			}
			if te.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", te.Key, tt.wantKey)
			}
		})
	}
}

func TestInitTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", TablesFileName)

	if err := InitTables(path, false); err != nil {
		t.Fatalf("InitTables() error = %v", err)
	}

	tables, err := LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables() error = %v", err)
	}
	if tables.Fingerprint() != symbols.Default().Fingerprint() {
		t.Error("initialized tables differ from the built-in tables")
	}

	err = InitTables(path, false)
	if !errors.Is(err, ErrTablesExist) {
		t.Errorf("expected ErrTablesExist, got %v", err)
	}
	if err := InitTables(path, true); err != nil {
		t.Errorf("InitTables(force) error = %v", err)
	}
}

func TestLoadTables_Missing(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSaveTables_Custom(t *testing.T) {
	path := filepath.Join(t.TempDir(), TablesFileName)
	custom := symbols.Default()
	custom.Pictures = []symbols.Picture{{Name: `quote"d.name`, Code: 100}}
	custom.CameraTypes = nil

	if err := SaveTables(path, custom); err != nil {
		t.Fatalf("SaveTables() error = %v", err)
	}
	loaded, err := LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables() error = %v", err)
	}
	if len(loaded.Pictures) != 1 || loaded.Pictures[0].Name != `quote"d.name` || loaded.Pictures[0].Code != 100 {
		t.Errorf("pictures = %+v", loaded.Pictures)
	}
	if len(loaded.CameraTypes) != 0 {
		t.Errorf("camera_types = %v", loaded.CameraTypes)
	}
}
