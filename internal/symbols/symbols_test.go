package symbols

import (
	"testing"
)

func TestDefault(t *testing.T) {
	tables := Default()

	if len(tables.FontColors) != 8 {
		t.Errorf("expected 8 font colors, got %d", len(tables.FontColors))
	}
	if tables.FontColors[1] != "red" {
		t.Errorf("expected color 1 to be 'red', got %q", tables.FontColors[1])
	}
	if len(tables.Pictures) != 73 {
		t.Errorf("expected 73 pictures, got %d", len(tables.Pictures))
	}
	if len(tables.MessageSounds) != 193 {
		t.Errorf("expected 193 message sounds, got %d", len(tables.MessageSounds))
	}
}

func TestDefault_PictureCodeGap(t *testing.T) {
	tables := Default()

	tests := []struct {
		index int
		name  string
		code  uint16
	}{
		{0, "a_button", 0},
		{7, "star", 7},
		{43, "current_player", 43},
		{44, "1up_mushroom", 49},
		{72, "bronze_comet", 77},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := tables.Picture(tc.index)
			if !ok {
				t.Fatalf("expected picture at index %d", tc.index)
			}
			if p.Name != tc.name || p.Code != tc.code {
				t.Errorf("Picture(%d) = %+v, want {%s %d}", tc.index, p, tc.name, tc.code)
			}
		})
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	a := Default()
	b := Default()

	a.FontColors[0] = "changed"
	a.Pictures[0].Name = "changed"
	a.MessageSounds[0] = "changed"

	if b.FontColors[0] != "black" || b.Pictures[0].Name != "a_button" || b.MessageSounds[0] != "null (0)" {
		t.Error("expected Default to return independent tables")
	}
}

func TestNameAndIndex(t *testing.T) {
	list := []string{"small", "normal", "large"}

	if name, ok := Name(list, 2); !ok || name != "large" {
		t.Errorf("Name(list, 2) = %q, %v", name, ok)
	}
	if _, ok := Name(list, 3); ok {
		t.Error("expected Name to reject index 3")
	}
	if _, ok := Name(list, -1); ok {
		t.Error("expected Name to reject index -1")
	}

	if i, ok := Index(list, "normal"); !ok || i != 1 {
		t.Errorf("Index(list, normal) = %d, %v", i, ok)
	}
	if _, ok := Index(list, "Normal"); ok {
		t.Error("expected Index to be case-sensitive")
	}
}

func TestPictureIndex(t *testing.T) {
	tables := Default()

	i, ok := tables.PictureIndex("star")
	if !ok || i != 7 {
		t.Errorf("PictureIndex(star) = %d, %v", i, ok)
	}
	if _, ok := tables.PictureIndex("nope"); ok {
		t.Error("expected unknown picture to be missing")
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default tables should validate: %v", err)
	}

	tables := Default()
	tables.FontColors = append(tables.FontColors, "red")
	if err := tables.Validate(); err == nil {
		t.Error("expected duplicate color to fail validation")
	}

	tables = Default()
	tables.Pictures = append(tables.Pictures, Picture{Name: "star", Code: 99})
	if err := tables.Validate(); err == nil {
		t.Error("expected duplicate picture to fail validation")
	}
}

func TestFingerprint(t *testing.T) {
	a := Default().Fingerprint()
	b := Default().Fingerprint()
	if a != b {
		t.Errorf("expected stable fingerprint, got %s and %s", a, b)
	}
	if len(a) != 24 {
		t.Errorf("expected 24 hex chars, got %d", len(a))
	}

	changed := Default()
	changed.Pictures[7].Code = 8
	if changed.Fingerprint() == a {
		t.Error("expected picture code change to alter fingerprint")
	}

	moved := Default()
	moved.FontSizes = moved.FontSizes[:2]
	moved.RaceTimes = append([]string{"large"}, moved.RaceTimes...)
	if moved.Fingerprint() == a {
		t.Error("expected moving a name between tables to alter fingerprint")
	}
}
