package tag

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/roboco-io/galaxymsbt/internal/binio"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func TestDecode(t *testing.T) {
	c := New(nil, nil)

	tests := []struct {
		name string
		data string
		want string
	}{
		{"default color", "0000 0003 0002 FFFF", "[defcolor]"},
		{"color", "0000 0003 0002 0001", "[color:red]"},
		{"wait", "0001 0000 0002 001E", "[wait:30]"},
		{"page break", "0001 0001 0000", "[pagebreak]"},
		{"y center", "0001 0002 0000", "[ycenter]"},
		{"x center", "0001 0003 0000", "[xcenter]"},
		{"icon", "0003 0007 0002 0007", "[icon:star]"},
		{"icon after code gap", "0003 002C 0002 0031", "[icon:1up_mushroom]"},
		{"size", "0004 0002 0000", "[size:large]"},
		{"player", "0005 0000 0002 03CD", "[player:3]"},
		{"intvar", "0006 0002 0008 FFFFFFFF 00000005", "[intvar:2;5;-1]"},
		{"stringvar", "0007 0001 0008 0000ABCD 00000000", "[stringvar:1;0;0x0000ABCD]"},
		{"race", "0009 0002 0000", "[race:last]"},
		{"sound", "0002 0000 0006 0004 0053 0045", "[sound:SE]"},
		{"number font", "000A 0000 0004 0002 0031", "[numberfont:1]"},
		{"ruby", "0000 0000 0008 0002 0002 304B 6F22", "[ruby:漢;か]"},
		{"unknown group", "0008 0002 0002 0102", "[8:2;0102]"},
		{"unknown system tag", "0000 0005 0000", "[0:5;]"},
		{"unknown sound tag", "0002 0005 0002 ABCD", "[2:5;abcd]"},
		{"unknown localize tag", "0005 0001 0002 0000", "[5:1;0000]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := mustHex(t, tt.data)
			r := binio.NewReader(data)
			got, err := c.Decode(r)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
			if r.Tell() != int64(len(data)) {
				t.Errorf("reader at %d after decode, want %d", r.Tell(), len(data))
			}
		})
	}
}

func TestEncode(t *testing.T) {
	c := New(nil, nil)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"color", "color:red", "000E 0000 0003 0002 0001"},
		{"icon", "icon:star", "000E 0003 0007 0002 0007"},
		{"icon after code gap", "icon:1up_mushroom", "000E 0003 002C 0002 0031"},
		{"default color", "defcolor", "000E 0000 0003 0002 FFFF"},
		{"wait", "wait:30", "000E 0001 0000 0002 001E"},
		{"hex wait", "wait:0x1E", "000E 0001 0000 0002 001E"},
		{"player", "player:3", "000E 0005 0000 0002 03CD"},
		{"intvar", "intvar:2;5;-1", "000E 0006 0002 0008 FFFFFFFF 00000005"},
		{"ruby", "ruby:漢;か", "000E 0000 0000 0008 0002 0002 304B 6F22"},
		{"spaces around arguments", " size : large", "000E 0004 0002 0000"},
		{"raw", "8:2;0102", "000E 0008 0002 0002 0102"},
		{"raw odd data padded", "8:1;abcdef", "000E 0008 0001 0004 ABCDEF00"},
		{"raw with whitespace", "8:1;ab cd", "000E 0008 0001 0002 ABCD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Marshal(tt.text)
			if err != nil {
				t.Fatalf("Marshal(%q) error = %v", tt.text, err)
			}
			want := mustHex(t, tt.want)
			if !bytes.Equal(got, want) {
				t.Errorf("Marshal(%q) = % X, want % X", tt.text, got, want)
			}
		})
	}
}

func TestEncode_AppendsAtPosition(t *testing.T) {
	c := New(nil, nil)
	w := binio.NewWriter()
	if err := w.Write([]byte{0x00, 0x41}); err != nil {
		t.Fatal(err)
	}
	if err := c.Encode(w, "pagebreak"); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := mustHex(t, "0041 000E 0001 0001 0000")
	if got := w.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	c := New(nil, nil)

	texts := []string{
		"ruby:漢字;かんじ",
		"defcolor",
		"color:grey",
		"wait:65535",
		"pagebreak",
		"ycenter",
		"xcenter",
		"sound:SE_SV_TicoFat",
		"icon:star",
		"icon:1up_mushroom",
		"size:small",
		"player:0",
		"intvar:65535;4294967295;-2147483648",
		"stringvar:3;1;0xDEADBEEF",
		"race:jungle_glider",
		"numberfont:12:34",
		"8:2;0102",
		"2:7;",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			encoded, err := c.Marshal(text)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			got, err := c.Decode(binio.NewReader(encoded[2:]))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if want := "[" + text + "]"; got != want {
				t.Errorf("round trip = %q, want %q", got, want)
			}

			reencoded, err := c.Marshal(strings.Trim(got, "[]"))
			if err != nil {
				t.Fatalf("re-Marshal() error = %v", err)
			}
			if !bytes.Equal(reencoded, encoded) {
				t.Errorf("re-encoded % X, want % X", reencoded, encoded)
			}
		})
	}
}

func TestDecode_FormatErrors(t *testing.T) {
	c := New(nil, nil)

	tests := []struct {
		name string
		data string
	}{
		{"truncated header", "0001 00"},
		{"color out of range", "0000 0003 0002 0008"},
		{"color wrong length", "0000 0003 0004 0001 0000"},
		{"wait wrong length", "0001 0000 0004 001E 0000"},
		{"page break with data", "0001 0001 0002 0000"},
		{"icon out of range", "0003 0049 0002 0000"},
		{"size out of range", "0004 0003 0000"},
		{"race out of range", "0009 0003 0000"},
		{"ruby too short", "0000 0000 0002 0000"},
		{"ruby length mismatch", "0000 0000 0008 0002 0004 304B 6F22"},
		{"sound length mismatch", "0002 0000 0006 0006 0053 0045"},
		{"number wrong length", "0006 0000 0004 0000 0000"},
		{"truncated raw data", "0008 0000 0004 0102"},
		{"odd text length", "0002 0000 0005 0003 0053 00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode(binio.NewReader(mustHex(t, tt.data)))
			if err == nil {
				t.Fatal("expected error")
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FormatError, got %T: %v", err, err)
			}
			if fe.Offset != 0 {
				t.Errorf("Offset = %d, want 0", fe.Offset)
			}
		})
	}
}

func TestDecode_FormatErrorOffset(t *testing.T) {
	c := New(nil, nil)
	r := binio.NewReader(mustHex(t, "0000 0000 0000 0003 0002 0009"))
	if err := r.Seek(4); err != nil {
		t.Fatal(err)
	}

	_, err := c.Decode(r)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %v", err)
	}
	if fe.Offset != 4 {
		t.Errorf("Offset = %d, want 4", fe.Offset)
	}
	if !strings.Contains(fe.Error(), "0x4") {
		t.Errorf("error %q does not mention the offset", fe.Error())
	}
}

func TestEncode_SyntaxErrors(t *testing.T) {
	c := New(nil, nil)

	tests := []struct {
		name    string
		text    string
		wantMsg string
	}{
		{"empty", "", "Empty tag found"},
		{"blank", "  ", "Empty tag found"},
		{"missing argument", "color", "Unexpected attributes count"},
		{"extra argument", "defcolor:x", "Unexpected attributes count"},
		{"intvar arity", "intvar:1;2", "Unexpected attributes count"},
		{"unknown color", "color:pink", "Invalid text color 'pink'"},
		{"unknown icon", "icon:moon", "Invalid icon name 'moon'"},
		{"unknown size", "size:huge", "Invalid font size 'huge'"},
		{"unknown race", "race:first", "Invalid race name 'first'"},
		{"not an integer", "wait:abc", "Couldn't parse tag attribute 'abc' as integer"},
		{"u16 out of range", "wait:70000", "out of range"},
		{"negative u16", "wait:-1", "out of range"},
		{"u8 out of range", "player:256", "out of range"},
		{"s32 out of range", "intvar:1;2;2147483648", "out of range"},
		{"unknown name", "foo:1", "Unknown tag 'foo'"},
		{"raw bad hex", "8:1;zz", "Couldn't write arbitrary tag"},
		{"raw group out of range", "65536:1;00", "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := binio.NewWriter()
			err := c.Encode(w, tt.text)
			if err == nil {
				t.Fatal("expected error")
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
			}
			if !strings.Contains(se.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", se.Error(), tt.wantMsg)
			}
			if !strings.Contains(se.Error(), "Full tag was '"+tt.text+"'") {
				t.Errorf("error %q does not quote the tag", se.Error())
			}
			if w.Size() != 0 {
				t.Errorf("%d bytes written on error", w.Size())
			}
		})
	}
}

func TestCustomTables(t *testing.T) {
	c := New(nil, nil)
	tables := c.Tables()
	tables.FontColors = append(tables.FontColors, "pink")

	got, err := c.Marshal("color:pink")
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := mustHex(t, "000E 0000 0003 0002 0008")
	if !bytes.Equal(got, want) {
		t.Errorf("got % X, want % X", got, want)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		text     string
		wantName string
		wantArgs []string
	}{
		{"pagebreak", "pagebreak", nil},
		{"wait:30", "wait", []string{"30"}},
		{"ruby:a;b", "ruby", []string{"a", "b"}},
		{"numberfont:1:2", "numberfont", []string{"1:2"}},
		{" color : red ", "color", []string{"red"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			name, args := Split(tt.text)
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %q, want %q", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("args[%d] = %q, want %q", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}
