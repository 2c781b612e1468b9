package binio

import (
	"bytes"
	"testing"
)

func TestReader_Fields(t *testing.T) {
	data := []byte{
		0xAB,
		0x12, 0x34,
		0xDE, 0xAD, 0xBE, 0xEF,
		0xFF, 0xFF, 0xFF, 0xFE,
	}
	r := NewReader(data)

	u8, err := r.ReadU8()
	if err != nil || u8 != 0xAB {
		t.Fatalf("ReadU8 = %#x, %v", u8, err)
	}
	u16, err := r.ReadU16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("ReadU16 = %#x, %v", u16, err)
	}
	u32, err := r.ReadU32()
	if err != nil || u32 != 0xDEADBEEF {
		t.Fatalf("ReadU32 = %#x, %v", u32, err)
	}
	s32, err := r.ReadS32()
	if err != nil || s32 != -2 {
		t.Fatalf("ReadS32 = %d, %v", s32, err)
	}

	if r.Tell() != int64(len(data)) {
		t.Errorf("expected position %d, got %d", len(data), r.Tell())
	}
	if _, err := r.ReadU8(); err == nil {
		t.Error("expected error reading past end")
	}
}

func TestReader_ShortReadDoesNotAdvance(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03})

	if _, err := r.ReadU32(); err == nil {
		t.Fatal("expected error for short read")
	}
	if r.Tell() != 0 {
		t.Errorf("expected position 0 after failed read, got %d", r.Tell())
	}
}

func TestReader_Seek(t *testing.T) {
	r := NewReader([]byte{0x00, 0x01, 0x00, 0x02})

	if err := r.Seek(2); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	v, err := r.ReadU16()
	if err != nil || v != 2 {
		t.Errorf("ReadU16 after seek = %d, %v", v, err)
	}
	if r.Size() != 4 {
		t.Errorf("expected size 4, got %d", r.Size())
	}
}

func TestWriter_Fields(t *testing.T) {
	w := NewWriter()

	steps := []func() error{
		func() error { return w.WriteU8(0xAB) },
		func() error { return w.WriteU16(0x1234) },
		func() error { return w.WriteU32(0xDEADBEEF) },
		func() error { return w.WriteS32(-2) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	want := []byte{0xAB, 0x12, 0x34, 0xDE, 0xAD, 0xBE, 0xEF, 0xFF, 0xFF, 0xFF, 0xFE}
	if got := w.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes() = % X, want % X", got, want)
	}
	if w.Size() != int64(len(want)) {
		t.Errorf("expected size %d, got %d", len(want), w.Size())
	}
}

func TestWriter_SeekOverwriteAndSize(t *testing.T) {
	w := NewWriter()
	_ = w.Write([]byte{1, 2, 3, 4})

	if err := w.Seek(1); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	_ = w.WriteU8(9)

	if w.Tell() != 2 {
		t.Errorf("expected position 2, got %d", w.Tell())
	}
	if w.Size() != 4 {
		t.Errorf("expected size 4, got %d", w.Size())
	}
	if w.Tell() != 2 {
		t.Errorf("Size() must not move the cursor, position %d", w.Tell())
	}

	if err := w.SeekEnd(); err != nil {
		t.Fatalf("SeekEnd failed: %v", err)
	}
	_ = w.WriteU8(5)

	want := []byte{1, 9, 3, 4, 5}
	if got := w.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes() = % X, want % X", got, want)
	}
}

func TestLookupCharset(t *testing.T) {
	tests := []struct {
		name    string
		want    *Charset
		wantErr bool
	}{
		{"utf-16-be", UTF16BE, false},
		{"UTF-16BE", UTF16BE, false},
		{"utf16le", UTF16LE, false},
		{"shift-jis", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cs, err := LookupCharset(tc.name)
			if tc.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cs != tc.want {
				t.Errorf("got %s, want %s", cs.Name(), tc.want.Name())
			}
		})
	}
}

func TestCharset_RoundTrip(t *testing.T) {
	tests := []struct {
		text string
		want []byte
	}{
		{"", []byte{}},
		{"Hi", []byte{0x00, 'H', 0x00, 'i'}},
		{"星", []byte{0x66, 0x1F}},
		{"\U0001F600", []byte{0xD8, 0x3D, 0xDE, 0x00}},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			enc, err := UTF16BE.Encode(tc.text)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !bytes.Equal(enc, tc.want) {
				t.Errorf("Encode(%q) = % X, want % X", tc.text, enc, tc.want)
			}
			dec, err := UTF16BE.Decode(enc)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if dec != tc.text {
				t.Errorf("Decode = %q, want %q", dec, tc.text)
			}
		})
	}
}

func TestCharset_LittleEndian(t *testing.T) {
	enc, err := UTF16LE.Encode("A")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(enc, []byte{'A', 0x00}) {
		t.Errorf("Encode = % X", enc)
	}
}

func TestCharset_DecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"odd length", []byte{0x00, 0x41, 0x00}},
		{"lone high surrogate", []byte{0xD8, 0x3D, 0x00, 0x41}},
		{"lone low surrogate", []byte{0xDE, 0x00}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := UTF16BE.Decode(tc.data); err == nil {
				t.Errorf("expected error decoding % X", tc.data)
			}
		})
	}
}

func TestCharset_EncodeInvalidUTF8(t *testing.T) {
	if _, err := UTF16BE.Encode("\xff"); err == nil {
		t.Error("expected error for invalid UTF-8")
	}
}
