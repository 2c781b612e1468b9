package msbt

import (
	"fmt"

	"github.com/roboco-io/galaxymsbt/internal/binio"
)

// FileHeader is the fixed 0x20 byte header of a message file.
type FileHeader struct {
	BOM          uint16
	Encoding     uint8
	Version      uint8
	SectionCount uint16
	FileSize     uint32
}

// ParseFileHeader parses and validates the header from raw bytes.
// Only big-endian UTF-16 files are accepted.
func ParseFileHeader(data []byte) (*FileHeader, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("file header too small: %d bytes", len(data))
	}
	if sig := string(data[:len(Magic)]); sig != Magic {
		return nil, fmt.Errorf("invalid message file signature: %q", sig)
	}

	r := binio.NewReader(data[:HeaderSize])
	if err := r.Seek(int64(len(Magic))); err != nil {
		return nil, err
	}

	h := &FileHeader{}
	var err error
	if h.BOM, err = r.ReadU16(); err != nil {
		return nil, err
	}
	switch h.BOM {
	case BOMBigEndian:
	case BOMLittleEndian:
		return nil, fmt.Errorf("little-endian message files are not supported")
	default:
		return nil, fmt.Errorf("invalid byte order mark 0x%04X", h.BOM)
	}

	if _, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if h.Encoding, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if h.Encoding != EncodingUTF16 {
		return nil, fmt.Errorf("unsupported text encoding %d", h.Encoding)
	}
	if h.Version, err = r.ReadU8(); err != nil {
		return nil, err
	}
	if h.SectionCount, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if _, err = r.ReadU16(); err != nil {
		return nil, err
	}
	if h.FileSize, err = r.ReadU32(); err != nil {
		return nil, err
	}
	return h, nil
}

// Charset returns the charset the header's encoding and byte order select.
func (h *FileHeader) Charset() *binio.Charset {
	return binio.UTF16BE
}

// writeFileHeader writes a header at the writer's position.
func writeFileHeader(w *binio.Writer, sections uint16, size uint32) error {
	if err := w.Write([]byte(Magic)); err != nil {
		return err
	}
	for _, v := range []uint16{BOMBigEndian, 0} {
		if err := w.WriteU16(v); err != nil {
			return err
		}
	}
	if err := w.WriteU8(EncodingUTF16); err != nil {
		return err
	}
	if err := w.WriteU8(Version); err != nil {
		return err
	}
	if err := w.WriteU16(sections); err != nil {
		return err
	}
	if err := w.WriteU16(0); err != nil {
		return err
	}
	if err := w.WriteU32(size); err != nil {
		return err
	}
	return w.Write(make([]byte, HeaderSize-0x16))
}
