package msbt

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/roboco-io/galaxymsbt/internal/binio"
)

// Section is one block of a message file.
type Section struct {
	Magic  string
	Offset int // file offset of the section header
	Data   []byte
}

// SectionReader reads sections following the file header.
type SectionReader struct {
	data   []byte
	offset int
}

// NewSectionReader creates a section reader over the whole file.
func NewSectionReader(data []byte) *SectionReader {
	return &SectionReader{
		data:   data,
		offset: HeaderSize,
	}
}

// Read reads the next section and skips its padding.
func (r *SectionReader) Read() (*Section, error) {
	if r.offset >= len(r.data) {
		return nil, io.EOF
	}
	if r.offset+SectionHeaderSize > len(r.data) {
		return nil, fmt.Errorf("incomplete section header at offset %d", r.offset)
	}

	sec := &Section{
		Magic:  string(r.data[r.offset : r.offset+4]),
		Offset: r.offset,
	}
	size := int(binary.BigEndian.Uint32(r.data[r.offset+4 : r.offset+8]))
	start := r.offset + SectionHeaderSize
	if size < 0 || start+size > len(r.data) {
		return nil, fmt.Errorf("section %s at offset %d: size %d exceeds file", sec.Magic, r.offset, size)
	}
	sec.Data = r.data[start : start+size]

	r.offset = align(start + size)
	return sec, nil
}

// ReadAll reads all remaining sections.
func (r *SectionReader) ReadAll() ([]*Section, error) {
	var sections []*Section
	for {
		sec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}
	return sections, nil
}

func align(n int) int {
	return (n + SectionAlignment - 1) &^ (SectionAlignment - 1)
}

// writeSection appends a section header, its data and the padding.
func writeSection(w *binio.Writer, magic string, data []byte) error {
	if err := w.Write([]byte(magic)); err != nil {
		return err
	}
	if err := w.WriteU32(uint32(len(data))); err != nil {
		return err
	}
	if err := w.Write(make([]byte, 8)); err != nil {
		return err
	}
	if err := w.Write(data); err != nil {
		return err
	}

	pad := align(len(data)) - len(data)
	padding := make([]byte, pad)
	for i := range padding {
		padding[i] = PaddingByte
	}
	return w.Write(padding)
}
