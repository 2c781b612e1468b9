package binio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/orcaman/writerseeker"
)

// Writer writes big-endian fields into a growable, seekable buffer.
// Writing after a Seek overwrites existing bytes; seeking past the end
// zero-fills the gap on the next write.
type Writer struct {
	ws    *writerseeker.WriterSeeker
	order binary.ByteOrder
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{
		ws:    &writerseeker.WriterSeeker{},
		order: binary.BigEndian,
	}
}

// Tell returns the absolute write position.
func (w *Writer) Tell() int64 {
	pos, _ := w.ws.Seek(0, io.SeekCurrent)
	return pos
}

// Seek moves to an absolute position.
func (w *Writer) Seek(offset int64) error {
	if _, err := w.ws.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek to offset %d: %w", offset, err)
	}
	return nil
}

// SeekEnd moves to the end of the written data.
func (w *Writer) SeekEnd() error {
	if _, err := w.ws.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek to end: %w", err)
	}
	return nil
}

// Size returns the number of bytes in the buffer, independent of the
// current position.
func (w *Writer) Size() int64 {
	cur := w.Tell()
	end, _ := w.ws.Seek(0, io.SeekEnd)
	_, _ = w.ws.Seek(cur, io.SeekStart)
	return end
}

// Bytes returns a copy of the buffer contents.
func (w *Writer) Bytes() []byte {
	data, _ := io.ReadAll(w.ws.BytesReader())
	return data
}

// Write writes raw bytes at the current position.
func (w *Writer) Write(p []byte) error {
	if _, err := w.ws.Write(p); err != nil {
		return fmt.Errorf("write %d bytes at offset %d: %w", len(p), w.Tell(), err)
	}
	return nil
}

// WriteU8 writes an unsigned 8-bit integer.
func (w *Writer) WriteU8(v uint8) error {
	return w.Write([]byte{v})
}

// WriteU16 writes an unsigned 16-bit integer.
func (w *Writer) WriteU16(v uint16) error {
	var b [2]byte
	w.order.PutUint16(b[:], v)
	return w.Write(b[:])
}

// WriteU32 writes an unsigned 32-bit integer.
func (w *Writer) WriteU32(v uint32) error {
	var b [4]byte
	w.order.PutUint32(b[:], v)
	return w.Write(b[:])
}

// WriteS32 writes a signed 32-bit integer.
func (w *Writer) WriteS32(v int32) error {
	return w.WriteU32(uint32(v))
}
