// Package binio provides the big-endian field reader and writer and the
// text charset shared by the tag and attribute codecs.
package binio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Reader reads fixed-width big-endian fields from an in-memory buffer.
type Reader struct {
	r     *bytes.Reader
	order binary.ByteOrder
}

// NewReader creates a reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{
		r:     bytes.NewReader(data),
		order: binary.BigEndian,
	}
}

// Tell returns the absolute read position.
func (r *Reader) Tell() int64 {
	pos, _ := r.r.Seek(0, io.SeekCurrent)
	return pos
}

// Seek moves to an absolute position. Positions past the end are allowed;
// the next read fails.
func (r *Reader) Seek(offset int64) error {
	if _, err := r.r.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek to offset %d: %w", offset, err)
	}
	return nil
}

// Size returns the total buffer size.
func (r *Reader) Size() int64 {
	return r.r.Size()
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int64 {
	return int64(r.r.Len())
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read length %d", n)
	}
	pos := r.Tell()
	if int64(n) > r.Remaining() {
		return nil, fmt.Errorf("unexpected end of data at offset %d: need %d bytes, have %d",
			pos, n, r.Remaining())
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, fmt.Errorf("read %d bytes at offset %d: %w", n, pos, err)
	}
	return buf, nil
}

// ReadU8 reads an unsigned 8-bit integer.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads an unsigned 16-bit integer.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// ReadU32 reads an unsigned 32-bit integer.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

// ReadS32 reads a signed 32-bit integer.
func (r *Reader) ReadS32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}
