package attr

import (
	"fmt"

	"github.com/roboco-io/galaxymsbt/internal/binio"
)

// EncodeSection writes blocks back to back from the writer's position and
// appends every comment after them. Comment offsets are positions in w,
// so w should start at the section's base. The writer is left at the end.
func EncodeSection(w *binio.Writer, cs *binio.Charset, blocks []Block) error {
	start := w.Tell()
	if len(blocks) > 0 {
		if err := w.Write(make([]byte, len(blocks)*Size)); err != nil {
			return err
		}
	}

	for i, b := range blocks {
		if err := w.Seek(start + int64(i*Size)); err != nil {
			return err
		}
		if err := Encode(w, cs, b); err != nil {
			return fmt.Errorf("attribute block %d: %w", i, err)
		}
	}
	return w.SeekEnd()
}

// DecodeSection reads n consecutive blocks from the reader's position.
// offset and size describe the section as for Decode.
func DecodeSection(r *binio.Reader, cs *binio.Charset, offset, size int64, n int) ([]Block, error) {
	if n < 0 || int64(n)*Size > r.Remaining() {
		return nil, fmt.Errorf("attribute section has %d bytes left, cannot hold %d blocks", r.Remaining(), n)
	}

	blocks := make([]Block, 0, n)
	for i := 0; i < n; i++ {
		b, err := Decode(r, cs, offset, size)
		if err != nil {
			return nil, fmt.Errorf("attribute block %d: %w", i, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}
