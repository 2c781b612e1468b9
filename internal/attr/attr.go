// Package attr reads and writes the fixed 12-byte attribute block stored
// alongside each message, and the comment string it points to.
package attr

import (
	"fmt"

	"github.com/roboco-io/galaxymsbt/internal/binio"
	"github.com/roboco-io/galaxymsbt/internal/tag"
)

// Size is the size of the fixed part of an attribute block.
const Size = 12

// Block is the per-message metadata. Field order here is the logical
// order; see Encode for the wire order.
type Block struct {
	TalkType    uint8  `json:"talk_type" yaml:"talk_type"`
	BalloonType uint8  `json:"balloon_type" yaml:"balloon_type"`
	MsgLinkID   uint8  `json:"msg_link_id" yaml:"msg_link_id"`
	SoundID     uint8  `json:"sound_id" yaml:"sound_id"`
	CameraType  uint8  `json:"camera_type" yaml:"camera_type"`
	CameraID    uint16 `json:"camera_id" yaml:"camera_id"`
	Unk7        uint8  `json:"unk7" yaml:"unk7"`
	Comment     string `json:"comment" yaml:"comment"`
}

// Default returns the attributes of a newly created message.
func Default() Block {
	return Block{
		MsgLinkID: 255,
		SoundID:   1,
		Unk7:      255,
	}
}

// Decode reads the block at the reader's position. offset and size give
// the absolute start and byte extent of the enclosing section; the comment
// is read from offset+comment_offset up to a NUL or the section end,
// whichever comes first. The reader is left just past the fixed block.
func Decode(r *binio.Reader, cs *binio.Charset, offset, size int64) (Block, error) {
	start := r.Tell()
	fields, err := r.ReadBytes(Size)
	if err != nil {
		return Block{}, &tag.FormatError{Offset: start, Msg: "incomplete attribute block", Err: err}
	}

	fr := binio.NewReader(fields)
	var b Block
	b.SoundID, _ = fr.ReadU8()
	b.CameraType, _ = fr.ReadU8()
	b.TalkType, _ = fr.ReadU8()
	b.BalloonType, _ = fr.ReadU8()
	b.CameraID, _ = fr.ReadU16()
	b.MsgLinkID, _ = fr.ReadU8()
	b.Unk7, _ = fr.ReadU8()
	commentOffset, _ := fr.ReadU32()

	comment, err := readComment(r, cs, offset+int64(commentOffset), offset+size)
	if seekErr := r.Seek(start + Size); seekErr != nil && err == nil {
		err = seekErr
	}
	if err != nil {
		return Block{}, &tag.FormatError{Offset: start, Msg: "Couldn't read attribute comment", Err: err}
	}
	b.Comment = comment
	return b, nil
}

// readComment collects character units from pos until a NUL unit or end.
// A comment starting at or past end is empty.
func readComment(r *binio.Reader, cs *binio.Charset, pos, end int64) (string, error) {
	if end > r.Size() {
		end = r.Size()
	}
	if pos >= end {
		return "", nil
	}
	if err := r.Seek(pos); err != nil {
		return "", err
	}

	unit := int64(cs.UnitSize())
	var raw []byte
	for r.Tell()+unit <= end {
		ch, err := r.ReadBytes(int(unit))
		if err != nil {
			return "", err
		}
		if isZero(ch) {
			break
		}
		raw = append(raw, ch...)
	}
	return cs.Decode(raw)
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// Encode writes the block at the writer's position. The comment offset
// written is the current end of the buffer (never less than the end of
// the fixed block), and the comment plus a NUL is appended there. The
// writer is left at the end of the buffer.
func Encode(w *binio.Writer, cs *binio.Charset, b Block) error {
	comment, err := cs.Encode(b.Comment + "\x00")
	if err != nil {
		return &tag.SyntaxError{Tag: b.Comment, Msg: "Couldn't encode attribute comment", Err: err}
	}

	start := w.Tell()
	commentOffset := max(w.Size(), start+Size)
	if commentOffset > 0xFFFFFFFF {
		return fmt.Errorf("attribute comment offset %d out of range", commentOffset)
	}

	fields := []func() error{
		func() error { return w.WriteU8(b.SoundID) },
		func() error { return w.WriteU8(b.CameraType) },
		func() error { return w.WriteU8(b.TalkType) },
		func() error { return w.WriteU8(b.BalloonType) },
		func() error { return w.WriteU16(b.CameraID) },
		func() error { return w.WriteU8(b.MsgLinkID) },
		func() error { return w.WriteU8(b.Unk7) },
		func() error { return w.WriteU32(uint32(commentOffset)) },
	}
	for _, write := range fields {
		if err := write(); err != nil {
			return fmt.Errorf("write attribute block: %w", err)
		}
	}

	if err := w.SeekEnd(); err != nil {
		return err
	}
	if err := w.Write(comment); err != nil {
		return fmt.Errorf("write attribute comment: %w", err)
	}
	return nil
}
