package msbt

// Magic is the signature at the start of every message file.
const Magic = "MsgStdBn"

// Header and section sizes.
const (
	HeaderSize        = 0x20
	SectionHeaderSize = 0x10
	SectionAlignment  = 0x10
)

// PaddingByte fills the gap between a section's data and the next
// alignment boundary.
const PaddingByte = 0xAB

// Byte order marks as stored in the header.
const (
	BOMBigEndian    = 0xFEFF
	BOMLittleEndian = 0xFFFE
)

// Text encodings of the header's encoding byte.
const (
	EncodingUTF8  = 0
	EncodingUTF16 = 1
)

// Version written to new files.
const Version = 3

// Section magics.
const (
	SectionLabels     = "LBL1"
	SectionAttributes = "ATR1"
	SectionText       = "TXT2"
)

// DefaultBuckets is the label hash table size written to new files.
const DefaultBuckets = 101

// labelHashMultiplier drives LabelHash.
const labelHashMultiplier = 0x492
