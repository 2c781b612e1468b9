package attr

import (
	"fmt"

	"github.com/roboco-io/galaxymsbt/internal/symbols"
)

// Description is a Block with its enumerated fields resolved to names.
type Description struct {
	TalkType    string `json:"talk_type" yaml:"talk_type"`
	BalloonType string `json:"balloon_type" yaml:"balloon_type"`
	Sound       string `json:"sound" yaml:"sound"`
	CameraType  string `json:"camera_type" yaml:"camera_type"`
	CameraID    uint16 `json:"camera_id" yaml:"camera_id"`
	MsgLinkID   uint8  `json:"msg_link_id" yaml:"msg_link_id"`
	Comment     string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Describe resolves b's enumerated fields using t. Values outside a table
// are shown as "unknown (N)".
func Describe(b Block, t *symbols.Tables) Description {
	if t == nil {
		t = symbols.Default()
	}
	return Description{
		TalkType:    lookup(t.TalkTypes, b.TalkType),
		BalloonType: lookup(t.BalloonTypes, b.BalloonType),
		Sound:       lookup(t.MessageSounds, b.SoundID),
		CameraType:  lookup(t.CameraTypes, b.CameraType),
		CameraID:    b.CameraID,
		MsgLinkID:   b.MsgLinkID,
		Comment:     b.Comment,
	}
}

func lookup(list []string, id uint8) string {
	if name, ok := symbols.Name(list, int(id)); ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", id)
}
