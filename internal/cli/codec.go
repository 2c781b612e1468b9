package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roboco-io/galaxymsbt/internal/attr"
	"github.com/roboco-io/galaxymsbt/internal/binio"
	"github.com/roboco-io/galaxymsbt/internal/message"
	"github.com/roboco-io/galaxymsbt/internal/tag"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Convert single tags",
	Long: `Convert one tag between its binary record and bracket notation.

Examples:
  galaxymsbt tag decode "0003 002C 0002 0031"
  galaxymsbt tag encode "color:red"`,
}

var tagDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a tag record to notation",
	Long: `Decode a tag record (group, tag, length, payload) given as hex.
A leading escape marker is skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runTagDecode,
}

var tagEncodeCmd = &cobra.Command{
	Use:   "encode <tag>",
	Short: "Encode tag notation to hex",
	Long: `Encode one tag, written with or without brackets, to hex.
The output starts with the escape marker.`,
	Args: cobra.ExactArgs(1),
	RunE: runTagEncode,
}

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Convert message text",
	Long: `Convert a NUL terminated message text stream between hex and notation.

In notation a literal '[' is written "\[" and a literal '\' is "\\".`,
}

var textDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a message text stream to notation",
	Args:  cobra.ExactArgs(1),
	RunE:  runTextDecode,
}

var textEncodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Encode notation to a message text stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTextEncode,
}

var attrCmd = &cobra.Command{
	Use:   "attr",
	Short: "Convert attribute blocks",
	Long: `Convert one attribute block between its binary form and YAML.

The binary form is the 12-byte block followed by the data its comment
offset points into, relative to the start of the block.`,
}

var attrDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode an attribute block to YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttrDecode,
}

var attrEncodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode a YAML attribute block to hex",
	Long: `Encode an attribute block read from a YAML file (stdin if omitted).
Missing fields take the defaults of a new message.

Example:
  echo "talk_type: 2\ncomment: hello" | galaxymsbt attr encode`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAttrEncode,
}

func init() {
	tagCmd.AddCommand(tagDecodeCmd, tagEncodeCmd)
	textCmd.AddCommand(textDecodeCmd, textEncodeCmd)
	attrCmd.AddCommand(attrDecodeCmd, attrEncodeCmd)

	rootCmd.AddCommand(tagCmd, textCmd, attrCmd)
}

func runTagDecode(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	data, err := parseHex(args[0])
	if err != nil {
		return err
	}

	if marker, err := s.charset.Encode(tag.EscapeMarker); err == nil {
		data = bytes.TrimPrefix(data, marker)
	}

	r := binio.NewReader(data)
	text, err := s.codec().Decode(r)
	if err != nil {
		return err
	}
	if r.Remaining() > 0 {
		s.logger.Warn("trailing bytes after tag", "count", r.Remaining())
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func runTagEncode(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	text := strings.TrimSpace(args[0])
	if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
		text = text[1 : len(text)-1]
	}

	w := binio.NewWriter()
	if err := s.codec().Encode(w, text); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatHex(w.Bytes()))
	return nil
}

func runTextDecode(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	data, err := parseHex(args[0])
	if err != nil {
		return err
	}

	text, err := message.DecodeBytes(s.codec(), data)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func runTextEncode(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	data, err := message.EncodeBytes(s.codec(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatHex(data))
	return nil
}

// attrView is the YAML shape printed by attr decode.
type attrView struct {
	Block       attr.Block       `yaml:"block"`
	Description attr.Description `yaml:"description"`
}

func runAttrDecode(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	data, err := parseHex(args[0])
	if err != nil {
		return err
	}

	b, err := attr.Decode(binio.NewReader(data), s.charset, 0, int64(len(data)))
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(attrView{Block: b, Description: attr.Describe(b, s.tables)})
	if err != nil {
		return fmt.Errorf("failed to format attributes: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runAttrEncode(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	b := attr.Default()
	if err := yaml.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("failed to parse attributes: %w", err)
	}

	w := binio.NewWriter()
	if err := attr.Encode(w, s.charset, b); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatHex(w.Bytes()))
	return nil
}
