package llm

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roboco-io/galaxymsbt/internal/message"
	"github.com/roboco-io/galaxymsbt/internal/tag"
)

// TagMismatchError reports a translation whose tags differ from the
// source text's.
type TagMismatchError struct {
	Missing []string
	Extra   []string
}

func (e *TagMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+bracketed(e.Missing))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "unexpected "+bracketed(e.Extra))
	}
	return "translation changed tags: " + strings.Join(parts, "; ")
}

func bracketed(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "[" + t + "]"
	}
	return strings.Join(out, " ")
}

// CheckTags verifies that translated contains the same multiset of tags
// as source. Tags are compared by name and arguments with surrounding
// whitespace ignored, so order may change.
func CheckTags(source, translated string) error {
	src, err := message.Tags(source)
	if err != nil {
		return fmt.Errorf("source text: %w", err)
	}
	dst, err := message.Tags(translated)
	if err != nil {
		return fmt.Errorf("translated text: %w", err)
	}

	counts := make(map[string]int)
	for _, t := range src {
		counts[normalizeTag(t)]++
	}
	var extra []string
	for _, t := range dst {
		key := normalizeTag(t)
		if counts[key] == 0 {
			extra = append(extra, t)
			continue
		}
		counts[key]--
	}

	var missing []string
	for _, t := range src {
		key := normalizeTag(t)
		if counts[key] > 0 {
			missing = append(missing, t)
			counts[key]--
		}
	}

	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	slices.Sort(missing)
	slices.Sort(extra)
	return &TagMismatchError{Missing: missing, Extra: extra}
}

func normalizeTag(t string) string {
	name, args := tag.Split(t)
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return name + "\x00" + strings.Join(args, "\x00")
}
