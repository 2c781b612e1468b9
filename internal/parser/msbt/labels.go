package msbt

import (
	"fmt"

	"github.com/roboco-io/galaxymsbt/internal/binio"
)

// LabelHash returns the hash bucket of a label.
func LabelHash(label string, buckets uint32) uint32 {
	var h uint32
	for i := 0; i < len(label); i++ {
		h = h*labelHashMultiplier + uint32(label[i])
	}
	return h % buckets
}

// parseLabels reads an LBL1 section into a message index to label map.
func parseLabels(data []byte) (map[uint32]string, error) {
	r := binio.NewReader(data)
	buckets, err := r.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("label table: %w", err)
	}
	if int64(buckets)*8 > r.Remaining() {
		return nil, fmt.Errorf("label table: %d buckets exceed section size %d", buckets, len(data))
	}

	labels := make(map[uint32]string)
	for b := uint32(0); b < buckets; b++ {
		if err := r.Seek(4 + int64(b)*8); err != nil {
			return nil, err
		}
		count, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		offset, err := r.ReadU32()
		if err != nil {
			return nil, err
		}

		if err := r.Seek(int64(offset)); err != nil {
			return nil, err
		}
		for i := uint32(0); i < count; i++ {
			n, err := r.ReadU8()
			if err != nil {
				return nil, fmt.Errorf("label bucket %d: %w", b, err)
			}
			name, err := r.ReadBytes(int(n))
			if err != nil {
				return nil, fmt.Errorf("label bucket %d: %w", b, err)
			}
			index, err := r.ReadU32()
			if err != nil {
				return nil, fmt.Errorf("label bucket %d: %w", b, err)
			}
			if prev, ok := labels[index]; ok {
				return nil, fmt.Errorf("message %d has two labels: %q and %q", index, prev, name)
			}
			labels[index] = string(name)
		}
	}
	return labels, nil
}

// buildLabels writes an LBL1 section body. labels[i] names message i.
func buildLabels(labels []string, buckets uint32) ([]byte, error) {
	groups := make([][]int, buckets)
	for i, l := range labels {
		if l == "" || len(l) > 255 {
			return nil, fmt.Errorf("label %q must be 1 to 255 bytes", l)
		}
		h := LabelHash(l, buckets)
		groups[h] = append(groups[h], i)
	}

	w := binio.NewWriter()
	if err := w.WriteU32(buckets); err != nil {
		return nil, err
	}
	offset := 4 + int(buckets)*8
	for _, g := range groups {
		if err := w.WriteU32(uint32(len(g))); err != nil {
			return nil, err
		}
		if err := w.WriteU32(uint32(offset)); err != nil {
			return nil, err
		}
		for _, i := range g {
			offset += 1 + len(labels[i]) + 4
		}
	}

	for _, g := range groups {
		for _, i := range g {
			if err := w.WriteU8(uint8(len(labels[i]))); err != nil {
				return nil, err
			}
			if err := w.Write([]byte(labels[i])); err != nil {
				return nil, err
			}
			if err := w.WriteU32(uint32(i)); err != nil {
				return nil, err
			}
		}
	}
	return w.Bytes(), nil
}
