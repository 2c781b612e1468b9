package ir

import "strings"

// NaturalCompare compares a and b treating runs of ASCII digits as numbers.
// Runs with equal value but different leading zeros fall back to a plain
// string comparison of the runs.
func NaturalCompare(a, b string) int {
	for a != "" && b != "" {
		ra, restA := nextChunk(a)
		rb, restB := nextChunk(b)

		if isDigit(ra[0]) && isDigit(rb[0]) {
			if c := compareNumeric(ra, rb); c != 0 {
				return c
			}
		} else if c := strings.Compare(ra, rb); c != 0 {
			return c
		}
		a, b = restA, restB
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

func compareNumeric(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// nextChunk splits off the leading run of digits or non-digits.
func nextChunk(s string) (chunk, rest string) {
	digit := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digit {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
