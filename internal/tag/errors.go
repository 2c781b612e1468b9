package tag

import "fmt"

// FormatError reports a malformed binary tag record. Offset is the
// position of the record header in the source buffer.
type FormatError struct {
	Offset int64
	Msg    string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (tag at 0x%X): %v", e.Msg, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s (tag at 0x%X)", e.Msg, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Err }

// SyntaxError reports a malformed textual tag. Tag is the tag text as
// given, without the surrounding brackets.
type SyntaxError struct {
	Tag string
	Msg string
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v. Full tag was '%s'", e.Msg, e.Err, e.Tag)
	}
	return fmt.Sprintf("%s. Full tag was '%s'", e.Msg, e.Tag)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func syntaxErrorf(tag string, format string, args ...any) *SyntaxError {
	return &SyntaxError{Tag: tag, Msg: fmt.Sprintf(format, args...)}
}
