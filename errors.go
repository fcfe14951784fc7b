package nmea0183

import (
	"errors"
	"fmt"
)

// Decode failure kinds. Every error returned by a Decode function is a
// *FieldError wrapping exactly one of these, so callers can classify with
// errors.Is.
var (
	ErrMalformedScalar   = errors.New("malformed scalar")
	ErrInvalidDirection  = errors.New("invalid direction letter")
	ErrTruncatedSentence = errors.New("truncated sentence")
	ErrUnknownCode       = errors.New("unrecognized code")
)

// FieldError reports a decode failure at one wire field. A failure is always
// local to one sentence; the decoder never carries it across sentences.
type FieldError struct {
	Pos  int    // zero-based field position within the payload
	Slot string // record slot being decoded when the failure occurred
	Text string // offending field text, empty for truncation
	Err  error  // one of the Err* kinds
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrTruncatedSentence) {
		return fmt.Sprintf("nmea0183: %s: field %d: %v", e.Slot, e.Pos, e.Err)
	}
	return fmt.Sprintf("nmea0183: %s: field %d %q: %v", e.Slot, e.Pos, e.Text, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(pos int, text string, kind error) error {
	return &FieldError{Pos: pos, Text: text, Err: kind}
}
