package nmea0183

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// fieldSeq is a cursor over the comma-split payload of one sentence. Decoders
// pull fields left to right and the cursor advances, so a slot that spans two
// or four wire fields composes with single-field slots without anyone tracking
// widths. A missing field is a truncation error; an empty field is a value.
type fieldSeq struct {
	fields []string
	pos    int
}

func newFieldSeq(fields []string) *fieldSeq { return &fieldSeq{fields: fields} }

// next consumes one field and reports the position it was read from. Fields
// are trimmed; some receivers pad with spaces.
func (f *fieldSeq) next() (string, int, error) {
	if f.pos >= len(f.fields) {
		return "", f.pos, &FieldError{Pos: f.pos, Err: ErrTruncatedSentence}
	}
	v := strings.TrimSpace(f.fields[f.pos])
	pos := f.pos
	f.pos++
	return v, pos, nil
}

// rest is whatever the slot table did not consume. Trailing fields from a
// newer dialect are tolerated, not an error.
func (f *fieldSeq) rest() []string { return f.fields[f.pos:] }

// TimeOfDay is a UTC time of day as carried by hhmmss.ss fields. The wire
// format carries no date; pair it with a Date slot to build an absolute time.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second float64
}

// Date is a calendar date as carried by ddmmyy fields. The two-digit year is
// inherently ambiguous on the wire; this package decodes it as 2000+yy.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// digits reports whether s is non-empty ASCII digit text. The fixed-width
// wire subfields carry no signs or spaces, which strconv alone would accept.
func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// digitsWithFraction reports whether s is digit text with at most one
// embedded decimal fraction, the ss.ss / mm.mmmm subfield shape.
func digitsWithFraction(s string) bool {
	if dot := strings.IndexByte(s, '.'); dot != -1 {
		return digits(s[:dot]) && digits(s[dot+1:])
	}
	return digits(s)
}

// parseWireFloat parses a decimal scalar, optionally signed or exponential.
// strconv alone also admits hex floats and non-finite spellings, which the
// wire grammar does not.
func parseWireFloat(s string) (float64, error) {
	if strings.ContainsAny(s, "xX") {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

// optFloat consumes one field as a decimal scalar, empty meaning absent.
func optFloat(f *fieldSeq) (*float64, error) {
	v, pos, err := f.next()
	if err != nil {
		return nil, err
	}
	if v == "" {
		return nil, nil
	}
	x, err := parseWireFloat(v)
	if err != nil {
		return nil, fieldErr(pos, v, ErrMalformedScalar)
	}
	return &x, nil
}

// optInt consumes one field as a decimal integer, empty meaning absent.
func optInt(f *fieldSeq) (*int, error) {
	v, pos, err := f.next()
	if err != nil {
		return nil, err
	}
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fieldErr(pos, v, ErrMalformedScalar)
	}
	return &n, nil
}

// optString consumes one free-text field, empty meaning absent.
func optString(f *fieldSeq) (string, error) {
	v, _, err := f.next()
	return v, err
}

// optTimeOfDay consumes one hhmmss[.ss] field.
func optTimeOfDay(f *fieldSeq) (*TimeOfDay, error) {
	v, pos, err := f.next()
	if err != nil {
		return nil, err
	}
	if v == "" {
		return nil, nil
	}
	if len(v) < 6 || !digits(v[0:4]) || !digitsWithFraction(v[4:]) {
		return nil, fieldErr(pos, v, ErrMalformedScalar)
	}
	hh, err1 := strconv.Atoi(v[0:2])
	mm, err2 := strconv.Atoi(v[2:4])
	ss, err3 := strconv.ParseFloat(v[4:], 64)
	if err1 != nil || err2 != nil || err3 != nil ||
		hh > 23 || mm > 59 || ss >= 61 {
		return nil, fieldErr(pos, v, ErrMalformedScalar)
	}
	return &TimeOfDay{Hour: hh, Minute: mm, Second: ss}, nil
}

// optDate consumes one ddmmyy field, applying the 2000+yy century rule.
func optDate(f *fieldSeq) (*Date, error) {
	v, pos, err := f.next()
	if err != nil {
		return nil, err
	}
	if v == "" {
		return nil, nil
	}
	if len(v) != 6 || !digits(v) {
		return nil, fieldErr(pos, v, ErrMalformedScalar)
	}
	dd, err1 := strconv.Atoi(v[0:2])
	mm, err2 := strconv.Atoi(v[2:4])
	yy, err3 := strconv.Atoi(v[4:6])
	if err1 != nil || err2 != nil || err3 != nil ||
		dd < 1 || dd > 31 || mm < 1 || mm > 12 {
		return nil, fieldErr(pos, v, ErrMalformedScalar)
	}
	return &Date{Year: 2000 + yy, Month: time.Month(mm), Day: dd}, nil
}
