package nmea0183

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestOptFloat(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		absent  bool
		wantErr bool
	}{
		{in: "0.146", want: 0.146},
		{in: "-3.5", want: -3.5},
		{in: "1e2", want: 100},
		{in: "", absent: true},
		{in: "  ", absent: true},
		{in: "abc", wantErr: true},
		{in: "1.2.3", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "-Inf", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "0x1p2", wantErr: true},
	}
	for _, c := range cases {
		f := newFieldSeq([]string{c.in})
		got, err := optFloat(f)
		if c.wantErr {
			if err == nil {
				t.Fatalf("optFloat(%q): expected error", c.in)
			}
			if !errors.Is(err, ErrMalformedScalar) {
				t.Fatalf("optFloat(%q): expected ErrMalformedScalar, got %v", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("optFloat(%q): unexpected err: %v", c.in, err)
		}
		if c.absent {
			if got != nil {
				t.Fatalf("optFloat(%q): expected absent, got %v", c.in, *got)
			}
			continue
		}
		if got == nil || math.Abs(*got-c.want) > 1e-12 {
			t.Fatalf("optFloat(%q): got %v want %v", c.in, got, c.want)
		}
	}
}

func TestOptTimeOfDay(t *testing.T) {
	f := newFieldSeq([]string{"001031.00"})
	tod, err := optTimeOfDay(f)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tod == nil || tod.Hour != 0 || tod.Minute != 10 || math.Abs(tod.Second-31.0) > 1e-9 {
		t.Fatalf("unexpected time: %+v", tod)
	}

	f = newFieldSeq([]string{"123519"})
	tod, err = optTimeOfDay(f)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tod == nil || tod.Hour != 12 || tod.Minute != 35 || tod.Second != 19 {
		t.Fatalf("unexpected time: %+v", tod)
	}

	if tod, err := optTimeOfDay(newFieldSeq([]string{""})); err != nil || tod != nil {
		t.Fatalf("empty field: got %+v, %v", tod, err)
	}

	// A sign inside the fixed-width digit runs is not a valid hhmmss.ss field.
	for _, bad := range []string{"12", "12351x", "253519", "126019", "123599", "-23519", "+23519", "1235-19", "12351e1"} {
		_, err := optTimeOfDay(newFieldSeq([]string{bad}))
		if !errors.Is(err, ErrMalformedScalar) {
			t.Fatalf("optTimeOfDay(%q): expected ErrMalformedScalar, got %v", bad, err)
		}
	}
}

func TestOptDate(t *testing.T) {
	d, err := optDate(newFieldSeq([]string{"100117"}))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Two-digit years decode with the fixed 2000+yy rule.
	if d == nil || d.Year != 2017 || d.Month != time.January || d.Day != 10 {
		t.Fatalf("unexpected date: %+v", d)
	}

	if d, err := optDate(newFieldSeq([]string{""})); err != nil || d != nil {
		t.Fatalf("empty field: got %+v, %v", d, err)
	}

	for _, bad := range []string{"10011", "1001170", "321117", "101317", "10xx17", "1001-7", "-10117", "+10117"} {
		_, err := optDate(newFieldSeq([]string{bad}))
		if !errors.Is(err, ErrMalformedScalar) {
			t.Fatalf("optDate(%q): expected ErrMalformedScalar, got %v", bad, err)
		}
	}
}

func TestFieldSeq_Truncation(t *testing.T) {
	f := newFieldSeq([]string{"1.0"})
	if _, err := optFloat(f); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := optFloat(f)
	if !errors.Is(err, ErrTruncatedSentence) {
		t.Fatalf("expected ErrTruncatedSentence, got %v", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Pos != 1 {
		t.Fatalf("expected position 1, got %+v", fe)
	}
}

func TestFieldSeq_Rest(t *testing.T) {
	f := newFieldSeq([]string{"a", "b", "c"})
	if _, _, err := f.next(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	rest := f.rest()
	if len(rest) != 2 || rest[0] != "b" || rest[1] != "c" {
		t.Fatalf("unexpected rest: %v", rest)
	}
}
