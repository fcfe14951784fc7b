//go:build nmea23 && !nmea411

package nmea0183

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeRMC_FAAMode(t *testing.T) {
	rec, err := DecodeRMC(strings.Split("001031.00,A,4404.13993,N,12118.86023,W,0.146,,100117,,,A,V", ","))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.FAAMode == nil || *rec.FAAMode != FAAAutonomous {
		t.Fatalf("expected autonomous FAA mode, got %v", rec.FAAMode)
	}
}

func TestDecodeRMC_EmptyFAAModeAbsent(t *testing.T) {
	rec, err := DecodeRMC(strings.Split(",A,,,,,,,,,,", ","))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.FAAMode != nil {
		t.Fatalf("expected absent FAA mode, got %v", *rec.FAAMode)
	}
}

func TestDecodeRMC_UnknownFAAMode(t *testing.T) {
	_, err := DecodeRMC(strings.Split(",A,,,,,,,,,,X", ","))
	if !errors.Is(err, ErrUnknownCode) {
		t.Fatalf("expected ErrUnknownCode, got %v", err)
	}
}

func TestDecodeRMC_PreDialectSentenceTruncated(t *testing.T) {
	// An 11-field pre-2.3 sentence is short for this build's slot table.
	_, err := DecodeRMC(strings.Split("123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W", ","))
	if !errors.Is(err, ErrTruncatedSentence) {
		t.Fatalf("expected ErrTruncatedSentence, got %v", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Slot != "faa_mode" || fe.Pos != 11 {
		t.Fatalf("unexpected error tag: %+v", fe)
	}
}
