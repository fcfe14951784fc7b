package nmea0183

import "errors"

// A slot binds one named record position to the decoder that fills it. Each
// decoder pulls however many wire fields it needs from the cursor, so the
// table carries no field widths; order alone defines the layout.
type slot[R any] struct {
	name   string
	decode func(*R, *fieldSeq) error
}

// decodeRecord walks the slot table exactly once, left to right, threading the
// unconsumed remainder of the field sequence from slot to slot. The first
// failing slot aborts the decode; no partially populated record escapes.
// Fields beyond the last slot are ignored.
func decodeRecord[R any](slots []slot[R], fields []string) (R, error) {
	var rec R
	f := newFieldSeq(fields)
	for _, s := range slots {
		if err := s.decode(&rec, f); err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				fe.Slot = s.name
			}
			var zero R
			return zero, err
		}
	}
	return rec, nil
}
