package nmea0183

// RMC is the Recommended Minimum Navigation Information sentence.
//
// Payload layout (field 0 is the first field after the talker/type prefix):
//
//	0: fix time (hhmmss.ss)
//	1: status (A=active, V=void)
//	2: latitude (ddmm.mmmm)
//	3: N/S
//	4: longitude (dddmm.mmmm)
//	5: E/W
//	6: speed over ground (knots)
//	7: course over ground (deg)
//	8: date (ddmmyy)
//	9: magnetic variation (deg)
//	10: variation E/W
//
// NMEA 2.3 appends an FAA mode indicator and 4.11 a navigation status. Those
// trailing fields exist on the record only when the matching build tag
// (nmea23, nmea411) is set; under an older dialect the type has no such field
// at all.
type RMC struct {
	FixTime           *TimeOfDay
	Status            Status
	Location          *Location
	SpeedOverGround   *float64 // knots
	CourseOverGround  *float64 // degrees
	FixDate           *Date
	MagneticVariation *float64 // degrees, west negative
	rmcExt
}

// DecodeRMC decodes the comma-split, checksum-stripped payload of one RMC
// sentence. Fields beyond the active dialect's last slot are ignored.
func DecodeRMC(fields []string) (RMC, error) {
	return decodeRecord(rmcSlots, fields)
}

var rmcSlots = append([]slot[RMC]{
	{"fix_time", func(r *RMC, f *fieldSeq) (err error) {
		r.FixTime, err = optTimeOfDay(f)
		return
	}},
	{"status", func(r *RMC, f *fieldSeq) (err error) {
		r.Status, err = decodeStatus(f)
		return
	}},
	{"location", func(r *RMC, f *fieldSeq) (err error) {
		r.Location, err = decodeLocation(f)
		return
	}},
	{"speed_over_ground", func(r *RMC, f *fieldSeq) (err error) {
		r.SpeedOverGround, err = optFloat(f)
		return
	}},
	{"course_over_ground", func(r *RMC, f *fieldSeq) (err error) {
		r.CourseOverGround, err = optFloat(f)
		return
	}},
	{"fix_date", func(r *RMC, f *fieldSeq) (err error) {
		r.FixDate, err = optDate(f)
		return
	}},
	{"magnetic_variation", func(r *RMC, f *fieldSeq) (err error) {
		r.MagneticVariation, err = decodeMagneticVariation(f)
		return
	}},
}, rmcExtSlots()...)

// decodeMagneticVariation consumes the variation magnitude and its E/W letter.
// The grammar is a two-branch choice tried in fixed order: an empty magnitude
// is absent (whatever the direction field holds), otherwise the direction must
// be E or W, with W negating.
func decodeMagneticVariation(f *fieldSeq) (*float64, error) {
	mag, magPos, err := f.next()
	if err != nil {
		return nil, err
	}
	dir, dirPos, err := f.next()
	if err != nil {
		return nil, err
	}
	if mag == "" {
		return nil, nil
	}
	v, err := parseWireFloat(mag)
	if err != nil {
		return nil, fieldErr(magPos, mag, ErrMalformedScalar)
	}
	switch dir {
	case "E":
	case "W":
		v = -v
	default:
		return nil, fieldErr(dirPos, dir, ErrInvalidDirection)
	}
	return &v, nil
}
