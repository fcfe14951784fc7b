package nmea0183

// GGA is the Global Positioning System Fix Data sentence.
//
// Payload layout:
//
//	0: fix time (hhmmss.ss)
//	1: latitude (ddmm.mmmm)
//	2: N/S
//	3: longitude (dddmm.mmmm)
//	4: E/W
//	5: fix quality (0-8)
//	6: satellites in use
//	7: HDOP
//	8: altitude above MSL
//	9: altitude units (M)
//	10: geoidal separation
//	11: separation units (M)
//	12: age of DGPS data (seconds)
//	13: DGPS reference station id
type GGA struct {
	FixTime         *TimeOfDay
	Location        *Location
	Quality         FixQuality
	Satellites      *int
	HDOP            *float64
	Altitude        *float64 // meters above mean sea level
	GeoidSeparation *float64 // meters
	DGPSAge         *float64 // seconds
	DGPSStationID   string   // empty when absent
}

// DecodeGGA decodes the comma-split, checksum-stripped payload of one GGA
// sentence. Fields beyond the last slot are ignored.
func DecodeGGA(fields []string) (GGA, error) {
	return decodeRecord(ggaSlots, fields)
}

var ggaSlots = []slot[GGA]{
	{"fix_time", func(r *GGA, f *fieldSeq) (err error) {
		r.FixTime, err = optTimeOfDay(f)
		return
	}},
	{"location", func(r *GGA, f *fieldSeq) (err error) {
		r.Location, err = decodeLocation(f)
		return
	}},
	{"quality", func(r *GGA, f *fieldSeq) (err error) {
		r.Quality, err = decodeFixQuality(f)
		return
	}},
	{"satellites", func(r *GGA, f *fieldSeq) (err error) {
		r.Satellites, err = optInt(f)
		return
	}},
	{"hdop", func(r *GGA, f *fieldSeq) (err error) {
		r.HDOP, err = optFloat(f)
		return
	}},
	{"altitude", func(r *GGA, f *fieldSeq) (err error) {
		r.Altitude, err = decodeMeters(f)
		return
	}},
	{"geoid_separation", func(r *GGA, f *fieldSeq) (err error) {
		r.GeoidSeparation, err = decodeMeters(f)
		return
	}},
	{"dgps_age", func(r *GGA, f *fieldSeq) (err error) {
		r.DGPSAge, err = optFloat(f)
		return
	}},
	{"dgps_station", func(r *GGA, f *fieldSeq) (err error) {
		r.DGPSStationID, err = optString(f)
		return
	}},
}

// decodeMeters consumes a value field and its unit letter. A non-empty value
// requires the unit M; an empty value is absent whatever the unit field holds.
func decodeMeters(f *fieldSeq) (*float64, error) {
	val, valPos, err := f.next()
	if err != nil {
		return nil, err
	}
	unit, unitPos, err := f.next()
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, nil
	}
	v, err := parseWireFloat(val)
	if err != nil {
		return nil, fieldErr(valPos, val, ErrMalformedScalar)
	}
	if unit != "M" {
		return nil, fieldErr(unitPos, unit, ErrUnknownCode)
	}
	return &v, nil
}
