package nmea0183

import (
	"strconv"
	"strings"
)

// Location is a geographic coordinate in signed decimal degrees, south and
// west negative.
type Location struct {
	Latitude  float64
	Longitude float64
}

// decodeLocation consumes four wire fields: latitude magnitude, N/S letter,
// longitude magnitude, E/W letter. If either magnitude is empty the whole
// coordinate is absent; a non-empty magnitude requires a hemisphere letter
// from its own axis set.
func decodeLocation(f *fieldSeq) (*Location, error) {
	lat, err := decodeAngle(f, 'N', 'S')
	if err != nil {
		return nil, err
	}
	lon, err := decodeAngle(f, 'E', 'W')
	if err != nil {
		return nil, err
	}
	if lat == nil || lon == nil {
		return nil, nil
	}
	return &Location{Latitude: *lat, Longitude: *lon}, nil
}

// decodeAngle consumes a ddmm.mmmm magnitude field and its hemisphere letter.
// The negative hemisphere (S or W) flips the sign.
func decodeAngle(f *fieldSeq, positive, negative byte) (*float64, error) {
	mag, magPos, err := f.next()
	if err != nil {
		return nil, err
	}
	hemi, hemiPos, err := f.next()
	if err != nil {
		return nil, err
	}
	if mag == "" {
		// Absent magnitude makes the pair absent whatever the letter says.
		return nil, nil
	}
	deg, err := degreesMinutes(mag)
	if err != nil {
		return nil, fieldErr(magPos, mag, ErrMalformedScalar)
	}
	switch {
	case hemi == string(positive):
	case hemi == string(negative):
		deg = -deg
	default:
		return nil, fieldErr(hemiPos, hemi, ErrInvalidDirection)
	}
	return &deg, nil
}

// degreesMinutes converts ddmm.mmmm (degrees and minutes concatenated with no
// separator, longitude uses three degree digits) to decimal degrees. The last
// two digits before the decimal point are whole minutes.
func degreesMinutes(v string) (float64, error) {
	intPart := v
	if dot := strings.IndexByte(v, '.'); dot != -1 {
		intPart = v[:dot]
	}
	// Degrees and minutes are unsigned digit runs; strconv alone would let a
	// leading sign through.
	if len(intPart) < 3 || !digits(intPart) || !digitsWithFraction(v[len(intPart)-2:]) {
		return 0, strconv.ErrSyntax
	}
	deg, err := strconv.Atoi(intPart[:len(intPart)-2])
	if err != nil {
		return 0, strconv.ErrSyntax
	}
	mins, err := strconv.ParseFloat(v[len(intPart)-2:], 64)
	if err != nil {
		return 0, strconv.ErrSyntax
	}
	return float64(deg) + mins/60.0, nil
}
