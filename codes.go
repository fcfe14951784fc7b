package nmea0183

import "strings"

// Status is the position-fix validity indicator carried by RMC (and GLL).
// An empty wire field decodes to StatusUnknown; that is the one documented
// default, any other unlisted character is an error.
type Status byte

const (
	StatusUnknown Status = 0   // field empty on the wire
	StatusActive  Status = 'A' // fix valid
	StatusVoid    Status = 'V' // receiver warning, fix invalid
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusVoid:
		return "void"
	}
	return "unknown"
}

func decodeStatus(f *fieldSeq) (Status, error) {
	v, pos, err := f.next()
	if err != nil {
		return StatusUnknown, err
	}
	switch v {
	case "":
		return StatusUnknown, nil
	case "A":
		return StatusActive, nil
	case "V":
		return StatusVoid, nil
	}
	return StatusUnknown, fieldErr(pos, v, ErrUnknownCode)
}

// FAAMode is the FAA mode indicator appended to several sentences by
// NMEA 0183 2.3.
type FAAMode byte

const (
	FAAAutonomous   FAAMode = 'A'
	FAADifferential FAAMode = 'D'
	FAAEstimated    FAAMode = 'E'
	FAARTKFloat     FAAMode = 'F'
	FAAManual       FAAMode = 'M'
	FAANotValid     FAAMode = 'N'
	FAAPrecise      FAAMode = 'P'
	FAARTKFixed     FAAMode = 'R'
	FAASimulator    FAAMode = 'S'
)

const faaModes = "ADEFMNPRS"

func decodeFAAMode(f *fieldSeq) (*FAAMode, error) {
	v, pos, err := f.next()
	if err != nil {
		return nil, err
	}
	if v == "" {
		return nil, nil
	}
	if len(v) == 1 && strings.IndexByte(faaModes, v[0]) >= 0 {
		m := FAAMode(v[0])
		return &m, nil
	}
	return nil, fieldErr(pos, v, ErrUnknownCode)
}

// NavStatus is the navigation status indicator appended by NMEA 0183 4.11.
type NavStatus byte

const (
	NavSafe     NavStatus = 'S'
	NavCaution  NavStatus = 'C'
	NavUnsafe   NavStatus = 'U'
	NavNotValid NavStatus = 'V'
)

const navStatuses = "SCUV"

func decodeNavStatus(f *fieldSeq) (*NavStatus, error) {
	v, pos, err := f.next()
	if err != nil {
		return nil, err
	}
	if v == "" {
		return nil, nil
	}
	if len(v) == 1 && strings.IndexByte(navStatuses, v[0]) >= 0 {
		n := NavStatus(v[0])
		return &n, nil
	}
	return nil, fieldErr(pos, v, ErrUnknownCode)
}

// FixQuality is the GGA fix quality digit.
type FixQuality int

const (
	FixInvalid    FixQuality = 0
	FixGPS        FixQuality = 1
	FixDGPS       FixQuality = 2
	FixPPS        FixQuality = 3
	FixRTK        FixQuality = 4
	FixRTKFloat   FixQuality = 5
	FixEstimated  FixQuality = 6
	FixManual     FixQuality = 7
	FixSimulation FixQuality = 8
)

// decodeFixQuality accepts the digits 0 through 8. An empty field defaults to
// FixInvalid, matching how an empty status defaults to StatusUnknown.
func decodeFixQuality(f *fieldSeq) (FixQuality, error) {
	v, pos, err := f.next()
	if err != nil {
		return FixInvalid, err
	}
	if v == "" {
		return FixInvalid, nil
	}
	if len(v) == 1 && v[0] >= '0' && v[0] <= '8' {
		return FixQuality(v[0] - '0'), nil
	}
	return FixInvalid, fieldErr(pos, v, ErrUnknownCode)
}
