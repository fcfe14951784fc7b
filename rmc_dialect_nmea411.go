//go:build nmea411 && !nmea23

package nmea0183

// NMEA 4.11 dialect without the 2.3 field set: RMC carries a trailing
// navigation status.
type rmcExt struct {
	NavStatus *NavStatus
}

func rmcExtSlots() []slot[RMC] {
	return []slot[RMC]{
		{"nav_status", func(r *RMC, f *fieldSeq) (err error) {
			r.NavStatus, err = decodeNavStatus(f)
			return
		}},
	}
}
