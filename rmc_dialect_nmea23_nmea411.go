//go:build nmea23 && nmea411

package nmea0183

// Combined 2.3 + 4.11 dialect: RMC carries both the FAA mode indicator and
// the navigation status, in that wire order.
type rmcExt struct {
	FAAMode   *FAAMode
	NavStatus *NavStatus
}

func rmcExtSlots() []slot[RMC] {
	return []slot[RMC]{
		{"faa_mode", func(r *RMC, f *fieldSeq) (err error) {
			r.FAAMode, err = decodeFAAMode(f)
			return
		}},
		{"nav_status", func(r *RMC, f *fieldSeq) (err error) {
			r.NavStatus, err = decodeNavStatus(f)
			return
		}},
	}
}
