//go:build nmea23 && !nmea411

package nmea0183

// NMEA 2.3 dialect: RMC carries a trailing FAA mode indicator.
type rmcExt struct {
	FAAMode *FAAMode
}

func rmcExtSlots() []slot[RMC] {
	return []slot[RMC]{
		{"faa_mode", func(r *RMC, f *fieldSeq) (err error) {
			r.FAAMode, err = decodeFAAMode(f)
			return
		}},
	}
}
