//go:build !nmea23 && !nmea411

package nmea0183

// Pre-2.3 dialect: RMC ends at the magnetic variation pair.
type rmcExt struct{}

func rmcExtSlots() []slot[RMC] { return nil }
