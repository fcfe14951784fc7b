// Package nmea0183 decodes the field payloads of NMEA 0183 sentences into
// typed records.
//
// The package owns field decoding only. It consumes a payload that a framing
// layer has already split on commas, with the talker/type prefix and the
// checksum stripped, and returns either a typed record or a FieldError tagged
// with the zero-based position of the field that failed:
//   - Decode RMC for fix time/status, position, speed, course, date and
//     magnetic variation
//   - Decode GGA for fix quality, satellite count, HDOP and altitude
//   - An empty field is a valid "no value": optional slots decode to nil,
//     never to a zero stand-in
//   - The NMEA 2.3 and 4.11 trailing fields (FAA mode, navigation status)
//     are selected at build time by the nmea23 and nmea411 build tags
//
// Decoding is a pure function over the field slice; the package keeps no
// state between sentences and never retains the caller's strings.
package nmea0183
