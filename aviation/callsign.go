// aviation/callsign.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"strings"

	"github.com/atcbasics/advisory/rand"
)

// An airline's callsign template: ICAO trigraph plus the formats its
// flight numbers take, where '#' stands for a digit and '@' for a letter.
type airline struct {
	ICAO    string
	Formats []string
}

var airlines = []airline{
	{ICAO: "AAL", Formats: []string{"####", "###"}},
	{ICAO: "UAL", Formats: []string{"####", "###"}},
	{ICAO: "DAL", Formats: []string{"####", "###"}},
	{ICAO: "SWA", Formats: []string{"####"}},
	{ICAO: "JBU", Formats: []string{"####", "###"}},
	{ICAO: "ASA", Formats: []string{"###"}},
	{ICAO: "RPA", Formats: []string{"####"}},
	{ICAO: "FDX", Formats: []string{"####"}},
	{ICAO: "EJA", Formats: []string{"###@@"}},
}

// N-number registration formats for general aviation.
var vfrFormats = []string{"N###@@", "N####@", "N#####"}

var badCallsigns = map[string]any{
	// Callsigns that are best not assigned to training traffic.
	"AAL11":  nil,
	"UAL175": nil,
	"AAL77":  nil,
	"UAL93":  nil,
	"AAL191": nil,
	"AAL587": nil,
	"SWA345": nil,
}

// expandFormat fills in a callsign format template, drawing digits and
// letters from r.  A digit group never starts with 0, and letters exclude
// I and O which can be confused with 1 and 0.
func expandFormat(r *rand.Rand, format string) string {
	var cs strings.Builder
	digits := 0
	for _, ch := range format {
		switch ch {
		case '#':
			if digits == 0 {
				cs.WriteByte(byte('1' + r.Intn(9)))
			} else {
				cs.WriteByte(byte('0' + r.Intn(10)))
			}
			digits++
		case '@':
			const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ"
			cs.WriteByte(letters[r.Intn(len(letters))])
		default:
			cs.WriteRune(ch)
		}
	}
	return cs.String()
}

// SampleCallsign returns a random callsign appropriate for the given
// flight rules: an N-number for VFR, an airline trigraph plus flight
// number for IFR.
func SampleCallsign(r *rand.Rand, rules FlightRules) Callsign {
	for i := 0; i < 100; i++ {
		var cs string
		if rules == FlightRulesVFR {
			cs = expandFormat(r, rand.SampleSlice(r, vfrFormats))
		} else {
			al := rand.SampleSlice(r, airlines)
			cs = al.ICAO + expandFormat(r, rand.SampleSlice(r, al.Formats))
		}
		if _, ok := badCallsigns[cs]; ok {
			continue // nope
		}
		return Callsign(cs)
	}
	// Unreachable in practice; the excluded set is tiny.
	return Callsign("N123AB")
}
