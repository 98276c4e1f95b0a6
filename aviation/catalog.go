// aviation/catalog.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"github.com/atcbasics/advisory/rand"
)

// AircraftType gives the static specification of an aircraft type: its
// spoken name, wake-turbulence category, realistic cruise-speed band, and
// service ceiling.  Weight biases random selection toward the types that
// are common in the corresponding flight-rule regime.
type AircraftType struct {
	ICAO    string
	Name    string
	Wake    WakeCategory
	Speed   SpeedBand
	Ceiling float32 // feet
	Weight  int
}

// SpeedBand is a cruise true-airspeed range in knots.
type SpeedBand struct {
	Min, Max float32
}

// RadioName returns the type name the way a controller would append it to
// a traffic call, with the wake category called out for heavy and super
// aircraft ("Boeing 777 heavy").
func (t AircraftType) RadioName() string {
	switch t.Wake {
	case WakeHeavy:
		return t.Name + " heavy"
	case WakeSuper:
		return t.Name + " super"
	default:
		return t.Name
	}
}

// The catalogs are static lookup data; light general-aviation types fly
// under VFR, airline and corporate types under IFR.  Speed bands and
// ceilings are approximate but realistic for each type.
var vfrAircraft = []AircraftType{
	{ICAO: "C172", Name: "Cessna Skyhawk", Wake: WakeLight, Speed: SpeedBand{95, 125}, Ceiling: 14000, Weight: 30},
	{ICAO: "C182", Name: "Cessna Skylane", Wake: WakeLight, Speed: SpeedBand{120, 145}, Ceiling: 18100, Weight: 15},
	{ICAO: "P28A", Name: "Piper Cherokee", Wake: WakeLight, Speed: SpeedBand{100, 130}, Ceiling: 14000, Weight: 20},
	{ICAO: "BE36", Name: "Beech Bonanza", Wake: WakeLight, Speed: SpeedBand{140, 175}, Ceiling: 18500, Weight: 10},
	{ICAO: "SR22", Name: "Cirrus SR22", Wake: WakeLight, Speed: SpeedBand{145, 180}, Ceiling: 17500, Weight: 15},
	{ICAO: "DA40", Name: "Diamond Star", Wake: WakeLight, Speed: SpeedBand{120, 150}, Ceiling: 16400, Weight: 10},
}

var ifrAircraft = []AircraftType{
	{ICAO: "B738", Name: "Boeing 737", Wake: WakeMedium, Speed: SpeedBand{420, 460}, Ceiling: 41000, Weight: 25},
	{ICAO: "A320", Name: "Airbus A320", Wake: WakeMedium, Speed: SpeedBand{420, 460}, Ceiling: 39100, Weight: 25},
	{ICAO: "E75L", Name: "Embraer 175", Wake: WakeMedium, Speed: SpeedBand{400, 440}, Ceiling: 41000, Weight: 15},
	{ICAO: "CRJ9", Name: "CRJ-900", Wake: WakeMedium, Speed: SpeedBand{400, 440}, Ceiling: 41000, Weight: 10},
	{ICAO: "B77W", Name: "Boeing 777", Wake: WakeHeavy, Speed: SpeedBand{480, 510}, Ceiling: 43100, Weight: 10},
	{ICAO: "B763", Name: "Boeing 767", Wake: WakeHeavy, Speed: SpeedBand{460, 490}, Ceiling: 43000, Weight: 5},
	{ICAO: "C56X", Name: "Citation Excel", Wake: WakeMedium, Speed: SpeedBand{380, 430}, Ceiling: 45000, Weight: 5},
	{ICAO: "BE20", Name: "King Air", Wake: WakeLight, Speed: SpeedBand{260, 300}, Ceiling: 35000, Weight: 5},
}

// TypesForRules returns the aircraft types eligible for the given flight
// rules.  The returned slice is shared static data; callers must not
// modify it.
func TypesForRules(rules FlightRules) []AircraftType {
	if rules == FlightRulesVFR {
		return vfrAircraft
	}
	return ifrAircraft
}

// SampleAircraftType randomly selects an aircraft type for the given
// flight rules, with probability proportional to each type's Weight.
func SampleAircraftType(r *rand.Rand, rules FlightRules) AircraftType {
	t, ok := rand.SampleWeighted(r, TypesForRules(rules), func(t AircraftType) int { return t.Weight })
	if !ok {
		// The static catalogs are non-empty with positive weights.
		panic("aviation: empty aircraft catalog")
	}
	return t
}
