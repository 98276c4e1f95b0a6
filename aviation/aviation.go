// aviation/aviation.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

type FlightRules int

const (
	FlightRulesUnknown FlightRules = iota
	FlightRulesIFR
	FlightRulesVFR
)

func (f FlightRules) String() string {
	return [...]string{"Unknown", "IFR", "VFR"}[f]
}

// WakeCategory is the ICAO wake-turbulence category of an aircraft type.
type WakeCategory int

const (
	WakeLight WakeCategory = iota
	WakeMedium
	WakeHeavy
	WakeSuper
)

func (w WakeCategory) String() string {
	return [...]string{"Light", "Medium", "Heavy", "Super"}[w]
}

type Callsign string

func (c Callsign) String() string { return string(c) }
