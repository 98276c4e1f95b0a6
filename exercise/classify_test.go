// exercise/classify_test.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package exercise

import (
	"testing"

	av "github.com/atcbasics/advisory/aviation"
	"github.com/atcbasics/advisory/math"
)

func TestClassifyDirection(t *testing.T) {
	type cd struct {
		delta, sign, ts, is float32
		dir                 TrafficDirection
	}

	for _, c := range []cd{
		// Overtaking takes precedence over converging when the intruder
		// is faster, up to and including 45 degrees.
		cd{10, 0, 140, 200, DirectionOvertaking},
		cd{45, 1, 140, 200, DirectionOvertaking},
		cd{10, 0, 200, 140, DirectionConverging},
		cd{44.9, -1, 140, 140, DirectionConverging},
		// At 45 degrees with no speed advantage the crossing bands take
		// over, split by the sign.
		cd{45, 1, 140, 140, DirectionCrossingLeftToRight},
		cd{45, -1, 140, 140, DirectionCrossingRightToLeft},
		cd{90, 150, 120, 150, DirectionCrossingLeftToRight},
		cd{90, -150, 120, 150, DirectionCrossingRightToLeft},
		cd{135, 0, 120, 150, DirectionCrossingLeftToRight},
		cd{135.1, 1, 120, 150, DirectionOpposite},
		cd{180, 0, 120, 120, DirectionOpposite},
	} {
		if dir := ClassifyDirection(c.delta, c.sign, c.ts, c.is); dir != c.dir {
			t.Errorf("delta %.1f sign %.0f speeds %.0f/%.0f: got %s, expected %s",
				c.delta, c.sign, c.ts, c.is, dir, c.dir)
		}
	}
}

// Northbound target at 120 kts; eastbound intruder at 150 kts eight miles
// out on the 045 bearing.  The crossing geometry puts it left to right at
// the target's two o'clock.
func TestClassifyCrossingScenario(t *testing.T) {
	target := &Aircraft{
		Callsign: "N123AB", Rules: av.FlightRulesVFR,
		Heading: 0, Speed: 120,
	}
	intruder := &Aircraft{
		Position: math.HeadingVector(45, 8),
		Heading:  90, Speed: 150,
	}

	sit := Classify(target, intruder)
	if sit.Direction != DirectionCrossingLeftToRight {
		t.Errorf("direction %s, expected crossing-left-to-right", sit.Direction)
	}
	if sit.Clock != 2 {
		t.Errorf("clock %d, expected 2", sit.Clock)
	}
	if math.Abs(sit.Distance-8) > 0.05 {
		t.Errorf("distance %f, expected 8", sit.Distance)
	}
	if s := CrossingSign(target, intruder); s <= 0 {
		t.Errorf("crossing sign %f, expected positive", s)
	}
}

// Northbound target at 140 kts with a nearly-parallel 200 kt intruder
// dead ahead: an overtake at twelve o'clock.
func TestClassifyOvertakingScenario(t *testing.T) {
	target := &Aircraft{Heading: 0, Speed: 140}
	intruder := &Aircraft{
		Position: math.HeadingVector(0, 5),
		Heading:  358, Speed: 200,
	}

	sit := Classify(target, intruder)
	if sit.Direction != DirectionOvertaking {
		t.Errorf("direction %s, expected overtaking", sit.Direction)
	}
	if sit.Clock != 12 {
		t.Errorf("clock %d, expected 12", sit.Clock)
	}
}

func TestVerticalPhrase(t *testing.T) {
	target := &Aircraft{Level: 5000}

	type vp struct {
		level float32
		lc    *LevelChange
		text  string
	}

	for _, c := range []vp{
		vp{6000, nil, "above"},
		vp{4000, nil, "below"},
		vp{5000, nil, "same altitude"},
		vp{6000, &LevelChange{Direction: LevelChangeDescend, TargetLevel: 4000},
			"above, descending through your altitude"},
		vp{4000, &LevelChange{Direction: LevelChangeClimb, TargetLevel: 6000},
			"below, climbing through your altitude"},
	} {
		intruder := &Aircraft{Level: c.level, LevelChange: c.lc}
		if s := verticalPhrase(target, intruder); s != c.text {
			t.Errorf("level %.0f: got %q, expected %q", c.level, s, c.text)
		}
	}
}

func TestRenderSolution(t *testing.T) {
	target := &Aircraft{
		Callsign: "N456CD",
		Heading:  0, Speed: 110, Level: 4500,
	}
	intruder := &Aircraft{
		Type:     av.AircraftType{Name: "Cessna Skyhawk", Wake: av.WakeLight},
		Position: math.HeadingVector(60, 7.2),
		Heading:  270, Speed: 115, Level: 5500,
	}

	sit := Classify(target, intruder)
	got := RenderSolution(target, intruder, sit)
	want := "N456CD, traffic, 2 o'clock, 7 miles, crossing right to left, above, Cessna Skyhawk"
	if got != want {
		t.Errorf("solution %q, expected %q", got, want)
	}
}
