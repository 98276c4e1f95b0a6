// exercise/validate.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package exercise

import (
	"fmt"

	av "github.com/atcbasics/advisory/aviation"
	"github.com/atcbasics/advisory/math"
)

// Validate re-derives every advertised property of an exercise from its
// raw geometry and checks it against the stored situation and solution.
// It is the acceptance oracle: the generator runs it on every candidate
// before returning, and the property tests run it over large batches.
// Failures carry ErrInvariantViolation.
func Validate(ex *Exercise) error {
	t, i := &ex.Target, &ex.Intruder

	if t.Position != ([2]float32{0, 0}) {
		return invariant("target not at origin: %v", t.Position)
	}
	if t.Rules != i.Rules {
		return invariant("mixed flight rules: target %s, intruder %s", t.Rules, i.Rules)
	}
	if t.Rules != av.FlightRulesVFR && t.Rules != av.FlightRulesIFR {
		return invariant("unknown flight rules %d", int(t.Rules))
	}

	for _, ac := range []*Aircraft{t, i} {
		if ac.Speed < 80 || ac.Speed > 600 {
			return invariant("%s: speed %.0f outside [80,600]", ac.Callsign, ac.Speed)
		}
		if ac.Level < 1000 || ac.Level > 45000 {
			return invariant("%s: level %.0f outside [1000,45000]", ac.Callsign, ac.Level)
		}
		if ac.Heading < 0 || ac.Heading >= 360 {
			return invariant("%s: heading %f outside [0,360)", ac.Callsign, ac.Heading)
		}
	}

	dist := math.Distance2f(t.Position, i.Position)
	if dist < 2 || dist > 15 {
		return invariant("separation %.2f outside [2,15]", dist)
	}
	if tol := max(float32(0.5), 0.2*dist); math.Abs(dist-ex.Situation.Distance) > tol {
		return invariant("stored distance %.1f vs actual %.2f exceeds tolerance %.2f",
			ex.Situation.Distance, dist, tol)
	}

	if clock := ClockPosition(t.Position, i.Position, t.Heading); clock != ex.Situation.Clock {
		return invariant("stored clock %d vs derived %d", ex.Situation.Clock, clock)
	}

	dir := ClassifyDirection(math.HeadingDifference(t.Heading, i.Heading),
		CrossingSign(t, i), t.Speed, i.Speed)
	if dir != ex.Situation.Direction {
		return invariant("stored direction %s vs derived %s", ex.Situation.Direction, dir)
	}

	if !Converging(t, i) {
		return invariant("aircraft are not converging")
	}
	// The pair must be strictly closing along the projection: separation
	// five minutes out, or at the closest point of approach if that
	// comes first, is below the current separation.
	cpaDist, cpaHours := ClosestApproach(t, i)
	if cpaDist >= dist {
		return invariant("closest approach %.2f not below separation %.2f", cpaDist, dist)
	}
	if proj := ProjectedDistance(t, i, min(5, cpaHours*60)); proj >= dist {
		return invariant("projected separation %.2f not below current %.2f", proj, dist)
	}

	if lc := i.LevelChange; lc != nil {
		switch lc.Direction {
		case LevelChangeDescend:
			if i.Level < t.Level || lc.TargetLevel >= t.Level {
				return invariant("descent from %.0f to %.0f does not cross target level %.0f",
					i.Level, lc.TargetLevel, t.Level)
			}
		case LevelChangeClimb:
			if i.Level > t.Level || lc.TargetLevel <= t.Level {
				return invariant("climb from %.0f to %.0f does not cross target level %.0f",
					i.Level, lc.TargetLevel, t.Level)
			}
		}
	}

	if ex.Situation.VerticalText != verticalPhrase(t, i) {
		return invariant("stored vertical text %q vs derived %q",
			ex.Situation.VerticalText, verticalPhrase(t, i))
	}
	if want := RenderSolution(t, i, ex.Situation); ex.Solution != want {
		return invariant("stored solution %q vs derived %q", ex.Solution, want)
	}

	return nil
}

func invariant(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
