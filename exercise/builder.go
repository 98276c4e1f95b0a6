// exercise/builder.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package exercise

import (
	"errors"
	"fmt"
	"log/slog"

	av "github.com/atcbasics/advisory/aviation"
	"github.com/atcbasics/advisory/math"
	"github.com/atcbasics/advisory/rand"
	"github.com/atcbasics/advisory/util"
)

const (
	// Bound on resampling a single sub-decision (e.g. an intruder type
	// fast enough to overtake) before the whole candidate is rejected.
	maxSubRetries = 8

	// Radar trail: five past positions at fifteen-second spacing.
	historyPoints  = 5
	historySeconds = 15
)

// GenerateExercise runs the category-select / kinematic-solve / validate
// loop until a candidate passes or the retry budget is exhausted, then
// returns the frozen exercise.  Exhausting the budget returns
// ErrScenarioGenerationExhausted; an inconsistent exercise is never
// returned.
func (g *Generator) GenerateExercise() (*Exercise, error) {
	for try := 0; try < g.config.MaxRetries; try++ {
		ex, err := g.buildCandidate()
		if err != nil {
			if errors.Is(err, ErrInvalidWeights) {
				return nil, err
			}
			g.lg.Debug("rejected scenario candidate",
				slog.Int("try", try), slog.String("reason", err.Error()))
			continue
		}

		// The candidate passed the builder's targeted checks; the full
		// oracle has the final say.  Numerically borderline geometry
		// (e.g. a projected separation that only ties the current one
		// at float32 precision) can still fail it, so a failure here is
		// one more reject, not an error.
		if err := Validate(ex); err != nil {
			g.lg.Debug("rejected scenario candidate",
				slog.Int("try", try), slog.String("reason", err.Error()))
			continue
		}
		return ex.Clone(), nil
	}
	return nil, ErrScenarioGenerationExhausted
}

// buildCandidate makes one attempt: select a category, solve kinematics
// inside its constraint band, and verify that the realized geometry
// classifies back to the category and is converging.  The returned error
// is a reject reason for the retry loop.
func (g *Generator) buildCandidate() (*Exercise, error) {
	r := g.Rand

	rules, err := weightedChoice(r, g.config.FlightRuleWeights)
	if err != nil {
		return nil, err
	}
	if rules != av.FlightRulesVFR && rules != av.FlightRulesIFR {
		return nil, fmt.Errorf("cannot build a scenario under %s flight rules", rules)
	}
	direction, err := weightedChoice(r, g.config.DirectionWeights)
	if err != nil {
		return nil, err
	}

	target := g.makeTarget(rules)
	intruder, err := g.makeIntruder(&target, direction)
	if err != nil {
		return nil, err
	}

	// Re-derive the classification from the realized geometry; boundary
	// sampling can land a candidate in the neighboring band.
	sit := Classify(&target, intruder)
	if sit.Direction != direction {
		return nil, fmt.Errorf("geometry classified as %s, wanted %s", sit.Direction, direction)
	}

	if !Converging(&target, intruder) {
		return nil, fmt.Errorf("%s geometry is not converging", direction)
	}
	dist := math.Distance2f(target.Position, intruder.Position)
	if cpa, _ := ClosestApproach(&target, intruder); cpa >= dist {
		return nil, fmt.Errorf("closest approach %.1f not inside current separation %.1f", cpa, dist)
	}

	attachHistory(&target)
	attachHistory(intruder)

	return &Exercise{
		Target:    target,
		Intruder:  *intruder,
		Situation: sit,
		Solution:  RenderSolution(&target, intruder, sit),
	}, nil
}

// makeTarget samples the frame-of-reference aircraft: fixed at the
// origin, random heading, cruise speed and level from its type's
// envelope.
func (g *Generator) makeTarget(rules av.FlightRules) Aircraft {
	r := g.Rand
	ty := av.SampleAircraftType(r, rules)
	return Aircraft{
		Callsign: av.SampleCallsign(r, rules),
		Type:     ty,
		Rules:    rules,
		Position: [2]float32{0, 0},
		Heading:  math.NormalizeHeading(r.Float32InRange(0, 360)),
		Speed:    math.Round(r.Float32InRange(ty.Speed.Min, ty.Speed.Max)),
		Level:    g.sampleCruiseLevel(rules, ty),
	}
}

// sampleCruiseLevel picks a cruise altitude appropriate for the flight
// rules, capped by the type's ceiling: VFR at 500-foot steps between
// 3500 and 11500, IFR at 1000-foot steps between 10000 and 41000.
func (g *Generator) sampleCruiseLevel(rules av.FlightRules, ty av.AircraftType) float32 {
	var lvl, step int
	if rules == av.FlightRulesVFR {
		step = 500
		lvl = 3500 + step*g.Rand.Intn(17)
	} else {
		step = 1000
		lvl = 10000 + step*g.Rand.Intn(32)
	}
	if ceil := step * int(ty.Ceiling/float32(step)); lvl > ceil {
		lvl = ceil
	}
	return float32(lvl)
}

// makeIntruder solves for an intruder whose heading delta, crossing side,
// speed, and placement bearing all sit inside the band the chosen
// direction category requires, so that the initial geometry already tends
// to converge and classify correctly.
func (g *Generator) makeIntruder(target *Aircraft, direction TrafficDirection) (*Aircraft, error) {
	r := g.Rand

	ty, speed, err := g.sampleIntruderSpeed(target, direction)
	if err != nil {
		return nil, err
	}

	// Heading delta within the category's band and a placement bearing,
	// relative to the target's nose, from which that geometry closes.
	var heading, relBearing float32
	switch direction {
	case DirectionOvertaking:
		// Near-parallel and behind, closing on speed differential.
		side := rand.Sample(r, float32(1), float32(-1))
		heading = math.NormalizeHeading(target.Heading + side*r.Float32InRange(0, 30))
		relBearing = r.Float32InRange(150, 210)
	case DirectionConverging:
		// Shallow angle, ahead; angle the intruder back toward the
		// target's track so the paths actually meet.
		relBearing = r.Float32InRange(-60, 60)
		delta := r.Float32InRange(10, 40)
		heading = math.NormalizeHeading(target.Heading - math.Sign(relBearing)*delta)
	case DirectionOpposite:
		side := rand.Sample(r, float32(1), float32(-1))
		heading = math.NormalizeHeading(target.Heading + side*r.Float32InRange(141, 180))
		relBearing = r.Float32InRange(-30, 30)
	case DirectionCrossingLeftToRight:
		// Tracking left to right: heading rotated right of the target's,
		// approaching from the left-front quarter.
		heading = math.NormalizeHeading(target.Heading + r.Float32InRange(50, 130))
		relBearing = r.Float32InRange(-75, -15)
	case DirectionCrossingRightToLeft:
		heading = math.NormalizeHeading(target.Heading - r.Float32InRange(50, 130))
		relBearing = r.Float32InRange(15, 75)
	}

	dist := r.Float32InRange(2, 15)
	pos := math.HeadingVector(math.NormalizeHeading(target.Heading+relBearing), dist)

	level, levelChange := g.sampleIntruderLevel(target, ty)

	return &Aircraft{
		Callsign:    av.SampleCallsign(r, target.Rules),
		Type:        ty,
		Rules:       target.Rules,
		Position:    pos,
		Heading:     heading,
		Speed:       speed,
		Level:       level,
		LevelChange: levelChange,
	}, nil
}

// sampleIntruderSpeed picks the intruder's type and speed, resampling the
// type when the category constrains the speed relationship: an overtaking
// intruder must be faster than the target, a converging one must not be.
func (g *Generator) sampleIntruderSpeed(target *Aircraft, direction TrafficDirection) (av.AircraftType, float32, error) {
	r := g.Rand

	switch direction {
	case DirectionOvertaking:
		for i := 0; i < maxSubRetries; i++ {
			ty := av.SampleAircraftType(r, target.Rules)
			if ty.Speed.Max > target.Speed+5 {
				lo := max(ty.Speed.Min, target.Speed+5)
				return ty, math.Round(r.Float32InRange(lo, ty.Speed.Max)), nil
			}
		}
		return av.AircraftType{}, 0, fmt.Errorf("no intruder type fast enough to overtake %.0f kts", target.Speed)
	case DirectionConverging:
		for i := 0; i < maxSubRetries; i++ {
			ty := av.SampleAircraftType(r, target.Rules)
			if ty.Speed.Min <= target.Speed {
				hi := min(ty.Speed.Max, target.Speed)
				return ty, math.Round(r.Float32InRange(ty.Speed.Min, hi)), nil
			}
		}
		return av.AircraftType{}, 0, fmt.Errorf("no intruder type slow enough to converge on %.0f kts", target.Speed)
	default:
		ty := av.SampleAircraftType(r, target.Rules)
		return ty, math.Round(r.Float32InRange(ty.Speed.Min, ty.Speed.Max)), nil
	}
}

// sampleIntruderLevel picks the intruder's level relative to the target
// and sometimes attaches a level change that crosses through the target's
// altitude.  A descent toward the target's exact level is never
// generated.
func (g *Generator) sampleIntruderLevel(target *Aircraft, ty av.AircraftType) (float32, *LevelChange) {
	r := g.Rand
	step := util.Select(target.Rules == av.FlightRulesVFR, float32(500), float32(1000))

	// Weights favor vertical offsets, which make for richer calls.
	rel, _ := rand.SampleWeighted(r, []string{"same", "above", "below"},
		func(s string) int { return util.Select(s == "same", 20, 40) })

	level := target.Level
	if rel == "above" {
		level += step * float32(1+r.Intn(3))
	} else if rel == "below" {
		level -= step * float32(1+r.Intn(3))
	}
	level = math.Clamp(level, 1000, min(45000, step*float32(int(ty.Ceiling/step))))

	var lc *LevelChange
	if level != target.Level && r.Float32() < 0.35 {
		through := step * float32(1+r.Intn(2))
		if level > target.Level && target.Level-through >= 1000 {
			lc = &LevelChange{Direction: LevelChangeDescend, TargetLevel: target.Level - through}
		} else if level < target.Level && target.Level+through <= 45000 {
			lc = &LevelChange{Direction: LevelChangeClimb, TargetLevel: target.Level + through}
		}
	}
	return level, lc
}

// attachHistory back-projects the aircraft's track to fill in its radar
// trail, oldest position first.
func attachHistory(ac *Aircraft) {
	v := ac.Velocity()
	ac.History = make([][2]float32, 0, historyPoints)
	for i := historyPoints; i >= 1; i-- {
		dt := float32(i*historySeconds) / 3600
		ac.History = append(ac.History, math.Sub2f(ac.Position, math.Scale2f(v, dt)))
	}
}
