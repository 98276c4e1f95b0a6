// exercise/classify.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package exercise

import (
	"fmt"

	"github.com/atcbasics/advisory/math"
	"github.com/atcbasics/advisory/util"
)

// ClassifyDirection maps a heading difference (folded to [0,180]), the
// crossing sign, and the two speeds to one of the five traffic-call
// direction labels.  The bands, in precedence order: overtaking for
// near-parallel headings with a faster intruder, converging below 45
// degrees otherwise, crossing between 45 and 135 with the side chosen by
// the sign, opposite direction above 135.
func ClassifyDirection(headingDelta, crossingSign, targetSpeed, intruderSpeed float32) TrafficDirection {
	switch {
	case headingDelta <= 45 && intruderSpeed > targetSpeed:
		return DirectionOvertaking
	case headingDelta < 45:
		return DirectionConverging
	case headingDelta <= 135:
		return util.Select(crossingSign >= 0, DirectionCrossingLeftToRight, DirectionCrossingRightToLeft)
	default:
		return DirectionOpposite
	}
}

// Classify derives the full situation from the realized geometry of the
// two aircraft.
func Classify(target, intruder *Aircraft) Situation {
	dist := math.Distance2f(target.Position, intruder.Position)
	return Situation{
		Clock:        ClockPosition(target.Position, intruder.Position, target.Heading),
		Distance:     math.Round(dist*10) / 10,
		Bearing:      math.Heading2f(target.Position, intruder.Position),
		Direction: ClassifyDirection(math.HeadingDifference(target.Heading, intruder.Heading),
			CrossingSign(target, intruder), target.Speed, intruder.Speed),
		VerticalText: verticalPhrase(target, intruder),
	}
}

// verticalPhrase renders the vertical relationship of the intruder to the
// target, with a trend clause when the intruder is climbing or descending
// through the target's altitude.
func verticalPhrase(target, intruder *Aircraft) string {
	diff := intruder.Level - target.Level

	var s string
	switch {
	case diff > 0:
		s = "above"
	case diff < 0:
		s = "below"
	default:
		s = "same altitude"
	}

	if lc := intruder.LevelChange; lc != nil {
		if lc.Direction == LevelChangeDescend {
			s += ", descending through your altitude"
		} else {
			s += ", climbing through your altitude"
		}
	}
	return s
}

// RenderSolution builds the advisory phraseology for the situation:
// callsign, "traffic", clock position, distance, direction of flight,
// vertical relationship, aircraft type, in that fixed order.
func RenderSolution(target, intruder *Aircraft, sit Situation) string {
	miles := int(math.Round(sit.Distance))
	return fmt.Sprintf("%s, traffic, %d o'clock, %d miles, %s, %s, %s",
		target.Callsign, sit.Clock, miles, sit.Direction.Phrase(), sit.VerticalText,
		intruder.Type.RadioName())
}
