// exercise/geometry.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package exercise

import (
	"github.com/atcbasics/advisory/math"
)

// ClockPosition returns the 1..12 o'clock sector of the intruder as seen
// from the target: the bearing to the intruder relative to the target's
// heading, in 30-degree sectors centered on each hour.
func ClockPosition(targetPos, intruderPos [2]float32, targetHeading float32) int {
	rel := math.NormalizeHeading(math.Heading2f(targetPos, intruderPos) - targetHeading)
	return math.HeadingAsHour(rel)
}

// Velocity returns an aircraft's velocity vector in knots, +y north.
func (ac *Aircraft) Velocity() [2]float32 {
	return math.HeadingVector(ac.Heading, ac.Speed)
}

// RelativeVelocity returns the intruder's velocity relative to the target.
func RelativeVelocity(target, intruder *Aircraft) [2]float32 {
	return math.Sub2f(intruder.Velocity(), target.Velocity())
}

// Converging reports whether the two aircraft are getting closer: the
// relative velocity has a component back along the separation vector.
func Converging(target, intruder *Aircraft) bool {
	p := math.Sub2f(intruder.Position, target.Position)
	return math.Dot(p, RelativeVelocity(target, intruder)) < 0
}

// CrossingSign resolves the relative velocity into the target's frame and
// returns its lateral component: positive if the intruder is tracking
// left to right across the target's nose, negative for right to left.
func CrossingSign(target, intruder *Aircraft) float32 {
	v := math.Rotator2f(-target.Heading)(RelativeVelocity(target, intruder))
	return v[0]
}

// ProjectedDistance returns the separation after both aircraft fly their
// current velocity for the given number of minutes.
func ProjectedDistance(target, intruder *Aircraft, minutes float32) float32 {
	h := minutes / 60
	tp := math.Add2f(target.Position, math.Scale2f(target.Velocity(), h))
	ip := math.Add2f(intruder.Position, math.Scale2f(intruder.Velocity(), h))
	return math.Distance2f(tp, ip)
}

// ClosestApproach returns the minimum separation between the two aircraft
// under constant-velocity projection and the time until it, in hours.  If
// the aircraft are effectively at fixed relative bearing and range, or the
// closest point is in the past, the current separation is returned with
// time zero.
func ClosestApproach(target, intruder *Aircraft) (float32, float32) {
	p := math.Sub2f(intruder.Position, target.Position)
	rv := RelativeVelocity(target, intruder)

	if math.Length2f(rv) <= 0.1 { // knots
		return math.Length2f(p), 0
	}

	t := -math.Dot(p, rv) / math.Sqr(math.Length2f(rv))
	if t <= 0 {
		return math.Length2f(p), 0
	}
	return math.Length2f(math.Add2f(p, math.Scale2f(rv, t))), t
}
