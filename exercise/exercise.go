// exercise/exercise.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package exercise synthesizes two-aircraft traffic-advisory exercises:
// a frame-of-reference target aircraft at the origin and an intruder whose
// geometry is consistent with straight-line kinematics and maps onto the
// standard traffic-call phraseology (clock position, distance, direction
// of flight, vertical relationship).
package exercise

import (
	"github.com/brunoga/deep"

	av "github.com/atcbasics/advisory/aviation"
	"github.com/atcbasics/advisory/log"
	"github.com/atcbasics/advisory/rand"
)

// LevelChangeDirection says which way an aircraft's altitude is trending.
type LevelChangeDirection int

const (
	LevelChangeClimb LevelChangeDirection = iota
	LevelChangeDescend
)

func (d LevelChangeDirection) String() string {
	return [...]string{"climb", "descend"}[d]
}

// LevelChange describes an in-progress climb or descent toward
// TargetLevel.  For a generated intruder the change always crosses
// through the target aircraft's level, never terminating exactly at it.
type LevelChange struct {
	Direction   LevelChangeDirection `json:"direction"`
	TargetLevel float32              `json:"targetLevel"`
}

// Aircraft is one aircraft of an exercise, expressed in the target
// aircraft's frame: positions in nautical miles with the target at the
// origin and +y along north, headings in degrees, speed in knots, level
// in feet.
type Aircraft struct {
	Callsign av.Callsign     `json:"callsign"`
	Type     av.AircraftType `json:"type"`
	Rules    av.FlightRules  `json:"flightRule"`
	Position [2]float32      `json:"position"`
	Heading  float32         `json:"heading"`
	Speed    float32         `json:"speed"`
	Level    float32         `json:"level"`

	LevelChange *LevelChange `json:"levelChange,omitempty"`

	// History holds past positions along the current track, oldest
	// first, for radar trail display.
	History [][2]float32 `json:"history"`
}

// TrafficDirection is one of the five canonical direction-of-flight
// labels a traffic call uses.
type TrafficDirection int

const (
	DirectionCrossingLeftToRight TrafficDirection = iota
	DirectionCrossingRightToLeft
	DirectionConverging
	DirectionOpposite
	DirectionOvertaking
	NumTrafficDirections
)

func (d TrafficDirection) String() string {
	return [...]string{"crossing-left-to-right", "crossing-right-to-left", "converging",
		"opposite-direction", "overtaking"}[d]
}

// Phrase returns the direction the way it is spoken in a traffic call.
func (d TrafficDirection) Phrase() string {
	return [...]string{"crossing left to right", "crossing right to left", "converging",
		"opposite direction", "overtaking"}[d]
}

// Situation is the classified relationship between target and intruder.
type Situation struct {
	Clock        int              `json:"clock"`    // 1..12
	Distance     float32          `json:"distance"` // nm, one decimal
	Bearing      float32          `json:"bearing"`  // absolute, target to intruder
	Direction    TrafficDirection `json:"direction"`
	VerticalText string           `json:"verticalText"`
}

// Exercise is a complete generated advisory exercise.  It is immutable
// once returned.
type Exercise struct {
	Target    Aircraft  `json:"target"`
	Intruder  Aircraft  `json:"intruder"`
	Situation Situation `json:"situation"`
	Solution  string    `json:"solution"`
}

// Clone returns a deep copy of the exercise, so that collaborators
// (rendering, persistence) can hold one without aliasing anything the
// generator touched.
func (ex *Exercise) Clone() *Exercise {
	c := deep.MustCopy(*ex)
	return &c
}

// Config carries the recognized generation options; zero values select
// the defaults.
type Config struct {
	DirectionWeights  map[TrafficDirection]int
	FlightRuleWeights map[av.FlightRules]int
	MaxRetries        int
}

func DefaultConfig() Config {
	return Config{
		DirectionWeights: map[TrafficDirection]int{
			DirectionCrossingLeftToRight: 20,
			DirectionCrossingRightToLeft: 20,
			DirectionConverging:          20,
			DirectionOpposite:            20,
			DirectionOvertaking:          20,
		},
		FlightRuleWeights: map[av.FlightRules]int{
			av.FlightRulesVFR: 75,
			av.FlightRulesIFR: 25,
		},
		MaxRetries: 100,
	}
}

// Generator produces exercises.  It is not safe for concurrent use;
// parallel callers should each make their own (they are cheap).
type Generator struct {
	config Config
	Rand   *rand.Rand
	lg     *log.Logger
}

func NewGenerator(config Config, lg *log.Logger) *Generator {
	def := DefaultConfig()
	if len(config.DirectionWeights) == 0 {
		config.DirectionWeights = def.DirectionWeights
	}
	if len(config.FlightRuleWeights) == 0 {
		config.FlightRuleWeights = def.FlightRuleWeights
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = def.MaxRetries
	}
	return &Generator{
		config: config,
		Rand:   rand.Make(),
		lg:     lg,
	}
}
