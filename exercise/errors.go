// exercise/errors.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package exercise

import "errors"

var (
	ErrInvalidWeights              = errors.New("Invalid weights: no positive-weight option")
	ErrScenarioGenerationExhausted = errors.New("Scenario generation retry budget exhausted")
	ErrInvariantViolation          = errors.New("Generated exercise violates an invariant")
)
