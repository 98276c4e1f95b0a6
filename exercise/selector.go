// exercise/selector.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package exercise

import (
	"golang.org/x/exp/constraints"

	"github.com/atcbasics/advisory/rand"
	"github.com/atcbasics/advisory/util"
)

// weightedChoice draws one option from a weight map with probability
// proportional to its weight.  Options are visited in sorted order so
// that generation is reproducible under a seeded Rand.  Returns
// ErrInvalidWeights if the map is empty or no option has positive weight;
// that is a caller programming error, not something to retry.
func weightedChoice[T constraints.Ordered](r *rand.Rand, weights map[T]int) (T, error) {
	opts := util.SortedMapKeys(weights)
	v, ok := rand.SampleWeighted(r, opts, func(o T) int { return weights[o] })
	if !ok {
		var zero T
		return zero, ErrInvalidWeights
	}
	return v, nil
}
