// rand/rand.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package rand

import (
	"time"

	"github.com/MichaelTJones/pcg"
)

///////////////////////////////////////////////////////////////////////////
// Random numbers.

// Rand wraps a PCG32 generator. It is not safe for concurrent use; callers
// that generate in parallel should each Make their own.
type Rand struct {
	r *pcg.PCG32
}

// Make returns a new generator seeded from the wall clock.
func Make() *Rand {
	r := &Rand{r: pcg.NewPCG32()}
	r.Seed(time.Now().UnixNano())
	return r
}

// MakeSeeded returns a new generator with the given seed; generation is
// then fully deterministic.
func MakeSeeded(s int64) *Rand {
	r := &Rand{r: pcg.NewPCG32()}
	r.Seed(s)
	return r
}

func (r *Rand) Seed(s int64) {
	r.r.Seed(uint64(s), 0xda3e39cb94b95bdb)
}

func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

// Float32 returns a uniform value in [0,1).  Only the high 24 bits of
// the draw are used; they fill the float32 significand exactly, so the
// largest possible result is 1-2^-24, strictly below one.
func (r *Rand) Float32() float32 {
	return float32(r.r.Random()>>8) / (1 << 24)
}

// Float32InRange returns a uniform value in [low, high).
func (r *Rand) Float32InRange(low, high float32) float32 {
	return low + (high-low)*r.Float32()
}

func (r *Rand) Uint32() uint32 {
	return r.r.Random()
}

// SampleSlice uniformly randomly samples an element of a non-empty slice.
func SampleSlice[T any](r *Rand, slice []T) T {
	return slice[r.Intn(len(slice))]
}

func Sample[T any](r *Rand, t ...T) T {
	return t[r.Intn(len(t))]
}

// SampleFiltered uniformly randomly samples a slice, returning the index
// of the sampled item, using the provided predicate function to filter the
// items that may be sampled.  An index of -1 is returned if the slice is
// empty or the predicate returns false for all items.
func SampleFiltered[T any](r *Rand, slice []T, pred func(T) bool) int {
	idx := -1
	candidates := 0
	for i, v := range slice {
		if pred(v) {
			candidates++
			p := float32(1) / float32(candidates)
			if r.Float32() < p {
				idx = i
			}
		}
	}
	return idx
}

// SampleWeighted randomly samples an element from the given slice with the
// probability of choosing each element proportional to the value returned
// by the provided callback.  The returned Boolean is false if the slice is
// empty or no element has positive weight.  Elements with non-positive
// weight are never chosen; duplicate elements carry independent weight.
func SampleWeighted[T any](r *Rand, slice []T, weight func(T) int) (T, bool) {
	// Weighted reservoir sampling...
	var result T
	ok := false
	sumWt := 0
	for _, v := range slice {
		w := weight(v)
		if w <= 0 {
			continue
		}

		sumWt += w
		p := float32(w) / float32(sumWt)
		if sumWt == w || r.Float32() < p {
			// The first positive-weight element always enters the
			// reservoir; later ones displace it with probability p.
			result = v
			ok = true
		}
	}
	return result, ok
}

func ShuffleSlice[T any](slice []T, r *Rand) {
	for i := len(slice) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		slice[i], slice[j] = slice[j], slice[i]
	}
}
