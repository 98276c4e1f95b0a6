// math/math_test.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"
)

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Errorf("clamp left 5 alone in [0,10]... not")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Errorf("clamp -1 to [0,10] failed")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Errorf("clamp 11 to [0,10] failed")
	}
}

func TestVectorOps(t *testing.T) {
	a, b := [2]float32{3, 4}, [2]float32{1, -2}

	if s := Add2f(a, b); s != [2]float32{4, 2} {
		t.Errorf("add %v", s)
	}
	if d := Sub2f(a, b); d != [2]float32{2, 6} {
		t.Errorf("sub %v", d)
	}
	if l := Length2f(a); l != 5 {
		t.Errorf("length %f", l)
	}
	if d := Dot(a, b); d != -5 {
		t.Errorf("dot %f", d)
	}
	if n := Normalize2f(a); Abs(Length2f(n)-1) > 0.0001 {
		t.Errorf("normalize length %f", Length2f(n))
	}
	if n := Normalize2f([2]float32{0, 0}); n != [2]float32{0, 0} {
		t.Errorf("normalize zero vector gave %v", n)
	}
}

func TestRotator(t *testing.T) {
	rot := Rotator2f(90)
	p := rot([2]float32{0, 1})
	if Abs(p[0]-1) > 0.0001 || Abs(p[1]) > 0.0001 {
		t.Errorf("rotating north by 90 should give east; got %v", p)
	}

	// Rotating by minus the heading aligns the heading vector with north.
	for _, h := range []float32{30, 120, 200, 340} {
		v := Rotator2f(-h)(HeadingVector(h, 1))
		if Abs(v[0]) > 0.0001 || Abs(v[1]-1) > 0.0001 {
			t.Errorf("rotating heading %f vector into own frame gave %v", h, v)
		}
	}
}
