// util/generic_test.go
// Copyright(c) 2025 advisory contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"slices"
	"testing"
)

func TestSelect(t *testing.T) {
	if Select(true, 1, 2) != 1 {
		t.Errorf("select true failed")
	}
	if Select(false, "a", "b") != "b" {
		t.Errorf("select false failed")
	}
}

func TestMapFilterSlice(t *testing.T) {
	doubled := MapSlice([]int{1, 2, 3}, func(v int) int { return 2 * v })
	if !slices.Equal(doubled, []int{2, 4, 6}) {
		t.Errorf("mapSlice gave %v", doubled)
	}

	odd := FilterSlice([]int{1, 2, 3, 4, 5}, func(v int) bool { return v&1 == 1 })
	if !slices.Equal(odd, []int{1, 3, 5}) {
		t.Errorf("filterSlice gave %v", odd)
	}
}

func TestSortedMapKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	if !slices.Equal(SortedMapKeys(m), []string{"a", "b", "c"}) {
		t.Errorf("sortedMapKeys gave %v", SortedMapKeys(m))
	}
}
