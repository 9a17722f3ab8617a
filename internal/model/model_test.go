package model

import "testing"

func TestGridPosition(t *testing.T) {
	cases := []struct {
		index int
		x, y  float64
	}{
		{0, 100, 100},
		{1, 250, 100},
		{4, 700, 100},
		{5, 100, 250},
		{9, 700, 250},
		{10, 100, 400},
		{12, 400, 400},
	}
	for _, tc := range cases {
		x, y := GridPosition(tc.index)
		if x != tc.x || y != tc.y {
			t.Errorf("GridPosition(%d) = (%v, %v), want (%v, %v)", tc.index, x, y, tc.x, tc.y)
		}
	}
}

func TestEventStatsRemaining(t *testing.T) {
	stats := EventStats{TotalCapacity: 40, AssignedGuests: 12}
	if got := stats.Remaining(); got != 28 {
		t.Fatalf("expected 28 remaining seats, got %d", got)
	}
}

func TestEventStatsRemainingGoesNegative(t *testing.T) {
	// Capacity is advisory, so over-assignment must surface as a negative
	// remainder rather than being clamped to zero.
	stats := EventStats{TotalCapacity: 8, AssignedGuests: 11}
	if got := stats.Remaining(); got != -3 {
		t.Fatalf("expected -3 remaining seats, got %d", got)
	}
}
