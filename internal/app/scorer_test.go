package app_test

import (
	"testing"

	"codefix-quiz-service/internal/app"
)

func TestPointTiers(t *testing.T) {
	cases := []struct {
		seconds int
		want    int
	}{
		{0, 25}, {12, 25}, {14, 25},
		{15, 20}, {29, 20},
		{30, 15}, {44, 15},
		{45, 10}, {50, 10}, {600, 10},
	}
	for _, tc := range cases {
		if got := app.Points(tc.seconds, false, true); got != tc.want {
			t.Fatalf("Points(%d) = %d, want %d", tc.seconds, got, tc.want)
		}
	}
}

func TestScoreIsNonIncreasingOverTime(t *testing.T) {
	prev := app.Points(0, false, true)
	for _, seconds := range []int{10, 20, 40, 50} {
		got := app.Points(seconds, false, true)
		if got > prev {
			t.Fatalf("score increased from %d to %d at %ds", prev, got, seconds)
		}
		prev = got
	}
}

func TestHintPenalty(t *testing.T) {
	for _, seconds := range []int{5, 20, 40, 100} {
		base := app.Points(seconds, false, true)
		withHint := app.Points(seconds, true, true)
		want := base - 5
		if want < 0 {
			want = 0
		}
		if withHint != want {
			t.Fatalf("Points(%d, hint) = %d, want %d", seconds, withHint, want)
		}
	}
}

func TestIncorrectAlwaysZero(t *testing.T) {
	for _, seconds := range []int{0, 10, 44, 1000} {
		for _, hint := range []bool{false, true} {
			if got := app.Points(seconds, hint, false); got != 0 {
				t.Fatalf("Points(%d, hint=%v, incorrect) = %d, want 0", seconds, hint, got)
			}
		}
	}
}

func TestScoreScenarios(t *testing.T) {
	if got := app.Points(12, false, true); got != 25 {
		t.Fatalf("12s no hint = %d, want 25", got)
	}
	if got := app.Points(40, true, true); got != 10 {
		t.Fatalf("40s with hint = %d, want 10", got)
	}
	if got := app.Points(50, true, true); got != 5 {
		t.Fatalf("50s with hint = %d, want 5", got)
	}
}
