package performance

import (
	"math"
	"testing"
)

func TestLinearCappedRatio(t *testing.T) {
	cases := []struct {
		name           string
		target, actual float64
		want           float64
	}{
		{"half of target", 100, 50, 50},
		{"meets target", 80, 80, 100},
		{"exceeds target is capped", 10, 25, 100},
		{"zero target scores zero", 0, 50, 0},
		{"negative target scores zero", -5, 50, 0},
		{"zero actual", 100, 0, 0},
	}
	for _, tc := range cases {
		if got := LinearCapped(tc.target, tc.actual); got != tc.want {
			t.Fatalf("%s: LinearCapped(%v, %v) = %v, want %v", tc.name, tc.target, tc.actual, got, tc.want)
		}
	}
}

func TestWeightedDerivation(t *testing.T) {
	cases := []struct {
		score, weight, want float64
	}{
		{100, 30, 30},
		{75, 40, 30},
		{0, 100, 0},
		{50, 0, 0},
	}
	for _, tc := range cases {
		got := Weighted(tc.score, tc.weight)
		if math.Abs(got-tc.want) > 1e-6 {
			t.Fatalf("Weighted(%v, %v) = %v, want %v", tc.score, tc.weight, got, tc.want)
		}
	}
}

func TestWeightedMatchesDefinitionWithinTolerance(t *testing.T) {
	for score := 0.0; score <= 100; score += 12.5 {
		for weight := 0.0; weight <= 100; weight += 7.5 {
			got := Weighted(score, weight)
			want := score * weight / 100
			if math.Abs(got-want) > 1e-6 {
				t.Fatalf("weighted score drifted: score=%v weight=%v got=%v want=%v", score, weight, got, want)
			}
		}
	}
}

func TestAppealTransitions(t *testing.T) {
	allowed := []struct{ from, to string }{
		{AppealSubmitted, AppealUnderReview},
		{AppealSubmitted, AppealResolved},
		{AppealUnderReview, AppealResolved},
	}
	for _, tc := range allowed {
		if !canTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{AppealResolved, AppealSubmitted},
		{AppealResolved, AppealUnderReview},
		{AppealResolved, AppealResolved},
		{AppealUnderReview, AppealSubmitted},
		{AppealSubmitted, AppealSubmitted},
	}
	for _, tc := range denied {
		if canTransition(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}
