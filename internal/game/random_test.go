package game

import (
	"math"
	"testing"
)

func TestPseudoRandomDeterministic(t *testing.T) {
	for seed := -50; seed < 500; seed++ {
		a := PseudoRandom(seed)
		b := PseudoRandom(seed)
		if a != b {
			t.Fatalf("expected deterministic value for seed %d: %v != %v", seed, a, b)
		}
		if a < 0 || a >= 1 {
			t.Fatalf("expected value in [0,1) for seed %d, got %v", seed, a)
		}
	}
}

func TestPseudoRandomMatchesSineFormula(t *testing.T) {
	if got := PseudoRandom(0); got != 0 {
		t.Fatalf("expected seed 0 to map to 0, got %v", got)
	}
	x := math.Sin(1) * 10000
	want := x - math.Floor(x)
	if got := PseudoRandom(1); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := PseudoRandom(1); math.Abs(got-0.709848078965) > 1e-9 {
		t.Fatalf("expected frac(sin(1)*10000) ~ 0.70985, got %v", got)
	}
}

func TestPseudoRandomVariesWithSeed(t *testing.T) {
	if PseudoRandom(99) == PseudoRandom(100) {
		t.Fatalf("expected different values for neighbouring seeds")
	}
}

func TestRoundToRoundsHalfUp(t *testing.T) {
	tests := []struct {
		in     float64
		places int
		want   float64
	}{
		{in: 2.5, places: 0, want: 3},
		{in: -2.5, places: 0, want: -2},
		{in: 1.23449, places: 3, want: 1.234},
		{in: 10.0006, places: 3, want: 10.001},
	}
	for _, tc := range tests {
		got := roundTo(tc.in, tc.places)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("roundTo(%v, %d)=%v want=%v", tc.in, tc.places, got, tc.want)
		}
	}
}

func TestDistanceBetween(t *testing.T) {
	if got := distanceBetween(0, 0, 3, 4); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
	if got := distanceBetween(7, 7, 7, 7); got != 0 {
		t.Fatalf("expected 0 for identical points, got %v", got)
	}
}
