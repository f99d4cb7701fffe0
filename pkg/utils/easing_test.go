package utils

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	fns := map[string]func(float64) float64{
		"EaseOutCubic": EaseOutCubic,
		"EaseOutQuad":  EaseOutQuad,
		"EaseInQuad":   EaseInQuad,
	}
	for name, fn := range fns {
		if got := fn(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestEasingMonotonic(t *testing.T) {
	fns := []func(float64) float64{EaseOutCubic, EaseOutQuad, EaseInQuad}
	for i, fn := range fns {
		prev := fn(0)
		for s := 1; s <= 100; s++ {
			v := fn(float64(s) / 100)
			if v < prev {
				t.Fatalf("fn %d not monotonic at t=%.2f", i, float64(s)/100)
			}
			prev = v
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp(10,20,0.5) = %v, want 15", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(10,20,0) = %v, want 10", got)
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-0.5, 0}, {0, 0}, {0.4, 0.4}, {1, 1}, {3.7, 1},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Errorf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
