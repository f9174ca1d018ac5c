package motion

import (
	"errors"
	"math"
	"testing"
)

func mustDesignSpring(t *testing.T, dampingRatio, frequencyResponse float64) Spring {
	t.Helper()
	s, err := DesignSpring(dampingRatio, frequencyResponse)
	if err != nil {
		t.Fatalf("DesignSpring(%v, %v) error = %v", dampingRatio, frequencyResponse, err)
	}
	return s
}

func TestDesignSpringRoundTrip(t *testing.T) {
	cases := []struct {
		ratio    float64
		response float64
	}{
		{0, 0.5},
		{0.25, 0.5},
		{0.85, 1.2},
		{1, 0.5},
		{1.5, 2},
		{3, 0.05},
	}
	for _, c := range cases {
		s := mustDesignSpring(t, c.ratio, c.response)
		if got := s.DampingRatio(); math.Abs(got-c.ratio) > 1e-6 {
			t.Fatalf("DampingRatio() = %v, want %v", got, c.ratio)
		}
		if got := s.FrequencyResponse(); math.Abs(got-c.response) > 1e-6 {
			t.Fatalf("FrequencyResponse() = %v, want %v", got, c.response)
		}
	}
}

func TestDesignSpringDerivedQuantities(t *testing.T) {
	s := mustDesignSpring(t, 0.5, 1)

	wantOmega := 2 * math.Pi
	if got := s.UndampedNaturalFrequency(); math.Abs(got-wantOmega) > 1e-9 {
		t.Fatalf("UndampedNaturalFrequency() = %v, want %v", got, wantOmega)
	}
	wantDamped := wantOmega * math.Sqrt(1-0.25)
	if got := s.DampedNaturalFrequency(); math.Abs(got-wantDamped) > 1e-9 {
		t.Fatalf("DampedNaturalFrequency() = %v, want %v", got, wantDamped)
	}
	if got := s.Mass(); got != 1 {
		t.Fatalf("Mass() = %v, want 1", got)
	}
}

func TestNewSpringRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name                      string
		mass, stiffness, damping float64
	}{
		{"zero mass", 0, 100, 1},
		{"negative mass", -1, 100, 1},
		{"zero stiffness", 1, 0, 1},
		{"negative stiffness", 1, -5, 1},
		{"negative damping", 1, 100, -0.1},
	}
	for _, c := range cases {
		if _, err := NewSpring(c.mass, c.stiffness, c.damping); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%s: NewSpring error = %v, want ErrInvalidParameter", c.name, err)
		}
	}
}

func TestDesignSpringRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name            string
		ratio, response float64
	}{
		{"negative ratio", -0.1, 0.5},
		{"zero response", 1, 0},
		{"negative response", 1, -2},
	}
	for _, c := range cases {
		if _, err := DesignSpring(c.ratio, c.response); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%s: DesignSpring error = %v, want ErrInvalidParameter", c.name, err)
		}
	}
}

func TestPositionAtZeroIsInitialPosition(t *testing.T) {
	ratios := []float64{0, 0.25, 1, 1.0001, 2.5}
	conditions := []struct{ s0, v0 float64 }{
		{0, 0}, {1, 0}, {-3, 10}, {0.5, -7},
	}
	for _, r := range ratios {
		s := mustDesignSpring(t, r, 0.5)
		for _, ic := range conditions {
			if got := s.Position(0, ic.s0, ic.v0); math.Abs(got-ic.s0) > 1e-12 {
				t.Fatalf("ratio %v: Position(0, %v, %v) = %v, want %v", r, ic.s0, ic.v0, got, ic.s0)
			}
		}
	}
}

func TestPositionCriticalDampingIsLimitOfBothRegimes(t *testing.T) {
	const delta = 1e-5 // outside the critical tolerance, so the under/over branches run
	critical := mustDesignSpring(t, 1, 0.5)
	under := mustDesignSpring(t, 1-delta, 0.5)
	over := mustDesignSpring(t, 1+delta, 0.5)

	for _, tm := range []float64{0.02, 0.05, 0.1, 0.5, 1} {
		want := critical.Position(tm, 1, 0)
		if got := under.Position(tm, 1, 0); math.Abs(got-want) > 1e-4 {
			t.Fatalf("underdamped limit at t=%v: got %v, want %v", tm, got, want)
		}
		if got := over.Position(tm, 1, 0); math.Abs(got-want) > 1e-4 {
			t.Fatalf("overdamped limit at t=%v: got %v, want %v", tm, got, want)
		}
	}
}

func TestPositionUnderdampedOscillates(t *testing.T) {
	s := mustDesignSpring(t, 0.25, 0.5)

	if got := s.Position(0, 1, 0); got != 1 {
		t.Fatalf("Position(0, 1, 0) = %v, want 1", got)
	}

	crossed := false
	prev := s.Position(0, 1, 0)
	for tm := 0.01; tm < 2; tm += 0.01 {
		cur := s.Position(tm, 1, 0)
		if prev > 0 && cur < 0 || prev < 0 && cur > 0 {
			crossed = true
			break
		}
		prev = cur
	}
	if !crossed {
		t.Fatal("expected underdamped response to cross zero before t=2")
	}
}

func TestMaxDisplacementCriticallyDamped(t *testing.T) {
	s := mustDesignSpring(t, 1, 0.5)

	// Peak at t* = 1/λ, so |s(t*)| = v0/(λ·e) with λ = ωn = 2π/0.5.
	lambda := s.UndampedNaturalFrequency()
	want := 100 / (lambda * math.E)
	if got := s.MaxDisplacement(100); math.Abs(got-want) > 1e-9 {
		t.Fatalf("MaxDisplacement(100) = %v, want %v", got, want)
	}
}

func TestMaxDisplacementContinuousAcrossCriticalBoundary(t *testing.T) {
	critical := mustDesignSpring(t, 1, 0.5)
	nearOver := mustDesignSpring(t, 1+1e-5, 0.5)

	a := critical.MaxDisplacement(100)
	b := nearOver.MaxDisplacement(100)
	if math.Abs(a-b) > 1e-3 {
		t.Fatalf("peak displacement jumps across ζ=1: critical %v, ζ=1+1e-5 %v", a, b)
	}
}

func TestMaxDisplacementZeroVelocity(t *testing.T) {
	for _, r := range []float64{0.3, 1, 2} {
		s := mustDesignSpring(t, r, 0.5)
		if got := s.MaxDisplacement(0); got != 0 {
			t.Fatalf("ratio %v: MaxDisplacement(0) = %v, want 0", r, got)
		}
	}
}
