// Package motion implements the damped harmonic oscillator model and the
// endpoint-projection math that drive fling animations. Everything in the
// package is a pure function over value types: a Spring is immutable once
// constructed, and no call shares state with any other.
package motion

import (
	"fmt"
	"math"
)

// criticalTolerance is the half-width of the band around dampingRatio = 1
// treated as critically damped. The underdamped and overdamped closed forms
// both divide by the damped natural frequency, which vanishes at exactly 1.
const criticalTolerance = 1e-6

// Spring models a damped harmonic oscillator m·s″ + c·s′ + k·s = 0.
// The zero value is not usable; construct with NewSpring or DesignSpring.
type Spring struct {
	mass               float64
	stiffness          float64
	dampingCoefficient float64
}

// NewSpring creates a spring from its physical parameters: mass in kg,
// stiffness in N/m and viscous damping coefficient in N·s/m.
func NewSpring(mass, stiffness, dampingCoefficient float64) (Spring, error) {
	if mass <= 0 {
		return Spring{}, fmt.Errorf("%w: mass must be positive, got %v", ErrInvalidParameter, mass)
	}
	if stiffness <= 0 {
		return Spring{}, fmt.Errorf("%w: stiffness must be positive, got %v", ErrInvalidParameter, stiffness)
	}
	if dampingCoefficient < 0 {
		return Spring{}, fmt.Errorf("%w: damping coefficient must be non-negative, got %v", ErrInvalidParameter, dampingCoefficient)
	}
	return Spring{mass, stiffness, dampingCoefficient}, nil
}

// DesignSpring creates a spring from the designer-facing parameters: the
// damping ratio and the frequency response, i.e. the period in seconds the
// spring would oscillate with if it were undamped. Mass is fixed at 1 and
// the physical parameters are derived, so constructing from a spring's own
// DampingRatio and FrequencyResponse reproduces an equivalent spring.
func DesignSpring(dampingRatio, frequencyResponse float64) (Spring, error) {
	if dampingRatio < 0 {
		return Spring{}, fmt.Errorf("%w: damping ratio must be non-negative, got %v", ErrInvalidParameter, dampingRatio)
	}
	if frequencyResponse <= 0 {
		return Spring{}, fmt.Errorf("%w: frequency response must be positive, got %v", ErrInvalidParameter, frequencyResponse)
	}
	mass := 1.0
	stiffness := math.Pow(2*math.Pi/frequencyResponse, 2) * mass
	dampingCoefficient := 4 * math.Pi * dampingRatio * mass / frequencyResponse
	return Spring{mass, stiffness, dampingCoefficient}, nil
}

// Mass returns the oscillating mass.
func (s Spring) Mass() float64 { return s.mass }

// Stiffness returns the spring constant k.
func (s Spring) Stiffness() float64 { return s.stiffness }

// DampingCoefficient returns the viscous damping coefficient c.
func (s Spring) DampingCoefficient() float64 { return s.dampingCoefficient }

// DampingRatio returns c relative to the critical damping coefficient:
// 0 is undamped, below 1 underdamped, 1 critically damped, above 1 overdamped.
func (s Spring) DampingRatio() float64 {
	return s.dampingCoefficient / (2 * math.Sqrt(s.stiffness*s.mass))
}

// UndampedNaturalFrequency returns ωn in rad/s.
func (s Spring) UndampedNaturalFrequency() float64 {
	return math.Sqrt(s.stiffness / s.mass)
}

// DampedNaturalFrequency returns the frequency the damped system actually
// oscillates (or decays) with, ωn·√|1−ζ²|, in rad/s.
func (s Spring) DampedNaturalFrequency() float64 {
	zeta := s.DampingRatio()
	return s.UndampedNaturalFrequency() * math.Sqrt(math.Abs(1-zeta*zeta))
}

// FrequencyResponse returns the period of oscillation the spring would have
// without damping, 2π/ωn, in seconds.
func (s Spring) FrequencyResponse() float64 {
	return 2 * math.Pi / s.UndampedNaturalFrequency()
}

// decayRate returns λ = c/2m, the exponential decay rate of the envelope.
func (s Spring) decayRate() float64 {
	return s.dampingCoefficient / (2 * s.mass)
}

// Position evaluates the closed-form solution of the oscillator at time t
// (seconds) for the given initial displacement and velocity. The three
// damping regimes have genuinely different solutions: the characteristic
// roots are complex conjugates below critical damping and real above it,
// and exactly at critical damping the repeated root degenerates into a
// polynomial-times-exponential form, so this branches on the damping ratio
// rather than evaluating one general formula.
func (s Spring) Position(t, initialPosition, initialVelocity float64) float64 {
	s0 := initialPosition
	v0 := initialVelocity
	lambda := s.decayRate()
	zeta := s.DampingRatio()
	omega := s.DampedNaturalFrequency()

	switch {
	case math.Abs(zeta-1) < criticalTolerance:
		c1 := s0
		c2 := v0 + lambda*s0
		return math.Exp(-lambda*t) * (c1 + c2*t)
	case zeta < 1:
		c1 := s0
		c2 := (v0 + lambda*s0) / omega
		return math.Exp(-lambda*t) * (c1*math.Cos(omega*t) + c2*math.Sin(omega*t))
	default:
		c1 := (v0 + s0*(lambda+omega)) / (2 * omega)
		c2 := s0 - c1
		return math.Exp(-lambda*t) * (c1*math.Exp(omega*t) + c2*math.Exp(-omega*t))
	}
}

// MaxDisplacement returns the magnitude of the peak displacement from
// equilibrium reached when the spring starts at rest and is pushed with the
// given initial velocity. The peak time is the first zero of the derivative
// in each regime.
func (s Spring) MaxDisplacement(initialVelocity float64) float64 {
	lambda := s.decayRate()
	zeta := s.DampingRatio()
	omega := s.DampedNaturalFrequency()

	var peak float64
	switch {
	case math.Abs(zeta-1) < criticalTolerance:
		peak = 1 / lambda
	case zeta < 1:
		peak = math.Atan(omega/lambda) / omega
	default:
		peak = math.Log((lambda+omega)/(lambda-omega)) / (2 * omega)
	}
	return math.Abs(s.Position(peak, 0, initialVelocity))
}
