package motion

import (
	"fmt"
	"math"
)

// TimingCurve bundles a spring's physical constants with a normalized
// initial velocity, ready for an external animation driver to integrate
// until the displacement decays below its own negligibility threshold.
type TimingCurve struct {
	Mass               float64
	Stiffness          float64
	DampingCoefficient float64

	// InitialVelocity is expressed as fraction of the animation distance
	// per second, so one curve can drive animations of any magnitude.
	InitialVelocity float64
}

// VectorTimingCurve is the two-axis form of TimingCurve.
type VectorTimingCurve struct {
	Mass               float64
	Stiffness          float64
	DampingCoefficient float64
	InitialVelocity    Vector
}

// RelativeVelocity converts an absolute velocity into one normalized so the
// unit interval spans start→target, and returns the start value the
// animation must actually use alongside it.
//
// When the endpoints are closer than epsilon the division would be unstable.
// A motion whose peak displacement (from MaxDisplacement) stays under
// 2·epsilon is negligible and collapses to a zero relative velocity with the
// start untouched; anything larger nudges the start by exactly epsilon in
// the direction of the velocity so a well-defined relative velocity can be
// computed against the new, still-invisible distance.
func (s Spring) RelativeVelocity(velocity, current, target, epsilon float64) (start, relative float64, err error) {
	if epsilon <= 0 {
		return current, 0, fmt.Errorf("%w: epsilon must be positive, got %v", ErrInvalidParameter, epsilon)
	}
	start = current
	if math.Abs(target-start) < epsilon {
		if s.MaxDisplacement(velocity) < 2*epsilon {
			return start, 0, nil
		}
		start += math.Copysign(epsilon, velocity)
	}
	return start, velocity / (target - start), nil
}

// TimingFunction derives a timing curve for animating between from and to
// with the given absolute initial velocity. With no display scale to pin
// the degeneracy tolerance to, epsilon is a fixed fraction of the velocity
// magnitude, far below a single frame's worth of motion.
//
// The returned start value may differ from "from" by up to epsilon; callers
// must animate from it, not from the original value.
func (s Spring) TimingFunction(velocity, from, to float64) (TimingCurve, float64, error) {
	return s.timingFunction(velocity, from, to, math.Abs(0.001*velocity))
}

// TimingFunctionAtScale is TimingFunction with the degeneracy tolerance set
// to one device pixel, 1/max(1, pixelScale), so a nudged start value can
// never become visible.
func (s Spring) TimingFunctionAtScale(velocity, from, to, pixelScale float64) (TimingCurve, float64, error) {
	return s.timingFunction(velocity, from, to, 1/math.Max(1, pixelScale))
}

func (s Spring) timingFunction(velocity, from, to, epsilon float64) (TimingCurve, float64, error) {
	curve := TimingCurve{
		Mass:               s.mass,
		Stiffness:          s.stiffness,
		DampingCoefficient: s.dampingCoefficient,
	}
	if epsilon == 0 {
		// Only reachable with a zero velocity: nothing to normalize
		// and no nudge to make.
		return curve, from, nil
	}
	start, relative, err := s.RelativeVelocity(velocity, from, to, epsilon)
	if err != nil {
		return TimingCurve{}, from, err
	}
	curve.InitialVelocity = relative
	return curve, start, nil
}

// VectorTimingFunction applies the TimingFunction rule independently per
// axis, each with its own context-free epsilon.
func (s Spring) VectorTimingFunction(velocity, from, to Vector) (VectorTimingCurve, Vector, error) {
	x, startX, err := s.TimingFunction(velocity.X, from.X, to.X)
	if err != nil {
		return VectorTimingCurve{}, from, err
	}
	y, startY, err := s.TimingFunction(velocity.Y, from.Y, to.Y)
	if err != nil {
		return VectorTimingCurve{}, from, err
	}
	return s.vectorCurve(x, y), Vector{startX, startY}, nil
}

// VectorTimingFunctionAtScale applies the TimingFunctionAtScale rule
// independently per axis with a shared pixel scale.
func (s Spring) VectorTimingFunctionAtScale(velocity, from, to Vector, pixelScale float64) (VectorTimingCurve, Vector, error) {
	x, startX, err := s.TimingFunctionAtScale(velocity.X, from.X, to.X, pixelScale)
	if err != nil {
		return VectorTimingCurve{}, from, err
	}
	y, startY, err := s.TimingFunctionAtScale(velocity.Y, from.Y, to.Y, pixelScale)
	if err != nil {
		return VectorTimingCurve{}, from, err
	}
	return s.vectorCurve(x, y), Vector{startX, startY}, nil
}

func (s Spring) vectorCurve(x, y TimingCurve) VectorTimingCurve {
	return VectorTimingCurve{
		Mass:               s.mass,
		Stiffness:          s.stiffness,
		DampingCoefficient: s.dampingCoefficient,
		InitialVelocity:    Vector{x.InitialVelocity, y.InitialVelocity},
	}
}
