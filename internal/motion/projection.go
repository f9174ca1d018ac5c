package motion

import (
	"fmt"
	"math"
)

// DefaultDecelerationRate is the conventional per-millisecond velocity decay
// used by scrolling surfaces.
const DefaultDecelerationRate = 0.998

// Project returns the value a decelerating object comes to rest at. The
// velocity is in units per second and decays exponentially by the given
// rate per millisecond, so the closed-form integral converges to
// position + velocity/(−1000·ln(rate)). Rates outside (0, 1) do not
// converge and are rejected.
func Project(velocity, position, decelerationRate float64) (float64, error) {
	if err := validateDecelerationRate(decelerationRate); err != nil {
		return 0, err
	}
	return position + velocity/(-1000*math.Log(decelerationRate)), nil
}

// ProjectVector is the two-axis form of Project.
func ProjectVector(velocity, position Vector, decelerationRate float64) (Vector, error) {
	if err := validateDecelerationRate(decelerationRate); err != nil {
		return Vector{}, err
	}
	return position.Add(velocity.Scale(1 / (-1000 * math.Log(decelerationRate)))), nil
}

func validateDecelerationRate(rate float64) error {
	if rate <= 0 || rate >= 1 {
		return fmt.Errorf("%w: deceleration rate must be in (0, 1), got %v", ErrInvalidParameter, rate)
	}
	return nil
}

// NearestAnchor projects a decelerating fling from position and returns the
// index of the candidate anchor closest to where it comes to rest. Before
// projecting, each velocity component is rescaled by its own share of the
// dominant magnitude, which keeps the dominant axis nearly intact while
// suppressing the secondary axis faster than linearly, so small off-axis
// noise cannot flip the selection. Ties go to the first candidate in the
// supplied order.
func NearestAnchor(anchors []Vector, position, velocity Vector, decelerationRate float64) (int, error) {
	if len(anchors) == 0 {
		return -1, fmt.Errorf("%w: no anchors to select from", ErrInvalidParameter)
	}
	if vmax := math.Max(math.Abs(velocity.X), math.Abs(velocity.Y)); vmax > 0 {
		velocity.X *= math.Abs(velocity.X) / vmax
		velocity.Y *= math.Abs(velocity.Y) / vmax
	}
	rest, err := ProjectVector(velocity, position, decelerationRate)
	if err != nil {
		return -1, err
	}

	best := 0
	bestDist := rest.Distance(anchors[0])
	for i, a := range anchors[1:] {
		if d := rest.Distance(a); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best, nil
}
