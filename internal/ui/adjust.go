package ui

// AdjustMode selects which spring parameter the +/- keys change.
type AdjustMode int

const (
	AdjustDamping AdjustMode = iota
	AdjustResponse
)

// Next cycles to the next adjustable parameter.
func (a AdjustMode) Next() AdjustMode {
	switch a {
	case AdjustDamping:
		return AdjustResponse
	default:
		return AdjustDamping
	}
}

// String returns the parameter name.
func (a AdjustMode) String() string {
	switch a {
	case AdjustResponse:
		return "response"
	default:
		return "damping"
	}
}
