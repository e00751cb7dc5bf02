package deficit

import "fmt"

type Input struct {
	RateMlPerHr float64 `json:"rate_ml_per_hr"`
	NpoHours    float64 `json:"npo_hours"`
}

type Result struct {
	DeficitMl float64 `json:"deficit_ml"`
	Notes     string  `json:"notes"`
}

// Calculate estimates the fluid deficit accumulated while NPO as the
// maintenance rate times the fasting duration. The rate passed in must
// already carry any CHF restriction.
func Calculate(in Input) (Result, error) {
	if in.RateMlPerHr < 0 || in.NpoHours < 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	return Result{
		DeficitMl: in.RateMlPerHr * in.NpoHours,
		Notes:     "NPO deficit at maintenance rate.",
	}, nil
}
