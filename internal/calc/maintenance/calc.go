package maintenance

import "fmt"

type Input struct {
	WeightKg float64 `json:"weight_kg"`
}

type Result struct {
	RateMlPerHr float64 `json:"rate_ml_per_hr"`
	Volume24hMl float64 `json:"volume_24h_ml"`
	Notes       string  `json:"notes"`
}

// Calculate applies the 4-2-1 rule: 4 mL/kg/hr for the first 10 kg,
// 2 mL/kg/hr for the next 10 kg, 1 mL/kg/hr for the remainder.
// The result is the unrestricted rate; CHF fluid restriction is applied by
// the plan orchestrator after this call.
func Calculate(in Input) (Result, error) {
	if in.WeightKg <= 0 {
		return Result{}, fmt.Errorf("invalid weight")
	}

	m1 := min(in.WeightKg, 10) * 4
	m2 := min(max(in.WeightKg-10, 0), 10) * 2
	m3 := max(in.WeightKg-20, 0) * 1
	rate := m1 + m2 + m3

	return Result{
		RateMlPerHr: rate,
		Volume24hMl: rate * 24,
		Notes:       "4-2-1 maintenance rate, unrestricted.",
	}, nil
}
