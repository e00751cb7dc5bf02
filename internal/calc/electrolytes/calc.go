package electrolytes

import (
	"fmt"
	"math"
)

// Correction targets, mEq/L. Fixed clinical reference values.
const (
	targetNa   = 140.0
	targetK    = 4.0
	targetHCO3 = 24.0
)

type Input struct {
	TBWLiters float64 `json:"tbw_liters"`
	WeightKg  float64 `json:"weight_kg"`
	SerumNa   float64 `json:"serum_na"`
	SerumK    float64 `json:"serum_k"`
	SerumHCO3 float64 `json:"serum_hco3"`
}

type Result struct {
	SodiumMEq    float64 `json:"sodium_meq"`
	PotassiumMEq float64 `json:"potassium_meq"`
	BaseMEq      float64 `json:"base_meq"`
	Notes        string  `json:"notes"`
}

// Calculate estimates replacement needs for sodium, potassium and base.
// A lab value at or above its target yields a zero deficit, never a
// negative one.
func Calculate(in Input) (Result, error) {
	if in.TBWLiters < 0 || in.WeightKg <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	for _, lab := range []float64{in.SerumNa, in.SerumK, in.SerumHCO3} {
		if math.IsNaN(lab) || math.IsInf(lab, 0) {
			return Result{}, fmt.Errorf("invalid lab value")
		}
	}

	return Result{
		SodiumMEq:    math.Max(0, in.TBWLiters*(targetNa-in.SerumNa)),
		PotassiumMEq: math.Max(0, 0.4*in.WeightKg*(targetK-in.SerumK)),
		BaseMEq:      math.Max(0, 0.3*in.WeightKg*(targetHCO3-in.SerumHCO3)),
		Notes:        "Sodium, potassium and bicarbonate deficits, floored at zero.",
	}, nil
}
