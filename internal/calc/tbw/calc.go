package tbw

import "fmt"

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type Input struct {
	WeightKg     float64 `json:"weight_kg"`
	Gender       Gender  `json:"gender"`
	Obese        bool    `json:"obese"`
	Malnourished bool    `json:"malnourished"`
}

type Result struct {
	TBWLiters float64 `json:"tbw_liters"`
	Notes     string  `json:"notes"`
}

// Calculate estimates total body water: 60% of weight for males, 50% for
// females, reduced 15% for obesity and then raised 10% for malnutrition.
// The obesity factor is applied before the malnutrition factor.
func Calculate(in Input) (Result, error) {
	if in.WeightKg <= 0 {
		return Result{}, fmt.Errorf("invalid weight")
	}
	if in.Gender != Male && in.Gender != Female {
		return Result{}, fmt.Errorf("invalid gender")
	}

	fraction := 0.6
	if in.Gender == Female {
		fraction = 0.5
	}
	tbw := fraction * in.WeightKg
	if in.Obese {
		tbw *= 0.85
	}
	if in.Malnourished {
		tbw *= 1.10
	}

	return Result{
		TBWLiters: tbw,
		Notes:     "Gender-fraction TBW estimate with obesity/malnutrition adjustment.",
	}, nil
}
