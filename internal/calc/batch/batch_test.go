package batch

import (
	"testing"

	plan "Dripline/internal/calc/plan"
	"Dripline/internal/calc/tbw"
	"Dripline/internal/fluids"
)

func TestCalculatePlans(t *testing.T) {
	in := PlanBatchInput{Items: []plan.Input{
		{Age: 30, Gender: tbw.Male, WeightKg: 70, SerumNa: 140, SerumK: 4, SerumHCO3: 24, BloodGlucose: 90},
		{Age: 4, Gender: tbw.Female, WeightKg: 16, Pediatric: true, SerumNa: 138, SerumK: 4.1, SerumHCO3: 23, BloodGlucose: 95},
	}}
	out, err := CalculatePlans(plan.New(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(out.Results))
	}
	if out.Results[0].Fluid != fluids.LR {
		t.Errorf("adult fluid = %s, want Lactated Ringer's", out.Results[0].Fluid)
	}
	if out.Results[1].Fluid != fluids.D5NS {
		t.Errorf("pediatric fluid = %s, want D5NS", out.Results[1].Fluid)
	}
}

func TestCalculatePlans_Empty(t *testing.T) {
	if _, err := CalculatePlans(plan.New(), PlanBatchInput{}); err == nil {
		t.Errorf("expected error for empty batch")
	}
}

func TestCalculatePlans_OneBadPatientFailsBatch(t *testing.T) {
	in := PlanBatchInput{Items: []plan.Input{
		{Age: 30, Gender: tbw.Male, WeightKg: 70, SerumNa: 140, SerumK: 4, SerumHCO3: 24},
		{Age: 30, Gender: tbw.Male, WeightKg: 0, SerumNa: 140, SerumK: 4, SerumHCO3: 24},
	}}
	if _, err := CalculatePlans(plan.New(), in); err == nil {
		t.Errorf("expected error when a patient is invalid")
	}
}
