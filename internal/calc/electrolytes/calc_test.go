package electrolytes

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{
		TBWLiters: 66,
		WeightKg:  110,
		SerumNa:   130,
		SerumK:    5,
		SerumHCO3: 22,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.SodiumMEq != 660 {
		t.Errorf("sodium deficit = %v, want 660", res.SodiumMEq)
	}
	if res.PotassiumMEq != 0 {
		t.Errorf("potassium deficit = %v, want 0", res.PotassiumMEq)
	}
	if math.Abs(res.BaseMEq-66) > 1e-9 {
		t.Errorf("base deficit = %v, want 66", res.BaseMEq)
	}
}

func TestCalculate_NeverNegative(t *testing.T) {
	for _, na := range []float64{141, 150, 170} {
		res, err := Calculate(Input{TBWLiters: 40, WeightKg: 70, SerumNa: na, SerumK: 4.5, SerumHCO3: 26})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.SodiumMEq != 0 {
			t.Errorf("Na=%v: sodium deficit = %v, want 0", na, res.SodiumMEq)
		}
		if res.PotassiumMEq != 0 || res.BaseMEq != 0 {
			t.Errorf("Na=%v: deficits must be zero above targets", na)
		}
	}
}

func TestCalculate_NonFiniteLab(t *testing.T) {
	if _, err := Calculate(Input{TBWLiters: 40, WeightKg: 70, SerumNa: math.NaN(), SerumK: 4, SerumHCO3: 24}); err == nil {
		t.Errorf("expected error for NaN lab")
	}
	if _, err := Calculate(Input{TBWLiters: 40, WeightKg: 70, SerumNa: 140, SerumK: math.Inf(1), SerumHCO3: 24}); err == nil {
		t.Errorf("expected error for infinite lab")
	}
}
