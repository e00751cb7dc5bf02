package tbw

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		want float64
	}{
		{"male baseline", Input{WeightKg: 110, Gender: Male}, 66.0},
		{"female baseline", Input{WeightKg: 100, Gender: Female}, 50.0},
		{"obese male", Input{WeightKg: 100, Gender: Male, Obese: true}, 51.0},
		{"malnourished female", Input{WeightKg: 100, Gender: Female, Malnourished: true}, 55.0},
		{"obese then malnourished", Input{WeightKg: 100, Gender: Male, Obese: true, Malnourished: true}, 56.1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := Calculate(c.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(res.TBWLiters-c.want) > 1e-9 {
				t.Errorf("tbw = %v, want %v", res.TBWLiters, c.want)
			}
		})
	}
}

func TestCalculate_InvalidInput(t *testing.T) {
	if _, err := Calculate(Input{WeightKg: 0, Gender: Male}); err == nil {
		t.Errorf("expected error for zero weight")
	}
	if _, err := Calculate(Input{WeightKg: -5, Gender: Female}); err == nil {
		t.Errorf("expected error for negative weight")
	}
	if _, err := Calculate(Input{WeightKg: 70, Gender: "unknown"}); err == nil {
		t.Errorf("expected error for unknown gender")
	}
}
