package maintenance

import "testing"

func TestCalculate(t *testing.T) {
	cases := []struct {
		name     string
		weightKg float64
		wantRate float64
	}{
		{"under first tier", 8, 32},
		{"first tier boundary", 10, 40},
		{"second tier", 15, 50},
		{"second tier boundary", 20, 60},
		{"third tier", 70, 110},
		{"heavy adult", 110, 150},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := Calculate(Input{WeightKg: c.weightKg})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.RateMlPerHr != c.wantRate {
				t.Errorf("rate = %v, want %v", res.RateMlPerHr, c.wantRate)
			}
			if res.Volume24hMl != c.wantRate*24 {
				t.Errorf("24h volume = %v, want %v", res.Volume24hMl, c.wantRate*24)
			}
		})
	}
}

func TestCalculate_InvalidWeight(t *testing.T) {
	if _, err := Calculate(Input{WeightKg: 0}); err == nil {
		t.Errorf("expected error for zero weight")
	}
}
