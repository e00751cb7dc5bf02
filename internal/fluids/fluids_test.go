package fluids

import "testing"

func TestBaseProfile(t *testing.T) {
	cases := []struct {
		fluid Fluid
		base  BaseProfile
	}{
		{LR, BaseLR},
		{D5LR, BaseLR},
		{NS, BaseNS},
		{D5NS, BaseNS},
	}
	for _, c := range cases {
		if got := c.fluid.Base(); got != c.base {
			t.Errorf("%s: base %s, want %s", c.fluid, got, c.base)
		}
	}
}

func TestWithDextrose(t *testing.T) {
	if got := LR.WithDextrose(); got != D5LR {
		t.Errorf("LR escalates to %s, want D5LR", got)
	}
	if got := NS.WithDextrose(); got != D5NS {
		t.Errorf("NS escalates to %s, want D5NS", got)
	}
	if got := D5NS.WithDextrose(); got != D5NS {
		t.Errorf("D5NS must not escalate again, got %s", got)
	}
}

func TestDefaultFormulary(t *testing.T) {
	form := Default()
	if len(form) != 4 {
		t.Fatalf("expected 4 fluids, got %d", len(form))
	}
	for fluid, comp := range form {
		if _, ok := comp[Na]; !ok {
			t.Errorf("%s: missing Na", fluid)
		}
		if _, ok := comp[Cl]; !ok {
			t.Errorf("%s: missing Cl", fluid)
		}
		if fluid.HasDextrose() {
			if comp[GlucoseG] <= 0 {
				t.Errorf("%s: dextrose fluid without Glucose_g", fluid)
			}
		} else if _, ok := comp[GlucoseG]; ok {
			t.Errorf("%s: unexpected Glucose_g", fluid)
		}
	}
}
