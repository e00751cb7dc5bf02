package importer

import (
	"testing"

	"Dripline/internal/calc/tbw"
)

func TestParsePatientRow(t *testing.T) {
	row := []string{"25", "Male", "110", "12", "130", "5", "22", "100"}
	in, err := parsePatientRow(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Age != 25 || in.Gender != tbw.Male || in.WeightKg != 110 {
		t.Errorf("unexpected demographics: %+v", in)
	}
	if in.NpoHours != 12 || in.SerumNa != 130 || in.SerumK != 5 || in.SerumHCO3 != 22 {
		t.Errorf("unexpected labs: %+v", in)
	}
}

func TestParsePatientRow_Flags(t *testing.T) {
	row := []string{"4", "female", "16", "0", "138", "4.1", "23", "", "pediatric long_npo"}
	in, err := parsePatientRow(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.Pediatric || !in.LongNpo {
		t.Errorf("flags not parsed: %+v", in)
	}
	if in.Obese || in.CHF || in.InsulinInfusion || in.Malnourished {
		t.Errorf("unset flags must stay false: %+v", in)
	}
}

func TestParsePatientRow_Bad(t *testing.T) {
	if _, err := parsePatientRow([]string{"25", "male", "110"}); err == nil {
		t.Errorf("expected error for short row")
	}
	if _, err := parsePatientRow([]string{"25", "male", "heavy", "12", "130", "5", "22"}); err == nil {
		t.Errorf("expected error for non-numeric weight")
	}
}
