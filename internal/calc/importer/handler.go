package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	plan "Dripline/internal/calc/plan"
	"Dripline/internal/calc/tbw"
	"github.com/xuri/excelize/v2"
)

type Handler struct {
	Calculator plan.Calculator
}

type PlanImportResult struct {
	Count   int           `json:"count"`
	Results []plan.Result `json:"results"`
}

// Plans accepts an xlsx upload with one patient per row and returns the
// computed plans. Malformed rows are skipped, matching how ward lists are
// usually half-filled.
func (h *Handler) Plans(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []plan.Result
	for i := 1; i < len(rows); i++ {
		input, err := parsePatientRow(rows[i])
		if err != nil {
			continue
		}
		res, err := h.Calculator.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PlanImportResult{Count: len(results), Results: results})
}

// expected: age, gender, weight_kg, npo_hours, serum_na, serum_k,
// serum_hco3, blood_glucose(optional), flags(optional, space separated:
// obese malnourished chf pediatric insulin long_npo)
func parsePatientRow(row []string) (plan.Input, error) {
	if len(row) < 7 {
		return plan.Input{}, fmt.Errorf("bad row")
	}
	age, err := toFloat(row[0])
	if err != nil {
		return plan.Input{}, err
	}
	gender := tbw.Gender(strings.ToLower(strings.TrimSpace(row[1])))
	weight, err := toFloat(row[2])
	if err != nil {
		return plan.Input{}, err
	}
	npo, err := toFloat(row[3])
	if err != nil {
		return plan.Input{}, err
	}
	na, err := toFloat(row[4])
	if err != nil {
		return plan.Input{}, err
	}
	k, err := toFloat(row[5])
	if err != nil {
		return plan.Input{}, err
	}
	hco3, err := toFloat(row[6])
	if err != nil {
		return plan.Input{}, err
	}
	glucose := 0.0
	if len(row) > 7 && row[7] != "" {
		glucose, _ = toFloat(row[7])
	}

	in := plan.Input{
		Age:          int(age),
		Gender:       gender,
		WeightKg:     weight,
		NpoHours:     npo,
		SerumNa:      na,
		SerumK:       k,
		SerumHCO3:    hco3,
		BloodGlucose: glucose,
	}
	if len(row) > 8 {
		for _, flag := range strings.Fields(strings.ToLower(row[8])) {
			switch flag {
			case "obese":
				in.Obese = true
			case "malnourished":
				in.Malnourished = true
			case "chf":
				in.CHF = true
			case "pediatric":
				in.Pediatric = true
			case "insulin":
				in.InsulinInfusion = true
			case "long_npo":
				in.LongNpo = true
			}
		}
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
