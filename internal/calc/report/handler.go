package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	plan "Dripline/internal/calc/plan"
	"Dripline/internal/fluids"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Patient   plan.Input `json:"patient"`
	Ward      string     `json:"ward"`
	Clinician string     `json:"clinician"`
}

type Handler struct {
	Calculator plan.Calculator
}

// Generate computes the plan for the submitted patient and renders it as a
// one-page PDF order sheet.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	res, err := h.Calculator.Calculate(input.Patient)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := buildOrderSheet(input, res)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"fluid-plan.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func buildOrderSheet(in Input, res plan.Result) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "24-Hour Fluid & Electrolyte Plan")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Ward: %s", in.Ward))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Clinician: %s", in.Clinician))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Volumes")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("TBW: %.1f L", res.TBWLiters))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Maintenance: %.0f mL/24h (%.0f mL/h)", res.MaintenanceVolume24hMl, res.MaintenanceRateMlPerHr))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Deficit (NPO %.0fh): %.0f mL", in.Patient.NpoHours, res.DeficitMl))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total for 24h: %.0f mL", res.TotalVolume24hMl))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Electrolyte Deficits (24h)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Sodium: %.0f mEq", res.SodiumDeficitMEq))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Potassium: %.0f mEq", res.PotassiumDeficitMEq))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Base (HCO3): %.0f mEq", res.BaseDeficitMEq))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Maintenance Intake from Selected Fluid (24h)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, component := range []fluids.Component{fluids.Na, fluids.K, fluids.Cl, fluids.HCO3Pre, fluids.GlucoseG} {
		amount, ok := res.MaintenanceIntake24h[component]
		if !ok {
			continue
		}
		pdf.Cell(0, 6, fmt.Sprintf("%s: %.1f", component, amount))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Recommended IV Fluid Order")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, res.OrderText, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "When to Add Glucose")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, glucoseGuidance, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, rationale, "", "L", false)

	return pdf
}

const glucoseGuidance = `Children: always dextrose-containing fluids (e.g. D5LR).
Prolonged NPO (>24h): add 50-100 g glucose/day (e.g. D5 solutions).
Insulin infusion: co-infuse dextrose to maintain euglycemia.
Malnourished/refeeding: include dextrose and thiamine to prevent ketosis.`

const rationale = `Rationale: Based on Neal, Schwartz's Surgery, Chapter 3: isotonic fluids for volume deficits; balanced crystalloids over NS to avoid hyperchloremia; dextrose for prolonged fasting/pediatrics/insulin; adjusted for CHF by fluid restriction.`
