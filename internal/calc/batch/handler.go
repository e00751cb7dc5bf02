package batch

import (
	"encoding/json"
	"net/http"

	plan "Dripline/internal/calc/plan"
)

type Handler struct {
	Calculator plan.Calculator
}

func (h *Handler) Plans(w http.ResponseWriter, r *http.Request) {
	var input PlanBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculatePlans(h.Calculator, input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
