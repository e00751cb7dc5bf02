package plan

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Dripline/internal/repo"
)

type Handler struct {
	Calculator Calculator
	Store      repo.Repository
	Cache      repo.PlanCache
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	key, err := cacheKey(input)
	if err == nil && h.Cache != nil {
		if cached, ok := h.Cache.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		}
	}

	res, err := h.Calculator.Calculate(input)
	if errors.Is(err, ErrUnknownFluid) {
		http.Error(w, "Formulary misconfigured", http.StatusInternalServerError)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}

	if h.Cache != nil && key != "" {
		if err := h.Cache.Set(r.Context(), key, body); err != nil {
			log.Printf("Warning: plan cache set failed: %v", err)
		}
	}

	// History saves are best effort, the plan is still returned on failure.
	if h.Store != nil {
		if userID, ok := r.Context().Value("userID").(int); ok && userID != 0 {
			inputJSON, _ := json.Marshal(input)
			if _, err := h.Store.SavePlan(r.Context(), userID, inputJSON, body); err != nil {
				log.Printf("Warning: failed to save plan for user %d: %v", userID, err)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int)
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if h.Store == nil {
		http.Error(w, "History unavailable", http.StatusServiceUnavailable)
		return
	}
	records, err := h.Store.ListPlans(r.Context(), userID, 20)
	if err != nil {
		log.Printf("ListPlans error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func cacheKey(in Input) (string, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return "plan:" + hex.EncodeToString(sum[:]), nil
}
