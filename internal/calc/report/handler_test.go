package report

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	plan "Dripline/internal/calc/plan"
)

func TestGenerate(t *testing.T) {
	h := &Handler{Calculator: plan.New()}
	body := `{"ward":"3B","clinician":"Dr. Wells","patient":{"age":25,"gender":"male","weight_kg":110,"npo_hours":12,"serum_na":130,"serum_k":5,"serum_hco3":22,"blood_glucose":100}}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/report/pdf", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("content type = %q, want application/pdf", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Errorf("body does not look like a PDF")
	}
}

func TestGenerate_InvalidPatient(t *testing.T) {
	h := &Handler{Calculator: plan.New()}
	body := `{"patient":{"age":25,"gender":"male","weight_kg":0}}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/report/pdf", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
