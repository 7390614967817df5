package http

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"rpa-roi/domain"
	"rpa-roi/repository"
	"rpa-roi/service"
)

const workedExampleJSON = `{
	"numEmployees": 5,
	"avgSalary": 50000000,
	"annualWorkload": 5000,
	"utilizationRate": 60,
	"errorRate": 8,
	"avgErrorCost": 10000,
	"processingTime": 0.5,
	"monthlyLicensePerBot": 1400000,
	"numBots": 3,
	"developmentCost": 24000000,
	"consultingCost": 10000000,
	"automationRate": 50,
	"errorReductionRate": 80
}`

func newTestRouter(limiter *RateLimiter) *mux.Router {
	svc := service.NewROIService(repository.NewMemoryCache(), time.Minute)
	handler := NewROIHandler(svc, service.DefaultPresetTable())

	r := mux.NewRouter()
	handler.RegisterRoutes(r, limiter)
	return r
}

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCalculation(t *testing.T, w *httptest.ResponseRecorder) calculationResponse {
	t.Helper()
	var resp calculationResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestCalculateHandler_OK(t *testing.T) {
	r := newTestRouter(nil)

	w := postJSON(t, r, "/roi/calculate", workedExampleJSON)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeCalculation(t, w)
	if math.Abs(resp.Results.AnnualLaborSavings-84_000_000) > 1e-6 {
		t.Errorf("expected labor savings 84,000,000, got %f", resp.Results.AnnualLaborSavings)
	}
	if len(resp.Results.MonthlyCashFlow) != service.ProjectionMonths {
		t.Errorf("expected %d cash flow points, got %d", service.ProjectionMonths, len(resp.Results.MonthlyCashFlow))
	}
	if resp.ID == "" || resp.ID != w.Header().Get(RequestIDHeader) {
		t.Errorf("expected response id to match %s header", RequestIDHeader)
	}
	if resp.Workload.Status == "" {
		t.Errorf("expected workload analysis in response")
	}
}

func TestCalculateHandler_KeepsCallerRequestID(t *testing.T) {
	r := newTestRouter(nil)
	id := "3f1c2b8e-5d4a-4c6e-9b7f-0a1b2c3d4e5f"

	req := httptest.NewRequest(http.MethodPost, "/roi/calculate", bytes.NewBufferString(workedExampleJSON))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := decodeCalculation(t, w).ID; got != id {
		t.Errorf("expected id %s, got %s", id, got)
	}
}

func TestCalculateHandler_MethodNotAllowed(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/roi/calculate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{invalid-json}`},
		{"missing field", strings.Replace(workedExampleJSON, `"numBots": 3,`, "", 1)},
		{"negative amount", strings.Replace(workedExampleJSON, `"avgSalary": 50000000`, `"avgSalary": -1`, 1)},
		{"amount above cap", strings.Replace(workedExampleJSON, `"avgSalary": 50000000`, `"avgSalary": 1e308`, 1)},
		{"percent above 100", strings.Replace(workedExampleJSON, `"automationRate": 50`, `"automationRate": 120`, 1)},
		{"unknown field", strings.Replace(workedExampleJSON, `"numBots": 3,`, `"numBots": 3, "bonus": 1,`, 1)},
		{"wrong type", strings.Replace(workedExampleJSON, `"numBots": 3`, `"numBots": "three"`, 1)},
	}

	r := newTestRouter(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/roi/calculate", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCalculateHandler_UnsupportedMediaType(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/roi/calculate", bytes.NewBufferString(workedExampleJSON))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestApplyScenarioHandler(t *testing.T) {
	r := newTestRouter(nil)

	w := postJSON(t, r, "/roi/scenario/optimistic", workedExampleJSON)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeCalculation(t, w)
	if resp.Inputs.AutomationRate != 70 || resp.Inputs.ErrorReductionRate != 90 {
		t.Errorf("expected optimistic rates 70/90, got %.0f/%.0f",
			resp.Inputs.AutomationRate, resp.Inputs.ErrorReductionRate)
	}
	if resp.Inputs.NumEmployees != 5 {
		t.Errorf("expected other fields untouched, got %.0f employees", resp.Inputs.NumEmployees)
	}
}

func TestApplyScenarioHandler_EchoesNormalizedInputs(t *testing.T) {
	presets := service.DefaultPresetTable()
	presets.Scenarios[domain.ScenarioOptimistic] = domain.InputOverride{AutomationRate: domain.Float(150)}
	handler := NewROIHandler(service.NewROIService(nil, 0), presets)
	r := mux.NewRouter()
	handler.RegisterRoutes(r, nil)

	w := postJSON(t, r, "/roi/scenario/optimistic", workedExampleJSON)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeCalculation(t, w).Inputs.AutomationRate; got != 100 {
		t.Errorf("expected echoed automation rate clamped to 100, got %.0f", got)
	}
}

func TestApplyScenarioHandler_Unknown(t *testing.T) {
	r := newTestRouter(nil)

	w := postJSON(t, r, "/roi/scenario/reckless", workedExampleJSON)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestApplyScaleHandler(t *testing.T) {
	r := newTestRouter(nil)

	w := postJSON(t, r, "/roi/scale/small", workedExampleJSON)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeCalculation(t, w).Inputs.NumBots; got != 1 {
		t.Errorf("expected 1 bot for small scale, got %.0f", got)
	}

	if w := postJSON(t, r, "/roi/scale/galactic", workedExampleJSON); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown scale, got %d", w.Code)
	}
}

func TestListPresetsHandler(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/roi/presets", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp presetsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	standard, ok := resp.Scenarios[domain.ScenarioStandard]
	if !ok || standard.AutomationRate == nil || *standard.AutomationRate != 50 {
		t.Errorf("expected standard scenario with automation rate 50")
	}
	if len(resp.Scales) != 3 {
		t.Errorf("expected 3 scales, got %d", len(resp.Scales))
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRoutes_RateLimited(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	r := newTestRouter(limiter)

	if w := postJSON(t, r, "/roi/calculate", workedExampleJSON); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := postJSON(t, r, "/roi/calculate", workedExampleJSON); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("health must not be rate limited, got %d", w.Code)
	}
}
