package http

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"rpa-roi/domain"
	"rpa-roi/service"
)

const maxBodyBytes = 64 << 10

type ROIHandler struct {
	service *service.ROIService
	presets *service.PresetTable
}

func NewROIHandler(service *service.ROIService, presets *service.PresetTable) *ROIHandler {
	return &ROIHandler{service: service, presets: presets}
}

type calculationResponse struct {
	ID        string                    `json:"id"`
	Inputs    domain.CalculatorInputs   `json:"inputs"`
	Results   domain.CalculationResults `json:"results"`
	Workload  domain.WorkloadAnalysis   `json:"workload"`
	Breakdown []domain.BreakdownStep    `json:"breakdown"`
}

type presetsResponse struct {
	Scenarios map[domain.ScenarioID]domain.InputOverride `json:"scenarios"`
	Scales    map[domain.ScaleID]domain.InputOverride    `json:"scales"`
}

// RegisterRoutes sets up all API routes
func (h *ROIHandler) RegisterRoutes(r *mux.Router, limiter *RateLimiter) {
	r.Use(RequestIDMiddleware)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	roi := r.PathPrefix("/roi").Subrouter()
	if limiter != nil {
		roi.Use(func(next http.Handler) http.Handler {
			return RateLimitMiddleware(limiter, next)
		})
	}
	roi.HandleFunc("/presets", h.ListPresets).Methods(http.MethodGet)
	roi.HandleFunc("/calculate", h.Calculate).Methods(http.MethodPost)
	roi.HandleFunc("/scenario/{id}", h.ApplyScenario).Methods(http.MethodPost)
	roi.HandleFunc("/scale/{id}", h.ApplyScale).Methods(http.MethodPost)
}

func (h *ROIHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ROIHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, presetsResponse{
		Scenarios: h.presets.Scenarios,
		Scales:    h.presets.Scales,
	})
}

func (h *ROIHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}
	h.respondCalculation(w, r, input)
}

func (h *ROIHandler) ApplyScenario(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}

	id := domain.ScenarioID(mux.Vars(r)["id"])
	input, err := h.presets.ApplyPreset(input, id)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondCalculation(w, r, input)
}

func (h *ROIHandler) ApplyScale(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInputs(w, r)
	if !ok {
		return
	}

	id := domain.ScaleID(mux.Vars(r)["id"])
	input, err := h.presets.ApplyScale(input, id)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondCalculation(w, r, input)
}

func (h *ROIHandler) decodeInputs(w http.ResponseWriter, r *http.Request) (domain.CalculatorInputs, bool) {
	var input domain.CalculatorInputs

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		respondError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return input, false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return input, false
		}
		respondError(w, http.StatusBadRequest, "invalid request body")
		return input, false
	}

	if err := validateInputs(body); err != nil {
		log.Printf("Rejected calculation request: %v", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return input, false
	}

	if err := json.Unmarshal(body, &input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return input, false
	}
	return input, true
}

func (h *ROIHandler) respondCalculation(w http.ResponseWriter, r *http.Request, input domain.CalculatorInputs) {
	input = service.NormalizeInputs(input)
	result, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		log.Printf("Error calculating ROI: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, calculationResponse{
		ID:        requestID(r.Context()),
		Inputs:    input,
		Results:   result,
		Workload:  service.AnalyzeWorkload(input, result),
		Breakdown: service.Breakdown(input, result),
	})
}
