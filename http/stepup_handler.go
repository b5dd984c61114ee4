package http

import (
	"encoding/json"
	"net/http"

	"sip-planner/domain"
	"sip-planner/service"
)

type StepUpHandler struct {
	service *service.StepUpService
}

func NewStepUpHandler(service *service.StepUpService) *StepUpHandler {
	return &StepUpHandler{service: service}
}

func (h *StepUpHandler) CalculateStepUpSIP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.StepUpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateStepUpSIP(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
