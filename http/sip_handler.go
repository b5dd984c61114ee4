package http

import (
	"encoding/json"
	"net/http"

	"sip-planner/domain"
	"sip-planner/service"
)

type SIPHandler struct {
	service *service.SIPService
}

func NewSIPHandler(service *service.SIPService) *SIPHandler {
	return &SIPHandler{service: service}
}

func (h *SIPHandler) CalculateSIP(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.SIPInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
