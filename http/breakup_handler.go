package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"sip-planner/domain"
	"sip-planner/service"
)

type BreakupHandler struct {
	service *service.SIPService
	logger  *zap.Logger
}

func NewBreakupHandler(service *service.SIPService, logger *zap.Logger) *BreakupHandler {
	return &BreakupHandler{service: service, logger: logger}
}

func (h *BreakupHandler) GetYearWiseBreakup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.SIPInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("error decoding request body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	breakup, err := h.service.GetYearWiseBreakup(input)
	if err != nil {
		h.logger.Error("error calculating year-wise breakup", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(breakup); err != nil {
		h.logger.Error("error encoding response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("error writing response", zap.Error(err))
	}
}
