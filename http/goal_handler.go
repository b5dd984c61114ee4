package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"sip-planner/domain"
	"sip-planner/service"
)

type GoalHandler struct {
	service *service.GoalService
	logger  *zap.Logger
}

func NewGoalHandler(service *service.GoalService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{service: service, logger: logger}
}

func (h *GoalHandler) CalculateRequiredSIP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("error decoding request body", zap.Error(err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateRequiredSIP(input)
	if err != nil {
		h.logger.Error("error calculating required sip", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Encode into a buffer first so a failed encode never writes a partial 200
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		h.logger.Error("error encoding response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("error writing response", zap.Error(err))
	}
}
