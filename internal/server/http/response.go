package http

import (
	"encoding/json"
	"net/http"

	"onboard/internal/logging"
)

type apiErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(logger logging.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response: %v", err)
	}
}

func writeJSONError(logger logging.Logger, w http.ResponseWriter, status int, message string) {
	logger.Warn("HTTP %d - %s", status, message)
	writeJSON(logger, w, status, apiErrorResponse{Error: message})
}

func writeFieldErrors(logger logging.Logger, w http.ResponseWriter, fields map[string]string) {
	logger.Warn("HTTP %d - validation failed: %v", http.StatusBadRequest, fields)
	writeJSON(logger, w, http.StatusBadRequest, apiErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}
