package http

import (
	"encoding/json"
	"net/http"

	"onboard/internal/config"
	"onboard/internal/logging"
)

// ConfigHandler serves the singleton step configuration.
type ConfigHandler struct {
	store  config.Store
	logger logging.Logger
}

// NewConfigHandler constructs the configuration handler.
func NewConfigHandler(store config.Store) *ConfigHandler {
	return &ConfigHandler{
		store:  store,
		logger: logging.NewComponentLogger("ConfigHandler"),
	}
}

// HandleGet returns the live configuration, seeding the default when the
// store holds nothing yet.
func (h *ConfigHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.store.Load(r.Context())
	if err != nil {
		h.logger.Error("Failed to load configuration: %v", err)
		writeJSONError(h.logger, w, http.StatusInternalServerError, "failed to load configuration")
		return
	}
	writeJSON(h.logger, w, http.StatusOK, cfg.Normalized())
}

// HandleReplace swaps the whole configuration and echoes the stored shape.
// Unknown field ids are dropped, not rejected.
func (h *ConfigHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	var cfg config.StepConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeJSONError(h.logger, w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	stored, err := h.store.Replace(r.Context(), cfg)
	if err != nil {
		h.logger.Error("Failed to replace configuration: %v", err)
		writeJSONError(h.logger, w, http.StatusInternalServerError, "failed to save configuration")
		return
	}
	writeJSON(h.logger, w, http.StatusOK, stored)
}
