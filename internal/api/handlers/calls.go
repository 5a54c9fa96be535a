package handlers

import (
	"net/http"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/internal/domain/services"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// CallsHandler handles call log endpoints
type CallsHandler struct {
	query   *services.QueryService
	devices *deviceSelector
	logger  *logger.Logger
}

// NewCallsHandler creates a new CallsHandler
func NewCallsHandler(query *services.QueryService, devices *deviceSelector, log *logger.Logger) *CallsHandler {
	return &CallsHandler{
		query:   query,
		devices: devices,
		logger:  log.WithComponent("calls-handler"),
	}
}

// List handles GET /api/v1/calls
func (h *CallsHandler) List(w http.ResponseWriter, r *http.Request) {
	deviceID, err := h.devices.fromRequest(r)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to resolve device")
		writeNoDevice(w)
		return
	}

	records, err := h.query.CallRecords(r.Context(), deviceID)
	if err != nil {
		h.logger.Error().Err(err).Str("device_id", deviceID).Msg("failed to list call records")
		writeOperationFailed(w)
		return
	}
	if records == nil {
		records = []models.CallRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  records,
		"total": len(records),
	})
}
