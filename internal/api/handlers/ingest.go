package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/services"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// IngestHandler handles ingest endpoints
type IngestHandler struct {
	ingest  *services.IngestService
	devices *deviceSelector
	logger  *logger.Logger
}

// NewIngestHandler creates a new IngestHandler
func NewIngestHandler(ingest *services.IngestService, devices *deviceSelector, log *logger.Logger) *IngestHandler {
	return &IngestHandler{
		ingest:  ingest,
		devices: devices,
		logger:  log.WithComponent("ingest-handler"),
	}
}

// Run handles POST /api/v1/ingest
func (h *IngestHandler) Run(w http.ResponseWriter, r *http.Request) {
	deviceID, err := h.devices.fromRequest(r)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to resolve device")
		writeNoDevice(w)
		return
	}
	h.devices.remember(deviceID)

	summary, err := h.ingest.IngestAll(r.Context(), deviceID)
	if err != nil {
		h.logger.Error().Err(err).Str("device_id", deviceID).Msg("ingest failed")
		writeOperationFailed(w)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// RunKind handles POST /api/v1/ingest/{kind}
func (h *IngestHandler) RunKind(w http.ResponseWriter, r *http.Request) {
	deviceID, err := h.devices.fromRequest(r)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to resolve device")
		writeNoDevice(w)
		return
	}
	h.devices.remember(deviceID)

	kind := chi.URLParam(r, "kind")
	var count int

	switch kind {
	case "sms":
		messages, err := h.ingest.IngestMessages(r.Context(), deviceID)
		if err != nil {
			h.logger.Error().Err(err).Str("device_id", deviceID).Msg("sms ingest failed")
			writeOperationFailed(w)
			return
		}
		count = len(messages)
	case "calls":
		records, err := h.ingest.IngestCallRecords(r.Context(), deviceID)
		if err != nil {
			h.logger.Error().Err(err).Str("device_id", deviceID).Msg("call log ingest failed")
			writeOperationFailed(w)
			return
		}
		count = len(records)
	case "contacts":
		contacts, err := h.ingest.IngestContacts(r.Context(), deviceID)
		if err != nil {
			h.logger.Error().Err(err).Str("device_id", deviceID).Msg("contacts ingest failed")
			writeOperationFailed(w)
			return
		}
		count = len(contacts)
	default:
		http.Error(w, `{"error":"unknown record kind"}`, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"device_id": deviceID,
		"kind":      kind,
		"count":     count,
	})
}
