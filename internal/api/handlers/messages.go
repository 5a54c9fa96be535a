package handlers

import (
	"net/http"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/internal/domain/services"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// MessagesHandler handles message endpoints
type MessagesHandler struct {
	query   *services.QueryService
	devices *deviceSelector
	logger  *logger.Logger
}

// NewMessagesHandler creates a new MessagesHandler
func NewMessagesHandler(query *services.QueryService, devices *deviceSelector, log *logger.Logger) *MessagesHandler {
	return &MessagesHandler{
		query:   query,
		devices: devices,
		logger:  log.WithComponent("messages-handler"),
	}
}

// List handles GET /api/v1/messages
func (h *MessagesHandler) List(w http.ResponseWriter, r *http.Request) {
	deviceID, err := h.devices.fromRequest(r)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to resolve device")
		writeNoDevice(w)
		return
	}

	suspiciousOnly := r.URL.Query().Get("suspicious") == "true"

	messages, err := h.query.Messages(r.Context(), deviceID, suspiciousOnly)
	if err != nil {
		h.logger.Error().Err(err).Str("device_id", deviceID).Msg("failed to list messages")
		writeOperationFailed(w)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  messages,
		"total": len(messages),
	})
}

// Search handles GET /api/v1/messages/search?q=
func (h *MessagesHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		http.Error(w, `{"error":"missing search term"}`, http.StatusBadRequest)
		return
	}

	deviceID, err := h.devices.fromRequest(r)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to resolve device")
		writeNoDevice(w)
		return
	}

	messages, err := h.query.SearchMessages(r.Context(), deviceID, term)
	if err != nil {
		h.logger.Error().Err(err).Str("device_id", deviceID).Msg("message search failed")
		writeOperationFailed(w)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  messages,
		"total": len(messages),
	})
}
