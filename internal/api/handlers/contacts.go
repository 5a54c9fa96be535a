package handlers

import (
	"net/http"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/internal/domain/services"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// ContactsHandler handles contact endpoints
type ContactsHandler struct {
	query   *services.QueryService
	devices *deviceSelector
	logger  *logger.Logger
}

// NewContactsHandler creates a new ContactsHandler
func NewContactsHandler(query *services.QueryService, devices *deviceSelector, log *logger.Logger) *ContactsHandler {
	return &ContactsHandler{
		query:   query,
		devices: devices,
		logger:  log.WithComponent("contacts-handler"),
	}
}

// List handles GET /api/v1/contacts
func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	deviceID, err := h.devices.fromRequest(r)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to resolve device")
		writeNoDevice(w)
		return
	}

	contacts, err := h.query.Contacts(r.Context(), deviceID)
	if err != nil {
		h.logger.Error().Err(err).Str("device_id", deviceID).Msg("failed to list contacts")
		writeOperationFailed(w)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  contacts,
		"total": len(contacts),
	})
}
