package handlers

import (
	"net/http"
	"regexp"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/internal/domain/services"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// AnalyticsHandler handles analytics endpoints
type AnalyticsHandler struct {
	analytics *services.AnalyticsService
	devices   *deviceSelector
	logger    *logger.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analytics *services.AnalyticsService, devices *deviceSelector, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		devices:   devices,
		logger:    log.WithComponent("analytics-handler"),
	}
}

// Volume handles GET /api/v1/analytics/volume
func (h *AnalyticsHandler) Volume(w http.ResponseWriter, r *http.Request) {
	deviceID, err := h.devices.fromRequest(r)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to resolve device")
		writeNoDevice(w)
		return
	}

	groups, err := h.analytics.Volume(r.Context(), deviceID)
	if err != nil {
		h.logger.Error().Err(err).Str("device_id", deviceID).Msg("volume aggregation failed")
		writeOperationFailed(w)
		return
	}
	if groups == nil {
		groups = []models.MessageVolume{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": groups})
}

// Timeline handles GET /api/v1/analytics/timeline?from=&to=
func (h *AnalyticsHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if (from != "" && !dayPattern.MatchString(from)) || (to != "" && !dayPattern.MatchString(to)) {
		http.Error(w, `{"error":"dates must be YYYY-MM-DD"}`, http.StatusBadRequest)
		return
	}

	deviceID, err := h.devices.fromRequest(r)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to resolve device")
		writeNoDevice(w)
		return
	}

	buckets, err := h.analytics.Timeline(r.Context(), deviceID, from, to)
	if err != nil {
		h.logger.Error().Err(err).Str("device_id", deviceID).Msg("timeline aggregation failed")
		writeOperationFailed(w)
		return
	}
	if buckets == nil {
		buckets = []models.TimelineBucket{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": buckets})
}

// Correlation handles GET /api/v1/analytics/correlation
func (h *AnalyticsHandler) Correlation(w http.ResponseWriter, r *http.Request) {
	deviceID, err := h.devices.fromRequest(r)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to resolve device")
		writeNoDevice(w)
		return
	}

	entries, err := h.analytics.Correlate(r.Context(), deviceID)
	if err != nil {
		h.logger.Error().Err(err).Str("device_id", deviceID).Msg("correlation failed")
		writeOperationFailed(w)
		return
	}
	if entries == nil {
		entries = []models.NumberCorrelation{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": entries})
}
