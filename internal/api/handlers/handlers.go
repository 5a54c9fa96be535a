package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/services"
	"github.com/RanaNomiRana/AFA-backend/internal/infrastructure/cache"
	"github.com/RanaNomiRana/AFA-backend/internal/infrastructure/database"
	"github.com/RanaNomiRana/AFA-backend/internal/infrastructure/device"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// DeviceResolver identifies the connected device whose store namespace the
// request targets.
type DeviceResolver interface {
	ResolveIdentifier(ctx context.Context) (string, error)
}

// Handlers holds all API handlers
type Handlers struct {
	Health    *HealthHandler
	Ingest    *IngestHandler
	Messages  *MessagesHandler
	Calls     *CallsHandler
	Contacts  *ContactsHandler
	Analytics *AnalyticsHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Ingest    *services.IngestService
	Query     *services.QueryService
	Analytics *services.AnalyticsService
	Resolver  DeviceResolver
	Cache     *cache.RedisCache
	DB        *database.PostgresDB
	Logger    *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	devices := &deviceSelector{resolver: deps.Resolver}

	return &Handlers{
		Health:    NewHealthHandler(deps.Cache, deps.DB, deps.Logger),
		Ingest:    NewIngestHandler(deps.Ingest, devices, deps.Logger),
		Messages:  NewMessagesHandler(deps.Query, devices, deps.Logger),
		Calls:     NewCallsHandler(deps.Query, devices, deps.Logger),
		Contacts:  NewContactsHandler(deps.Query, devices, deps.Logger),
		Analytics: NewAnalyticsHandler(deps.Analytics, devices, deps.Logger),
	}
}

// deviceSelector picks the store namespace for a request: an explicit
// ?device= parameter wins, then the identifier cached from the last
// resolution, then a fresh resolver call.
type deviceSelector struct {
	resolver DeviceResolver

	mu     sync.Mutex
	cached string
}

func (s *deviceSelector) fromRequest(r *http.Request) (string, error) {
	if id := device.SanitizeIdentifier(r.URL.Query().Get("device")); id != "" {
		return id, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != "" {
		return s.cached, nil
	}

	id, err := s.resolver.ResolveIdentifier(r.Context())
	if err != nil {
		return "", err
	}
	s.cached = id
	return id, nil
}

func (s *deviceSelector) remember(id string) {
	s.mu.Lock()
	s.cached = id
	s.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeOperationFailed surfaces any core failure as the generic
// operation-failed signal; details stay in the logs.
func writeOperationFailed(w http.ResponseWriter) {
	http.Error(w, `{"error":"operation failed"}`, http.StatusInternalServerError)
}

func writeNoDevice(w http.ResponseWriter) {
	http.Error(w, `{"error":"no device available"}`, http.StatusServiceUnavailable)
}
