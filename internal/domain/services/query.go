package services

import (
	"context"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// QueryStore exposes the record reads behind the listing and search views.
type QueryStore interface {
	ListMessages(ctx context.Context, deviceID string, suspiciousOnly bool) ([]models.Message, error)
	FindMessagesByBody(ctx context.Context, deviceID, term string) ([]models.Message, error)
	ListCallRecords(ctx context.Context, deviceID string) ([]models.CallRecord, error)
	ListContacts(ctx context.Context, deviceID string) ([]models.Contact, error)
}

// QueryService serves read-only views over a device's stored records.
type QueryService struct {
	store      QueryStore
	classifier *Classifier
	logger     *logger.Logger
}

// NewQueryService creates a new QueryService
func NewQueryService(store QueryStore, classifier *Classifier, log *logger.Logger) *QueryService {
	return &QueryService{
		store:      store,
		classifier: classifier,
		logger:     log.WithComponent("query"),
	}
}

// Messages lists a device's messages, optionally only suspicious ones.
func (s *QueryService) Messages(ctx context.Context, deviceID string, suspiciousOnly bool) ([]models.Message, error) {
	messages, err := s.store.ListMessages(ctx, deviceID, suspiciousOnly)
	if err != nil {
		return nil, collaboratorErr("messages query", err)
	}
	return messages, nil
}

// SearchMessages finds messages whose body contains term and re-runs the
// classifier on each hit, so search results always reflect the current rule
// tables rather than the flags stored at ingest time.
func (s *QueryService) SearchMessages(ctx context.Context, deviceID, term string) ([]models.Message, error) {
	messages, err := s.store.FindMessagesByBody(ctx, deviceID, term)
	if err != nil {
		return nil, collaboratorErr("message search", err)
	}
	for i := range messages {
		s.classifier.Apply(&messages[i])
	}
	return messages, nil
}

// CallRecords lists a device's call log.
func (s *QueryService) CallRecords(ctx context.Context, deviceID string) ([]models.CallRecord, error) {
	records, err := s.store.ListCallRecords(ctx, deviceID)
	if err != nil {
		return nil, collaboratorErr("call log query", err)
	}
	return records, nil
}

// Contacts lists a device's contacts.
func (s *QueryService) Contacts(ctx context.Context, deviceID string) ([]models.Contact, error) {
	contacts, err := s.store.ListContacts(ctx, deviceID)
	if err != nil {
		return nil, collaboratorErr("contacts query", err)
	}
	return contacts, nil
}
