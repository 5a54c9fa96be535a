package services

import (
	"context"
	"time"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// RawTextProvider fetches raw line-oriented dump text from the device for a
// given content query.
type RawTextProvider interface {
	Fetch(ctx context.Context, query models.Query) (string, error)
}

// IngestStore persists normalized records for a device. Each Replace call
// clears the device's existing records of that kind and inserts the new
// set; the two steps are not atomic with respect to concurrent readers.
type IngestStore interface {
	ReplaceMessages(ctx context.Context, deviceID string, messages []models.Message) error
	ReplaceCallRecords(ctx context.Context, deviceID string, records []models.CallRecord) error
	ReplaceContacts(ctx context.Context, deviceID string, contacts []models.Contact) error
	ListContacts(ctx context.Context, deviceID string) ([]models.Contact, error)
}

// EventPublisher emits ingest events to the message bus. Publish failures
// are reported to the caller but must never abort an ingest.
type EventPublisher interface {
	PublishIngestCompleted(ctx context.Context, summary models.IngestSummary) error
	PublishSuspiciousMessage(ctx context.Context, deviceID string, msg models.Message) error
}

// ViewInvalidator drops cached analytics views for a device after its
// records change.
type ViewInvalidator interface {
	InvalidateDevice(ctx context.Context, deviceID string) error
}

// IngestService orchestrates the full pull-parse-classify-persist pipeline
// for one device. The publisher and invalidator are optional; a nil value
// disables that side effect.
type IngestService struct {
	provider    RawTextProvider
	store       IngestStore
	parser      *FieldParser
	normalizer  *Normalizer
	classifier  *Classifier
	publisher   EventPublisher
	invalidator ViewInvalidator
	logger      *logger.Logger
}

// NewIngestService creates a new IngestService
func NewIngestService(
	provider RawTextProvider,
	store IngestStore,
	parser *FieldParser,
	normalizer *Normalizer,
	classifier *Classifier,
	publisher EventPublisher,
	invalidator ViewInvalidator,
	log *logger.Logger,
) *IngestService {
	return &IngestService{
		provider:    provider,
		store:       store,
		parser:      parser,
		normalizer:  normalizer,
		classifier:  classifier,
		publisher:   publisher,
		invalidator: invalidator,
		logger:      log.WithComponent("ingest"),
	}
}

// IngestAll runs the full pipeline: contacts first so the name mapping is
// fresh for message enrichment, then messages, then call records.
func (s *IngestService) IngestAll(ctx context.Context, deviceID string) (models.IngestSummary, error) {
	summary := models.IngestSummary{
		DeviceID:  deviceID,
		StartedAt: time.Now(),
	}

	contacts, err := s.IngestContacts(ctx, deviceID)
	if err != nil {
		return summary, err
	}
	summary.Contacts = len(contacts)

	messages, err := s.ingestMessagesWithContacts(ctx, deviceID, contactNameIndex(contacts))
	if err != nil {
		return summary, err
	}
	summary.Messages = len(messages)
	for _, msg := range messages {
		if msg.IsSuspicious {
			summary.Suspicious++
		}
	}

	records, err := s.IngestCallRecords(ctx, deviceID)
	if err != nil {
		return summary, err
	}
	summary.CallRecords = len(records)

	summary.CompletedAt = time.Now()

	if s.publisher != nil {
		if err := s.publisher.PublishIngestCompleted(ctx, summary); err != nil {
			s.logger.Warn().Err(err).Str("device_id", deviceID).Msg("failed to publish ingest event")
		}
	}

	s.logger.Info().
		Str("device_id", deviceID).
		Int("messages", summary.Messages).
		Int("suspicious", summary.Suspicious).
		Int("call_records", summary.CallRecords).
		Int("contacts", summary.Contacts).
		Msg("ingest completed")

	return summary, nil
}

// IngestContacts pulls, parses, and replaces the device's contacts.
func (s *IngestService) IngestContacts(ctx context.Context, deviceID string) ([]models.Contact, error) {
	raw, err := s.provider.Fetch(ctx, models.QueryContacts)
	if err != nil {
		return nil, collaboratorErr("contacts fetch", err)
	}

	parsed := s.parser.Parse(raw, ContactFields)
	contacts := make([]models.Contact, 0, len(parsed))
	for _, fields := range parsed {
		contacts = append(contacts, s.normalizer.NormalizeContact(fields))
	}

	if err := s.store.ReplaceContacts(ctx, deviceID, contacts); err != nil {
		return nil, collaboratorErr("contacts store", err)
	}
	s.invalidateViews(ctx, deviceID)
	return contacts, nil
}

// IngestMessages pulls, parses, classifies, and replaces the device's
// messages, resolving contact names from the stored contact set.
func (s *IngestService) IngestMessages(ctx context.Context, deviceID string) ([]models.Message, error) {
	contacts, err := s.store.ListContacts(ctx, deviceID)
	if err != nil {
		return nil, collaboratorErr("contacts load", err)
	}
	messages, err := s.ingestMessagesWithContacts(ctx, deviceID, contactNameIndex(contacts))
	if err != nil {
		return nil, err
	}
	s.invalidateViews(ctx, deviceID)
	return messages, nil
}

// IngestCallRecords pulls, parses, and replaces the device's call log.
func (s *IngestService) IngestCallRecords(ctx context.Context, deviceID string) ([]models.CallRecord, error) {
	raw, err := s.provider.Fetch(ctx, models.QueryCallLog)
	if err != nil {
		return nil, collaboratorErr("call log fetch", err)
	}

	parsed := s.parser.Parse(raw, CallFields)
	records := make([]models.CallRecord, 0, len(parsed))
	for _, fields := range parsed {
		records = append(records, s.normalizer.NormalizeCallRecord(fields))
	}

	if err := s.store.ReplaceCallRecords(ctx, deviceID, records); err != nil {
		return nil, collaboratorErr("call log store", err)
	}
	s.invalidateViews(ctx, deviceID)
	return records, nil
}

func (s *IngestService) ingestMessagesWithContacts(ctx context.Context, deviceID string, names map[string]string) ([]models.Message, error) {
	raw, err := s.provider.Fetch(ctx, models.QuerySMS)
	if err != nil {
		return nil, collaboratorErr("sms fetch", err)
	}

	parsed := s.parser.Parse(raw, MessageFields)
	messages := make([]models.Message, 0, len(parsed))
	for _, fields := range parsed {
		msg := s.normalizer.NormalizeMessage(fields)
		s.classifier.Apply(&msg)
		msg.ContactName = resolveContactName(names, msg.Address)
		messages = append(messages, msg)
	}

	if err := s.store.ReplaceMessages(ctx, deviceID, messages); err != nil {
		return nil, collaboratorErr("sms store", err)
	}

	if s.publisher != nil {
		for _, msg := range messages {
			if !msg.IsSuspicious {
				continue
			}
			if err := s.publisher.PublishSuspiciousMessage(ctx, deviceID, msg); err != nil {
				s.logger.Warn().Err(err).Str("device_id", deviceID).Msg("failed to publish suspicious message event")
				break
			}
		}
	}

	return messages, nil
}

func (s *IngestService) invalidateViews(ctx context.Context, deviceID string) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.InvalidateDevice(ctx, deviceID); err != nil {
		s.logger.Warn().Err(err).Str("device_id", deviceID).Msg("failed to invalidate cached views")
	}
}

// contactNameIndex builds the number-to-name mapping used for message
// enrichment. Built once per ingest run.
func contactNameIndex(contacts []models.Contact) map[string]string {
	index := make(map[string]string, len(contacts))
	for _, c := range contacts {
		if c.Number != "" {
			index[c.Number] = c.DisplayName
		}
	}
	return index
}

// resolveContactName returns a pointer to the display name for addr, or nil
// when the address is not in the contact set. Unknown stays null rather
// than becoming an empty string.
func resolveContactName(names map[string]string, addr string) *string {
	if name, ok := names[addr]; ok {
		return &name
	}
	return nil
}
