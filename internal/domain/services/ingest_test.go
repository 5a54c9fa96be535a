package services

import (
	"context"
	"errors"
	"testing"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

type stubProvider struct {
	dumps map[string]string
	fail  map[string]bool
}

func (p *stubProvider) Fetch(ctx context.Context, query models.Query) (string, error) {
	if p.fail[query.URI] {
		return "", errors.New("adb exited with status 1")
	}
	return p.dumps[query.URI], nil
}

type stubStore struct {
	messages []models.Message
	records  []models.CallRecord
	contacts []models.Contact
}

func (s *stubStore) ReplaceMessages(ctx context.Context, deviceID string, messages []models.Message) error {
	s.messages = messages
	return nil
}

func (s *stubStore) ReplaceCallRecords(ctx context.Context, deviceID string, records []models.CallRecord) error {
	s.records = records
	return nil
}

func (s *stubStore) ReplaceContacts(ctx context.Context, deviceID string, contacts []models.Contact) error {
	s.contacts = contacts
	return nil
}

func (s *stubStore) ListContacts(ctx context.Context, deviceID string) ([]models.Contact, error) {
	return s.contacts, nil
}

func newTestIngest(provider RawTextProvider, store IngestStore) *IngestService {
	log := logger.NewDefault()
	return NewIngestService(
		provider,
		store,
		NewFieldParser(log),
		NewNormalizer(log),
		NewClassifier(log),
		nil,
		nil,
		log,
	)
}

func TestIngestAll(t *testing.T) {
	provider := &stubProvider{dumps: map[string]string{
		models.QueryContacts.URI: "display_name=Alice, number=+1000\ndisplay_name=Bob, number=+2000",
		models.QuerySMS.URI: "address=+1000, date=1709290800000, type=1, body=claim your lottery prize\n" +
			"address=+9999, date=1709290900000, type=2, body=see you at lunch",
		models.QueryCallLog.URI: "number=+1000, date=1709291000000, duration=125, type=2",
	}}
	store := &stubStore{}

	summary, err := newTestIngest(provider, store).IngestAll(context.Background(), "dev1")
	if err != nil {
		t.Fatalf("IngestAll() error = %v", err)
	}

	if summary.Messages != 2 || summary.Suspicious != 1 || summary.CallRecords != 1 || summary.Contacts != 2 {
		t.Errorf("summary = %+v, want 2 messages, 1 suspicious, 1 call record, 2 contacts", summary)
	}

	if len(store.messages) != 2 {
		t.Fatalf("stored %d messages, want 2", len(store.messages))
	}

	first := store.messages[0]
	if !first.IsSuspicious || first.Category != models.RiskCategoryFraud {
		t.Errorf("first message = suspicious %v category %q, want fraud", first.IsSuspicious, first.Category)
	}
	if first.ContactName == nil || *first.ContactName != "Alice" {
		t.Errorf("first message ContactName = %v, want Alice", first.ContactName)
	}
	if first.Direction != models.MessageDirectionReceived {
		t.Errorf("first message Direction = %q, want received", first.Direction)
	}

	second := store.messages[1]
	if second.ContactName != nil {
		t.Errorf("unknown address ContactName = %q, want nil", *second.ContactName)
	}
	if second.IsSuspicious {
		t.Errorf("benign message flagged suspicious")
	}

	if len(store.records) != 1 || store.records[0].Duration != "2m 5s" {
		t.Errorf("stored call records = %+v, want one with duration 2m 5s", store.records)
	}
}

func TestIngestAllFetchFailure(t *testing.T) {
	provider := &stubProvider{
		dumps: map[string]string{},
		fail:  map[string]bool{models.QueryContacts.URI: true},
	}

	_, err := newTestIngest(provider, &stubStore{}).IngestAll(context.Background(), "dev1")
	var collab *CollaboratorError
	if !errors.As(err, &collab) {
		t.Fatalf("IngestAll() error = %v, want CollaboratorError", err)
	}
}

func TestIngestMessagesResolvesStoredContacts(t *testing.T) {
	provider := &stubProvider{dumps: map[string]string{
		models.QuerySMS.URI: "address=+1000, date=NULL, type=1, body=hi",
	}}
	store := &stubStore{contacts: []models.Contact{{DisplayName: "Alice", Number: "+1000"}}}

	messages, err := newTestIngest(provider, store).IngestMessages(context.Background(), "dev1")
	if err != nil {
		t.Fatalf("IngestMessages() error = %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}
	if messages[0].ContactName == nil || *messages[0].ContactName != "Alice" {
		t.Errorf("ContactName = %v, want Alice", messages[0].ContactName)
	}
	if messages[0].Date != "" {
		t.Errorf("Date = %q, want empty for NULL column", messages[0].Date)
	}
}
