package services

import (
	"context"
	"testing"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

type stubQueryStore struct {
	messages []models.Message
}

func (s *stubQueryStore) ListMessages(ctx context.Context, deviceID string, suspiciousOnly bool) ([]models.Message, error) {
	if suspiciousOnly {
		var out []models.Message
		for _, m := range s.messages {
			if m.IsSuspicious {
				out = append(out, m)
			}
		}
		return out, nil
	}
	return s.messages, nil
}

func (s *stubQueryStore) FindMessagesByBody(ctx context.Context, deviceID, term string) ([]models.Message, error) {
	return s.messages, nil
}

func (s *stubQueryStore) ListCallRecords(ctx context.Context, deviceID string) ([]models.CallRecord, error) {
	return nil, nil
}

func (s *stubQueryStore) ListContacts(ctx context.Context, deviceID string) ([]models.Contact, error) {
	return nil, nil
}

func TestSearchMessagesReclassifies(t *testing.T) {
	log := logger.NewDefault()

	// stored flags are stale on purpose; search must recompute them
	store := &stubQueryStore{messages: []models.Message{
		{Address: "+1000", Body: "claim your lottery prize", IsSuspicious: false},
		{Address: "+2000", Body: "see you at lunch", IsSuspicious: true, Category: models.RiskCategoryThreat},
	}}

	svc := NewQueryService(store, NewClassifier(log), log)

	got, err := svc.SearchMessages(context.Background(), "dev1", "you")
	if err != nil {
		t.Fatalf("SearchMessages() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}

	if !got[0].IsSuspicious || got[0].Category != models.RiskCategoryFraud {
		t.Errorf("first hit = (%v, %q), want re-classified as fraud", got[0].IsSuspicious, got[0].Category)
	}
	if got[1].IsSuspicious || got[1].Category != "" {
		t.Errorf("second hit = (%v, %q), want stale flags cleared", got[1].IsSuspicious, got[1].Category)
	}
}

func TestMessagesSuspiciousFilter(t *testing.T) {
	log := logger.NewDefault()
	store := &stubQueryStore{messages: []models.Message{
		{Address: "+1000", IsSuspicious: true, Category: models.RiskCategoryFraud},
		{Address: "+2000"},
	}}

	svc := NewQueryService(store, NewClassifier(log), log)

	got, err := svc.Messages(context.Background(), "dev1", true)
	if err != nil {
		t.Fatalf("Messages() error = %v", err)
	}
	if len(got) != 1 || got[0].Address != "+1000" {
		t.Errorf("Messages(suspiciousOnly) = %v, want only the flagged message", got)
	}
}
