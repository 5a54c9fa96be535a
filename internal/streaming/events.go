package streaming

import (
	"time"

	"github.com/google/uuid"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
)

// EventType represents the type of triage event
type EventType string

const (
	EventTypeIngestCompleted   EventType = "ingest_completed"
	EventTypeSuspiciousMessage EventType = "suspicious_message"
)

// IngestEvent is published when a device ingest finishes
type IngestEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	DeviceID  string    `json:"device_id"`

	Messages    int `json:"messages"`
	Suspicious  int `json:"suspicious"`
	CallRecords int `json:"call_records"`
	Contacts    int `json:"contacts"`

	DurationMS int64 `json:"duration_ms"`
}

// NewIngestEvent creates an ingest event from an ingest summary
func NewIngestEvent(summary models.IngestSummary) *IngestEvent {
	return &IngestEvent{
		ID:          uuid.New().String(),
		Type:        EventTypeIngestCompleted,
		Timestamp:   time.Now(),
		DeviceID:    summary.DeviceID,
		Messages:    summary.Messages,
		Suspicious:  summary.Suspicious,
		CallRecords: summary.CallRecords,
		Contacts:    summary.Contacts,
		DurationMS:  summary.CompletedAt.Sub(summary.StartedAt).Milliseconds(),
	}
}

// MessageEvent is published for each message an ingest flags as suspicious
type MessageEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	DeviceID  string    `json:"device_id"`

	Address     string              `json:"address"`
	Category    models.RiskCategory `json:"category"`
	Direction   string              `json:"direction,omitempty"`
	Date        string              `json:"date,omitempty"`
	ContactName *string             `json:"contact_name"`
}

// NewMessageEvent creates a suspicious-message event. The body is left out
// of the event on purpose; consumers fetch it through the API if needed.
func NewMessageEvent(deviceID string, msg models.Message) *MessageEvent {
	return &MessageEvent{
		ID:          uuid.New().String(),
		Type:        EventTypeSuspiciousMessage,
		Timestamp:   time.Now(),
		DeviceID:    deviceID,
		Address:     msg.Address,
		Category:    msg.Category,
		Direction:   string(msg.Direction),
		Date:        msg.Date,
		ContactName: msg.ContactName,
	}
}
