package models

import "time"

// MessageVolume is one group of the per-address message count aggregation
type MessageVolume struct {
	Address string `json:"address"`
	Count   int64  `json:"count"`
}

// TimelineBucket is one calendar day of the suspicious-activity timeline
type TimelineBucket struct {
	Date               string `json:"date"`
	TotalMessages      int64  `json:"totalMessages"`
	SuspiciousMessages int64  `json:"suspiciousMessages"`
}

// NumberCorrelation joins one high-volume address against its call history.
// CallLogs is empty, never nil, when the lookup failed or found nothing.
type NumberCorrelation struct {
	Number   string       `json:"number"`
	SMSCount int64        `json:"smsCount"`
	CallLogs []CallRecord `json:"callLogs"`
}

// IngestSummary reports the outcome of one ingestion run
type IngestSummary struct {
	DeviceID    string    `json:"device_id"`
	Messages    int       `json:"messages"`
	Suspicious  int       `json:"suspicious"`
	CallRecords int       `json:"call_records"`
	Contacts    int       `json:"contacts"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}
