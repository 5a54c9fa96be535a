package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// dateLayout is the normalized date-time rendering of epoch-millisecond
// timestamps. External consumers depend on this exact format.
const dateLayout = "2006-01-02 15:04:05"

// Normalizer applies kind-specific value coercion to parsed field mappings.
// Coercion degrades per-field: a missing or unparsable value is carried
// through unchanged, never turned into an error.
type Normalizer struct {
	logger *logger.Logger
}

// NewNormalizer creates a new Normalizer
func NewNormalizer(log *logger.Logger) *Normalizer {
	return &Normalizer{
		logger: log.WithComponent("normalizer"),
	}
}

// NormalizeMessage builds a Message from parsed SMS fields.
//
// Type code "1" maps to received and every other present code, recognized
// or not, maps to sent. The source system only distinguishes inbox from
// outbox, so the binary fallback is kept as-is rather than widened to an
// "unknown" bucket like the call log.
func (n *Normalizer) NormalizeMessage(fields Fields) models.Message {
	msg := models.Message{
		Address: fields["address"],
		Date:    normalizeEpochMillis(fields["date"]),
		Body:    fields["body"],
	}

	if fields.Has("type") {
		if fields["type"] == "1" {
			msg.Direction = models.MessageDirectionReceived
		} else {
			msg.Direction = models.MessageDirectionSent
		}
	}

	return msg
}

// NormalizeCallRecord builds a CallRecord from parsed call-log fields
func (n *Normalizer) NormalizeCallRecord(fields Fields) models.CallRecord {
	rec := models.CallRecord{
		Number:   fields["number"],
		Date:     normalizeEpochMillis(fields["date"]),
		Duration: normalizeDuration(fields["duration"]),
	}

	if fields.Has("type") {
		switch fields["type"] {
		case "1":
			rec.Direction = models.CallDirectionIncoming
		case "2":
			rec.Direction = models.CallDirectionOutgoing
		case "3":
			rec.Direction = models.CallDirectionMissed
		default:
			rec.Direction = models.CallDirectionUnknown
		}
	}

	return rec
}

// NormalizeContact builds a Contact from parsed contact fields. Contacts
// need no coercion beyond the parser's allow-list filtering.
func (n *Normalizer) NormalizeContact(fields Fields) models.Contact {
	return models.Contact{
		DisplayName: fields["display_name"],
		Number:      fields["number"],
	}
}

// normalizeEpochMillis converts an epoch-millisecond string to the local
// date-time layout, or returns the input unchanged when it does not parse.
func normalizeEpochMillis(raw string) string {
	if raw == "" {
		return raw
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}
	return time.UnixMilli(millis).Format(dateLayout)
}

// normalizeDuration renders integer seconds as "{m}m {s}s", or returns the
// input unchanged when it does not parse.
func normalizeDuration(raw string) string {
	if raw == "" {
		return raw
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return raw
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
