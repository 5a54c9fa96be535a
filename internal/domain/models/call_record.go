package models

// CallDirection classifies a call-log entry by its source type code
type CallDirection string

const (
	CallDirectionIncoming CallDirection = "incoming"
	CallDirectionOutgoing CallDirection = "outgoing"
	CallDirectionMissed   CallDirection = "missed"
	CallDirectionUnknown  CallDirection = "unknown"
)

// CallRecord is a normalized call-log entry extracted from a device dump.
// Date uses the same normalized format as Message.Date; Duration is the
// "{m}m {s}s" rendering of the raw integer seconds, or the raw value when
// it could not be parsed.
type CallRecord struct {
	Number    string        `json:"number"`
	Date      string        `json:"date,omitempty"`
	Duration  string        `json:"duration,omitempty"`
	Direction CallDirection `json:"direction,omitempty"`
}
