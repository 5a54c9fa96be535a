package services

import (
	"testing"
	"time"

	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

func TestNormalizeDuration(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"125", "2m 5s"},
		{"59", "0m 59s"},
		{"60", "1m 0s"},
		{"0", "0m 0s"},
		{"3601", "60m 1s"},
		{"", ""},
		{"abc", "abc"},
		{"-5", "-5"},
	}

	for _, tt := range tests {
		if got := normalizeDuration(tt.raw); got != tt.want {
			t.Errorf("normalizeDuration(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeEpochMillis(t *testing.T) {
	millis := int64(1709290800000)
	want := time.UnixMilli(millis).Format("2006-01-02 15:04:05")
	if got := normalizeEpochMillis("1709290800000"); got != want {
		t.Errorf("normalizeEpochMillis() = %q, want %q", got, want)
	}

	// unparsable values pass through untouched
	if got := normalizeEpochMillis("yesterday"); got != "yesterday" {
		t.Errorf("normalizeEpochMillis(%q) = %q, want input unchanged", "yesterday", got)
	}
	if got := normalizeEpochMillis(""); got != "" {
		t.Errorf("normalizeEpochMillis(\"\") = %q, want empty", got)
	}
}

func TestNormalizeMessageDirection(t *testing.T) {
	n := NewNormalizer(logger.NewDefault())

	tests := []struct {
		name   string
		fields Fields
		want   models.MessageDirection
	}{
		{"type 1 is received", Fields{"type": "1"}, models.MessageDirectionReceived},
		{"type 2 is sent", Fields{"type": "2"}, models.MessageDirectionSent},
		{"garbage code is sent", Fields{"type": "drafts"}, models.MessageDirectionSent},
		{"absent type stays unset", Fields{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.NormalizeMessage(tt.fields).Direction; got != tt.want {
				t.Errorf("Direction = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeCallRecordDirection(t *testing.T) {
	n := NewNormalizer(logger.NewDefault())

	tests := []struct {
		code string
		want models.CallDirection
	}{
		{"1", models.CallDirectionIncoming},
		{"2", models.CallDirectionOutgoing},
		{"3", models.CallDirectionMissed},
		{"4", models.CallDirectionUnknown},
		{"voicemail", models.CallDirectionUnknown},
	}

	for _, tt := range tests {
		got := n.NormalizeCallRecord(Fields{"type": tt.code}).Direction
		if got != tt.want {
			t.Errorf("NormalizeCallRecord(type=%q).Direction = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestNormalizeCallRecordFields(t *testing.T) {
	n := NewNormalizer(logger.NewDefault())

	rec := n.NormalizeCallRecord(Fields{
		"number":   "+15551234",
		"date":     "1709290800000",
		"duration": "125",
		"type":     "2",
	})

	if rec.Number != "+15551234" {
		t.Errorf("Number = %q, want %q", rec.Number, "+15551234")
	}
	if rec.Duration != "2m 5s" {
		t.Errorf("Duration = %q, want %q", rec.Duration, "2m 5s")
	}
	if rec.Direction != models.CallDirectionOutgoing {
		t.Errorf("Direction = %q, want %q", rec.Direction, models.CallDirectionOutgoing)
	}
}
