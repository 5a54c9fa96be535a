package services

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

func TestFieldParserParse(t *testing.T) {
	p := NewFieldParser(logger.NewDefault())

	tests := []struct {
		name  string
		raw   string
		allow []string
		want  []Fields
	}{
		{
			name:  "single sms row",
			raw:   "address=+15551234, date=1709290800000, type=1, body=hello there",
			allow: MessageFields,
			want: []Fields{
				{"address": "+15551234", "date": "1709290800000", "type": "1", "body": "hello there"},
			},
		},
		{
			name:  "null token becomes empty value",
			raw:   "address=+15551234, date=NULL, type=2, body=ok",
			allow: MessageFields,
			want: []Fields{
				{"address": "+15551234", "date": "", "type": "2", "body": "ok"},
			},
		},
		{
			name:  "unknown keys dropped",
			raw:   "address=+15551234, thread_id=7, body=hi",
			allow: MessageFields,
			want: []Fields{
				{"address": "+15551234", "body": "hi"},
			},
		},
		{
			name:  "multiple rows keep order",
			raw:   "number=+1000, duration=30, type=1\nnumber=+2000, duration=90, type=3",
			allow: CallFields,
			want: []Fields{
				{"number": "+1000", "duration": "30", "type": "1"},
				{"number": "+2000", "duration": "90", "type": "3"},
			},
		},
		{
			name:  "blank lines skipped",
			raw:   "\n\ndisplay_name=Alice, number=+1000\n   \n",
			allow: ContactFields,
			want: []Fields{
				{"display_name": "Alice", "number": "+1000"},
			},
		},
		{
			name:  "line without pairs yields empty mapping",
			raw:   "Row: 0",
			allow: MessageFields,
			want:  []Fields{{}},
		},
		{
			name:  "empty input",
			raw:   "",
			allow: MessageFields,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.raw, tt.allow)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFieldParserRoundTrip(t *testing.T) {
	p := NewFieldParser(logger.NewDefault())

	lines := []string{
		"address=+15551234, date=1709290800000, type=1, body=lunch at noon?",
		"address=+15559999, date=1709377200000, type=2, body=on my way",
	}

	got := p.Parse(strings.Join(lines, "\n"), MessageFields)
	if len(got) != len(lines) {
		t.Fatalf("Parse() returned %d rows, want %d", len(got), len(lines))
	}

	for i, fields := range got {
		parts := make([]string, 0, len(MessageFields))
		for _, key := range MessageFields {
			if fields.Has(key) {
				parts = append(parts, fmt.Sprintf("%s=%s", key, fields[key]))
			}
		}
		if rebuilt := strings.Join(parts, ", "); rebuilt != lines[i] {
			t.Errorf("row %d round trip = %q, want %q", i, rebuilt, lines[i])
		}
	}
}
