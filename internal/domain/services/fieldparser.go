package services

import (
	"regexp"
	"strings"

	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// Allow-listed field names per record kind. Raw dump lines carry more
// columns than these; everything else is dropped at parse time.
var (
	MessageFields = []string{"address", "date", "type", "body"}
	CallFields    = []string{"number", "date", "duration", "type"}
	ContactFields = []string{"display_name", "number"}
)

// nullToken is the literal a content query emits for an absent column value
const nullToken = "NULL"

// fieldPattern matches one identifier=value pair within a dump line. Values
// run to the next comma, so literal commas cannot appear inside a value.
var fieldPattern = regexp.MustCompile(`(\w+)=([^,]*)`)

// Fields is the key/value mapping parsed from a single dump line. A key
// whose raw value was the NULL token is present with an empty value.
type Fields map[string]string

// Has reports whether the key was present on the source line
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// FieldParser turns raw line-oriented key=value dump text into field mappings
type FieldParser struct {
	logger *logger.Logger
}

// NewFieldParser creates a new FieldParser
func NewFieldParser(log *logger.Logger) *FieldParser {
	return &FieldParser{
		logger: log.WithComponent("field-parser"),
	}
}

// Parse splits raw text into lines and extracts the allow-listed fields of
// each one. Blank and whitespace-only lines are discarded; every other line
// yields exactly one mapping, in input order, even when no pair matched.
func (p *FieldParser) Parse(raw string, allow []string) []Fields {
	allowed := make(map[string]bool, len(allow))
	for _, key := range allow {
		allowed[key] = true
	}

	var out []Fields
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := make(Fields)
		for _, match := range fieldPattern.FindAllStringSubmatch(line, -1) {
			key, value := match[1], match[2]
			if !allowed[key] {
				continue
			}
			if strings.TrimSpace(value) == nullToken {
				value = ""
			}
			fields[key] = strings.TrimSpace(value)
		}
		out = append(out, fields)
	}

	return out
}
