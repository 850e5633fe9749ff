// Package casing translates records between the snake_case shape used by the
// database and the camelCase shape used by the API.
package casing

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/segyhp/travel-crm/pkg/utils"
)

// Record is a single row or request body keyed by field name
type Record map[string]any

// Kind selects the value conversion applied to a field
type Kind int

const (
	Plain Kind = iota
	Date
	Tags
	Activities
	List
)

// Field maps one application key to its storage column
type Field struct {
	App     string
	Storage string
	Kind    Kind
}

// DateFields is the fixed set of storage keys holding calendar dates.
// It is used for keys that an entity schema does not declare.
var DateFields = map[string]bool{
	"birth_date":             true,
	"passport_expiry":        true,
	"schengen_visa_end_date": true,
	"us_visa_end_date":       true,
	"appointment_date":       true,
	"start_date":             true,
	"end_date":               true,
	"check_in":               true,
	"check_out":              true,
}

const (
	tagsKey       = "tags"
	activitiesKey = "activities"
)

// Default converts records using only the derived naming rule
var Default = NewSchema("")

// ToStorageShape converts a record (or anything else, which passes through)
// into storage shape.
func ToStorageShape(v any) any {
	switch r := v.(type) {
	case Record:
		return Default.ToStorage(r)
	case map[string]any:
		return map[string]any(Default.ToStorage(Record(r)))
	default:
		return v
	}
}

// ToApplicationShape converts a record, or each record of a sequence, into
// application shape. Other values pass through.
//
// Tags are stored comma joined, so a round trip returns them trimmed with
// empty tags dropped: {"vip", " gold", ""} comes back as {"vip", "gold"}.
func ToApplicationShape(v any) any {
	switch r := v.(type) {
	case Record:
		return Default.ToApplication(r)
	case map[string]any:
		return map[string]any(Default.ToApplication(Record(r)))
	case []Record:
		return Default.ToApplicationAll(r)
	case []map[string]any:
		out := make([]map[string]any, len(r))
		for i, item := range r {
			out[i] = map[string]any(Default.ToApplication(Record(item)))
		}
		return out
	case []any:
		out := make([]any, len(r))
		for i, item := range r {
			out[i] = ToApplicationShape(item)
		}
		return out
	default:
		return v
	}
}

// SnakeCase rewrites every upper-case ASCII letter as "_" plus its lower-case form
func SnakeCase(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// CamelCase rewrites every "_" followed by a lower-case ASCII letter as the
// upper-case letter.
func CamelCase(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '_' && i+1 < len(key) && key[i+1] >= 'a' && key[i+1] <= 'z' {
			b.WriteByte(key[i+1] - ('a' - 'A'))
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func derivedKind(storageKey string) Kind {
	switch {
	case DateFields[storageKey]:
		return Date
	case storageKey == tagsKey:
		return Tags
	case storageKey == activitiesKey:
		return Activities
	default:
		return Plain
	}
}

func toStorageValue(kind Kind, v any) any {
	switch kind {
	case Date:
		if v == nil {
			return nil
		}
		if s, ok := v.(string); ok && s == "" {
			return nil
		}
	case Tags:
		if isSequence(v) {
			return utils.JoinTagList(utils.ParseTagList(v))
		}
	case Activities:
		if isSequence(v) {
			raw, err := json.Marshal(v)
			if err == nil {
				return string(raw)
			}
		}
	}
	return v
}

func toApplicationValue(kind Kind, v any) any {
	switch kind {
	case Date:
		switch d := v.(type) {
		case nil:
			return ""
		case time.Time:
			return utils.FormatDate(d)
		}
	case Tags:
		if s, ok := v.(string); ok {
			return utils.ParseTagList(s)
		}
	case Activities:
		if s, ok := v.(string); ok {
			return utils.ParseActivityList(s)
		}
	}
	return v
}

func isSequence(v any) bool {
	if v == nil {
		return false
	}
	kind := reflect.TypeOf(v).Kind()
	if kind == reflect.Array {
		return true
	}
	if kind != reflect.Slice {
		return false
	}
	_, isBytes := v.([]byte)
	return !isBytes
}
