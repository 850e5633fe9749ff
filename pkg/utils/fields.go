package utils

import (
	"encoding/json"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ParseTagList normalizes a tags value coming from storage or a form.
// Sequences keep only their string elements, strings are split on commas.
func ParseTagList(value any) []string {
	switch v := value.(type) {
	case []string:
		tags := make([]string, len(v))
		copy(tags, v)
		return tags
	case []any:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	case string:
		tags := []string{}
		for _, part := range strings.Split(v, ",") {
			if tag := strings.TrimSpace(part); tag != "" {
				tags = append(tags, tag)
			}
		}
		return tags
	default:
		return []string{}
	}
}

// NormalizeTagList is ParseTagList with every tag trimmed and empty tags
// dropped, for sequences as well as strings.
func NormalizeTagList(value any) []string {
	tags := []string{}
	for _, tag := range ParseTagList(value) {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTagList is the storage form of a tag list
func JoinTagList(tags []string) string {
	return strings.Join(tags, ",")
}

// ParseActivityList normalizes a tour activities value. Strings are treated
// as JSON; anything that does not decode to an array yields an empty list.
func ParseActivityList(value any) []any {
	switch v := value.(type) {
	case []any:
		return v
	case []map[string]any:
		activities := make([]any, 0, len(v))
		for _, item := range v {
			activities = append(activities, item)
		}
		return activities
	case string:
		var decoded any
		if err := json.Unmarshal([]byte(v), &decoded); err != nil {
			return []any{}
		}
		if activities, ok := decoded.([]any); ok {
			return activities
		}
		return []any{}
	default:
		return []any{}
	}
}

// ParseActivityListStrict decodes activities text, reporting false when the
// text is not a JSON array. Blank text is an empty list.
func ParseActivityListStrict(text string) ([]any, bool) {
	if strings.TrimSpace(text) == "" {
		return []any{}, true
	}
	var activities []any
	if err := json.Unmarshal([]byte(text), &activities); err != nil {
		return nil, false
	}
	if activities == nil {
		activities = []any{}
	}
	return activities, true
}

// IsValidEmailAddress accepts an empty value, the field is optional
func IsValidEmailAddress(text string) bool {
	if text == "" {
		return true
	}
	return emailPattern.MatchString(text)
}
