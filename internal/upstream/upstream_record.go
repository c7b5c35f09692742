package upstream

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	upstreamerrors "go-hris-console/internal/upstream/errors"
)

// Record is one loosely typed item of a backend list. Field names differ
// between backend versions, so accessors take fallbacks in priority order.
type Record map[string]any

// DecodeList accepts a bare JSON array or an envelope whose "data" field
// is an array. An empty body is an empty list.
func DecodeList(raw json.RawMessage) ([]Record, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []Record{}, nil
	}

	var list []Record
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, upstreamerrors.ErrMalformedPayload.WithCause(err)
		}
		return nonNil(list), nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, upstreamerrors.ErrMalformedPayload.WithCause(err)
	}
	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []Record{}, nil
	}
	if data[0] != '[' {
		return nil, upstreamerrors.ErrMalformedPayload
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, upstreamerrors.ErrMalformedPayload.WithCause(err)
	}
	return nonNil(list), nil
}

func nonNil(list []Record) []Record {
	if list == nil {
		return []Record{}
	}
	return list
}

// truthy follows the backend's JSON conventions: null, false, "" and 0 are
// treated as absent.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}

// First returns the first truthy value among keys.
func (r Record) First(keys ...string) any {
	for _, k := range keys {
		if v, ok := r[k]; ok && truthy(v) {
			return v
		}
	}
	return nil
}

// Text returns the first truthy value among keys rendered as a string.
func (r Record) Text(keys ...string) string {
	switch v := r.First(keys...).(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, _ := json.Marshal(v)
		return string(b)
	}
}

// Number returns the first truthy value among keys as a float. Strings
// are read by their leading numeric prefix ("1500.50 IDR" -> 1500.5).
// Anything unreadable counts as 0.
func (r Record) Number(keys ...string) float64 {
	switch v := r.First(keys...).(type) {
	case float64:
		return v
	case string:
		return ParseLeadingFloat(v)
	default:
		return 0
	}
}

// IsFalse reports whether key holds the boolean false. Absent keys and
// non-boolean values are not false.
func (r Record) IsFalse(key string) bool {
	b, ok := r[key].(bool)
	return ok && !b
}

// EqualFold reports whether the string at key equals want ignoring case.
func (r Record) EqualFold(key, want string) bool {
	s, ok := r[key].(string)
	return ok && strings.EqualFold(s, want)
}

// Time parses the first truthy value among keys as an instant.
func (r Record) Time(keys ...string) (time.Time, bool) {
	return ParseTimestamp(r.First(keys...))
}

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseLeadingFloat reads the longest numeric prefix of s, ignoring
// leading whitespace. It returns 0 when there is none.
func ParseLeadingFloat(s string) float64 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp accepts ISO-8601 style strings and epoch milliseconds.
// Values without a zone are read as UTC.
func ParseTimestamp(v any) (time.Time, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, true
			}
		}
		return time.Time{}, false
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(t)).UTC(), true
	default:
		return time.Time{}, false
	}
}
