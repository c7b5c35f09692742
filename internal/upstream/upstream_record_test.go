package upstream_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-hris-console/internal/upstream"
	upstreamerrors "go-hris-console/internal/upstream/errors"

	"github.com/stretchr/testify/assert"
)

func TestDecodeList(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		list, err := upstream.DecodeList(json.RawMessage(`[{"id":1},{"id":2}]`))
		assert.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("data envelope", func(t *testing.T) {
		list, err := upstream.DecodeList(json.RawMessage(`{"ok":true,"data":[{"id":"a"}]}`))
		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, "a", list[0]["id"])
	})

	t.Run("empty body and null data", func(t *testing.T) {
		list, err := upstream.DecodeList(nil)
		assert.NoError(t, err)
		assert.Empty(t, list)

		list, err = upstream.DecodeList(json.RawMessage(`{"data":null}`))
		assert.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("object data is malformed", func(t *testing.T) {
		_, err := upstream.DecodeList(json.RawMessage(`{"data":{"id":1}}`))
		assert.ErrorIs(t, err, upstreamerrors.ErrMalformedPayload)
	})

	t.Run("invalid json is malformed", func(t *testing.T) {
		_, err := upstream.DecodeList(json.RawMessage(`[{"id":`))
		assert.ErrorIs(t, err, upstreamerrors.ErrMalformedPayload)
	})
}

func TestRecord_Number(t *testing.T) {
	tests := []struct {
		name string
		rec  upstream.Record
		want float64
	}{
		{"total_amount wins", upstream.Record{"total_amount": 1500.5, "total": 10.0}, 1500.5},
		{"zero total_amount falls back", upstream.Record{"total_amount": 0.0, "total": 10.0}, 10},
		{"numeric string", upstream.Record{"total_amount": "2500000.75"}, 2500000.75},
		{"string with suffix", upstream.Record{"total": "300 IDR"}, 300},
		{"empty string falls back", upstream.Record{"total_amount": "", "total": "7"}, 7},
		{"garbage is zero", upstream.Record{"total_amount": "n/a"}, 0},
		{"missing is zero", upstream.Record{}, 0},
		{"bool is zero", upstream.Record{"total": true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.Number("total_amount", "total"))
		})
	}
}

func TestRecord_IsFalse(t *testing.T) {
	assert.True(t, upstream.Record{"is_active": false}.IsFalse("is_active"))
	assert.False(t, upstream.Record{"is_active": true}.IsFalse("is_active"))
	assert.False(t, upstream.Record{}.IsFalse("is_active"))
	assert.False(t, upstream.Record{"is_active": "false"}.IsFalse("is_active"))
	assert.False(t, upstream.Record{"is_active": nil}.IsFalse("is_active"))
}

func TestRecord_Text(t *testing.T) {
	rec := upstream.Record{"request_id": 42.0, "title": "", "topic": "Quarterly review"}

	assert.Equal(t, "42", rec.Text("request_id"))
	assert.Equal(t, "Quarterly review", rec.Text("title", "topic"))
	assert.Equal(t, "", rec.Text("missing"))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   any
		want time.Time
		ok   bool
	}{
		{"2026-03-01T09:30:00Z", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), true},
		{"2026-03-01T09:30:00+07:00", time.Date(2026, 3, 1, 2, 30, 0, 0, time.UTC), true},
		{"2026-03-01 09:30:00", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), true},
		{"2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), true},
		{"2026-03-01T09:30:00.123456", time.Date(2026, 3, 1, 9, 30, 0, 123456000, time.UTC), true},
		{float64(1772357400000), time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), true},
		{"next tuesday", time.Time{}, false},
		{"", time.Time{}, false},
		{nil, time.Time{}, false},
		{true, time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := upstream.ParseTimestamp(tt.in)
		assert.Equal(t, tt.ok, ok, "input %v", tt.in)
		if tt.ok {
			assert.True(t, tt.want.Equal(got), "input %v: got %v", tt.in, got)
		}
	}
}
