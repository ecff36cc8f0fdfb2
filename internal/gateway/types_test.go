// File: internal/gateway/types_test.go
package gateway

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestRawNotification_ReadAliases(t *testing.T) {
	now := time.Now()

	// Unread only when both legacy fields are absent or false.
	cases := []struct {
		name   string
		raw    rawNotification
		isRead bool
	}{
		{"both false", rawNotification{IsRead: boolPtr(false), Read: boolPtr(false)}, false},
		{"both absent", rawNotification{}, false},
		{"isRead true", rawNotification{IsRead: boolPtr(true)}, true},
		{"read true", rawNotification{Read: boolPtr(true)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isRead, tc.raw.normalize(now).IsRead)
		})
	}
}

func TestRawNotification_TimestampAliases(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	stamp := "2026-08-28T10:30:00Z"

	n := rawNotification{CreatedAt: stamp}.normalize(now)
	assert.Equal(t, stamp, n.CreatedAt.Format(time.RFC3339))

	n = rawNotification{Date: stamp}.normalize(now)
	assert.Equal(t, stamp, n.CreatedAt.Format(time.RFC3339))

	// createdAt wins over date when both are present.
	n = rawNotification{CreatedAt: stamp, Date: "2020-01-01T00:00:00Z"}.normalize(now)
	assert.Equal(t, stamp, n.CreatedAt.Format(time.RFC3339))

	// Missing and garbage timestamps degrade to "now".
	n = rawNotification{}.normalize(now)
	assert.Equal(t, now, n.CreatedAt)
	n = rawNotification{CreatedAt: "three days ago"}.normalize(now)
	assert.Equal(t, now, n.CreatedAt)
}

func TestFlexString_StringAndNumber(t *testing.T) {
	var entry FavoriteEntry
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"productId":"p-9","price":199.9}`), &entry))
	assert.Equal(t, "42", entry.ID.String())
	assert.Equal(t, "p-9", entry.ProductID.String())
	assert.Equal(t, 199.9, entry.Price.PriceValue())
}

func TestFlexString_PriceValueTolerance(t *testing.T) {
	cases := map[string]float64{
		"10.50": 10.50,
		"":      0,
		"abc":   0,
		"NaN":   0,
		"-3":    0,
		"Inf":   0,
	}
	for in, want := range cases {
		assert.Equal(t, want, FlexString(in).PriceValue(), "price %q", in)
	}
}
