// File: internal/gateway/envelope_test.go
package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_PayloadUnderData(t *testing.T) {
	var env Envelope
	err := json.Unmarshal([]byte(`{"success":true,"data":[1,2,3]}`), &env)
	require.NoError(t, err)

	raw, ok := env.Payload("favorites")
	assert.True(t, ok)
	assert.JSONEq(t, `[1,2,3]`, string(raw))
}

func TestEnvelope_PayloadUnderResourceKey(t *testing.T) {
	var env Envelope
	err := json.Unmarshal([]byte(`{"success":true,"favorites":[{"id":"f1"}]}`), &env)
	require.NoError(t, err)

	raw, ok := env.Payload("favorites")
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"f1"}]`, string(raw))
}

func TestEnvelope_DataPreferredOverResourceKey(t *testing.T) {
	var env Envelope
	err := json.Unmarshal([]byte(`{"success":true,"data":{"a":1},"favorites":{"a":2}}`), &env)
	require.NoError(t, err)

	raw, ok := env.Payload("favorites")
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(raw))
}

func TestEnvelope_NullDataFallsThrough(t *testing.T) {
	var env Envelope
	err := json.Unmarshal([]byte(`{"success":true,"data":null,"notifications":[]}`), &env)
	require.NoError(t, err)

	raw, ok := env.Payload("notifications")
	assert.True(t, ok)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestEnvelope_MissingPayload(t *testing.T) {
	var env Envelope
	err := json.Unmarshal([]byte(`{"success":false,"message":"nope"}`), &env)
	require.NoError(t, err)

	_, ok := env.Payload("favorites")
	assert.False(t, ok)
	assert.False(t, env.Success)
	assert.Equal(t, "nope", env.Message)

	var out []int
	assert.Error(t, env.DecodeInto(&out, "favorites"))
}
