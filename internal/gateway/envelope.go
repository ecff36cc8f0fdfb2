// File: internal/gateway/envelope.go
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the {success, data, message} wrapper the commerce core returns.
// Several legacy endpoints place the payload under a resource-named key
// ("favorites", "notifications", "returnRequests") instead of "data", so the
// raw field set is retained and Payload checks both locations.
type Envelope struct {
	Success bool
	Message string

	fields map[string]json.RawMessage
}

// UnmarshalJSON captures success/message and keeps every other field raw so
// resource-named payload keys survive decoding.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("envelope is not a JSON object: %w", err)
	}

	if raw, ok := fields["success"]; ok {
		if err := json.Unmarshal(raw, &e.Success); err != nil {
			return fmt.Errorf("envelope 'success' field is not a boolean: %w", err)
		}
	}
	if raw, ok := fields["message"]; ok {
		// Tolerate a null or missing message.
		_ = json.Unmarshal(raw, &e.Message)
	}

	e.fields = fields
	return nil
}

// Payload returns the raw payload, preferring "data" and falling back to the
// given resource-named keys. Null payloads count as absent.
func (e *Envelope) Payload(resourceKeys ...string) (json.RawMessage, bool) {
	keys := make([]string, 0, len(resourceKeys)+1)
	keys = append(keys, "data")
	keys = append(keys, resourceKeys...)

	for _, key := range keys {
		raw, ok := e.fields[key]
		if ok && !isJSONNull(raw) {
			return raw, true
		}
	}
	return nil, false
}

// DecodeInto unmarshals the payload into out, checking "data" first and then
// any resource-named keys. A missing payload is an error; callers that accept
// an empty payload should use Payload directly.
func (e *Envelope) DecodeInto(out interface{}, resourceKeys ...string) error {
	raw, ok := e.Payload(resourceKeys...)
	if !ok {
		return fmt.Errorf("envelope has no payload under %q", append([]string{"data"}, resourceKeys...))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode envelope payload: %w", err)
	}
	return nil
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
