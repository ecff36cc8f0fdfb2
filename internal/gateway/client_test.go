// File: internal/gateway/client_test.go
package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"huglu_mobile_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(&config.Config{
		GatewayBaseURL: server.URL,
		GatewayTimeout: 2 * time.Second,
	}, zap.NewNop())
}

func TestClient_GetNotifications_NormalizesAliases(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("userId"))
		w.Write([]byte(`{"success":true,"notifications":[
			{"id":1,"title":"Order shipped","type":"delivery","createdAt":"2026-08-28T10:00:00Z","read":true},
			{"id":"n2","title":"Sale","type":"promotion","date":"2026-08-27T09:00:00Z","isRead":false,"read":false}
		]}`))
	})

	notifications, err := client.GetNotifications(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	assert.Equal(t, "1", notifications[0].ID)
	assert.True(t, notifications[0].IsRead)
	assert.Equal(t, "delivery", notifications[0].Type)

	assert.Equal(t, "n2", notifications[1].ID)
	assert.False(t, notifications[1].IsRead)
	assert.Equal(t, "2026-08-27T09:00:00Z", notifications[1].CreatedAt.Format(time.RFC3339))
}

func TestClient_SuccessFalseBecomesUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Kod hatalı"}`))
	})

	err := client.VerifyTwoFactorCode(context.Background(), "42", "123456")
	require.Error(t, err)
	assert.Equal(t, "Kod hatalı", UpstreamMessage(err))
}

func TestClient_Non200UsesStatusTextFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`not json`))
	})

	_, err := client.GetFavorites(context.Background(), "42")
	require.Error(t, err)
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), UpstreamMessage(err))
}

func TestClient_TransportFailureIsErrUnavailable(t *testing.T) {
	client := NewClient(&config.Config{
		GatewayBaseURL: "http://127.0.0.1:1", // nothing listens here
		GatewayTimeout: 200 * time.Millisecond,
	}, zap.NewNop())

	_, err := client.GetQuests(context.Background(), "42")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_MarkAllNotificationsRead(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notifications/read-all", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"updated":3}}`))
	})

	updated, err := client.MarkAllNotificationsRead(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, 3, updated)
}
