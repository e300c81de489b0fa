package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = ServeWS(w, r, hub, r.URL.Query().Get("base"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastsToSubscribers(t *testing.T) {
	hub := NewHub()
	srv := startHubServer(t, hub)
	conn := dial(t, srv, "")
	waitForClients(t, hub, 1)

	event := domain.RatesRefreshedEvent{BaseCurrency: "USD", RatesUpserted: 1, Rates: map[string]string{"EUR": "0.92"}}
	require.NoError(t, hub.NotifyRatesRefreshed(context.Background(), event))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var got domain.RatesRefreshedEvent
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, "USD", got.BaseCurrency)
	assert.Equal(t, "0.92", got.Rates["EUR"])
}

func TestHub_FiltersByBaseCurrency(t *testing.T) {
	hub := NewHub()
	srv := startHubServer(t, hub)
	conn := dial(t, srv, "?base=EUR")
	waitForClients(t, hub, 1)

	require.NoError(t, hub.NotifyRatesRefreshed(context.Background(), domain.RatesRefreshedEvent{BaseCurrency: "USD"}))
	require.NoError(t, hub.NotifyRatesRefreshed(context.Background(), domain.RatesRefreshedEvent{BaseCurrency: "EUR"}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), `"base_currency":"EUR"`)
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub := NewHub()
	srv := startHubServer(t, hub)
	conn := dial(t, srv, "")
	waitForClients(t, hub, 1)

	require.NoError(t, conn.Close())

	waitForClients(t, hub, 0)
}
