// Package realtime streams ledger events to WebSocket subscribers.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/core/ports/external"
)

// Hub fans RatesRefreshed events out to connected clients.
// A client registered with a base currency only receives events for that base.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]string
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]string),
	}
}

var _ external.RatesRefreshedNotifier = (*Hub)(nil)

func (h *Hub) Register(client *Client, baseCurrency string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = baseCurrency
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// NotifyRatesRefreshed never blocks: a client whose buffer is full misses the event.
func (h *Hub) NotifyRatesRefreshed(_ context.Context, event domain.RatesRefreshedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client, base := range h.clients {
		if base != "" && base != event.BaseCurrency {
			continue
		}
		select {
		case client.send <- payload:
		default:
		}
	}
	return nil
}
