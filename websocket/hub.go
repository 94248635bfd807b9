package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub owns the live connections and performs the broadcast fan-out the
// engine asks for. Room membership lives in the RoomRegistry; the hub only
// resolves member tokens to connections at send time, so presence state has
// a single source of truth.
type Hub struct {
	registry *RoomRegistry

	// Connected clients keyed by session token
	clientsMux sync.RWMutex
	clients    map[string]*Client

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

// NewHub creates a new hub instance
func NewHub(registry *RoomRegistry) *Hub {
	return &Hub{
		registry:   registry,
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMux.Lock()
			h.clients[client.token] = client
			h.clientsMux.Unlock()
		case client := <-h.unregister:
			h.clientsMux.Lock()
			if current, ok := h.clients[client.token]; ok && current == client {
				delete(h.clients, client.token)
				close(client.send)
			}
			h.clientsMux.Unlock()
		}
	}
}

// ToRoom sends an event to every session currently present in the meeting's room.
func (h *Hub) ToRoom(meetingID, eventType string, payload interface{}) {
	data, ok := marshalEvent(eventType, payload)
	if !ok {
		return
	}

	tokens := h.registry.ParticipantTokens(meetingID)

	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()
	for _, token := range tokens {
		if client, ok := h.clients[token]; ok {
			client.trySend(data)
		}
	}
}

// ToSession sends an event to one session only.
func (h *Hub) ToSession(token, eventType string, payload interface{}) {
	data, ok := marshalEvent(eventType, payload)
	if !ok {
		return
	}

	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()
	if client, ok := h.clients[token]; ok {
		client.trySend(data)
	}
}

func marshalEvent(eventType string, payload interface{}) ([]byte, bool) {
	data, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("error marshaling %s event: %v", eventType, err)
		return nil, false
	}
	return data, true
}
