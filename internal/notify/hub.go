// Package notify pushes per-user events (email verified, application
// status changes) over websockets. It replaces the cross-tab signaling
// the web client used to do through shared browser storage.
package notify

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Hub struct {
	clients    map[*Client]uuid.UUID
	byUser     map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	deliveries chan delivery
	mutex      sync.RWMutex
	logger     *zap.Logger
}

type delivery struct {
	userID  uuid.UUID
	message []byte
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]uuid.UUID),
		byUser:     make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		deliveries: make(chan delivery, 1024),
		logger:     logger.Named("notify_hub"),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = client.userID
			if h.byUser[client.userID] == nil {
				h.byUser[client.userID] = make(map[*Client]bool)
			}
			h.byUser[client.userID][client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Debug("client connected", zap.Int("total_clients", total))

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.drop(client)

		case d := <-h.deliveries:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.byUser[d.userID]))
			for c := range h.byUser[d.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- d.message:
				default:
					// Evict inline; queueing to h.unregister from the hub's
					// own loop could block it when the buffer is full.
					h.drop(client)
				}
			}
		}
	}
}

// drop removes a client from both indexes and closes its send channel.
// Safe to call twice for the same client.
func (h *Hub) drop(client *Client) {
	h.mutex.Lock()
	if userID, ok := h.clients[client]; ok {
		delete(h.clients, client)
		if set := h.byUser[userID]; set != nil {
			delete(set, client)
			if len(set) == 0 {
				delete(h.byUser, userID)
			}
		}
		close(client.send)
	}
	total := len(h.clients)
	h.mutex.Unlock()
	h.logger.Debug("client disconnected", zap.Int("total_clients", total))
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Send queues a message for every open connection of one user. Dropped
// when the queue is full; notifications are best-effort.
func (h *Hub) Send(userID uuid.UUID, message []byte) {
	if h == nil {
		return
	}
	select {
	case h.deliveries <- delivery{userID: userID, message: message}:
	default:
		h.logger.Warn("notification dropped", zap.String("reason", "buffer_full"))
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
