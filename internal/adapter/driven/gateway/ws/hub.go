package ws

import (
	"context"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/rs/zerolog/log"
)

const broadcastBuffer = 64

// Hub fans view events out to every connected UI client.
// implements port.ViewGateway
type Hub struct {
	clients    map[Client]bool
	broadcast  chan domain.ViewEvent
	register   chan Client
	unregister chan Client
	count      chan chan int
	quit       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[Client]bool),
		broadcast:  make(chan domain.ViewEvent, broadcastBuffer),
		register:   make(chan Client),
		unregister: make(chan Client),
		count:      make(chan chan int),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) BroadcastEvent(ctx context.Context, ev domain.ViewEvent) error {
	select {
	case h.broadcast <- ev:
	default:
		log.Warn().Str("event", string(ev.Type)).Msg("Broadcast channel full, dropping event")
	}
	return nil
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.quit:
			for client := range h.clients {
				client.Close()
				delete(h.clients, client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			log.Info().Str("client_id", client.ID()).Msg("Client registered")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
				log.Info().Str("client_id", client.ID()).Msg("Client unregistered")
			}

		case reply := <-h.count:
			reply <- len(h.clients)

		case ev := <-h.broadcast:
			for client := range h.clients {
				if err := client.SendEvent(ev); err != nil {
					log.Error().Err(err).Str("client_id", client.ID()).Msg("Error sending event")
					client.Close()
					delete(h.clients, client)
				}
			}
		}
	}
}

// Register adds c to the hub. After Stop, c is closed instead.
func (h *Hub) Register(c Client) {
	select {
	case h.register <- c:
	case <-h.quit:
		c.Close()
	}
}

// Unregister removes and closes c. It returns at once after Stop, which
// already closed every client.
func (h *Hub) Unregister(c Client) {
	select {
	case h.unregister <- c:
	case <-h.quit:
	}
}

// Clients returns the number of registered clients.
func (h *Hub) Clients() int {
	reply := make(chan int, 1)
	h.count <- reply
	return <-reply
}

func (h *Hub) Stop() {
	close(h.quit)
}
