package http

import (
	"net/http"
	"time"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

func (h *Handler) upgrader() websocket.Upgrader {
	u := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if h.AllowAnyOrigin {
		u.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return u
}

type WSClient struct {
	id   string
	conn *websocket.Conn
}

func (c *WSClient) ID() string {
	return c.id
}

func (c *WSClient) SendEvent(ev domain.ViewEvent) error {
	type eventDTO struct {
		Event     string    `json:"event"`
		SessionID string    `json:"session_id"`
		Title     string    `json:"title"`
		TrackID   string    `json:"track_id,omitempty"`
		At        time.Time `json:"at"`
	}

	return c.conn.WriteJSON(eventDTO{
		Event:     string(ev.Type),
		SessionID: ev.SessionID.String(),
		Title:     ev.Title,
		TrackID:   ev.TrackID,
		At:        ev.At,
	})
}

func (c *WSClient) Close() error {
	return c.conn.Close()
}

// ServeWS streams view events to a UI client. The client only listens; all
// actions go through the REST endpoints.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	u := h.upgrader()
	conn, err := u.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Error while upgrading ws")
		return
	}

	client := &WSClient{
		id:   uuid.New().String(),
		conn: conn,
	}

	l := log.With().Str("client_id", client.id).Logger()
	l.Info().Msg("New client connected")

	h.Hub.Register(client)

	defer func() {
		l.Info().Msg("Client disconnected")
		h.Hub.Unregister(client)
	}()

	// read until the browser goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				l.Error().Err(err).Msg("Unexpected close error")
			}
			return
		}
	}
}
