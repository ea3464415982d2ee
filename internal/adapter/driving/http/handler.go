package http

import (
	"net/http"

	"github.com/Wyydra/audiorooms/internal/adapter/driven/call/memory"
	"github.com/Wyydra/audiorooms/internal/adapter/driven/gateway/ws"
	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/Wyydra/audiorooms/internal/core/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	RoomService *service.RoomService
	Hub         *ws.Hub
	Credentials domain.Credentials
	// Simulator is nil unless the in-memory call engine backs the room.
	Simulator *memory.CallEngine
	StaticDir string
	// AllowAnyOrigin skips the same-origin check on /ws.
	AllowAnyOrigin bool
}

func NewHandler(roomService *service.RoomService, hub *ws.Hub, creds domain.Credentials) *Handler {
	return &Handler{
		RoomService: roomService,
		Hub:         hub,
		Credentials: creds,
		StaticDir:   "./static",
	}
}

func (h *Handler) NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	fs := http.FileServer(http.Dir(h.StaticDir))
	r.Handle("/*", fs)

	r.Get("/ws", h.ServeWS)

	r.Route("/api", func(r chi.Router) {
		r.Post("/connect", h.Connect)

		r.Get("/call", h.CallStatus)
		r.Post("/call/join", h.JoinCall)
		r.Post("/call/leave", h.LeaveCall)

		r.Get("/devices", h.ListDevices)
		r.Put("/devices/selected", h.SelectDevice)

		r.Get("/sessions", h.ListSessions)

		if h.Simulator != nil {
			r.Route("/sim/calls/{callID}/participants", func(r chi.Router) {
				r.Post("/", h.SimAddParticipant)
				r.Delete("/{sessionID}", h.SimRemoveParticipant)
				r.Post("/{sessionID}/tracks", h.SimAddTrack)
			})
		}
	})

	return r
}
