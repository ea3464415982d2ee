package http

import (
	"net/http"

	"github.com/Wyydra/audiorooms/internal/adapter/driven/call/memory"
	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/go-chi/chi/v5"
)

type addParticipantRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

type addTrackRequest struct {
	Kind string `json:"kind" validate:"required,oneof=audio video"`
}

// SimAddParticipant places a remote participant in a simulated call.
func (h *Handler) SimAddParticipant(w http.ResponseWriter, r *http.Request) {
	callID, err := domain.NewCallID(chi.URLParam(r, "callID"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req addParticipantRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	p := h.Simulator.OpenCall(callID).AddParticipant(req.Name)
	writeJSON(w, http.StatusCreated, map[string]string{
		"session_id": p.SessionID().String(),
		"name":       p.Name(),
	})
}

func (h *Handler) SimRemoveParticipant(w http.ResponseWriter, r *http.Request) {
	call, ok := h.simCall(w, r)
	if !ok {
		return
	}
	if !call.RemoveParticipant(domain.SessionID(chi.URLParam(r, "sessionID"))) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "participant not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SimAddTrack(w http.ResponseWriter, r *http.Request) {
	call, ok := h.simCall(w, r)
	if !ok {
		return
	}
	var req addTrackRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	p, found := call.Participant(domain.SessionID(chi.URLParam(r, "sessionID")))
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "participant not found"})
		return
	}

	kind, _ := domain.ParseTrackKind(req.Kind)
	track, err := p.AddTrack(kind)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"track_id": track.ID(), "kind": kind.String()})
}

func (h *Handler) simCall(w http.ResponseWriter, r *http.Request) (*memory.Call, bool) {
	id, err := domain.NewCallID(chi.URLParam(r, "callID"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	call, ok := h.Simulator.Call(id)
	if !ok {
		writeError(w, domain.ErrCallNotFound)
		return nil, false
	}
	return call, true
}
