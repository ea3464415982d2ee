package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type joinRequest struct {
	CallID string `json:"call_id"`
}

type selectDeviceRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

type deviceDTO struct {
	Index int `json:"index"`
	domain.DeviceInfo
	Selected bool `json:"selected"`
}

type sessionDTO struct {
	ID           string  `json:"id"`
	CallID       string  `json:"call_id"`
	JoinedAt     string  `json:"joined_at"`
	LeftAt       string  `json:"left_at"`
	DurationSecs float64 `json:"duration_secs"`
	Participants int     `json:"participants"`
}

func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	if err := h.RoomService.Connect(r.Context(), h.Credentials); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"user_id": h.Credentials.UserID})
}

func (h *Handler) CallStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.RoomService.Status())
}

func (h *Handler) JoinCall(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.RoomService.JoinCall(r.Context(), req.CallID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.RoomService.Status())
}

func (h *Handler) LeaveCall(w http.ResponseWriter, r *http.Request) {
	if err := h.RoomService.LeaveCall(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.RoomService.Status())
}

func (h *Handler) ListDevices(w http.ResponseWriter, r *http.Request) {
	mics := h.RoomService.Microphones()
	_, selected, _ := mics.Selected()

	devices := mics.Devices()
	out := make([]deviceDTO, len(devices))
	for i, d := range devices {
		out[i] = deviceDTO{Index: i, DeviceInfo: d, Selected: i == selected}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) SelectDevice(w http.ResponseWriter, r *http.Request) {
	var req selectDeviceRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.RoomService.Microphones().Select(*req.Index); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	records, err := h.RoomService.History(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]sessionDTO, len(records))
	for i, rec := range records {
		out[i] = sessionDTO{
			ID:           rec.ID.String(),
			CallID:       rec.CallID.String(),
			JoinedAt:     rec.JoinedAt.Format(time.RFC3339),
			LeftAt:       rec.LeftAt.Format(time.RFC3339),
			DurationSecs: rec.Duration().Seconds(),
			Participants: rec.Participants,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// decode reads and validates a JSON body. Failures are domain.ErrInvalidInput.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(domain.ErrInvalidInput, err)
	}
	if err := validate.Struct(v); err != nil {
		return errors.Join(domain.ErrInvalidInput, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrAuth):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrSessionBusy):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrCallNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConnection), errors.Is(err, domain.ErrNotConnected):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
