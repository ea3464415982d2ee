package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/Wyydra/audiorooms/internal/core/port"
	"github.com/Wyydra/audiorooms/internal/core/signal"
	"github.com/rs/zerolog"
)

// RoomStatus is what the UI shows about the local user's call.
type RoomStatus struct {
	State        string                   `json:"state"`
	CallID       domain.CallID            `json:"call_id,omitempty"`
	Participants []domain.ParticipantInfo `json:"participants"`
}

// RoomService wires user actions (connect, join, leave, microphone choice) to
// the call session and keeps the participant views in sync with it.
type RoomService struct {
	session     *CallSessionController
	registry    *ParticipantViewRegistry
	microphones *MicrophoneSelector
	history     port.SessionRepository
	log         zerolog.Logger
	now         func() time.Time

	detach signal.Unsubscribe

	mu       sync.Mutex
	joinedAt time.Time
}

func NewRoomService(
	session *CallSessionController,
	registry *ParticipantViewRegistry,
	microphones *MicrophoneSelector,
	history port.SessionRepository,
	log zerolog.Logger,
) *RoomService {
	return &RoomService{
		session:     session,
		registry:    registry,
		microphones: microphones,
		history:     history,
		log:         log.With().Str("component", "room").Logger(),
		now:         time.Now,
		detach:      registry.Attach(session),
	}
}

// Start connects the local user and activates the first microphone. A failed
// connect is logged and can be retried with Connect.
func (s *RoomService) Start(ctx context.Context, creds domain.Credentials) {
	if err := s.Connect(ctx, creds); err != nil {
		s.log.Error().Err(err).Msg("Initial connect failed")
	}

	if len(s.microphones.Refresh()) == 0 {
		s.log.Warn().Msg("No microphone found, audio capture disabled")
		return
	}
	if err := s.microphones.Select(0); err != nil {
		s.log.Error().Err(err).Msg("Failed to activate default microphone")
	}
}

func (s *RoomService) Connect(ctx context.Context, creds domain.Credentials) error {
	return s.session.Connect(ctx, creds)
}

func (s *RoomService) JoinCall(ctx context.Context, callID string) error {
	if _, err := s.session.Join(ctx, callID); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			s.log.Error().Err(err).Msg("Please provide call ID")
		}
		return err
	}

	s.mu.Lock()
	s.joinedAt = s.now()
	s.mu.Unlock()
	return nil
}

// LeaveCall leaves the active call and destroys every participant view, even
// when the calling service reports a failure.
func (s *RoomService) LeaveCall(ctx context.Context) error {
	callID, err := s.session.leave(ctx)
	if errors.Is(err, domain.ErrSessionBusy) {
		return err
	}

	cleared := s.registry.Clear()
	if callID != "" {
		s.record(ctx, callID, cleared)
	}
	return err
}

func (s *RoomService) Status() RoomStatus {
	return RoomStatus{
		State:        s.session.State().String(),
		CallID:       s.session.CallID(),
		Participants: s.registry.Participants(),
	}
}

func (s *RoomService) Microphones() *MicrophoneSelector {
	return s.microphones
}

func (s *RoomService) History(ctx context.Context) ([]domain.SessionRecord, error) {
	return s.history.List(ctx)
}

// Close leaves any active call and detaches the registry from the session.
func (s *RoomService) Close(ctx context.Context) error {
	var err error
	if s.session.State() == domain.SessionActive {
		err = s.LeaveCall(ctx)
	}
	s.detach()
	return err
}

func (s *RoomService) record(ctx context.Context, callID domain.CallID, participants int) {
	s.mu.Lock()
	joinedAt := s.joinedAt
	s.joinedAt = time.Time{}
	s.mu.Unlock()

	rec := domain.SessionRecord{
		ID:           domain.NewRecordID(),
		CallID:       callID,
		JoinedAt:     joinedAt,
		LeftAt:       s.now(),
		Participants: participants,
	}
	if err := s.history.Save(ctx, rec); err != nil {
		s.log.Error().Err(err).Str("call_id", callID.String()).Msg("Failed to record session")
	}
}
