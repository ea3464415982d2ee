package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/Wyydra/audiorooms/internal/core/port"
	"github.com/Wyydra/audiorooms/internal/core/signal"
	"github.com/rs/zerolog"
)

type CallOptions struct {
	Type   domain.CallType
	Notify bool
}

// CallSessionController owns the single active call of the local user.
//
// Join and Leave are serialized by the session state rather than by blocking:
// a Join while a session exists, or a Leave while a Join is still in flight,
// fails with domain.ErrSessionBusy.
type CallSessionController struct {
	calls port.CallService
	opts  CallOptions
	log   zerolog.Logger

	mu          sync.Mutex
	state       domain.SessionState
	call        port.Call
	live        *liveGate
	unsubscribe []signal.Unsubscribe

	joined signal.Signal[port.Participant]
	left   signal.Signal[domain.SessionID]
}

func NewCallSessionController(calls port.CallService, opts CallOptions, log zerolog.Logger) *CallSessionController {
	if opts.Type == "" {
		opts.Type = domain.CallTypeDefault
	}
	return &CallSessionController{
		calls: calls,
		opts:  opts,
		log:   log.With().Str("component", "call_session").Logger(),
		state: domain.SessionIdle,
	}
}

func (c *CallSessionController) OnParticipantJoined(fn func(port.Participant)) signal.Unsubscribe {
	return c.joined.Subscribe(fn)
}

func (c *CallSessionController) OnParticipantLeft(fn func(domain.SessionID)) signal.Unsubscribe {
	return c.left.Subscribe(fn)
}

func (c *CallSessionController) State() domain.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CallID returns the id of the active call, or "" when there is none.
func (c *CallSessionController) CallID() domain.CallID {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.call == nil {
		return ""
	}
	return c.call.ID()
}

func (c *CallSessionController) Connect(ctx context.Context, creds domain.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}
	if err := c.calls.ConnectUser(ctx, creds); err != nil {
		c.log.Error().Err(err).Str("user_id", creds.UserID).Msg("Failed to connect user")
		return fmt.Errorf("connect user %s: %w", creds.UserID, err)
	}
	c.log.Info().Str("user_id", creds.UserID).Msg("User connected")
	return nil
}

// Join creates or joins callID. Participants already in the call are reported
// through OnParticipantJoined before the live joined/left events are
// subscribed, so nobody is reported twice.
func (c *CallSessionController) Join(ctx context.Context, callID string) (port.Call, error) {
	id, err := domain.NewCallID(callID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.state != domain.SessionIdle {
		state := c.state
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: join %s while %s", domain.ErrSessionBusy, id, state)
	}
	c.state = domain.SessionJoining
	c.mu.Unlock()

	l := c.log.With().Str("call_id", id.String()).Logger()

	call, err := c.calls.JoinCall(ctx, domain.JoinRequest{
		Type:   c.opts.Type,
		CallID: id,
		Create: true,
		Ring:   false,
		Notify: c.opts.Notify,
	})
	if err != nil {
		c.setState(domain.SessionIdle)
		l.Error().Err(err).Msg("Failed to join call")
		return nil, fmt.Errorf("%w: join %s: %w", domain.ErrConnection, id, err)
	}

	participants := call.Participants()
	for _, p := range participants {
		c.joined.Emit(p)
	}

	live := &liveGate{open: true}
	unsubscribe := []signal.Unsubscribe{
		call.OnParticipantJoined(func(p port.Participant) {
			live.run(func() { c.joined.Emit(p) })
		}),
		call.OnParticipantLeft(func(sessionID domain.SessionID) {
			live.run(func() { c.left.Emit(sessionID) })
		}),
	}

	c.mu.Lock()
	c.call = call
	c.live = live
	c.unsubscribe = unsubscribe
	c.state = domain.SessionActive
	c.mu.Unlock()

	l.Info().Int("participants", len(participants)).Msg("Joined call")
	return call, nil
}

// Leave detaches from the live participant events and then leaves the call.
// Without an active call it only logs a warning.
func (c *CallSessionController) Leave(ctx context.Context) error {
	_, err := c.leave(ctx)
	return err
}

// leave returns the id of the call it left, or "" when there was nothing to
// leave.
func (c *CallSessionController) leave(ctx context.Context) (domain.CallID, error) {
	c.mu.Lock()
	switch c.state {
	case domain.SessionIdle:
		c.mu.Unlock()
		c.log.Warn().Msg("Leave request ignored. There is no active call to leave.")
		return "", nil
	case domain.SessionActive:
	default:
		state := c.state
		c.mu.Unlock()
		return "", fmt.Errorf("%w: leave while %s", domain.ErrSessionBusy, state)
	}

	c.state = domain.SessionLeaving
	call := c.call
	live := c.live
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.live = nil
	c.mu.Unlock()

	// Waits for events already being forwarded.
	live.close()
	for _, fn := range unsubscribe {
		fn()
	}

	id := call.ID()
	l := c.log.With().Str("call_id", id.String()).Logger()
	err := c.calls.LeaveCall(ctx, call)

	c.mu.Lock()
	c.call = nil
	c.state = domain.SessionIdle
	c.mu.Unlock()

	if err != nil {
		l.Error().Err(err).Msg("Failed to leave call")
		return id, fmt.Errorf("leave %s: %w", id, err)
	}
	l.Info().Msg("Left call")
	return id, nil
}

func (c *CallSessionController) setState(state domain.SessionState) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

// liveGate forwards call events until it is closed. close blocks until
// every forward in progress has returned.
type liveGate struct {
	mu   sync.RWMutex
	open bool
}

func (g *liveGate) run(fn func()) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.open {
		fn()
	}
}

func (g *liveGate) close() {
	g.mu.Lock()
	g.open = false
	g.mu.Unlock()
}
